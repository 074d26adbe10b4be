// This file is part of Whitespace - https://github.com/kasnil/Whitespace
//
// Copyright 2018 The Whitespace Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "strconv"

// Whitespace Virtual Machine opcodes.
const (
	OpPush Opcode = iota
	OpDup
	OpCopy
	OpSwap
	OpDrop
	OpSlide
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpStore
	OpFetch
	OpMark
	OpCall
	OpJump
	OpJumpZ
	OpJumpN
	OpReturn
	OpEnd
	OpPutc
	OpPutn
	OpGetc
	OpGetn

	opCount
)

// Opcode identifies a VM operation. The set is closed: the dispatch loop
// switches exhaustively over it and anything else is a broken program.
type Opcode int

var opNames = [...]string{
	"push",
	"dup",
	"copy",
	"swap",
	"drop",
	"slide",
	"add",
	"sub",
	"mul",
	"div",
	"mod",
	"store",
	"fetch",
	"mark",
	"call",
	"jump",
	"jz",
	"jn",
	"ret",
	"end",
	"putc",
	"putn",
	"getc",
	"getn",
}

func (op Opcode) String() string {
	if op < 0 || op >= opCount {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// HasNumber reports whether the opcode carries a numeric operand.
func (op Opcode) HasNumber() bool {
	switch op {
	case OpPush, OpCopy, OpSlide:
		return true
	}
	return false
}

// HasLabel reports whether the opcode carries a label operand.
func (op Opcode) HasLabel() bool {
	switch op {
	case OpMark, OpCall, OpJump, OpJumpZ, OpJumpN:
		return true
	}
	return false
}

// Instr is a single decoded instruction: an opcode plus its operand, if any.
// N is set for push/copy/slide, L for mark/call/jump/jz/jn.
type Instr struct {
	Op Opcode
	N  Cell
	L  string
}

// Program is a position-indexed instruction sequence. It is built once by a
// front end and never mutated during execution. The program counter's domain
// is [0, len(p)]; reaching len(p) terminates execution.
type Program []Instr

// Labels builds the label resolution table for the program. Duplicate marks
// are legal, the first definition wins.
func (p Program) Labels() map[string]int {
	l := make(map[string]int)
	for pc, in := range p {
		if in.Op == OpMark {
			if _, ok := l[in.L]; !ok {
				l[in.L] = pc
			}
		}
	}
	return l
}
