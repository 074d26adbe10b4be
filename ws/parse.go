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

package ws

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/kasnil/Whitespace/vm"
)

type argKind int

const (
	argNone argKind = iota
	argNum
	argLabel
)

// The instruction table. Patterns are matched in order at each cursor
// position; the set is prefix-free, so the first match is also the longest.
var instrTable = []struct {
	pat string
	op  vm.Opcode
	arg argKind
}{
	{"  ", vm.OpPush, argNum},
	{" \n ", vm.OpDup, argNone},
	{" \t ", vm.OpCopy, argNum},
	{" \t\n", vm.OpSlide, argNum},
	{" \n\t", vm.OpSwap, argNone},
	{" \n\n", vm.OpDrop, argNone},
	{"\t   ", vm.OpAdd, argNone},
	{"\t  \t", vm.OpSub, argNone},
	{"\t  \n", vm.OpMul, argNone},
	{"\t \t ", vm.OpDiv, argNone},
	{"\t \t\t", vm.OpMod, argNone},
	{"\t\t ", vm.OpStore, argNone},
	{"\t\t\t", vm.OpFetch, argNone},
	{"\n  ", vm.OpMark, argLabel},
	{"\n \t", vm.OpCall, argLabel},
	{"\n \n", vm.OpJump, argLabel},
	{"\n\t ", vm.OpJumpZ, argLabel},
	{"\n\t\t", vm.OpJumpN, argLabel},
	{"\n\t\n", vm.OpReturn, argNone},
	{"\n\n\n", vm.OpEnd, argNone},
	{"\t\n  ", vm.OpPutc, argNone},
	{"\t\n \t", vm.OpPutn, argNone},
	{"\t\n\t ", vm.OpGetc, argNone},
	{"\t\n\t\t", vm.OpGetn, argNone},
}

// patterns indexed by opcode, for the encoder.
var instrPattern = make(map[vm.Opcode]string, len(instrTable))

func init() {
	for _, e := range instrTable {
		instrPattern[e.op] = e.pat
	}
}

type parser struct {
	name  string
	chars []byte
	pos   []position
	cur   int
}

// Parse reads whitespace source from r and translates it into a program.
// Translation is atomic: on any error the whole program is rejected and a
// nil Program returned.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
func Parse(name string, r io.Reader) (vm.Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read failed", name)
	}
	return ParseBytes(name, src)
}

// ParseBytes is like Parse but reads the source from a byte slice.
func ParseBytes(name string, src []byte) (vm.Program, error) {
	p := &parser{name: name}
	p.chars, p.pos = scan(src)
	var prog vm.Program
	for p.cur < len(p.chars) {
		in, err := p.instr()
		if err != nil {
			return nil, err
		}
		prog = append(prog, in)
	}
	return prog, nil
}

func (p *parser) errorf(at int, format string, args ...interface{}) error {
	if at >= len(p.pos) {
		return errors.Errorf("%s: %s", p.name, errors.Errorf(format, args...))
	}
	pos := p.pos[at]
	return errors.Errorf("%s:%d:%d: %s", p.name, pos.line, pos.col, errors.Errorf(format, args...))
}

// instr matches the instruction starting at the cursor and consumes its
// tokens, operand included.
func (p *parser) instr() (vm.Instr, error) {
	start := p.cur
	for _, e := range instrTable {
		if !bytes.HasPrefix(p.chars[p.cur:], []byte(e.pat)) {
			continue
		}
		p.cur += len(e.pat)
		switch e.arg {
		case argNum:
			n, err := p.number(start)
			if err != nil {
				return vm.Instr{}, err
			}
			return vm.Instr{Op: e.op, N: n}, nil
		case argLabel:
			l, err := p.label(start)
			if err != nil {
				return vm.Instr{}, err
			}
			return vm.Instr{Op: e.op, L: l}, nil
		default:
			return vm.Instr{Op: e.op}, nil
		}
	}
	return vm.Instr{}, p.errorf(start, "unrecognized instruction sequence")
}

// number decodes a numeric operand: a sign token (space positive, tab
// negative) followed by the magnitude bits, most significant first, tab
// being 1 and space 0, terminated by a linefeed. A sign with no bits is
// zero; so is an operand terminated before its sign token.
func (p *parser) number(start int) (vm.Cell, error) {
	var v vm.Cell
	neg := false
	first := true
	for p.cur < len(p.chars) {
		c := p.chars[p.cur]
		p.cur++
		if c == tokLF {
			if neg {
				v = -v
			}
			return v, nil
		}
		if first {
			neg = c == tokTab
			first = false
			continue
		}
		v <<= 1
		if c == tokTab {
			v |= 1
		}
	}
	return 0, p.errorf(start, "unterminated number operand")
}

// label decodes a label operand: the token run before the linefeed
// terminator, one character per token ('0' for space, '1' for tab). The
// decoded string is an opaque identifier, only ever compared against other
// labels decoded the same way.
func (p *parser) label(start int) (string, error) {
	var b []byte
	for p.cur < len(p.chars) {
		c := p.chars[p.cur]
		p.cur++
		if c == tokLF {
			return string(b), nil
		}
		if c == tokTab {
			b = append(b, '1')
		} else {
			b = append(b, '0')
		}
	}
	return "", p.errorf(start, "unterminated label operand")
}
