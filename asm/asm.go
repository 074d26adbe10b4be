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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kasnil/Whitespace/internal/wsi"
	"github.com/kasnil/Whitespace/vm"
)

// mnemonics indexed by opcode, first entry is the canonical spelling used
// by the disassembler.
var opcodes = [...][]string{
	{"push"},
	{"dup"},
	{"copy", "ref"},
	{"swap"},
	{"drop", "discard"},
	{"slide"},
	{"add", "+"},
	{"sub", "-"},
	{"mul", "*"},
	{"div", "/"},
	{"mod"},
	{"store", "!"},
	{"fetch", "@"},
	{"mark"},
	{"call"},
	{"jump", "jmp"},
	{"jz"},
	{"jn"},
	{"ret", ";"},
	{"end"},
	{"putc"},
	{"putn"},
	{"getc"},
	{"getn"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for i, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = vm.Opcode(i)
		}
	}
}

// Assemble compiles assembly read from the supplied io.Reader and returns
// the resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	return newParser().Parse(name, r)
}

// Disassemble writes the instruction at position pc to the specified
// io.Writer and returns the position of the next instruction and any write
// error. Marks are written back in their label definition form.
func Disassemble(p vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := wsi.NewErrWriter(w)
	in := p[pc]
	switch {
	case in.Op == vm.OpMark:
		io.WriteString(ew, ":")
		io.WriteString(ew, in.L)
	case in.Op.HasLabel():
		io.WriteString(ew, in.Op.String())
		ew.Write([]byte{' '})
		io.WriteString(ew, in.L)
	case in.Op.HasNumber():
		io.WriteString(ew, in.Op.String())
		ew.Write([]byte{' '})
		io.WriteString(ew, strconv.Itoa(int(in.N)))
	default:
		io.WriteString(ew, in.Op.String())
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of the whole program to the specified
// io.Writer, one instruction per line with its position. It will return any
// write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := wsi.NewErrWriter(w)
	for pc := 0; pc < len(p); {
		fmt.Fprintf(ew, "% 6d\t", pc)
		pc, _ = Disassemble(p, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
