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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kasnil/Whitespace/asm"
	"github.com/kasnil/Whitespace/vm"
)

func assemble(t *testing.T, name, code string) vm.Program {
	t.Helper()
	p, err := asm.Assemble(name, strings.NewReader(code))
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return p
}

var asmTests = [...]struct {
	name string
	code string
	prog vm.Program
}{
	{"empty", "", nil},
	{"push", "push 42", vm.Program{{Op: vm.OpPush, N: 42}}},
	{"implicit push", "42", vm.Program{{Op: vm.OpPush, N: 42}}},
	{"bases", "0x10 0o10 0b10", vm.Program{
		{Op: vm.OpPush, N: 16},
		{Op: vm.OpPush, N: 8},
		{Op: vm.OpPush, N: 2}}},
	{"char literal", "'a' '\\n' '\\''", vm.Program{
		{Op: vm.OpPush, N: 97},
		{Op: vm.OpPush, N: 10},
		{Op: vm.OpPush, N: 39}}},
	{"negative", "push -42 -1", vm.Program{
		{Op: vm.OpPush, N: -42},
		{Op: vm.OpPush, N: -1}}},
	{"aliases", "1 2 + 3 - 4 * 5 / @ ! ;", vm.Program{
		{Op: vm.OpPush, N: 1},
		{Op: vm.OpPush, N: 2},
		{Op: vm.OpAdd},
		{Op: vm.OpPush, N: 3},
		{Op: vm.OpSub},
		{Op: vm.OpPush, N: 4},
		{Op: vm.OpMul},
		{Op: vm.OpPush, N: 5},
		{Op: vm.OpDiv},
		{Op: vm.OpFetch},
		{Op: vm.OpStore},
		{Op: vm.OpReturn}}},
	{"more aliases", "ref 0 discard jmp out :out", vm.Program{
		{Op: vm.OpCopy},
		{Op: vm.OpDrop},
		{Op: vm.OpJump, L: "out"},
		{Op: vm.OpMark, L: "out"}}},
	{"label colon", ":loop jump loop", vm.Program{
		{Op: vm.OpMark, L: "loop"},
		{Op: vm.OpJump, L: "loop"}}},
	{"label mark", "mark loop jump loop", vm.Program{
		{Op: vm.OpMark, L: "loop"},
		{Op: vm.OpJump, L: "loop"}}},
	{"forward reference", "jump end :end", vm.Program{
		{Op: vm.OpJump, L: "end"},
		{Op: vm.OpMark, L: "end"}}},
	{"comment", "1 ( one and\ntwo ) 2", vm.Program{
		{Op: vm.OpPush, N: 1},
		{Op: vm.OpPush, N: 2}}},
	{"equ", ".equ answer 42 answer putn push answer", vm.Program{
		{Op: vm.OpPush, N: 42},
		{Op: vm.OpPutn},
		{Op: vm.OpPush, N: 42}}},
	{"equ redefine", ".equ x 1 x .equ x 2 x", vm.Program{
		{Op: vm.OpPush, N: 1},
		{Op: vm.OpPush, N: 2}}},
}

func TestAssemble(t *testing.T) {
	for _, test := range asmTests {
		p := assemble(t, test.name, test.code)
		if len(p) != len(test.prog) {
			t.Errorf("%s: expected %v, got %v", test.name, test.prog, p)
			continue
		}
		for i := range test.prog {
			if p[i] != test.prog[i] {
				t.Errorf("%s: instruction %d: expected %v, got %v", test.name, i, test.prog[i], p[i])
			}
		}
	}
}

// only check that errors are raised and point at the offending token.
var asmErrTests = [...]struct {
	name string
	code string
	err  string
}{
	{"unknown instruction", "push 1 frob", "unknown instruction: frob"},
	{"redefinition", ":a :a", "label redefinition: a"},
	{"missing definition", "jump nowhere", "missing label definition for nowhere"},
	{"number as label", "jump 5", "expected label, got number"},
	{"instruction as argument", "push dup", "unexpected instruction as argument: dup"},
	{"label def as argument", "push :x", "unexpected label definition as argument"},
	{"empty label", ":", "empty label name"},
	{"unknown directive", ".org 32", "unknown dot directive: .org"},
	{"directive as argument", "push .equ", "unexpected directive as argument"},
	{"truncated push", "push", "unexpected end of input"},
	{"truncated jump", "1 jump", "unexpected end of input"},
	{"bad char literal", "'\\x'", "invalid syntax"},
}

func TestAssemble_errors(t *testing.T) {
	for _, test := range asmErrTests {
		_, err := asm.Assemble(test.name, strings.NewReader(test.code))
		if err == nil {
			t.Errorf("%s: expected error, got none", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.err) {
			t.Errorf("%s: expected error %q, got %q", test.name, test.err, err)
		}
	}
}

func TestDisassembleAll(t *testing.T) {
	p := assemble(t, "disasm", "push 42 :loop dup jz done jump loop :done end")
	var b bytes.Buffer
	if err := asm.DisassembleAll(p, &b); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"     0\tpush 42\n" +
		"     1\t:loop\n" +
		"     2\tdup\n" +
		"     3\tjz done\n" +
		"     4\tjump loop\n" +
		"     5\t:done\n" +
		"     6\tend\n"
	if got := b.String(); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

// a disassembly must assemble back to the exact same program.
func TestDisassemble_roundTrip(t *testing.T) {
	p := assemble(t, "roundtrip", `
		0 0 store 10
		:loop dup jz done
		      dup 0 fetch add
		      0 swap store
		      1 sub
		      jump loop
		:done drop 0 fetch putn '\n' putc end
		call sub ret :sub getc getn copy 3 slide 1 mod jn loop end`)
	// Disassemble one instruction per line: DisassembleAll prefixes each
	// line with its position, which would assemble back as implicit pushes.
	var b bytes.Buffer
	for pc := 0; pc < len(p); {
		var err error
		if pc, err = asm.Disassemble(p, pc, &b); err != nil {
			t.Fatal(err)
		}
		b.WriteByte('\n')
	}
	q := assemble(t, "roundtrip2", b.String())
	if len(p) != len(q) {
		t.Fatalf("expected %d instructions, got %d", len(p), len(q))
	}
	for i := range p {
		if p[i] != q[i] {
			t.Errorf("instruction %d: expected %v, got %v", i, p[i], q[i])
		}
	}
}
