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

// Package asm provides a readable assembly syntax for Whitespace VM
// programs, plus the matching disassembler. It exists because editing
// significant whitespace by hand is miserable; the ws package can encode
// any assembled program back into the wire format.
//
// Supported mnemonics (aliases in parentheses, ✓ marks an argument):
//
//	mnemonic	arg	stack	description
//	--------	---	-----	------------------------------------------------
//	push		✓ n	-n	push the literal n
//	dup			n-nn	duplicate the top value
//	copy (ref)	✓ n	-n	push a copy of stack slot n, counted from the bottom
//	swap			xy-yx	swap the two top values
//	drop (discard)		n-	drop the top value
//	slide		✓ n	n-	drop n values beneath the top, keep the top
//	add (+)			xy-z	z = x + y
//	sub (-)			xy-z	z = x - y
//	mul (*)			xy-z	z = x * y
//	div (/)			xy-z	z = x / y, truncated; y must not be 0
//	mod			xy-z	z = x % y, truncated; y must not be 0
//	store (!)		av-	write v to heap address a, growing the heap
//	fetch (@)		a-v	read heap address a; must be within the grown heap
//	mark		✓ l		define label l (see also the :l shorthand)
//	call		✓ l		push the return address, jump to l
//	jump (jmp)	✓ l		jump to l
//	jz		✓ l	n-	jump to l if n is zero
//	jn		✓ l	n-	jump to l if n is negative
//	ret (;)				pop the call stack, resume after the call
//	end				terminate the program
//	putc			n-	write the low byte of n to the output
//	putn			n-	write n in decimal to the output
//	getc			a-	read one input byte into heap address a
//	getn			a-	read a decimal line into heap address a
//
// Numeric arguments can be integer literals in any base strconv.ParseInt
// accepts, character literals between single quotes, or named constants.
// A bare integer where an instruction is expected compiles as an implicit
// push:
//
//	push 42
//	42	( compiles as "push 42", just like above )
//	'a'	( compiles as "push 97" )
//
// Labels are defined by prefixing them with a colon, or with the mark
// mnemonic, and referenced without the prefix:
//
//	:loop	dup putn '\n' putc
//		1 sub dup jz done
//		jump loop
//	:done	end
//
// Forward references are fine; assembling fails if a referenced label is
// never defined or a label is defined twice. Note that the VM itself is
// laxer, it accepts duplicate marks and binds each name to the first one.
//
// Comments are placed between parentheses, separated from the enclosing
// parentheses by white space:
//
//	( this is a valid comment )
//	(this is not, it parses as the label "(this" )
//
// Constants are defined with the .equ directive and can be used anywhere an
// integer literal is expected:
//
//	.equ answer 42
//	answer putn
package asm
