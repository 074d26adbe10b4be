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

// Package ws reads and writes the whitespace wire format.
//
// Source text encodes instructions purely through spaces, tabs and
// linefeeds; every other character is a comment. The parser scans left to
// right and at each position matches the longest recognized instruction
// prefix, then decodes the inline operand if the instruction takes one.
//
// Instruction encoding (S = space, T = tab, L = linefeed):
//
//	tokens	instruction	operand
//	------	-----------	-------
//	S S	push		number
//	S L S	dup
//	S T S	copy		number
//	S T L	slide		number
//	S L T	swap
//	S L L	drop
//	T S S S	add
//	T S S T	sub
//	T S S L	mul
//	T S T S	div
//	T S T T	mod
//	T T S	store
//	T T T	fetch
//	L S S	mark		label
//	L S T	call		label
//	L S L	jump		label
//	L T S	jz		label
//	L T T	jn		label
//	L T L	ret
//	L L L	end
//	T L S S	putc
//	T L S T	putn
//	T L T S	getc
//	T L T T	getn
//
// Operands follow the instruction immediately and run up to and including a
// linefeed terminator. A number is a sign token (space positive, tab
// negative) followed by its magnitude in binary, most significant bit
// first, tab being 1 and space 0. A label is the raw token run, decoded to
// an opaque identifier that is only ever compared against other labels.
//
// Parsing is atomic: a malformed prefix or an unterminated operand rejects
// the entire program before anything runs. The encoder in this package is
// the exact inverse of the parser, which is handy for generating programs
// from the friendlier asm syntax.
package ws
