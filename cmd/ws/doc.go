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

// The ws command runs Whitespace programs.
//
// It takes exactly one program file as argument; anything else prints the
// usage text. By default the file is parsed as whitespace source and
// executed with the process's standard input and output wired to the VM.
//
// Usage:
//
//	ws [options] <program file>
//
//	-asm
//		treat the program file as assembly source (implied by a .wsa
//		file extension)
//	-debug
//		enable debug diagnostics
//	-dump
//		disassemble the program instead of running it
//	-noraw
//		disable raw terminal IO
//	-o filename
//		translate to whitespace into filename and exit
//	-repl
//		start an interactive assembler session
//	-with filename
//		add filename to the input list (can be specified multiple times)
//
// -asm: parse the file with the asm package syntax instead of the
// whitespace wire format. Combined with -o this translates readable
// assembly into runnable whitespace source.
//
// -debug: print a full error trace and the VM state should the program
// crash.
//
// -dump: print a positioned disassembly of the program to stdout and exit
// without executing anything. Works for both front ends.
//
// -noraw: upon startup, ws switches the terminal to raw mode so that getc
// reads bytes as they are typed. This flag disables that behavior.
//
// -repl: interactive assembler. Each line is assembled and executed
// immediately, the value stack is printed after every line. Labels defined
// on previous lines stay visible. Exit with bye or Ctrl+D.
//
// -with: feed the given file to the VM as input before stdin. If specified
// multiple times, files are consumed in order of appearance on the command
// line.
package main
