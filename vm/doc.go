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

// Package vm implements the Whitespace virtual machine.
//
// The machine executes a Program (see package ws for the whitespace wire
// format and package asm for a readable assembly syntax) against a value
// stack, a call stack and a zero-based, auto-growing heap. Execution starts
// at position 0 and terminates when an end instruction is reached or when
// the program counter runs off the end of the program.
//
// Instances are single owners of all their state: execution is fully
// synchronous and the only blocking points are getc/getn reads on the input.
// Construct a fresh Instance per program run.
//
// Errors are fatal. A stack underflow, an unresolved label, a division by
// zero, an out of range heap read or an input failure all halt the machine
// with the PC pointing at the offending instruction; there is no recovery
// or resumption.
package vm
