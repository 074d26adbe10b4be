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

import (
	"io"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a stack slot or a heap location.
type Cell int

const (
	dataSize = 1024
	callSize = 1024
)

// Instance represents a Whitespace VM instance.
type Instance struct {
	PC       int // Program Counter (aka. Instruction Pointer)
	prog     Program
	labels   map[string]int
	sp       int
	csp      int
	data     []Cell
	calls    []Cell
	heap     Heap
	insCount int64
	input    io.ByteReader
	output   byteWriter
}

// Option interface
type Option func(*Instance) error

// DataSize sets the value stack size. It will not erase the stack, but data
// may be lost if set to a smaller size. The default is 1024 cells.
func DataSize(size int) Option {
	return func(i *Instance) error {
		if size < 1 {
			return errors.Errorf("invalid data stack size %d", size)
		}
		t := make([]Cell, size)
		if i.sp >= size {
			i.sp = size - 1
		}
		copy(t, i.data[:i.sp+1])
		i.data = t
		return nil
	}
}

// CallSize sets the call stack size. It will not erase the stack, but return
// addresses may be lost if set to a smaller size. The default is 1024 cells.
func CallSize(size int) Option {
	return func(i *Instance) error {
		if size < 1 {
			return errors.Errorf("invalid call stack size %d", size)
		}
		t := make([]Cell, size)
		if i.csp >= size {
			i.csp = size - 1
		}
		copy(t, i.calls[:i.csp+1])
		i.calls = t
		return nil
	}
}

// Input pushes the given io.Reader on top of the input stack. getc and getn
// read from the most recently pushed reader until it is exhausted, then fall
// back to the previous one.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output sets the output writer. Each byte written by putc and putn is
// flushed before the next instruction executes; if w exposes a Flush method
// it will be called after every write.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Whitespace Virtual Machine instance running the given
// program. Options will be set by calling SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		PC:     0,
		sp:     -1,
		csp:    -1,
		prog:   p,
		labels: p.Labels(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.data == nil {
		i.data = make([]Cell, dataSize)
	}
	if i.calls == nil {
		i.calls = make([]Cell, callSize)
	}
	return i, nil
}

// Extend appends more instructions to the loaded program and refreshes the
// label bindings. The program counter is left untouched, so an instance that
// previously ran off the end of its program can resume with the new code.
func (i *Instance) Extend(p Program) {
	i.prog = append(i.prog, p...)
	i.labels = i.prog.Labels()
}

// Program returns the program the instance is executing.
func (i *Instance) Program() Program {
	return i.prog
}

// Data returns the live portion of the value stack, bottom first. Note that
// value changes will be reflected in the instance's stack, but re-slicing
// will not affect it. To add/remove values, use Push and Pop.
func (i *Instance) Data() []Cell {
	return i.data[:i.sp+1]
}

// Calls returns the live portion of the call stack, bottom first.
func (i *Instance) Calls() []Cell {
	return i.calls[:i.csp+1]
}

// Heap returns the VM heap. It only ever grows; see Heap.Store.
func (i *Instance) Heap() Heap {
	return i.heap
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
