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

import "github.com/pkg/errors"

// Heap is the VM's addressable memory: a zero-based, densely indexed Cell
// sequence. It starts empty and grows on demand, never shrinks. Growing to
// reach an address zero-fills every newly created slot.
type Heap []Cell

// Store writes v at the given address, growing the heap just enough to make
// the address valid.
func (h *Heap) Store(addr, v Cell) error {
	if addr < 0 {
		return errors.Errorf("store: negative heap address %d", addr)
	}
	if n := int(addr) + 1 - len(*h); n > 0 {
		*h = append(*h, make([]Cell, n)...)
	}
	(*h)[addr] = v
	return nil
}

// Fetch reads the value at the given address. Addresses beyond the grown
// length are out of range: reads never extend the heap.
func (h Heap) Fetch(addr Cell) (Cell, error) {
	if addr < 0 || int(addr) >= len(h) {
		return 0, errors.Errorf("fetch: heap address %d out of range [0, %d)", addr, len(h))
	}
	return h[addr], nil
}
