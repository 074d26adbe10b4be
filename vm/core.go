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

// Push pushes the argument on top of the value stack.
func (i *Instance) Push(v Cell) {
	i.sp++
	i.data[i.sp] = v
}

// Pop pops the value on top of the value stack and returns it.
func (i *Instance) Pop() Cell {
	sp := i.sp
	i.sp--
	return i.data[sp]
}

// Rpush pushes the argument on top of the call stack.
func (i *Instance) Rpush(v Cell) {
	i.csp++
	i.calls[i.csp] = v
}

// Rpop pops the value on top of the call stack and returns it.
func (i *Instance) Rpop() Cell {
	csp := i.csp
	i.csp--
	return i.calls[csp]
}

func (i *Instance) need(n int) error {
	if i.sp+1 < n {
		return errors.Errorf("stack underflow: need %d values, have %d", n, i.sp+1)
	}
	return nil
}

func (i *Instance) resolve(name string) (int, error) {
	pc, ok := i.labels[name]
	if !ok {
		return 0, errors.Errorf("undefined label %q", name)
	}
	return pc, nil
}

// Run starts execution of the VM at the current PC and runs until an end
// instruction, until the PC runs off the end of the program, or until a
// runtime error.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error. All runtime errors are fatal: the VM performs no recovery and
// the instance should not be resumed.
//
// On clean termination via the end instruction, the PC is left one past the
// instruction and err is nil.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("pc=%d: %v", i.PC, e)
		}
	}()
	i.insCount = 0
	for i.PC < len(i.prog) {
		in := &i.prog[i.PC]
		switch in.Op {
		case OpPush:
			i.Push(in.N)
			i.PC++
		case OpDup:
			if err = i.need(1); err != nil {
				return err
			}
			i.Push(i.data[i.sp])
			i.PC++
		case OpCopy:
			// n indexes the stack from the bottom: slot 0 is the earliest
			// surviving pushed value.
			n := int(in.N)
			if n < 0 || n > i.sp {
				return errors.Errorf("copy %d: index out of range [0, %d]", n, i.sp)
			}
			i.Push(i.data[n])
			i.PC++
		case OpSwap:
			if err = i.need(2); err != nil {
				return err
			}
			i.data[i.sp], i.data[i.sp-1] = i.data[i.sp-1], i.data[i.sp]
			i.PC++
		case OpDrop:
			if err = i.need(1); err != nil {
				return err
			}
			i.sp--
			i.PC++
		case OpSlide:
			// drop n values beneath the top, keep the top
			n := int(in.N)
			if n < 0 {
				return errors.Errorf("slide %d: negative count", n)
			}
			if err = i.need(n + 1); err != nil {
				return err
			}
			t := i.Pop()
			i.sp -= n
			i.Push(t)
			i.PC++
		case OpAdd:
			if err = i.need(2); err != nil {
				return err
			}
			rhs := i.Pop()
			i.data[i.sp] += rhs
			i.PC++
		case OpSub:
			if err = i.need(2); err != nil {
				return err
			}
			rhs := i.Pop()
			i.data[i.sp] -= rhs
			i.PC++
		case OpMul:
			if err = i.need(2); err != nil {
				return err
			}
			rhs := i.Pop()
			i.data[i.sp] *= rhs
			i.PC++
		case OpDiv:
			if err = i.need(2); err != nil {
				return err
			}
			rhs := i.Pop()
			if rhs == 0 {
				i.sp++ // leave the operands in place for post-mortem dumps
				return errors.New("division by zero")
			}
			i.data[i.sp] /= rhs
			i.PC++
		case OpMod:
			if err = i.need(2); err != nil {
				return err
			}
			rhs := i.Pop()
			if rhs == 0 {
				i.sp++
				return errors.New("modulo by zero")
			}
			i.data[i.sp] %= rhs
			i.PC++
		case OpStore:
			if err = i.need(2); err != nil {
				return err
			}
			v := i.Pop()
			addr := i.Pop()
			if err = i.heap.Store(addr, v); err != nil {
				return err
			}
			i.PC++
		case OpFetch:
			if err = i.need(1); err != nil {
				return err
			}
			v, err := i.heap.Fetch(i.data[i.sp])
			if err != nil {
				return err
			}
			i.data[i.sp] = v
			i.PC++
		case OpMark:
			// marks are resolved through the label table, at run time they
			// are a no-op
			i.PC++
		case OpCall:
			pc, err := i.resolve(in.L)
			if err != nil {
				return err
			}
			if i.csp+1 >= len(i.calls) {
				return errors.Errorf("call %q: call stack overflow", in.L)
			}
			i.Rpush(Cell(i.PC))
			i.PC = pc
		case OpJump:
			pc, err := i.resolve(in.L)
			if err != nil {
				return err
			}
			i.PC = pc
		case OpJumpZ:
			if err = i.need(1); err != nil {
				return err
			}
			if i.Pop() == 0 {
				pc, err := i.resolve(in.L)
				if err != nil {
					return err
				}
				i.PC = pc
			} else {
				i.PC++
			}
		case OpJumpN:
			if err = i.need(1); err != nil {
				return err
			}
			if i.Pop() < 0 {
				pc, err := i.resolve(in.L)
				if err != nil {
					return err
				}
				i.PC = pc
			} else {
				i.PC++
			}
		case OpReturn:
			if i.csp < 0 {
				return errors.New("ret: call stack underflow")
			}
			i.PC = int(i.Rpop()) + 1
		case OpEnd:
			i.PC++
			i.insCount++
			return nil
		case OpPutc:
			if err = i.need(1); err != nil {
				return err
			}
			if err = i.putc(byte(i.Pop())); err != nil {
				return err
			}
			i.PC++
		case OpPutn:
			if err = i.need(1); err != nil {
				return err
			}
			if err = i.putn(i.Pop()); err != nil {
				return err
			}
			i.PC++
		case OpGetc:
			if err = i.need(1); err != nil {
				return err
			}
			addr := i.Pop()
			v, err := i.getc()
			if err != nil {
				return err
			}
			if err = i.heap.Store(addr, v); err != nil {
				return err
			}
			i.PC++
		case OpGetn:
			if err = i.need(1); err != nil {
				return err
			}
			addr := i.Pop()
			v, err := i.getn()
			if err != nil {
				return err
			}
			if err = i.heap.Store(addr, v); err != nil {
				return err
			}
			i.PC++
		default:
			return errors.Errorf("invalid opcode %d", int(in.Op))
		}
		i.insCount++
	}
	return nil
}
