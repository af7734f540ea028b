// This file is part of lox - https://github.com/db47h/lox
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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
	"fmt"

	"github.com/db47h/lox/asm"
	"github.com/db47h/lox/chunk"
	"github.com/pkg/errors"
)

// fault returns a RuntimeError for the instruction being executed.
func (i *Instance) fault(err error) *RuntimeError {
	e := &RuntimeError{PC: i.start, Err: err}
	if n := i.chunk.Len(); n > 0 {
		if i.start < n {
			e.Line = i.chunk.Line(i.start)
		} else {
			e.Line = i.chunk.Line(n - 1)
		}
	}
	log.Debugf("%v", e)
	return e
}

func (i *Instance) push(v chunk.Value) error {
	if i.unchecked {
		i.stack.UncheckedPush(v)
		return nil
	}
	return i.stack.Push(v)
}

func (i *Instance) pop() (chunk.Value, error) {
	if i.unchecked {
		return i.stack.UncheckedPop(), nil
	}
	return i.stack.Pop()
}

// binaryOp pops the right operand, then the left one, and pushes fn(a, b).
func (i *Instance) binaryOp(fn func(a, b chunk.Value) chunk.Value) error {
	b, err := i.pop()
	if err != nil {
		return err
	}
	a, err := i.pop()
	if err != nil {
		return err
	}
	return i.push(fn(a, b))
}

func add(a, b chunk.Value) chunk.Value { return a + b }
func sub(a, b chunk.Value) chunk.Value { return a - b }
func mul(a, b chunk.Value) chunk.Value { return a * b }
func div(a, b chunk.Value) chunk.Value { return a / b }

// readConstant reads the operand of OP_CONSTANT at PC and returns the
// corresponding constant.
func (i *Instance) readConstant(code []byte) (chunk.Value, error) {
	if !i.unchecked {
		if i.PC >= len(code) {
			return 0, ErrMissingOperand
		}
		if int(code[i.PC]) >= i.chunk.NumConstants() {
			return 0, errors.Wrapf(ErrBadConstant, "index %d", code[i.PC])
		}
	}
	idx := int(code[i.PC])
	i.PC++
	return i.chunk.Constant(idx), nil
}

func (i *Instance) traceStep() error {
	if err := i.DumpStack(i.trace); err != nil {
		return err
	}
	_, err := asm.Disassemble(i.chunk, i.PC, i.trace)
	return err
}

// Run executes the given chunk from its first byte until OP_RETURN, which
// writes the value on top of the stack to the instance output and stops
// execution. The returned value is the one written by OP_RETURN.
//
// The stack and PC are reset before execution starts. If an error occurs
// during execution, it will be a *RuntimeError and the PC will point to the
// instruction following the one that triggered the error. The stack is left
// as is for inspection.
//
// Run returns ErrBusy if called while the instance is running.
func (i *Instance) Run(c *chunk.Chunk) (v chunk.Value, err error) {
	if i.Running() {
		return 0, ErrBusy
	}
	if c == nil {
		return 0, errors.New("nil chunk")
	}
	i.Reset()
	i.chunk = c
	log.Debugf("run: %d bytes, %d constants, unchecked=%t", c.Len(), c.NumConstants(), i.unchecked)
	defer func() { i.chunk = nil }()
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				v = 0
				err = i.fault(errors.Wrapf(e, "recovered error @pc=%d/%d, stack %d/%d", i.PC, c.Len(), i.stack.Len(), StackMax))
			default:
				panic(e)
			}
		}
		log.Debugf("run: done after %d instructions", i.insCount)
	}()

	code := c.Code()
	for {
		if !i.unchecked && i.PC >= len(code) {
			i.start = i.PC
			return 0, i.fault(ErrNoReturn)
		}
		i.start = i.PC
		if i.trace != nil {
			if err = i.traceStep(); err != nil {
				return 0, errors.Wrap(err, "trace")
			}
		}
		op := chunk.OpCode(code[i.PC])
		i.PC++
		i.insCount++

		switch op {
		case chunk.OpConstant:
			if v, err = i.readConstant(code); err == nil {
				err = i.push(v)
			}
		case chunk.OpAdd:
			err = i.binaryOp(add)
		case chunk.OpSubtract:
			err = i.binaryOp(sub)
		case chunk.OpMultiply:
			err = i.binaryOp(mul)
		case chunk.OpDivide:
			err = i.binaryOp(div)
		case chunk.OpNegate:
			if v, err = i.pop(); err == nil {
				err = i.push(-v)
			}
		case chunk.OpReturn:
			if v, err = i.pop(); err != nil {
				break
			}
			if _, err = fmt.Fprintln(i.output, v); err != nil {
				return v, errors.Wrap(err, "write failed")
			}
			return v, nil
		default:
			err = ErrUnknownOpcode(op)
		}
		if err != nil {
			return 0, i.fault(err)
		}
	}
}
