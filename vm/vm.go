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
	"io"
	"os"

	"github.com/db47h/lox/chunk"
	"github.com/db47h/lox/compiler"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("lox.vm")

// Instance represents a Lox VM instance.
type Instance struct {
	PC        int // Program Counter (aka. Instruction Pointer)
	stack     Stack[chunk.Value]
	chunk     *chunk.Chunk
	start     int // offset of the instruction being executed
	insCount  int64
	output    io.Writer
	trace     io.Writer
	unchecked bool
}

// Option interface
type Option func(*Instance) error

// Output sets the io.Writer where OP_RETURN writes its result. The default is
// os.Stdout.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = w
		return nil
	}
}

// Trace enables execution tracing: before each instruction, the stack contents
// and the disassembled instruction are written to w. A nil writer disables
// tracing, which is the default.
func Trace(w io.Writer) Option {
	return func(i *Instance) error {
		i.trace = w
		return nil
	}
}

// Unchecked disables the explicit stack and bounds checks in Run. Faults are
// then caught as Go runtime panics, recovered and reported as a RuntimeError.
// The default is false.
func Unchecked(unchecked bool) Option {
	return func(i *Instance) error { i.unchecked = unchecked; return nil }
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

// New creates a new Lox Virtual Machine instance.
//
// Options will be set by calling SetOptions.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{output: os.Stdout}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Reset clears the stack, the PC and the instruction count.
func (i *Instance) Reset() {
	i.stack.Reset()
	i.PC = 0
	i.start = 0
	i.insCount = 0
}

// Running reports whether the instance is currently executing a chunk.
func (i *Instance) Running() bool {
	return i.chunk != nil
}

// Data returns a copy of the stack contents, from bottom to top.
func (i *Instance) Data() []chunk.Value {
	return i.stack.Values()
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Interpret runs the given chunk. The returned error can be classified with
// ResultOf.
func (i *Instance) Interpret(c *chunk.Chunk) error {
	_, err := i.Run(c)
	return err
}

// InterpretSource runs the front-end on the given source code, writing its
// token listing to the instance output. The returned error can be classified
// with ResultOf.
func (i *Instance) InterpretSource(src []byte) error {
	if i.Running() {
		return ErrBusy
	}
	return compiler.Compile(i.output, src)
}
