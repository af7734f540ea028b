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

// Package chunk implements the in-memory bytecode container executed by the
// Lox VM: an instruction stream, its constant pool and a table mapping each
// byte of the instruction stream to a source line.
package chunk

import (
	"github.com/db47h/lox/internal/dynarray"
	"github.com/pkg/errors"
)

// MaxConstants is the maximum number of constants in a chunk. Constants are
// referenced by a single byte operand.
const MaxConstants = 256

// ErrTooManyConstants is returned by WriteConstant when the constant pool is
// full.
var ErrTooManyConstants = errors.New("too many constants in one chunk")

// Chunk is a unit of bytecode. The zero value is an empty chunk ready to use.
//
// Every byte written to the code stream has a matching entry in the line
// table: Len() is always the number of code bytes and line entries.
type Chunk struct {
	code      dynarray.Array[byte]
	constants dynarray.Array[Value]
	lines     dynarray.Array[int]
}

// New returns a new, empty chunk.
func New() *Chunk {
	return new(Chunk)
}

// Write appends a byte (opcode or operand) to the code stream and records the
// source line it was generated from.
func (c *Chunk) Write(b byte, line int) {
	c.code.Write(b)
	c.lines.Write(line)
}

// WriteOp appends an opcode to the code stream.
func (c *Chunk) WriteOp(op OpCode, line int) {
	c.Write(byte(op), line)
}

// AddConstant adds v to the constant pool and returns its index. The caller
// must not add more than MaxConstants constants if the index is to be used as
// an OpConstant operand.
func (c *Chunk) AddConstant(v Value) int {
	c.constants.Write(v)
	return c.constants.Len() - 1
}

// WriteConstant adds v to the constant pool and emits an OpConstant
// instruction loading it.
func (c *Chunk) WriteConstant(v Value, line int) error {
	if c.constants.Len() >= MaxConstants {
		return ErrTooManyConstants
	}
	idx := c.AddConstant(v)
	c.WriteOp(OpConstant, line)
	c.Write(byte(idx), line)
	return nil
}

// Free releases the code, constants and line buffers.
func (c *Chunk) Free() {
	c.code.Free()
	c.constants.Free()
	c.lines.Free()
}

// Len returns the size of the code stream in bytes.
func (c *Chunk) Len() int { return c.code.Len() }

// Code returns a read-only view of the code stream.
func (c *Chunk) Code() []byte { return c.code.Slice() }

// ByteAt returns the code byte at offset.
func (c *Chunk) ByteAt(offset int) byte { return c.code.At(offset) }

// Line returns the source line of the code byte at offset.
func (c *Chunk) Line(offset int) int { return c.lines.At(offset) }

// Lines returns a read-only view of the line table.
func (c *Chunk) Lines() []int { return c.lines.Slice() }

// Constant returns the constant at index idx.
func (c *Chunk) Constant(idx int) Value { return c.constants.At(idx) }

// NumConstants returns the size of the constant pool.
func (c *Chunk) NumConstants() int { return c.constants.Len() }
