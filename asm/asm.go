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

package asm

import (
	"io"
	"strings"
	"text/scanner"

	"github.com/db47h/lox/chunk"
	"github.com/db47h/lox/internal/loxi"
	"github.com/pkg/errors"
)

var opcodes = [...][]string{
	chunk.OpConstant: {"constant", "const"},
	chunk.OpAdd:      {"add", "+"},
	chunk.OpSubtract: {"subtract", "sub", "-"},
	chunk.OpMultiply: {"multiply", "mul", "*"},
	chunk.OpDivide:   {"divide", "div", "/"},
	chunk.OpNegate:   {"negate", "neg"},
	chunk.OpReturn:   {"return", "ret"},
}

var opcodeIndex = make(map[string]chunk.OpCode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = chunk.OpCode(op)
		}
	}
}

// maxErrors is the maximum number of errors reported by Assemble.
const maxErrors = 10

// ErrAsm is the error type returned by Assemble. It lists the position and
// message of each error found, up to 10 entries.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting chunk and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (*chunk.Chunk, error) {
	p := newParser()
	if err := p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.c, nil
}

// Disassemble writes a disassembly of the instruction at the given offset in
// c to the specified io.Writer and returns the offset of the next instruction
// and any write error. An offset outside the chunk's code is an error.
//
// The source line is printed only when it differs from the line of the
// previous byte, a '|' is printed otherwise.
func Disassemble(c *chunk.Chunk, offset int, w io.Writer) (next int, err error) {
	if offset < 0 || offset >= c.Len() {
		return offset, errors.Errorf("offset %d out of range", offset)
	}
	ew := loxi.NewWriter(w)

	ew.Printf("%04d ", offset)
	if offset > 0 && c.Line(offset) == c.Line(offset-1) {
		ew.WriteString("   | ")
	} else {
		ew.Printf("%4d ", c.Line(offset))
	}

	b := c.ByteAt(offset)
	op := chunk.OpCode(b)
	switch {
	case op == chunk.OpConstant:
		if offset+1 >= c.Len() {
			ew.Printf("%-16s ???\n", op)
			return offset + 1, ew.Err
		}
		idx := int(c.ByteAt(offset + 1))
		v := "???"
		if idx < c.NumConstants() {
			v = c.Constant(idx).String()
		}
		ew.Printf("%-16s %4d '%s'\n", op, idx, v)
		return offset + 2, ew.Err
	case op.Valid():
		ew.WriteString(op.String())
		ew.WriteString("\n")
	default:
		ew.Printf("Unknown opcode %d\n", b)
	}
	return offset + 1, ew.Err
}

// DisassembleAll writes a header with the given name followed by the
// disassembly of every instruction in c to the specified io.Writer. It will
// return any write error.
func DisassembleAll(c *chunk.Chunk, name string, w io.Writer) error {
	if c == nil {
		return errors.New("nil chunk")
	}
	ew := loxi.NewWriter(w)
	ew.Printf("== %s ==\n", name)
	for offset := 0; offset < c.Len() && ew.Err == nil; {
		offset, _ = Disassemble(c, offset, ew)
	}
	return ew.Err
}
