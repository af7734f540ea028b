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
	"github.com/db47h/lox/compiler"
	"github.com/pkg/errors"
)

// Runtime error causes.
var (
	ErrBusy           = errors.New("vm is already running")
	ErrNoReturn       = errors.New("reached end of code without return")
	ErrMissingOperand = errors.New("missing operand")
	ErrBadConstant    = errors.New("constant index out of range")
)

// ErrUnknownOpcode is the cause of a RuntimeError triggered by a byte that
// does not decode to any instruction.
type ErrUnknownOpcode byte

func (e ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode %d", byte(e))
}

// RuntimeError is returned by Run when the execution of a chunk fails.
type RuntimeError struct {
	PC   int // offset of the faulting instruction
	Line int // source line of the faulting instruction, 0 if unknown
	Err  error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] runtime error @pc=%d: %v", e.Line, e.PC, e.Err)
}

// Cause returns the underlying cause of the error.
func (e *RuntimeError) Cause() error { return e.Err }

// Unwrap returns the underlying cause of the error.
func (e *RuntimeError) Unwrap() error { return e.Err }

// Result classifies the outcome of interpreting a program.
type Result int

// Interpretation results.
const (
	ResultOK Result = iota
	ResultCompileError
	ResultRuntimeError
)

var results = [...]string{
	ResultOK:           "ok",
	ResultCompileError: "compile error",
	ResultRuntimeError: "runtime error",
}

func (r Result) String() string {
	if r >= 0 && int(r) < len(results) {
		return results[r]
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// ExitCode returns the process exit status for r: 0 for ResultOK, 65 for
// ResultCompileError and 70 for ResultRuntimeError.
func (r Result) ExitCode() int {
	switch r {
	case ResultOK:
		return 0
	case ResultCompileError:
		return 65
	default:
		return 70
	}
}

// ResultOf classifies err as returned by Interpret, InterpretSource or
// asm.Assemble. Any error that is not a compiler.ErrCompile or asm.ErrAsm is a
// runtime error.
func ResultOf(err error) Result {
	if err == nil {
		return ResultOK
	}
	var ce compiler.ErrCompile
	var ae asm.ErrAsm
	if errors.As(err, &ce) || errors.As(err, &ae) {
		return ResultCompileError
	}
	return ResultRuntimeError
}
