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

package chunk

// OpCode is a one byte instruction tag.
type OpCode byte

// Lox VM opcodes.
const (
	OpConstant OpCode = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNegate
	OpReturn
)

var opcodes = [...]string{
	"OP_CONSTANT",
	"OP_ADD",
	"OP_SUBTRACT",
	"OP_MULTIPLY",
	"OP_DIVIDE",
	"OP_NEGATE",
	"OP_RETURN",
}

// Valid reports whether op is a known opcode.
func (op OpCode) Valid() bool {
	return int(op) < len(opcodes)
}

// Size returns the encoded size in bytes of the instruction, including its
// operands, or 1 for unknown opcodes.
func (op OpCode) Size() int {
	if op == OpConstant {
		return 2
	}
	return 1
}

func (op OpCode) String() string {
	if op.Valid() {
		return opcodes[op]
	}
	return "OP_UNKNOWN"
}
