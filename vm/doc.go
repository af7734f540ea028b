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

// Package vm implements the Lox bytecode virtual machine.
//
// An Instance executes a chunk.Chunk with a fetch, decode, execute loop over
// a fixed size value stack (see StackMax). Execution starts at the first byte
// of the chunk and stops at OP_RETURN, which writes the value on top of the
// stack to the instance output.
//
// By default, every stack operation and operand fetch is checked and faults
// are reported as a *RuntimeError. With the Unchecked option, these checks are
// skipped and Go runtime panics (out of range indexing) are recovered and
// reported the same way, so both modes classify the same malformed chunk as a
// runtime error.
//
// Division follows IEEE 754 rules: dividing by zero yields an infinity or NaN
// and is not an error.
//
// An Instance is not safe for concurrent use. It can be reused after Run
// returns, whatever the outcome.
package vm
