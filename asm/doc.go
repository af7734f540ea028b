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

// Package asm provides utility functions to assemble and disassemble Lox
// bytecode chunks.
//
// Supported assembler mnemonics:
//
//	Instructions with a check mark in the "arg" column expect an argument.
//
//	opcode	asm			arg	stack	description
//	------	---			---	-----	-----------------------------------------------
//	0	constant, const		✓	-n	push the argument, added to the constant pool
//	1	add, +				ab-c	pop b, pop a, push a+b
//	2	subtract, sub, -		ab-c	pop b, pop a, push a-b
//	3	multiply, mul, *		ab-c	pop b, pop a, push a*b
//	4	divide, div, /			ab-c	pop b, pop a, push a/b
//	5	negate, neg			a-b	pop a, push -a
//	6	return, ret			a-	pop a, print it and stop
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not)
//
// Literals:
//
// Input is split at white space into tokens. Where an instruction is expected,
// a token that can be converted to a float64 (see strconv.ParseFloat) is
// compiled with an implicit "constant":
//
//	constant 42
//	42		( will compile as "constant 42", just like above )
//
// Each constant instruction adds a new entry to the constant pool, which is
// limited to 256 entries.
//
// Assembler directives:
//
//	.line <n>
//
// sets the source line recorded for the following bytes. By default, the line
// of the assembly source is used.
//
//	.byte <n>
//
// compiles the byte value n as-is. This is primarily used to build malformed
// chunks.
package asm
