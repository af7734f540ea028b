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

// The lox command line tool runs Lox programs on the bytecode virtual machine
// of package github.com/db47h/lox/vm.
//
// Usage:
//
//	lox [flags] [script]
//
// With no script argument, lox starts an interactive session that reads one
// line at a time until end of input or an empty line. A "> " prompt is printed
// only when standard input is a terminal.
//
// Flags:
//
//	-asm
//		  treat input as bytecode assembly and execute it
//	-config filename
//		  load configuration from filename (default "lox.toml" if present)
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  with -asm, print the disassembled chunk before running it
//	-log filename
//		  write log to filename instead of stderr
//	-trace
//		  trace execution
//	-unchecked
//		  disable runtime stack checks
//	-v level
//		  log verbosity, repeat or give a level to increase
//
// -asm: Lox source is currently only scanned and its tokens listed. Use this
// flag to feed the VM with assembly instead (see package
// github.com/db47h/lox/asm for the syntax).
//
// -config: a TOML file with the following keys, all optional:
//
//	trace = true
//	unchecked = false
//	verbosity = 1
//	log-file = "lox.log"
//
// Flags given on the command line override the configuration file.
//
// Exit status is 0 on success, 64 on usage errors, 65 on compile errors, 66
// if the script cannot be read, 70 on runtime errors and 78 if the
// configuration file cannot be loaded.
package main
