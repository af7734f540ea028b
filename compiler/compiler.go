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

// Package compiler implements the front-end stage of the Lox pipeline.
//
// The stage does not emit bytecode yet: Compile drains the scanner, writes a
// listing of the token stream and reports lexical errors. A bytecode-emitting
// compiler will consume the same token stream and produce a chunk.Chunk.
package compiler

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/lox/internal/loxi"
	"github.com/db47h/lox/scanner"
)

// Diagnostic is a single compile error.
type Diagnostic struct {
	Line int
	Msg  string
}

func (d Diagnostic) String() string {
	return "[line " + strconv.Itoa(d.Line) + "] Error: " + d.Msg
}

// ErrCompile is the error returned by Compile when the source contains
// lexical errors. It lists every error found, in source order.
type ErrCompile []Diagnostic

func (e ErrCompile) Error() string {
	var b strings.Builder
	for i, d := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	return b.String()
}

// Compile scans src and writes a listing of its tokens to w, one token per
// line: the source line (or a '|' when unchanged from the previous token), the
// token kind number and the lexeme.
//
// Scanning continues past lexical errors so that all of them are reported. If
// any were found, the returned error is an ErrCompile. A write error on w is
// returned as is.
func Compile(w io.Writer, src []byte) error {
	ew := loxi.NewWriter(w)
	s := scanner.New(src)
	line := -1
	var errs ErrCompile
	for {
		tok := s.Scan()
		if tok.Line != line {
			ew.Printf("%4d ", tok.Line)
			line = tok.Line
		} else {
			ew.WriteString("   | ")
		}
		ew.Printf("%2d '%s'\n", int(tok.Kind), tok.Lexeme)

		switch tok.Kind {
		case scanner.Error:
			errs = append(errs, Diagnostic{Line: tok.Line, Msg: string(tok.Lexeme)})
		case scanner.Eof:
			if ew.Err != nil {
				return ew.Err
			}
			if len(errs) > 0 {
				return errs
			}
			return nil
		}
	}
}
