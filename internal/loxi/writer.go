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

// Package loxi - or lox-internal, with I/O helpers shared by the disassembler,
// the VM tracer and the compiler listing.
package loxi

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and tracks the first write error. Once an error
// has occurred, all further writes are no-ops that return that error, so that
// formatting code can check for failure once at the end.
type Writer struct {
	w   io.Writer
	Err error
}

// NewWriter returns w if it is already a *Writer, or wraps it into a new one.
// A nil w discards all output.
func NewWriter(w io.Writer) *Writer {
	switch ww := w.(type) {
	case *Writer:
		return ww
	case nil:
		return &Writer{w: io.Discard}
	default:
		return &Writer{w: w}
	}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s.
func (w *Writer) WriteString(s string) (n int, err error) {
	return io.WriteString(w.writerOnly(), s)
}

// Printf formats according to format and writes the result.
func (w *Writer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(w.writerOnly(), format, args...)
}

// writerOnly hides the WriteString method so that io.WriteString does not
// recurse.
func (w *Writer) writerOnly() io.Writer {
	return struct{ io.Writer }{w}
}
