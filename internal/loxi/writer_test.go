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

package loxi_test

import (
	"bytes"
	"testing"

	"github.com/db47h/lox/internal/loxi"
	"github.com/pkg/errors"
)

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestWriter_sticky(t *testing.T) {
	fw := &failWriter{n: 1}
	w := loxi.NewWriter(fw)
	w.WriteString("ok")
	if w.Err != nil {
		t.Fatalf("unexpected error %v", w.Err)
	}
	w.Printf("%d", 42)
	if w.Err == nil {
		t.Fatal("expected an error")
	}
	if errors.Cause(w.Err).Error() != "disk full" {
		t.Errorf("bad cause: %v", errors.Cause(w.Err))
	}
	if n, err := w.Write([]byte("x")); n != 0 || err != w.Err {
		t.Errorf("write after failure: n=%d, err=%v", n, err)
	}
	if fw.n != 0 {
		t.Errorf("underlying writer called after failure")
	}
}

func TestNewWriter(t *testing.T) {
	var b bytes.Buffer
	w := loxi.NewWriter(&b)
	if loxi.NewWriter(w) != w {
		t.Error("NewWriter re-wrapped a *Writer")
	}
	w.Printf("%04d|%s", 7, "x")
	if b.String() != "0007|x" {
		t.Errorf("got %q", b.String())
	}
	d := loxi.NewWriter(nil)
	d.WriteString("discarded")
	if d.Err != nil {
		t.Errorf("nil writer: %v", d.Err)
	}
}
