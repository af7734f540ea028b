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

package dynarray_test

import (
	"testing"

	"github.com/db47h/lox/internal/dynarray"
)

func isGrownCapacity(c int) bool {
	if c < dynarray.MinCapacity {
		return false
	}
	for c > dynarray.MinCapacity {
		if c%2 != 0 {
			return false
		}
		c /= 2
	}
	return c == dynarray.MinCapacity
}

func TestArray_Write(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 16, 17, 100, 1025} {
		var a dynarray.Array[int]
		if a.Cap() != 0 || a.Len() != 0 {
			t.Fatalf("zero value not empty: len %d, cap %d", a.Len(), a.Cap())
		}
		for i := 0; i < n; i++ {
			a.Write(i * 3)
			if a.Len() != i+1 {
				t.Fatalf("n=%d: Len() = %d after %d writes", n, a.Len(), i+1)
			}
			if a.Cap() < a.Len() || !isGrownCapacity(a.Cap()) {
				t.Fatalf("n=%d: bad capacity %d for %d elements", n, a.Cap(), a.Len())
			}
		}
		for i := 0; i < n; i++ {
			if v := a.At(i); v != i*3 {
				t.Errorf("n=%d: At(%d) = %d, expected %d", n, i, v, i*3)
			}
		}
	}
}

func TestArray_growth(t *testing.T) {
	var a dynarray.Array[byte]
	caps := []int{}
	for i := 0; i < 65; i++ {
		c := a.Cap()
		a.Write(byte(i))
		if a.Cap() != c {
			caps = append(caps, a.Cap())
		}
	}
	exp := []int{8, 16, 32, 64, 128}
	if len(caps) != len(exp) {
		t.Fatalf("capacity steps %v, expected %v", caps, exp)
	}
	for i := range exp {
		if caps[i] != exp[i] {
			t.Fatalf("capacity steps %v, expected %v", caps, exp)
		}
	}
}

func TestArray_Free(t *testing.T) {
	var a dynarray.Array[float64]
	for i := 0; i < 20; i++ {
		a.Write(float64(i))
	}
	a.Free()
	if a.Len() != 0 || a.Cap() != 0 || len(a.Slice()) != 0 {
		t.Fatalf("Free: len %d, cap %d", a.Len(), a.Cap())
	}
	a.Write(42)
	if a.Len() != 1 || a.At(0) != 42 || a.Cap() != dynarray.MinCapacity {
		t.Fatalf("reuse after Free: len %d, cap %d", a.Len(), a.Cap())
	}
}

func TestArray_At_outOfRange(t *testing.T) {
	var a dynarray.Array[int]
	a.Write(1)
	defer func() {
		if recover() == nil {
			t.Error("At(1) on a 1 element array did not panic")
		}
	}()
	// index 1 is within capacity but past the written elements.
	a.At(1)
}

func TestArray_Slice(t *testing.T) {
	var a dynarray.Array[int]
	a.Write(1)
	a.Write(2)
	s := a.Slice()
	s = append(s, 3)
	a.Write(4)
	if s[2] != 3 || a.At(2) != 4 {
		t.Fatalf("Slice view aliased the array: s=%v, a[2]=%d", s, a.At(2))
	}
}

func BenchmarkArray_Write(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var a dynarray.Array[byte]
		for j := 0; j < 4096; j++ {
			a.Write(byte(j))
		}
	}
}
