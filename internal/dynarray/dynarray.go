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

// Package dynarray implements the append-only growable array used as backing
// storage by chunks.
package dynarray

// MinCapacity is the capacity allocated on the first Write to an empty Array.
const MinCapacity = 8

// GrowCapacity returns the capacity an Array grows to when it is full.
func GrowCapacity(capacity int) int {
	if capacity < MinCapacity {
		return MinCapacity
	}
	return capacity * 2
}

// Array is an append-only array with amortized doubling growth. The zero value
// is an empty array ready to use.
//
// Storage is only released by an explicit call to Free.
type Array[T any] struct {
	data  []T // len(data) is the capacity
	count int
}

// Write appends v to the array.
func (a *Array[T]) Write(v T) {
	if a.count == len(a.data) {
		a.grow()
	}
	a.data[a.count] = v
	a.count++
}

func (a *Array[T]) grow() {
	data := make([]T, GrowCapacity(len(a.data)))
	copy(data, a.data[:a.count])
	a.data = data
}

// Free releases the backing storage and resets the array to the empty state.
func (a *Array[T]) Free() {
	a.data = nil
	a.count = 0
}

// At returns the element at index i. It panics if i is out of range.
func (a *Array[T]) At(i int) T {
	return a.data[:a.count][i]
}

// Len returns the number of elements written.
func (a *Array[T]) Len() int { return a.count }

// Cap returns the number of elements the array can hold before growing.
func (a *Array[T]) Cap() int { return len(a.data) }

// Slice returns a view of the written elements. Appending to the returned
// slice never modifies the array.
func (a *Array[T]) Slice() []T {
	return a.data[:a.count:a.count]
}
