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

import "github.com/pkg/errors"

// StackMax is the capacity of the execution stack.
const StackMax = 256

// Stack errors.
var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
)

// Stack is a fixed capacity LIFO stack of StackMax values.
//
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	data [StackMax]T
	top  int // index of the next free slot
}

// Push pushes v on top of the stack. It returns ErrStackOverflow if the stack
// is full.
func (s *Stack[T]) Push(v T) error {
	if s.top >= len(s.data) {
		return ErrStackOverflow
	}
	s.data[s.top] = v
	s.top++
	return nil
}

// Pop removes the value on top of the stack and returns it. It returns
// ErrStackUnderflow if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.top <= 0 {
		var zero T
		return zero, ErrStackUnderflow
	}
	s.top--
	return s.data[s.top], nil
}

// UncheckedPush pushes v without checking for overflow. Pushing on a full
// stack panics with an index out of range error.
func (s *Stack[T]) UncheckedPush(v T) {
	s.data[s.top] = v
	s.top++
}

// UncheckedPop pops the value on top of the stack without checking for
// underflow. Popping an empty stack panics with an index out of range error.
func (s *Stack[T]) UncheckedPop() T {
	v := s.data[s.top-1]
	s.top--
	return v
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return s.top }

// Values returns a copy of the stack contents, from bottom to top.
func (s *Stack[T]) Values() []T {
	return append([]T(nil), s.data[:s.top]...)
}

// Reset empties the stack.
func (s *Stack[T]) Reset() { s.top = 0 }
