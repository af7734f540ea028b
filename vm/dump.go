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

import (
	"io"

	"github.com/db47h/lox/internal/loxi"
)

// DumpStack writes the stack contents to w, from bottom to top, each value
// enclosed in square brackets, on a single line indented by ten spaces.
func (i *Instance) DumpStack(w io.Writer) error {
	ew := loxi.NewWriter(w)
	ew.WriteString("          ")
	for _, v := range i.stack.Values() {
		ew.WriteString("[")
		ew.WriteString(v.String())
		ew.WriteString("]")
	}
	ew.WriteString("\n")
	return ew.Err
}
