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

package asm

import (
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/lox/chunk"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type parser struct {
	c      *chunk.Chunk
	s      scanner.Scanner
	line   int // line set by the last .line directive, 0 if none
	cstPos scanner.Position
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{c: chunk.New()}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) >= maxErrors {
		return
	}
	p.errs = append(p.errs, struct {
		Pos scanner.Position
		Msg string
	}{pos, msg})
}

// lineAt returns the chunk line for code generated from the token at pos.
func (p *parser) lineAt(pos scanner.Position) int {
	if p.line > 0 {
		return p.line
	}
	return pos.Line
}

func (p *parser) constant(pos scanner.Position, v float64) {
	if err := p.c.WriteConstant(chunk.Value(v), p.lineAt(pos)); err != nil {
		p.error(pos, err.Error())
	}
}

// Parse does the parsing and code generation.
func (p *parser) Parse(name string, r io.Reader) error {
	// state:
	// 0: accept anything
	// 1: need a number (constant operand)
	// 2: need a positive integer (.line argument)
	// 3: need an integer in the 0-255 range (.byte argument)
	var state int

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		pos := p.s.Position
		s := p.s.TokenText()

		if tok != scanner.Ident {
			p.error(pos, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error(pos, "Unterminated comment")
				break
			}
			continue
		}

		switch state {
		case 1:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				p.error(pos, "Expected number after constant, got "+s)
			} else {
				p.constant(p.cstPos, v)
			}
			state = 0
			continue
		case 2:
			n, err := strconv.ParseInt(s, 0, 32)
			if err != nil || n <= 0 {
				p.error(pos, "Invalid line number "+s)
			} else {
				p.line = int(n)
			}
			state = 0
			continue
		case 3:
			n, err := strconv.ParseUint(s, 0, 8)
			if err != nil {
				p.error(pos, "Invalid byte value "+s)
			} else {
				p.c.Write(byte(n), p.lineAt(pos))
			}
			state = 0
			continue
		}

		if op, ok := opcodeIndex[s]; ok {
			if op == chunk.OpConstant {
				p.cstPos = pos
				state = 1
				continue
			}
			p.c.WriteOp(op, p.lineAt(pos))
			continue
		}
		// implicit constant
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			p.constant(pos, v)
			continue
		}
		switch s {
		case ".line":
			state = 2
		case ".byte":
			state = 3
		default:
			if s[0] == '.' {
				p.error(pos, "Unknown dot directive: "+s)
			} else {
				p.error(pos, "Unknown instruction: "+s)
			}
		}
	}
	if state != 0 {
		p.error(p.s.Pos(), "Unexpected end of input, missing argument")
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
