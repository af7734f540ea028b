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

// Package scanner implements the Lox lexer.
//
// The scanner works in a single pass over the source and never allocates:
// token lexemes are sub-slices of the source buffer, which must therefore
// outlive every token scanned from it. Tokens are produced on demand by Scan;
// once the end of the source is reached, Scan keeps returning Eof tokens.
package scanner

// Diagnostic messages carried by Error tokens.
const (
	msgUnexpectedChar     = "Unexpected character."
	msgUnterminatedString = "Unterminated string."
)

// Scanner tokenizes Lox source code.
type Scanner struct {
	src   []byte
	start int // start of the current token
	cur   int // current position
	line  int
}

// New returns a scanner reading from src. The source ends at len(src) or at
// the first NUL byte, whichever comes first.
func New(src []byte) *Scanner {
	return &Scanner{src: src, line: 1}
}

// ScanAll scans src up to and including the Eof token.
func ScanAll(src []byte) []Token {
	var toks []Token
	s := New(src)
	for {
		t := s.Scan()
		toks = append(toks, t)
		if t.Kind == Eof {
			return toks
		}
	}
}

func (s *Scanner) peek() byte {
	if s.cur >= len(s.src) {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *Scanner) atEnd() bool {
	return s.peek() == 0
}

func (s *Scanner) advance() byte {
	c := s.src[s.cur]
	s.cur++
	return c
}

// match consumes the next byte if it equals c.
func (s *Scanner) match(c byte) bool {
	if s.atEnd() || s.src[s.cur] != c {
		return false
	}
	s.cur++
	return true
}

// Scan returns the next token.
func (s *Scanner) Scan() Token {
	s.skipNoise()
	s.start = s.cur

	if s.atEnd() {
		return s.token(Eof)
	}

	c := s.advance()
	switch {
	case isDigit(c):
		return s.scanNumber()
	case isAlpha(c):
		return s.scanIdentifier()
	}

	switch c {
	case '(':
		return s.token(LeftParen)
	case ')':
		return s.token(RightParen)
	case '{':
		return s.token(LeftBrace)
	case '}':
		return s.token(RightBrace)
	case ',':
		return s.token(Comma)
	case '.':
		return s.token(Dot)
	case '-':
		return s.token(Minus)
	case '+':
		return s.token(Plus)
	case ';':
		return s.token(Semicolon)
	case '?':
		return s.token(QuestionMark)
	case '/':
		return s.token(Slash)
	case '*':
		return s.token(Star)
	case '!':
		return s.either('=', BangEqual, Bang)
	case '=':
		return s.either('=', EqualEqual, Equal)
	case '<':
		return s.either('=', LessEqual, Less)
	case '>':
		return s.either('=', GreaterEqual, Greater)
	case '"':
		return s.scanString()
	}
	return s.errorToken(msgUnexpectedChar)
}

// either returns a token of kind two if the next byte is c, or one otherwise.
func (s *Scanner) either(c byte, two, one Kind) Token {
	if s.match(c) {
		return s.token(two)
	}
	return s.token(one)
}

// skipNoise skips whitespace and line comments.
func (s *Scanner) skipNoise() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.cur++
		case '\n':
			s.line++
			s.cur++
		case '/':
			if s.peekNext() != '/' {
				return
			}
			for s.peek() != '\n' && !s.atEnd() {
				s.cur++
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanString() Token {
	for s.peek() != '"' && !s.atEnd() {
		if s.advance() == '\n' {
			s.line++
		}
	}
	if s.atEnd() {
		return s.errorToken(msgUnterminatedString)
	}
	s.cur++ // closing quote
	return s.token(String)
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.cur++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cur++
		for isDigit(s.peek()) {
			s.cur++
		}
	}
	return s.token(Number)
}

func (s *Scanner) scanIdentifier() Token {
	for c := s.peek(); isAlpha(c) || isDigit(c); c = s.peek() {
		s.cur++
	}
	if k, ok := keywords[string(s.src[s.start:s.cur])]; ok {
		return s.token(k)
	}
	return s.token(Identifier)
}

func (s *Scanner) token(k Kind) Token {
	return Token{
		Kind:   k,
		Lexeme: s.src[s.start:s.cur:s.cur],
		Offset: s.start,
		Line:   s.line,
	}
}

// errorToken returns an Error token whose lexeme is a fresh copy of msg.
func (s *Scanner) errorToken(msg string) Token {
	return Token{
		Kind:   Error,
		Lexeme: []byte(msg),
		Offset: s.start,
		Line:   s.line,
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
