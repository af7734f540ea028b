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

package scanner_test

import (
	"testing"

	"github.com/db47h/lox/scanner"
)

type K = scanner.Kind

func kinds(toks []scanner.Token) []K {
	ks := make([]K, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func sameKinds(a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScan_kinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []K
	}{
		{"", []K{scanner.Eof}},
		{"(){},.-+;?/*", []K{
			scanner.LeftParen, scanner.RightParen, scanner.LeftBrace, scanner.RightBrace,
			scanner.Comma, scanner.Dot, scanner.Minus, scanner.Plus, scanner.Semicolon,
			scanner.QuestionMark, scanner.Slash, scanner.Star, scanner.Eof}},
		{"!= == <= >=", []K{scanner.BangEqual, scanner.EqualEqual, scanner.LessEqual, scanner.GreaterEqual, scanner.Eof}},
		{"! = < >", []K{scanner.Bang, scanner.Equal, scanner.Less, scanner.Greater, scanner.Eof}},
		{"!!===", []K{scanner.Bang, scanner.BangEqual, scanner.EqualEqual, scanner.Eof}},
		{"for", []K{scanner.For, scanner.Eof}},
		{"forest", []K{scanner.Identifier, scanner.Eof}},
		{"fork", []K{scanner.Identifier, scanner.Eof}},
		{"f fo fun funk false falsey", []K{
			scanner.Identifier, scanner.Identifier, scanner.Fun, scanner.Identifier,
			scanner.False, scanner.Identifier, scanner.Eof}},
		{"t th this thiss true tru", []K{
			scanner.Identifier, scanner.Identifier, scanner.This, scanner.Identifier,
			scanner.True, scanner.Identifier, scanner.Eof}},
		{"and class else if nil or print return super var while", []K{
			scanner.And, scanner.Class, scanner.Else, scanner.If, scanner.Nil, scanner.Or,
			scanner.Print, scanner.Return, scanner.Super, scanner.Var, scanner.While, scanner.Eof}},
		{"_x x_1 And", []K{scanner.Identifier, scanner.Identifier, scanner.Identifier, scanner.Eof}},
		{"1 12.5 3. .5", []K{
			scanner.Number, scanner.Number, scanner.Number, scanner.Dot,
			scanner.Dot, scanner.Number, scanner.Eof}},
		{`"abc" "a\nb"`, []K{scanner.String, scanner.String, scanner.Eof}},
		{"a // comment ( \n b", []K{scanner.Identifier, scanner.Identifier, scanner.Eof}},
		{"a / b", []K{scanner.Identifier, scanner.Slash, scanner.Identifier, scanner.Eof}},
		{"// only a comment", []K{scanner.Eof}},
		{"@", []K{scanner.Error, scanner.Eof}},
		{"a\x00b", []K{scanner.Identifier, scanner.Eof}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(scanner.ScanAll([]byte(tt.input)))
			if !sameKinds(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScan_lexemes(t *testing.T) {
	src := []byte(`var x = 12.5 + "hi";`)
	exp := []string{"var", "x", "=", "12.5", "+", `"hi"`, ";", ""}
	toks := scanner.ScanAll(src)
	if len(toks) != len(exp) {
		t.Fatalf("expected %d tokens, got %d: %v", len(exp), len(toks), toks)
	}
	for i, tok := range toks {
		if string(tok.Lexeme) != exp[i] {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp[i], tok.Lexeme)
		}
		if tok.Kind != scanner.Eof && string(src[tok.Offset:tok.Offset+len(tok.Lexeme)]) != exp[i] {
			t.Errorf("token %d: bad offset %d", i, tok.Offset)
		}
	}
}

func TestScan_zeroCopy(t *testing.T) {
	src := []byte("abc def")
	tok := scanner.New(src).Scan()
	if &tok.Lexeme[0] != &src[0] {
		t.Fatal("lexeme is not a view into the source")
	}
	if cap(tok.Lexeme) != len(tok.Lexeme) {
		t.Fatalf("lexeme capacity %d exposes the rest of the source", cap(tok.Lexeme))
	}
}

func TestScan_lines(t *testing.T) {
	src := "a\nb // c\n\n\"x\ny\" d\r\n\te"
	tests := []struct {
		kind K
		line int
	}{
		{scanner.Identifier, 1},
		{scanner.Identifier, 2},
		{scanner.String, 5}, // the line of a multi-line string is its last line
		{scanner.Identifier, 5},
		{scanner.Identifier, 6},
		{scanner.Eof, 6},
	}
	s := scanner.New([]byte(src))
	for i, tt := range tests {
		tok := s.Scan()
		if tok.Kind != tt.kind || tok.Line != tt.line {
			t.Errorf("token %d: expected %v@%d, got %v@%d", i, tt.kind, tt.line, tok.Kind, tok.Line)
		}
	}

	for _, tok := range scanner.ScanAll([]byte("!= == <= >=")) {
		if tok.Line != 1 {
			t.Errorf("%v: expected line 1", tok)
		}
	}
}

func TestScan_errors(t *testing.T) {
	s := scanner.New([]byte(`"abc`))
	tok := s.Scan()
	if tok.Kind != scanner.Error || string(tok.Lexeme) != "Unterminated string." {
		t.Fatalf("expected unterminated string error, got %v", tok)
	}
	for i := 0; i < 3; i++ {
		if tok = s.Scan(); tok.Kind != scanner.Eof {
			t.Fatalf("poll %d after error: expected Eof, got %v", i, tok)
		}
	}

	toks := scanner.ScanAll([]byte("a # b"))
	if toks[1].Kind != scanner.Error || string(toks[1].Lexeme) != "Unexpected character." {
		t.Fatalf("expected unexpected character error, got %v", toks[1])
	}
	if toks[1].Offset != 2 || toks[2].Kind != scanner.Identifier {
		t.Errorf("scanning did not resume after error: %v", toks)
	}

	// error lexemes are not shared between tokens
	toks = scanner.ScanAll([]byte("# #"))
	toks[0].Lexeme[0] = 'X'
	if string(toks[1].Lexeme) != "Unexpected character." {
		t.Errorf("error message altered: %q", toks[1].Lexeme)
	}
	if tok = scanner.New([]byte("#")).Scan(); string(tok.Lexeme) != "Unexpected character." {
		t.Errorf("error message altered: %q", tok.Lexeme)
	}
}

func TestKind_String(t *testing.T) {
	if s := scanner.BangEqual.String(); s != "BangEqual" {
		t.Errorf("got %s", s)
	}
	if s := scanner.Eof.String(); s != "Eof" {
		t.Errorf("got %s", s)
	}
	if s := scanner.Kind(200).String(); s != "Kind(200)" {
		t.Errorf("got %s", s)
	}
}

func FuzzScanner(f *testing.F) {
	seeds := []string{
		"print 1 + 2;",
		"var a = \"str\";",
		"// comment\nfun f() { return 1.5; }",
		"\"unterminated",
		"1.",
		"@#$",
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		toks := scanner.ScanAll([]byte(src))
		if toks[len(toks)-1].Kind != scanner.Eof {
			t.Fatal("last token is not Eof")
		}
		line := 1
		for _, tok := range toks {
			if tok.Line < line {
				t.Fatalf("line went backwards: %v", tok)
			}
			line = tok.Line
		}
	})
}

func BenchmarkScan(b *testing.B) {
	src := []byte("var answer = (1.2 + 3.4) / 5.6; // compute\nprint -answer;\nwhile (true) { forest = fork; }\n")
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := scanner.New(src)
		for s.Scan().Kind != scanner.Eof {
		}
	}
}
