// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/wdamron/algw/ast"
)

// Lexer splits source text into tokens. Lines and columns are 1-based; columns count runes.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
	}
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) atEOF() bool { return l.position >= len(l.input) }

// NextToken returns the next token. At the end of input, an EOF token is returned repeatedly.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	pos := ast.Pos{Line: l.line, Col: l.column}
	if l.atEOF() {
		return Token{Type: EOF, Pos: pos}
	}

	switch ch := l.ch; {
	case ch == '(':
		l.readChar()
		return Token{Type: LPAREN, Lexeme: "(", Pos: pos}
	case ch == ')':
		l.readChar()
		return Token{Type: RPAREN, Lexeme: ")", Pos: pos}
	case ch == '\\' || ch == 'λ':
		l.readChar()
		return Token{Type: BACKSLASH, Lexeme: string(ch), Pos: pos}
	case ch == '=':
		l.readChar()
		return Token{Type: ASSIGN, Lexeme: "=", Pos: pos}
	case ch == '.':
		l.readChar()
		return Token{Type: DOT, Lexeme: ".", Pos: pos}
	case ch == '∀':
		l.readChar()
		return Token{Type: FORALL, Lexeme: "∀", Pos: pos}
	case ch == '-' && l.peekChar() == '>':
		l.readChar()
		l.readChar()
		return Token{Type: ARROW, Lexeme: "->", Pos: pos}
	case isDigit(ch):
		return Token{Type: INT, Lexeme: l.readWhile(isDigit), Pos: pos}
	case isLetter(ch):
		ident := l.readWhile(isIdentChar)
		if kw, ok := keywords[ident]; ok {
			return Token{Type: kw, Lexeme: ident, Pos: pos}
		}
		return Token{Type: IDENT, Lexeme: ident, Pos: pos}
	}

	ch := l.ch
	l.readChar()
	return Token{Type: ILLEGAL, Lexeme: string(ch), Pos: pos}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readWhile(accept func(rune) bool) string {
	position := l.position
	for !l.atEOF() && accept(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func isLetter(ch rune) bool { return ch == '_' || unicode.IsLetter(ch) }

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isIdentChar(ch rune) bool { return isLetter(ch) || unicode.IsDigit(ch) || ch == '\'' }
