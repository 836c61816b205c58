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
	"github.com/wdamron/algw/ast"
)

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT TokenType = "IDENT" // x, isNull, List
	INT   TokenType = "INT"   // 10

	TRUE  TokenType = "true"
	FALSE TokenType = "false"
	LET   TokenType = "let"
	IN    TokenType = "in"

	BACKSLASH TokenType = "\\"
	ASSIGN    TokenType = "="
	ARROW     TokenType = "->"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	DOT       TokenType = "."
	FORALL    TokenType = "∀"
)

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"let":   LET,
	"in":    IN,
}

// Token is a lexeme with its type and the position of its first character.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    ast.Pos
}

func (t Token) describe() string {
	if t.Type == EOF {
		return "end of input"
	}
	return "'" + t.Lexeme + "'"
}
