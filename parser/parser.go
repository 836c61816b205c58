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

// Package parser reads expressions and type signatures from source text.
//
// Expressions:
//
//	e ::= int | true | false | x | (e e+) | (\x -> e) | (let x = e in e)
//
// Applications of more than one argument are curried: `(f a b)` is parsed as `((f a) b)`.
//
// Type signatures:
//
//	scheme ::= ('forall' | '∀') a+ '.' type | type
//	type   ::= app ('->' type)?
//	app    ::= Con atom* | atom
//	atom   ::= a | Con | '(' type ')'
//
// Type-variables start with a lowercase letter; type constructors start with an uppercase letter.
package parser

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/hmerr"
	"github.com/wdamron/algw/types"
)

// Parser is a recursive-descent parser over the tokens of a single source text.
type Parser struct {
	l   *Lexer
	tok Token
}

func New(src string) *Parser {
	p := &Parser{l: NewLexer(src)}
	p.next()
	return p
}

// ParseExpr parses a single expression. Syntax errors are reported as *hmerr.SyntaxError.
func ParseExpr(src string) (ast.Expr, error) {
	p := New(src)
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF("expression"); err != nil {
		return nil, err
	}
	return e, nil
}

// ParseScheme parses a type signature, optionally quantified: `forall a. a -> List a`.
func ParseScheme(src string) (types.Scheme, error) {
	p := New(src)
	s, err := p.ParseScheme()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF("type"); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseType parses an unquantified type signature: `Int -> List a`.
func ParseType(src string) (types.Type, error) {
	p := New(src)
	t, err := p.ParseType()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF("type"); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) next() { p.tok = p.l.NextToken() }

func (p *Parser) errorf(pos ast.Pos, format string, args ...interface{}) error {
	return &hmerr.SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// expected reports the current token as unexpected.
func (p *Parser) expected(what string) error {
	if p.tok.Type == ILLEGAL {
		return p.errorf(p.tok.Pos, "unexpected character '%s'", p.tok.Lexeme)
	}
	return p.errorf(p.tok.Pos, "expected %s but found %s", what, p.tok.describe())
}

func (p *Parser) expect(tt TokenType) (Token, error) {
	if p.tok.Type != tt {
		return p.tok, p.expected("'" + string(tt) + "'")
	}
	tok := p.tok
	p.next()
	return tok, nil
}

func (p *Parser) expectIdent(what string) (Token, error) {
	if p.tok.Type != IDENT {
		return p.tok, p.expected(what)
	}
	tok := p.tok
	p.next()
	return tok, nil
}

func (p *Parser) expectEOF(after string) error {
	if p.tok.Type == EOF {
		return nil
	}
	if p.tok.Type == ILLEGAL {
		return p.expected("")
	}
	return p.errorf(p.tok.Pos, "unexpected %s after %s", p.tok.describe(), after)
}

// Expressions

// ParseExpr parses the next expression.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	tok := p.tok
	switch tok.Type {
	case INT:
		if _, err := strconv.Atoi(tok.Lexeme); err != nil {
			return nil, p.errorf(tok.Pos, "integer literal %s is out of range", tok.Lexeme)
		}
		p.next()
		return &ast.Literal{Kind: ast.IntLiteral, Syntax: tok.Lexeme, At: tok.Pos}, nil
	case TRUE, FALSE:
		p.next()
		return &ast.Literal{Kind: ast.BoolLiteral, Syntax: tok.Lexeme, At: tok.Pos}, nil
	case IDENT:
		p.next()
		return &ast.Var{Name: tok.Lexeme, At: tok.Pos}, nil
	case LPAREN:
		p.next()
		return p.parseParenExpr(tok.Pos)
	}
	return nil, p.expected("expression")
}

func (p *Parser) parseParenExpr(open ast.Pos) (ast.Expr, error) {
	var (
		e   ast.Expr
		err error
	)
	switch p.tok.Type {
	case LET:
		e, err = p.parseLet(open)
	case BACKSLASH:
		e, err = p.parseFunc(open)
	default:
		e, err = p.parseCall(open)
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}

// (let x = value in body)
func (p *Parser) parseLet(open ast.Pos) (ast.Expr, error) {
	p.next()
	name, err := p.expectIdent("variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(IN); err != nil {
		return nil, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Var: name.Lexeme, Value: value, Body: body, At: open}, nil
}

// (\x -> body)
func (p *Parser) parseFunc(open ast.Pos) (ast.Expr, error) {
	p.next()
	arg, err := p.expectIdent("parameter name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ARROW); err != nil {
		return nil, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Func{ArgName: arg.Lexeme, Body: body, At: open}, nil
}

// (f a b ...)
func (p *Parser) parseCall(open ast.Pos) (ast.Expr, error) {
	fn, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	// At least one argument is required:
	for first := true; first || (p.tok.Type != RPAREN && p.tok.Type != EOF); first = false {
		arg, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		fn = &ast.Call{Func: fn, Arg: arg, At: open}
	}
	return fn, nil
}

// Types

// ParseScheme parses the next type signature, optionally quantified.
func (p *Parser) ParseScheme() (types.Scheme, error) {
	if p.tok.Type != FORALL && !(p.tok.Type == IDENT && p.tok.Lexeme == "forall") {
		t, err := p.ParseType()
		if err != nil {
			return nil, err
		}
		return &types.Mono{Type: t}, nil
	}
	p.next()

	var bound []string
	for len(bound) == 0 || p.tok.Type != DOT {
		if p.tok.Type != IDENT || !isTypeVarName(p.tok.Lexeme) {
			return nil, p.expected("type variable")
		}
		for _, name := range bound {
			if name == p.tok.Lexeme {
				return nil, p.errorf(p.tok.Pos, "type variable %s is quantified more than once", name)
			}
		}
		bound = append(bound, p.tok.Lexeme)
		p.next()
	}
	p.next()

	t, err := p.ParseType()
	if err != nil {
		return nil, err
	}
	return types.NewForall(bound, t), nil
}

// ParseType parses the next unquantified type. Function types are right-associative.
func (p *Parser) ParseType() (types.Type, error) {
	from, err := p.parseAppType()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != ARROW {
		return from, nil
	}
	p.next()
	to, err := p.ParseType()
	if err != nil {
		return nil, err
	}
	return types.NewArrow(from, to), nil
}

func (p *Parser) parseAppType() (types.Type, error) {
	if p.tok.Type != IDENT || isTypeVarName(p.tok.Lexeme) {
		return p.parseAtomType()
	}
	name := p.tok.Lexeme
	p.next()
	var args []types.Type
	for p.tok.Type == IDENT || p.tok.Type == LPAREN {
		arg, err := p.parseAtomType()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &types.App{Const: name, Args: args}, nil
}

func (p *Parser) parseAtomType() (types.Type, error) {
	switch p.tok.Type {
	case IDENT:
		name := p.tok.Lexeme
		p.next()
		if isTypeVarName(name) {
			return types.NewVar(name), nil
		}
		return types.NewConst(name), nil
	case LPAREN:
		p.next()
		t, err := p.ParseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, p.expected("type")
}

func isTypeVarName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}
