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

package ast

import (
	"strconv"

	"github.com/wdamron/algw/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Position of the expression within its source. The zero position is used for constructed expressions.
	Pos() Pos
	// Type returns an inferred type of an expression. Expression types are only available after annotation.
	Type() types.Type
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Let)(nil)
)

// Pos is a 1-based line and column within source text.
type Pos struct {
	Line int
	Col  int
}

// IsValid reports whether p refers to a source location.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Kind of literal value
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	BoolLiteral
)

// BaseType returns the fixed type of literals of kind k.
func (k LiteralKind) BaseType() types.Type {
	switch k {
	case IntLiteral:
		return types.Int
	case BoolLiteral:
		return types.Bool
	}
	panic("unknown literal kind " + strconv.Itoa(int(k)))
}

// Literal value: `10`, `true`
type Literal struct {
	Kind LiteralKind
	// Syntax is a string representation of the literal value. The syntax will be printed when the literal is printed.
	Syntax   string
	At       Pos
	inferred types.Type
}

// Returns the syntax of e.
func (e *Literal) ExprName() string { return e.Syntax }

func (e *Literal) Pos() Pos { return e.At }

// Get the inferred (or assigned) type of e.
func (e *Literal) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Literal) SetType(t types.Type) { e.inferred = t }

// Variable
type Var struct {
	Name     string
	At       Pos
	inferred types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

func (e *Var) Pos() Pos { return e.At }

// Get the inferred (or assigned) type of e.
func (e *Var) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Var) SetType(t types.Type) { e.inferred = t }

// Application: `(f x)`
type Call struct {
	Func     Expr
	Arg      Expr
	At       Pos
	inferred types.Type
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

func (e *Call) Pos() Pos { return e.At }

// Get the inferred (or assigned) type of e.
func (e *Call) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Call) SetType(t types.Type) { e.inferred = t }

// Abstraction: `(\x -> x)`
type Func struct {
	ArgName  string
	Body     Expr
	At       Pos
	inferred types.Type
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

func (e *Func) Pos() Pos { return e.At }

// Get the inferred (or assigned) type of e.
func (e *Func) Type() types.Type { return e.inferred }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Func) SetType(t types.Type) { e.inferred = t }

// Let-binding: `(let a = 1 in e)`
type Let struct {
	Var   string
	Value Expr
	Body  Expr
	At    Pos
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

func (e *Let) Pos() Pos { return e.At }

// Get the inferred (or assigned) type of e.
func (e *Let) Type() types.Type { return e.Body.Type() }
