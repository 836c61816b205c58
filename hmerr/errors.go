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

// Package hmerr defines the errors reported while parsing and type-checking expressions.
package hmerr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/types"
)

type ErrCode int

const (
	None ErrCode = iota
	Syntax
	UndefinedVariable
	MismatchedConstructor
	MismatchedArity
	InfiniteType
)

// Error is implemented by all classified errors.
type Error interface {
	error
	Code() ErrCode
}

// UnificationError is implemented by errors which cause unification to fail.
type UnificationError interface {
	Error
	unificationError()
}

var (
	_ Error            = (*SyntaxError)(nil)
	_ Error            = (*UndefinedVariableError)(nil)
	_ UnificationError = (*MismatchedConstructorError)(nil)
	_ UnificationError = (*MismatchedArityError)(nil)
	_ UnificationError = (*InfiniteTypeError)(nil)
)

// FormatWithCode renders err with its error code: `(E002) variable 'foo' is not defined`.
// Wrapped errors are searched for a classified cause.
func FormatWithCode(err error) string {
	var classified Error
	if errors.As(err, &classified) {
		return fmt.Sprintf("(E%03d) %s", classified.Code(), err.Error())
	}
	return fmt.Sprintf("(E%03d) %s", None, err.Error())
}

// CodeOf returns the code of the first classified error in err's chain.
func CodeOf(err error) ErrCode {
	var classified Error
	if errors.As(err, &classified) {
		return classified.Code()
	}
	return None
}

// IsUnificationError reports whether err was caused by a failed unification.
func IsUnificationError(err error) bool {
	var uerr UnificationError
	return errors.As(err, &uerr)
}

type SyntaxError struct {
	Pos ast.Pos
	Msg string
}

func (e *SyntaxError) Code() ErrCode { return Syntax }
func (e *SyntaxError) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

type UndefinedVariableError struct {
	Pos  ast.Pos
	Name string
}

func (e *UndefinedVariableError) Code() ErrCode { return UndefinedVariable }
func (e *UndefinedVariableError) Error() string {
	if !e.Pos.IsValid() {
		return fmt.Sprintf("undefined variable '%s'", e.Name)
	}
	return fmt.Sprintf("undefined variable '%s' at %s", e.Name, e.Pos)
}

type MismatchedConstructorError struct {
	First  string
	Second string
}

func (e *MismatchedConstructorError) Code() ErrCode { return MismatchedConstructor }
func (e *MismatchedConstructorError) Error() string {
	return fmt.Sprintf("mismatched type constructors: %s and %s", e.First, e.Second)
}
func (e *MismatchedConstructorError) unificationError() {}

type MismatchedArityError struct {
	First  types.Type
	Second types.Type
}

func (e *MismatchedArityError) Code() ErrCode { return MismatchedArity }
func (e *MismatchedArityError) Error() string {
	return fmt.Sprintf("mismatched arity: %s and %s", safeTypeString(e.First), safeTypeString(e.Second))
}
func (e *MismatchedArityError) unificationError() {}

type InfiniteTypeError struct {
	Var  string
	Type types.Type
}

func (e *InfiniteTypeError) Code() ErrCode { return InfiniteType }
func (e *InfiniteTypeError) Error() string {
	return fmt.Sprintf("infinite type: %s occurs in %s", e.Var, types.TypeString(e.Type))
}
func (e *InfiniteTypeError) unificationError() {}

// Mismatched arity may involve a malformed function type, which cannot be printed infix.
func safeTypeString(t types.Type) (s string) {
	defer func() {
		if recover() != nil {
			app := t.(*types.App)
			s = fmt.Sprintf("%s/%d", app.Const, len(app.Args))
		}
	}()
	return types.TypeString(t)
}
