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

// Package construct provides shorthand constructors for types, schemes and expressions.
package construct

import (
	"strconv"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/types"
)

// Types

// Create a new type-variable with the given name.
func TVar(name string) *types.Var {
	return types.NewVar(name)
}

// Type constant: `Int`, `Bool`, etc
func TConst(name string) *types.App {
	return types.NewConst(name)
}

// Type application: `List Int`
func TApp(constructor string, args ...types.Type) *types.App {
	return &types.App{Const: constructor, Args: args}
}

// Function type: `Int -> Int`
func TArrow(arg, ret types.Type) *types.App {
	return types.NewArrow(arg, ret)
}

// Curried function type: `Int -> Int -> Int`
func TArrowN(args []types.Type, ret types.Type) types.Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = types.NewArrow(args[i], t)
	}
	return t
}

// Schemes

// Unquantified scheme: `Int -> Int`
func Mono(t types.Type) *types.Mono {
	return &types.Mono{Type: t}
}

// Quantified scheme: `∀a.a -> a`
func Forall(bound []string, t types.Type) types.Scheme {
	return types.NewForall(bound, t)
}

// Expressions:

// Integer literal
func Int(value int) *ast.Literal {
	return &ast.Literal{Kind: ast.IntLiteral, Syntax: strconv.Itoa(value)}
}

// Boolean literal
func Bool(value bool) *ast.Literal {
	return &ast.Literal{Kind: ast.BoolLiteral, Syntax: strconv.FormatBool(value)}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `(f x)`
func Call(f ast.Expr, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Arg: arg}
}

// Curried application: `(f x y)` is `((f x) y)`
func CallN(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `(\x -> x)`
func Func(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgName: arg, Body: body}
}

// Curried abstraction: `(\x -> (\y -> x))`
func FuncN(args []string, body ast.Expr) ast.Expr {
	for i := len(args) - 1; i >= 0; i-- {
		body = &ast.Func{ArgName: args[i], Body: body}
	}
	return body
}

// Let-binding: `(let a = 1 in a)`
func Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: name, Value: value, Body: body}
}
