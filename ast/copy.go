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

// CopyExpr returns a deep copy of e. Inferred types are copied along with the tree.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *Literal:
		return &Literal{e.Kind, e.Syntax, e.At, e.inferred}

	case *Var:
		return &Var{e.Name, e.At, e.inferred}

	case *Call:
		return &Call{CopyExpr(e.Func), CopyExpr(e.Arg), e.At, e.inferred}

	case *Func:
		return &Func{e.ArgName, CopyExpr(e.Body), e.At, e.inferred}

	case *Let:
		return &Let{e.Var, CopyExpr(e.Value), CopyExpr(e.Body), e.At}

	case nil:
		return nil
	}
	panic("unknown expression type: " + e.ExprName())
}
