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

package algw_test

import (
	"testing"

	. "github.com/wdamron/algw"
	. "github.com/wdamron/algw/construct"

	"github.com/wdamron/algw/types"
)

func benchEnv() *TypeEnv {
	return NewTypeEnv().
		Declare("add", TArrowN([]types.Type{types.Int, types.Int}, types.Int)).
		Extend("list", Forall([]string{"a"}, TArrow(TVar("a"), TApp("List", TVar("a")))))
}

func BenchmarkNestedLet(b *testing.B) {
	env := benchEnv()
	ctx := NewContext()

	expr := Let("id", Func("x", Var("x")),
		Let("const", FuncN([]string{"x", "y"}, Var("x")),
			Let("n", CallN(Var("add"), Call(Var("id"), Int(1)), Int(2)),
				CallN(Var("const"), Call(Var("list"), Var("n")), Call(Var("id"), Bool(true))))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ctx.Reset()
		_, ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCurriedApplication(b *testing.B) {
	env := benchEnv()
	ctx := NewContext()

	f := Var("f")
	expr := FuncN([]string{"f", "x", "y"},
		CallN(Var("add"), CallN(f, Var("x"), Var("y")), CallN(f, Var("y"), Var("x"))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ctx.Reset()
		_, ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnnotate(b *testing.B) {
	env := benchEnv()
	ctx := NewContext()

	expr := Let("id", Func("x", Var("x")), Call(Var("list"), Call(Var("id"), Int(1))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ctx.Reset()
		if _, err := ctx.Annotate(expr, env); err != nil {
			b.Fatal(err)
		}
	}
}
