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

package algw

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/algw/ast"
	. "github.com/wdamron/algw/construct"
	"github.com/wdamron/algw/hmerr"
	"github.com/wdamron/algw/internal/log"
	"github.com/wdamron/algw/types"
)

func inferString(t *testing.T, ctx *InferenceContext, env *TypeEnv, expr ast.Expr) string {
	t.Helper()
	_, ty, err := ctx.Infer(expr, env)
	require.NoError(t, err, ast.ExprString(expr))
	return types.TypeString(ty)
}

func TestInferScenarios(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		src  string
		want string
	}{
		{Func("x", Var("x")), `(\x -> x)`, "t0 -> t0"},
		{Func("x", Int(10)), `(\x -> 10)`, "t0 -> Int"},
		{Call(Func("x", Var("x")), Int(10)), `((\x -> x) 10)`, "Int"},
		{Let("x", Int(10), Var("x")), `(let x = 10 in x)`, "Int"},
		{Let("const", Func("y", Bool(true)), Var("const")), `(let const = (\y -> true) in const)`, "t1 -> Bool"},
		{FuncN([]string{"x", "y"}, Var("x")), `(\x -> (\y -> x))`, "t0 -> t1 -> t0"},
		{Func("f", Func("x", Call(Var("f"), Var("x")))), `(\f -> (\x -> (f x)))`, "(t1 -> t2) -> t1 -> t2"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if exprString := ast.ExprString(tt.expr); exprString != tt.src {
				t.Fatalf("expr: %s", exprString)
			}
			ctx := NewContext()
			assert.Equal(t, tt.want, inferString(t, ctx, NewTypeEnv(), tt.expr))
		})
	}
}

func TestInferScheme(t *testing.T) {
	ctx := NewContext()
	scheme, err := ctx.InferScheme(Let("const", Func("y", Bool(true)), Var("const")), NewTypeEnv())
	require.NoError(t, err)
	assert.Equal(t, "∀t1.t1 -> Bool", types.SchemeString(scheme))

	ctx.Reset()
	scheme, err = ctx.InferScheme(Func("x", Var("x")), NewTypeEnv())
	require.NoError(t, err)
	assert.Equal(t, "∀t0.t0 -> t0", types.SchemeString(scheme))

	// Type-variables free in the environment stay monomorphic:
	ctx.Reset()
	env := NewTypeEnv().Declare("y", TVar("a"))
	scheme, err = ctx.InferScheme(Func("x", Var("y")), env)
	require.NoError(t, err)
	assert.Equal(t, "∀t0.t0 -> a", types.SchemeString(scheme))
}

func TestUndefinedVariable(t *testing.T) {
	ctx := NewContext()
	foo := Var("foo")
	_, _, err := ctx.Infer(foo, NewTypeEnv())
	require.Error(t, err)

	var undefined *hmerr.UndefinedVariableError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "foo", undefined.Name)
	assert.Equal(t, "undefined variable 'foo'", err.Error())
	assert.Equal(t, hmerr.UndefinedVariable, hmerr.CodeOf(err))
	assert.Same(t, foo, ctx.InvalidExpr())
	assert.Equal(t, err, ctx.Error())
}

func TestLetPolymorphism(t *testing.T) {
	// id is used at Int and at Bool within the body of the let-expression:
	expr := Let("id", Func("x", Var("x")),
		Let("a", Call(Var("id"), Int(10)),
			Call(Var("id"), Bool(true))))
	ctx := NewContext()
	assert.Equal(t, "Bool", inferString(t, ctx, NewTypeEnv(), expr))

	// Lambda-bound names are monomorphic:
	inner := Call(Var("id"), Bool(true))
	expr2 := Func("id", Let("a", Call(Var("id"), Int(10)), inner))
	ctx.Reset()
	_, _, err := ctx.Infer(expr2, NewTypeEnv())
	require.Error(t, err)

	var mismatch *hmerr.MismatchedConstructorError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Int", mismatch.First)
	assert.Equal(t, "Bool", mismatch.Second)
	assert.True(t, hmerr.IsUnificationError(err))
	assert.Equal(t, "cannot apply id to true: mismatched type constructors: Int and Bool", err.Error())
	assert.Same(t, inner, ctx.InvalidExpr())
}

func TestInfiniteType(t *testing.T) {
	ctx := NewContext()
	_, _, err := ctx.Infer(Func("x", Call(Var("x"), Var("x"))), NewTypeEnv())
	var inf *hmerr.InfiniteTypeError
	require.ErrorAs(t, err, &inf)
	assert.Equal(t, "cannot apply x to x: infinite type: t0 occurs in t0 -> t1", err.Error())
	assert.Equal(t, "(E005) cannot apply x to x: infinite type: t0 occurs in t0 -> t1", hmerr.FormatWithCode(err))
}

func testEnv() *TypeEnv {
	return NewTypeEnv().
		Extend("list", Forall([]string{"a"}, TArrow(TVar("a"), TApp("List", TVar("a"))))).
		Declare("inc", TArrow(types.Int, types.Int)).
		Declare("dec", TArrow(types.Int, types.Int)).
		Extend("isNull", Forall([]string{"a"}, TArrow(TVar("a"), types.Bool))).
		Declare("add", TArrowN([]types.Type{types.Int, types.Int}, types.Int))
}

func TestInferWithBuiltins(t *testing.T) {
	env := testEnv()
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{CallN(Var("add"), Int(1), Int(2)), "Int"},
		{Call(Var("add"), Int(1)), "Int -> Int"},
		{Call(Var("list"), Bool(true)), "List Bool"},
		{Call(Var("list"), Call(Var("list"), Int(1))), "List (List Int)"},
		{Func("x", Call(Var("inc"), Call(Var("dec"), Var("x")))), "Int -> Int"},
		{Let("f", Var("isNull"), CallN(Var("add"), Int(1), Int(1))), "Int"},
		{Func("x", Call(Var("isNull"), Call(Var("list"), Var("x")))), "t0 -> Bool"},
	}
	for _, tt := range tests {
		ctx := NewContext()
		assert.Equal(t, tt.want, inferString(t, ctx, env, tt.expr), ast.ExprString(tt.expr))
	}

	ctx := NewContext()
	_, _, err := ctx.Infer(Call(Var("inc"), Bool(true)), env)
	var mismatch *hmerr.MismatchedConstructorError
	require.ErrorAs(t, err, &mismatch)
}

func TestEnvironmentUnchangedAfterInference(t *testing.T) {
	env := testEnv()
	before := env.String()
	ctx := NewContext()
	_, _, err := ctx.Infer(Let("x", Int(1), Func("y", CallN(Var("add"), Var("x"), Var("y")))), env)
	require.NoError(t, err)
	assert.Equal(t, before, env.String())
	_, ok := env.Lookup("x")
	assert.False(t, ok)
}

func TestResetRestartsNaming(t *testing.T) {
	ctx := NewContext()
	id := Func("x", Var("x"))
	assert.Equal(t, "t0 -> t0", inferString(t, ctx, nil, id))
	assert.Equal(t, "t1 -> t1", inferString(t, ctx, nil, id))
	ctx.Reset()
	assert.Equal(t, "t0 -> t0", inferString(t, ctx, nil, id))

	_, _, err := ctx.Infer(Var("nope"), nil)
	require.Error(t, err)
	ctx.Reset()
	assert.NoError(t, ctx.Error())
	assert.Nil(t, ctx.InvalidExpr())
}

func TestAnnotate(t *testing.T) {
	expr := Call(Func("x", Var("x")), Int(10))
	ctx := NewContext()
	annotated, err := ctx.Annotate(expr, NewTypeEnv())
	require.NoError(t, err)

	var got []string
	ast.WalkExpr(annotated, func(e ast.Expr) {
		got = append(got, ast.ExprString(e)+" : "+types.TypeString(e.Type()))
	})
	assert.Equal(t, []string{
		`((\x -> x) 10) : Int`,
		`(\x -> x) : Int -> Int`,
		`x : Int`,
		`10 : Int`,
	}, got)

	// The original expression is not annotated:
	assert.Nil(t, expr.Type())

	_, err = ctx.Annotate(Var("missing"), NewTypeEnv())
	require.Error(t, err)
}

func TestUnifyWrapper(t *testing.T) {
	s, err := Unify(TArrow(TVar("a"), types.Int), TArrow(types.Bool, TVar("b")))
	require.NoError(t, err)
	assert.Equal(t, "{a ↦ Bool, b ↦ Int}", types.SubstString(s))

	_, err = Unify(TVar("a"), TArrow(TVar("a"), types.Int))
	var inf *hmerr.InfiniteTypeError
	require.ErrorAs(t, err, &inf)

	_, err = Unify(types.Int, types.Bool)
	var mismatch *hmerr.MismatchedConstructorError
	require.ErrorAs(t, err, &mismatch)
}

func TestGeneralizeInstantiate(t *testing.T) {
	ctx := NewContext()
	ty := TArrow(TVar("a"), TArrow(TVar("b"), TApp("Pair", TVar("a"), TVar("b"))))
	scheme := Generalize(ty, NewTypeEnv())
	assert.Equal(t, "∀a.∀b.a -> b -> Pair a b", types.SchemeString(scheme))

	first, second := ctx.Instantiate(scheme), ctx.Instantiate(scheme)
	assert.True(t, types.AlphaEquivalent(ty, first))
	assert.True(t, types.AlphaEquivalent(ty, second))
	assert.Equal(t, "t0 -> t1 -> Pair t0 t1", types.TypeString(first))
	assert.Equal(t, "t2 -> t3 -> Pair t2 t3", types.TypeString(second))

	// Variables owned by the environment are not quantified:
	env := NewTypeEnv().Declare("z", TVar("b"))
	assert.Equal(t, "∀a.a -> b -> Pair a b", types.SchemeString(Generalize(ty, env)))
}

func TestLogSections(t *testing.T) {
	log.SetLevel(slog.LevelDebug)
	defer log.SetLevel(slog.LevelWarn)
	defer log.EnableSections("infer", "unify", "repl", "prelude")

	expr := Let("id", Func("x", Var("x")), Call(Var("id"), Int(1)))
	trace := func(sections ...string) string {
		log.EnableSections(sections...)
		var buf bytes.Buffer
		ctx := NewContext().WithLogger(log.New(&buf))
		assert.Equal(t, "Int", inferString(t, ctx, NewTypeEnv(), expr))
		return buf.String()
	}

	out := trace("infer")
	assert.Contains(t, out, "msg=generalize section=infer name=id")
	assert.NotContains(t, out, "msg=unify")

	out = trace("unify")
	assert.Contains(t, out, "msg=unify section=unify a=")
	assert.NotContains(t, out, "section=infer")

	out = trace("infer", "unify")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.Equal(t, 1, strings.Count(line, "section="), line)
	}
}
