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
	"log/slog"

	"github.com/pkg/errors"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/internal/log"
	"github.com/wdamron/algw/internal/typeutil"
	"github.com/wdamron/algw/types"
)

// InferenceContext is a reusable context for type inference. The context owns the counter used to name
// fresh type-variables (`t0`, `t1`, ...); the counter continues across calls to Infer until Reset is called.
//
// An inference context cannot be used concurrently. To infer types concurrently, create a context for each
// goroutine; type-environments may be shared.
type InferenceContext struct {
	common      typeutil.CommonContext
	logger      *slog.Logger
	unifyLogger *slog.Logger
	annotate    bool

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return new(InferenceContext).WithLogger(log.DefaultLogger)
}

// WithLogger sets the logger used to trace inference. Records are attributed to the "infer" and "unify" sections.
func (ti *InferenceContext) WithLogger(logger *slog.Logger) *InferenceContext {
	ti.logger = log.Section(logger, "infer")
	ti.unifyLogger = log.Section(logger, "unify")
	return ti
}

// Reset the state of the context. Fresh type-variables will be named from `t0` again.
func (ti *InferenceContext) Reset() {
	ti.common.Reset()
	ti.err, ti.invalid = nil, nil
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env. The substitution learned while inferring expr is returned with the type.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Subst, types.Type, error) {
	return ti.inferRoot(expr, env)
}

// Infer the type of expr within env, then generalize the type over type-variables which are not free in env.
func (ti *InferenceContext) InferScheme(expr ast.Expr, env *TypeEnv) (types.Scheme, error) {
	s, t, err := ti.inferRoot(expr, env)
	if err != nil {
		return nil, err
	}
	return Generalize(t, env.Apply(s)), nil
}

// Infer the type of expr within env. A copy of expr will be returned in which every sub-expression
// is annotated with its inferred type.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (ast.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	root := ast.CopyExpr(expr)
	ti.annotate = true
	s, _, err := ti.inferRoot(root, env)
	ti.annotate = false
	if err != nil {
		return nil, err
	}
	ast.WalkExpr(root, func(e ast.Expr) {
		if typed, ok := e.(typedExpr); ok && e.Type() != nil {
			typed.SetType(s.Apply(e.Type()))
		}
	})
	return root, nil
}

// Instantiate replaces the quantified type-variables of s with fresh type-variables.
func (ti *InferenceContext) Instantiate(s types.Scheme) types.Type { return ti.common.Instantiate(s) }

type typedExpr interface {
	SetType(types.Type)
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv) (types.Subst, types.Type, error) {
	if root == nil {
		return nil, nil, errors.New("empty expression")
	}
	ti.err, ti.invalid = nil, nil
	s, t, err := ti.infer(env, root)
	if err != nil {
		ti.logger.Debug("inference failed", "expr", ast.ExprString(root), "err", err)
		return nil, nil, err
	}
	return s, t, nil
}

// fail records the innermost failure; enclosing expressions propagate it unchanged.
func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	if ti.err == nil {
		ti.err, ti.invalid = err, e
	}
	return err
}
