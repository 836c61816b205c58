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
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/hmerr"
	"github.com/wdamron/algw/internal/typeutil"
	"github.com/wdamron/algw/types"
)

func (ti *InferenceContext) infer(env *TypeEnv, expr ast.Expr) (types.Subst, types.Type, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		t := e.Kind.BaseType()
		if ti.annotate {
			e.SetType(t)
		}
		return nil, t, nil

	case *ast.Var:
		scheme, ok := env.Lookup(e.Name)
		if !ok {
			return nil, nil, ti.fail(e, &hmerr.UndefinedVariableError{Pos: e.At, Name: e.Name})
		}
		// Each use of a polymorphic binding is instantiated independently:
		t := ti.common.Instantiate(scheme)
		if ti.annotate {
			e.SetType(t)
		}
		return nil, t, nil

	case *ast.Func:
		param := ti.common.VarTracker.New()
		s, body, err := ti.infer(env.Extend(e.ArgName, &types.Mono{Type: param}), e.Body)
		if err != nil {
			return nil, nil, err
		}
		t := s.Apply(types.NewArrow(param, body))
		if ti.annotate {
			e.SetType(t)
		}
		return s, t, nil

	case *ast.Call:
		s1, fn, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, nil, err
		}
		s2, arg, err := ti.infer(env.Apply(s1), e.Arg)
		if err != nil {
			return nil, nil, err
		}
		ret := ti.common.VarTracker.New()
		s3, err := ti.unify(s2.Apply(fn), types.NewArrow(arg, ret))
		if err != nil {
			err = errors.Wrapf(err, "cannot apply %s to %s", ast.ExprString(e.Func), ast.ExprString(e.Arg))
			return nil, nil, ti.fail(e, err)
		}
		t := s3.Apply(ret)
		if ti.annotate {
			e.SetType(t)
		}
		return s1.Compose(s2.Compose(s3)), t, nil

	case *ast.Let:
		s1, value, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, nil, err
		}
		// Generalize before extending, so each use within the body may be instantiated at a different type:
		env = env.Apply(s1)
		scheme := Generalize(value, env)
		if ti.logger.Enabled(context.Background(), slog.LevelDebug) {
			ti.logger.Debug("generalize", "name", e.Var, "scheme", types.SchemeString(scheme))
		}
		s2, body, err := ti.infer(env.Extend(e.Var, scheme), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return s1.Compose(s2), body, nil
	}

	return nil, nil, ti.fail(expr, errors.Errorf("unhandled expression type %s", expr.ExprName()))
}

func (ti *InferenceContext) unify(a, b types.Type) (types.Subst, error) {
	s, err := typeutil.Unify(a, b)
	if ti.unifyLogger.Enabled(context.Background(), slog.LevelDebug) {
		if err != nil {
			ti.unifyLogger.Debug("unify", "a", types.TypeString(a), "b", types.TypeString(b), "err", err)
		} else {
			ti.unifyLogger.Debug("unify", "a", types.TypeString(a), "b", types.TypeString(b), "subst", types.SubstString(s))
		}
	}
	return s, err
}
