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

package typeutil

import (
	"github.com/wdamron/algw/hmerr"
	"github.com/wdamron/algw/types"
)

// Unify computes the most general substitution which makes a and b equal.
//
// Arguments of type applications are unified left to right; the substitution
// learned from earlier arguments is applied to later arguments before they are
// unified.
func Unify(a, b types.Type) (types.Subst, error) {
	switch a := a.(type) {
	case *types.Var:
		return bindVar(a, b)

	case *types.App:
		switch b := b.(type) {
		case *types.Var:
			return bindVar(b, a)
		case *types.App:
			return unifyApps(a, b)
		}
	}
	panic("unexpected types " + a.TypeName() + ", " + b.TypeName())
}

func bindVar(tv *types.Var, t types.Type) (types.Subst, error) {
	if other, ok := t.(*types.Var); ok && other.Name == tv.Name {
		return nil, nil
	}
	if types.Occurs(tv.Name, t) {
		return nil, &hmerr.InfiniteTypeError{Var: tv.Name, Type: t}
	}
	return types.SingletonSubst(tv.Name, t), nil
}

func unifyApps(a, b *types.App) (types.Subst, error) {
	if a.Const != b.Const {
		return nil, &hmerr.MismatchedConstructorError{First: a.Const, Second: b.Const}
	}
	if len(a.Args) != len(b.Args) {
		return nil, &hmerr.MismatchedArityError{First: a, Second: b}
	}
	var s types.Subst
	for i := range a.Args {
		next, err := Unify(s.Apply(a.Args[i]), s.Apply(b.Args[i]))
		if err != nil {
			return nil, err
		}
		s = s.Compose(next)
	}
	return s, nil
}
