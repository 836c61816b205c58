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
	"github.com/wdamron/algw/internal/typeutil"
	"github.com/wdamron/algw/types"
)

// Unify computes the most general substitution which makes a and b equal.
//
// Unification fails with *hmerr.MismatchedConstructorError, *hmerr.MismatchedArityError
// or *hmerr.InfiniteTypeError.
func Unify(a, b types.Type) (types.Subst, error) { return typeutil.Unify(a, b) }

// Generalize quantifies t over its free type-variables which are not free in env.
// Quantifiers are ordered by first occurrence within t.
func Generalize(t types.Type, env *TypeEnv) types.Scheme {
	return typeutil.Generalize(t, env.FreeTypeVars())
}
