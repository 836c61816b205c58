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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/algw/hmerr"
	"github.com/wdamron/algw/types"
)

var (
	a = types.NewVar("a")
	b = types.NewVar("b")
	c = types.NewVar("c")
)

func list(t types.Type) types.Type { return &types.App{Const: "List", Args: []types.Type{t}} }

func pair(x, y types.Type) types.Type { return &types.App{Const: "Pair", Args: []types.Type{x, y}} }

func TestUnifySelf(t *testing.T) {
	for _, ty := range []types.Type{a, types.Int, types.NewArrow(a, list(b)), pair(a, a)} {
		s, err := Unify(ty, ty)
		require.NoError(t, err)
		assert.True(t, types.Equal(ty, s.Apply(ty)), types.TypeString(ty))
	}
}

func TestUnifyVar(t *testing.T) {
	s, err := Unify(a, types.NewArrow(types.Int, b))
	require.NoError(t, err)
	assert.Equal(t, "{a ↦ Int -> b}", types.SubstString(s))

	// order-independent:
	s, err = Unify(types.NewArrow(types.Int, b), a)
	require.NoError(t, err)
	assert.Equal(t, "{a ↦ Int -> b}", types.SubstString(s))
}

func TestUnifyInfiniteType(t *testing.T) {
	_, err := Unify(a, types.NewArrow(a, types.Int))
	var inf *hmerr.InfiniteTypeError
	require.ErrorAs(t, err, &inf)
	assert.Equal(t, "a", inf.Var)

	_, err = Unify(list(a), a)
	require.ErrorAs(t, err, &inf)
}

func TestUnifyMismatchedConstructor(t *testing.T) {
	_, err := Unify(types.Int, types.Bool)
	var mismatch *hmerr.MismatchedConstructorError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Int", mismatch.First)
	assert.Equal(t, "Bool", mismatch.Second)

	_, err = Unify(types.NewArrow(a, types.Int), list(a))
	require.ErrorAs(t, err, &mismatch)
}

func TestUnifyMismatchedArity(t *testing.T) {
	_, err := Unify(&types.App{Const: "F", Args: []types.Type{a}}, &types.App{Const: "F", Args: []types.Type{a, b}})
	var arity *hmerr.MismatchedArityError
	require.ErrorAs(t, err, &arity)
	assert.True(t, hmerr.IsUnificationError(err))
}

func TestUnifyThreadsArguments(t *testing.T) {
	// a is learned from the first argument and must be respected by the second:
	s, err := Unify(pair(a, a), pair(types.Int, b))
	require.NoError(t, err)
	assert.Equal(t, "Int", types.TypeString(s.Apply(a)))
	assert.Equal(t, "Int", types.TypeString(s.Apply(b)))

	_, err = Unify(pair(a, a), pair(types.Int, types.Bool))
	var mismatch *hmerr.MismatchedConstructorError
	require.ErrorAs(t, err, &mismatch)

	s, err = Unify(types.NewArrow(a, types.NewArrow(b, c)), types.NewArrow(list(b), types.NewArrow(types.Int, a)))
	require.NoError(t, err)
	lhs := s.Apply(types.NewArrow(a, types.NewArrow(b, c)))
	rhs := s.Apply(types.NewArrow(list(b), types.NewArrow(types.Int, a)))
	assert.True(t, types.Equal(lhs, rhs), "%s != %s", types.TypeString(lhs), types.TypeString(rhs))
	assert.Equal(t, "List Int -> Int -> List Int", types.TypeString(lhs))
}

func TestVarTracker(t *testing.T) {
	var vt VarTracker
	assert.Equal(t, "t0", vt.New().Name)
	assert.Equal(t, "t1", vt.New().Name)
	vars := vt.NewList(2)
	assert.Equal(t, "t2", vars[0].Name)
	assert.Equal(t, "t3", vars[1].Name)
	vt.Reset()
	assert.Equal(t, "t0", vt.New().Name)
}

func TestGeneralize(t *testing.T) {
	ty := types.NewArrow(b, types.NewArrow(a, c))

	sc := Generalize(ty, types.NewTypeVarSet("a"))
	assert.Equal(t, "∀b.∀c.b -> a -> c", types.SchemeString(sc))

	sc = Generalize(types.Int, types.EmptyTypeVarSet)
	assert.Equal(t, "Int", types.SchemeString(sc))
}

func TestInstantiate(t *testing.T) {
	var ctx CommonContext
	sc := types.NewForall([]string{"a"}, types.NewArrow(a, list(b)))

	first := ctx.Instantiate(sc)
	second := ctx.Instantiate(sc)
	assert.Equal(t, "t0 -> List b", types.TypeString(first))
	assert.Equal(t, "t1 -> List b", types.TypeString(second))

	mono := &types.Mono{Type: types.NewArrow(a, a)}
	assert.Same(t, mono.Type, ctx.Instantiate(mono))
}

func TestGeneralizeInstantiateRoundTrip(t *testing.T) {
	var ctx CommonContext
	for _, ty := range []types.Type{
		types.NewArrow(a, a),
		types.NewArrow(a, types.NewArrow(b, pair(b, a))),
		list(types.NewArrow(c, types.Bool)),
		types.Int,
	} {
		got := ctx.Instantiate(Generalize(ty, types.EmptyTypeVarSet))
		assert.True(t, types.AlphaEquivalent(ty, got), "%s vs %s", types.TypeString(ty), types.TypeString(got))
	}
}
