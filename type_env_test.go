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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	. "github.com/wdamron/algw/construct"
	"github.com/wdamron/algw/types"
)

func TestTypeEnvExtendIsPersistent(t *testing.T) {
	base := NewTypeEnv().Declare("x", types.Int)
	shadowed := base.Declare("x", types.Bool)
	extended := base.Declare("y", types.Bool)

	sc, ok := base.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "Int", types.SchemeString(sc))

	sc, ok = shadowed.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "Bool", types.SchemeString(sc))

	_, ok = base.Lookup("y")
	assert.False(t, ok)
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, extended.Len())
}

func TestTypeEnvApply(t *testing.T) {
	env := NewTypeEnv().
		Declare("f", TArrow(TVar("a"), TVar("b"))).
		Extend("id", Forall([]string{"a"}, TArrow(TVar("a"), TVar("a"))))

	applied := env.Apply(types.Subst{"a": types.Int, "b": types.Bool})
	assert.Equal(t, "f : Int -> Bool\nid : ∀a.a -> a\n", applied.String())
	assert.Equal(t, "f : a -> b\nid : ∀a.a -> a\n", env.String())

	assert.Same(t, env, env.Apply(nil))
}

func TestTypeEnvFreeTypeVars(t *testing.T) {
	env := NewTypeEnv().
		Declare("f", TArrow(TVar("c"), TVar("b"))).
		Extend("g", Forall([]string{"a"}, TArrow(TVar("a"), TVar("d"))))
	assert.Equal(t, []string{"b", "c", "d"}, env.FreeTypeVars().Items())

	var nilEnv *TypeEnv
	assert.Equal(t, 0, nilEnv.FreeTypeVars().Len())
	assert.Equal(t, 0, nilEnv.Len())
}

func TestTypeEnvRange(t *testing.T) {
	env := testEnv()
	var names []string
	env.Range(func(name string, _ types.Scheme) bool {
		names = append(names, name)
		return len(names) < 3
	})
	assert.Equal(t, []string{"add", "dec", "inc"}, names)
}

func TestConcurrentSessionsShareEnvironment(t *testing.T) {
	env := testEnv()
	expr := Let("id", Func("x", Var("x")),
		Call(Var("list"), CallN(Var("add"), Call(Var("id"), Int(1)), Int(2))))

	var g errgroup.Group
	results := make([]string, 8)
	for i := range results {
		i := i
		g.Go(func() error {
			ctx := NewContext()
			for n := 0; n < 50; n++ {
				ctx.Reset()
				_, ty, err := ctx.Infer(expr, env)
				if err != nil {
					return err
				}
				if s := types.TypeString(ty); s != "List Int" {
					return fmt.Errorf("session %d: unexpected type %s", i, s)
				}
				results[i] = types.TypeString(ty)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, r := range results {
		assert.Equal(t, "List Int", r)
	}
}
