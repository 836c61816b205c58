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
	"github.com/wdamron/algw/types"
)

// Instantiate replaces each quantified type-variable of s with a fresh type-variable.
// Each call allocates new variables; separate instantiations never share them.
func (ctx *CommonContext) Instantiate(s types.Scheme) types.Type {
	// Monomorphic types can be shared:
	if mono, ok := s.(*types.Mono); ok {
		return mono.Type
	}
	if ctx.InstLookup == nil {
		ctx.Init()
	}
	t := ctx.visitInstantiate(s)
	ctx.ClearInstantiationLookup()
	return t
}

func (ctx *CommonContext) visitInstantiate(s types.Scheme) types.Type {
	switch s := s.(type) {
	case *types.Mono:
		return ctx.InstLookup.Apply(s.Type)
	case *types.Forall:
		// Binders are visited outer-to-inner; an inner binder of the same name shadows the outer one.
		ctx.InstLookup[s.Bound] = ctx.VarTracker.New()
		return ctx.visitInstantiate(s.Body)
	}
	panic("unexpected scheme " + s.SchemeName())
}
