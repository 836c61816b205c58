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
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/algw/types"
)

var emptyBindings = immutable.NewSortedMap[string, types.Scheme](immutable.NewComparer(""))

// TypeEnv is a type-environment containing mappings from identifiers to declared type-schemes.
//
// A type-environment is immutable; extending an environment returns a new environment which shares
// structure with its parent. Type-environments may be shared across concurrent inference sessions.
type TypeEnv struct {
	bindings *immutable.SortedMap[string, types.Scheme]
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return &TypeEnv{bindings: emptyBindings} }

func (e *TypeEnv) entries() *immutable.SortedMap[string, types.Scheme] {
	if e == nil || e.bindings == nil {
		return emptyBindings
	}
	return e.bindings
}

// Extend returns a copy of e in which name is bound to s. An existing binding for name is shadowed.
func (e *TypeEnv) Extend(name string, s types.Scheme) *TypeEnv {
	return &TypeEnv{bindings: e.entries().Set(name, s)}
}

// Declare returns a copy of e in which name is bound to the monomorphic type t.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return e.Extend(name, &types.Mono{Type: t})
}

// Lookup the type-scheme bound to name.
func (e *TypeEnv) Lookup(name string) (types.Scheme, bool) { return e.entries().Get(name) }

// Len returns the number of bindings in e.
func (e *TypeEnv) Len() int { return e.entries().Len() }

// Iterate over bindings in e, sorted by name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(name string, s types.Scheme) bool) {
	iter := e.entries().Iterator()
	for !iter.Done() {
		name, s, _ := iter.Next()
		if !f(name, s) {
			return
		}
	}
}

// Apply returns a copy of e with s applied to every bound type-scheme.
func (e *TypeEnv) Apply(s types.Subst) *TypeEnv {
	if s.Len() == 0 {
		return e
	}
	b := immutable.NewSortedMapBuilder[string, types.Scheme](immutable.NewComparer(""))
	e.Range(func(name string, sc types.Scheme) bool {
		b.Set(name, s.ApplyScheme(sc))
		return true
	})
	return &TypeEnv{bindings: b.Map()}
}

// FreeTypeVars returns the type-variables which are free in any bound type-scheme.
func (e *TypeEnv) FreeTypeVars() types.TypeVarSet {
	var names []string
	e.Range(func(_ string, sc types.Scheme) bool {
		names = append(names, types.FreeSchemeVars(sc)...)
		return true
	})
	return types.NewTypeVarSet(names...)
}

// String returns one `name : scheme` line for each binding, sorted by name.
func (e *TypeEnv) String() string {
	var sb strings.Builder
	e.Range(func(name string, sc types.Scheme) bool {
		sb.WriteString(name)
		sb.WriteString(" : ")
		sb.WriteString(types.SchemeString(sc))
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
