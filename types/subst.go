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

package types

import (
	"sort"
	"strings"
)

// Subst maps type-variable names to types. A nil Subst is the empty substitution.
type Subst map[string]Type

// Create a substitution with a single entry.
func SingletonSubst(name string, t Type) Subst { return Subst{name: t} }

// Len returns the number of entries in s.
func (s Subst) Len() int { return len(s) }

// Lookup returns the type bound to name in s.
func (s Subst) Lookup(name string) (Type, bool) {
	t, ok := s[name]
	return t, ok
}

// Apply replaces each free type-variable bound in s with its mapped type.
// Variables not bound in s are left unchanged; unchanged subtrees are shared.
func (s Subst) Apply(t Type) Type {
	if len(s) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if mapped, ok := s[t.Name]; ok {
			return mapped
		}
		return t
	case *App:
		var args []Type
		for i, arg := range t.Args {
			applied := s.Apply(arg)
			if applied != arg && args == nil {
				args = make([]Type, len(t.Args))
				copy(args, t.Args[:i])
			}
			if args != nil {
				args[i] = applied
			}
		}
		if args == nil {
			return t
		}
		return &App{Const: t.Const, Args: args}
	}
	return t
}

// ApplyScheme applies s beneath the quantifiers of sc. Names bound by a
// quantifier are not substituted within its body.
func (s Subst) ApplyScheme(sc Scheme) Scheme {
	if len(s) == 0 {
		return sc
	}
	switch sc := sc.(type) {
	case *Mono:
		t := s.Apply(sc.Type)
		if t == sc.Type {
			return sc
		}
		return &Mono{Type: t}
	case *Forall:
		inner := s
		if _, shadowed := s[sc.Bound]; shadowed {
			inner = s.without(sc.Bound)
		}
		body := inner.ApplyScheme(sc.Body)
		if body == sc.Body {
			return sc
		}
		return &Forall{Bound: sc.Bound, Body: body}
	}
	panic("unexpected scheme " + sc.SchemeName())
}

func (s Subst) without(name string) Subst {
	out := make(Subst, len(s))
	for k, v := range s {
		if k != name {
			out[k] = v
		}
	}
	return out
}

// Compose returns the substitution which applies s first and then next:
//
//	s.Compose(next).Apply(t) == next.Apply(s.Apply(t))
//
// next is applied to every type in s; entries of next are added for names not bound in s.
func (s Subst) Compose(next Subst) Subst {
	if len(s) == 0 {
		return next
	}
	if len(next) == 0 {
		return s
	}
	out := make(Subst, len(s)+len(next))
	for name, t := range next {
		out[name] = t
	}
	for name, t := range s {
		out[name] = next.Apply(t)
	}
	return out
}

// Names returns the names bound in s, sorted.
func (s Subst) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubstString returns a string representation of s: `{t0 ↦ Int, t1 ↦ t0 -> Int}`
func SubstString(s Subst) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range s.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(" ↦ ")
		sb.WriteString(TypeString(s[name]))
	}
	sb.WriteByte('}')
	return sb.String()
}
