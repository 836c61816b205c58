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

// Scheme is the base interface for polymorphic types. A scheme is a monomorphic
// type closed under zero or more universal quantifiers.
type Scheme interface {
	SchemeName() string
}

func (s *Mono) SchemeName() string   { return "Mono" }
func (s *Forall) SchemeName() string { return "Forall" }

var (
	_ Scheme = (*Mono)(nil)
	_ Scheme = (*Forall)(nil)
)

// Unquantified type: `Int -> Int`
type Mono struct {
	Type Type
}

// Universal quantifier: `∀a. a -> List a`
//
// Nested binders are represented by nesting: ∀a.∀b. a -> b is
// Forall{a, Forall{b, Mono{a -> b}}}.
type Forall struct {
	Bound string
	Body  Scheme
}

// Wrap t in quantifiers for each bound name. The first name becomes the outermost binder.
func NewForall(bound []string, t Type) Scheme {
	var s Scheme = &Mono{Type: t}
	for i := len(bound) - 1; i >= 0; i-- {
		s = &Forall{Bound: bound[i], Body: s}
	}
	return s
}

// BoundVars returns the quantified names of s, outermost first.
func BoundVars(s Scheme) []string {
	var bound []string
	for {
		q, ok := s.(*Forall)
		if !ok {
			return bound
		}
		bound = append(bound, q.Bound)
		s = q.Body
	}
}

// Underlying returns the monomorphic type beneath all quantifiers of s.
func Underlying(s Scheme) Type {
	for {
		switch q := s.(type) {
		case *Mono:
			return q.Type
		case *Forall:
			s = q.Body
		default:
			panic("unexpected scheme " + s.SchemeName())
		}
	}
}
