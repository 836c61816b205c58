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

// Name of the binary function-type constructor.
const ArrowName = "->"

// Type is the base interface for all monomorphic types.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string { return "Var" }
func (t *App) TypeName() string { return "App" }

var (
	_ Type = (*Var)(nil)
	_ Type = (*App)(nil)
)

// Unresolved type-variable: `t0`
type Var struct {
	Name string
}

// Type application: `Int`, `List a`, `a -> b`
//
// Nullary constructors are applications with no arguments. The function-type
// constructor is named "->" and always carries exactly two arguments.
type App struct {
	Const string
	Args  []Type
}

// Base types assigned to literals.
var (
	Int  Type = &App{Const: "Int"}
	Bool Type = &App{Const: "Bool"}
)

// Create a type-variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

// Create a nullary type constructor: `Int`
func NewConst(name string) *App { return &App{Const: name} }

// Create a function type: `from -> to`
func NewArrow(from, to Type) *App { return &App{Const: ArrowName, Args: []Type{from, to}} }

// IsArrow reports whether t is an application of the function-type constructor.
func IsArrow(t Type) bool {
	app, ok := t.(*App)
	return ok && app.Const == ArrowName
}

// Equal reports whether a and b are structurally equal. Constructor names and
// argument counts must both match.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *App:
		b, ok := b.(*App)
		if !ok || a.Const != b.Const || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Occurs reports whether the type-variable name appears free in t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == name
	case *App:
		for _, arg := range t.Args {
			if Occurs(name, arg) {
				return true
			}
		}
	}
	return false
}

// AlphaEquivalent reports whether a and b are equal up to a consistent,
// one-to-one renaming of type-variables.
func AlphaEquivalent(a, b Type) bool {
	return alphaEquivalent(a, b, make(map[string]string), make(map[string]string))
}

func alphaEquivalent(a, b Type, ab, ba map[string]string) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		if !ok {
			return false
		}
		if mapped, ok := ab[a.Name]; ok {
			return mapped == b.Name
		}
		if _, ok := ba[b.Name]; ok {
			return false
		}
		ab[a.Name], ba[b.Name] = b.Name, a.Name
		return true
	case *App:
		b, ok := b.(*App)
		if !ok || a.Const != b.Const || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !alphaEquivalent(a.Args[i], b.Args[i], ab, ba) {
				return false
			}
		}
		return true
	}
	return false
}
