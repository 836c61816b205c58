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

// FreeTypeVars returns the type-variables of t, in order of first occurrence.
func FreeTypeVars(t Type) []string {
	return appendFreeVars(nil, t, nil)
}

// FreeSchemeVars returns the type-variables of s which are not bound by one of its
// quantifiers, in order of first occurrence.
func FreeSchemeVars(s Scheme) []string {
	bound := BoundVars(s)
	return appendFreeVars(nil, Underlying(s), bound)
}

func appendFreeVars(names []string, t Type, bound []string) []string {
	switch t := t.(type) {
	case *Var:
		if contains(bound, t.Name) || contains(names, t.Name) {
			return names
		}
		return append(names, t.Name)
	case *App:
		for _, arg := range t.Args {
			names = appendFreeVars(names, arg, bound)
		}
	}
	return names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
