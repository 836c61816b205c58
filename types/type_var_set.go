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
	"github.com/benbjohnson/immutable"
)

var emptyVarMap = immutable.NewSortedMap[string, struct{}](immutable.NewComparer(""))

// EmptyTypeVarSet contains no type-variables.
var EmptyTypeVarSet = TypeVarSet{emptyVarMap}

// TypeVarSet is an immutable set of type-variable names, iterated in sorted order.
type TypeVarSet struct {
	m *immutable.SortedMap[string, struct{}]
}

// Create a set containing the given names.
func NewTypeVarSet(names ...string) TypeVarSet {
	b := immutable.NewSortedMapBuilder[string, struct{}](immutable.NewComparer(""))
	for _, name := range names {
		b.Set(name, struct{}{})
	}
	return TypeVarSet{b.Map()}
}

// Get the number of names in the set.
func (s TypeVarSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Has reports whether name is in the set.
func (s TypeVarSet) Has(name string) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(name)
	return ok
}

// Add returns a copy of the set containing name.
func (s TypeVarSet) Add(name string) TypeVarSet {
	m := s.m
	if m == nil {
		m = emptyVarMap
	}
	return TypeVarSet{m.Set(name, struct{}{})}
}

// Union returns a set containing the names of both sets.
func (s TypeVarSet) Union(other TypeVarSet) TypeVarSet {
	if s.Len() < other.Len() {
		s, other = other, s
	}
	other.Range(func(name string) bool {
		if !s.Has(name) {
			s = s.Add(name)
		}
		return true
	})
	return s
}

// Iterate over names in the set, in sorted order.
// If f returns false, iteration will be stopped.
func (s TypeVarSet) Range(f func(string) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		name, _, _ := iter.Next()
		if !f(name) {
			return
		}
	}
}

// Items returns the names in the set, sorted.
func (s TypeVarSet) Items() []string {
	names := make([]string, 0, s.Len())
	s.Range(func(name string) bool {
		names = append(names, name)
		return true
	})
	return names
}
