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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// Printing positions:
const (
	topPos = iota
	domainPos
	argPos
)

// TypeString returns a string representation of a Type.
//
// Function types are printed infix (`a -> b`); other constructors are printed
// prefix (`List a`). Arrow domains which are functions, and constructor arguments
// which are not nullary, are parenthesized.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, topPos, t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a Scheme: `∀a.a -> List a`
func SchemeString(s Scheme) string {
	p := newTypePrinter()
	schemeString(p, s)
	str := p.sb.String()
	p.Release()
	return str
}

func schemeString(p *typePrinter, s Scheme) {
	switch s := s.(type) {
	case *Mono:
		typeString(p, topPos, s.Type)
	case *Forall:
		p.sb.WriteString("∀")
		p.sb.WriteString(s.Bound)
		p.sb.WriteByte('.')
		schemeString(p, s.Body)
	default:
		panic("unexpected scheme " + s.SchemeName())
	}
}

func typeString(p *typePrinter, pos int, t Type) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(t.Name)

	case *App:
		if IsArrow(t) {
			if len(t.Args) != 2 {
				panic("types: function type requires 2 arguments, found " + strconv.Itoa(len(t.Args)))
			}
			if pos != topPos {
				p.sb.WriteByte('(')
			}
			typeString(p, domainPos, t.Args[0])
			p.sb.WriteString(" -> ")
			typeString(p, topPos, t.Args[1])
			if pos != topPos {
				p.sb.WriteByte(')')
			}
			return
		}
		if len(t.Args) == 0 {
			p.sb.WriteString(t.Const)
			return
		}
		if pos == argPos {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString(t.Const)
		for _, arg := range t.Args {
			p.sb.WriteByte(' ')
			typeString(p, argPos, arg)
		}
		if pos == argPos {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")

	default:
		panic("unexpected type " + t.TypeName())
	}
}
