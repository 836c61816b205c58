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
	"strconv"

	"github.com/wdamron/algw/types"
)

// VarTracker allocates fresh type-variables named t0, t1, ...
//
// Names are pairwise-distinct until Reset is called. A VarTracker must not be
// shared between concurrent inference runs.
type VarTracker struct {
	NextId int
}

// Reset restarts naming from t0.
func (vt *VarTracker) Reset() { vt.NextId = 0 }

// New allocates a fresh type-variable.
func (vt *VarTracker) New() *types.Var {
	id := vt.NextId
	vt.NextId++
	return types.NewVar("t" + strconv.Itoa(id))
}

// NewList allocates n fresh type-variables.
func (vt *VarTracker) NewList(n int) []*types.Var {
	vars := make([]*types.Var, n)
	for i := range vars {
		vars[i] = vt.New()
	}
	return vars
}
