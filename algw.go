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

// algw provides type inference for a Hindley-Milner type-system with let-polymorphism.
//
// Inference follows Algorithm W (Damas and Milner, 1982): types of expressions are computed bottom-up
// while substitutions learned through unification are threaded through the traversal. Let-bound
// names are generalized before the body of the let-expression is inferred, so each use of a let-bound
// name may be instantiated at a different type.
//
//
// Supported Features:
//
//   * Integer and boolean literals
//   * Single-argument functions and applications (multi-argument functions are curried)
//   * Polymorphic let-bindings
//   * Persistent type-environments which may be shared across concurrent inference sessions
//   * Type-annotated copies of expressions
//
//
// Links:
//
// Principal type-schemes for functional programs (Damas, Milner, 1982): https://doi.org/10.1145/582153.582176
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package algw
