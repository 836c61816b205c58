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

package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/algw"
	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/parser"
	"github.com/wdamron/algw/types"
)

type inferOptions struct {
	scheme  bool
	explain bool
	debug   bool
}

func newInferCmd(root *rootOptions) *cobra.Command {
	opts := &inferOptions{}
	cmd := &cobra.Command{
		Use:   "infer [expression]",
		Short: "Infer the type of an expression (read from standard input when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			cfg, err := root.loadPrelude()
			if err != nil {
				return err
			}
			return runInfer(cmd.OutOrStdout(), src, cfg.Env(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.scheme, "scheme", false, "print the generalized type-scheme")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print the inferred type of every sub-expression")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "dump the parsed expression tree")
	return cmd
}

func readSource(in io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "reading expression")
	}
	return string(data), nil
}

func runInfer(out io.Writer, src string, env *algw.TypeEnv, opts *inferOptions) error {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return err
	}
	if opts.debug {
		pretty.Fprintf(out, "%# v\n", expr)
	}

	ctx := algw.NewContext()
	if opts.explain {
		annotated, err := ctx.Annotate(expr, env)
		if err != nil {
			return err
		}
		ast.WalkExpr(annotated, func(e ast.Expr) {
			fmt.Fprintf(out, "%s : %s\n", ast.ExprString(e), types.TypeString(e.Type()))
		})
		ctx.Reset()
	}

	if opts.scheme {
		scheme, err := ctx.InferScheme(expr, env)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, types.SchemeString(scheme))
		return nil
	}
	_, t, err := ctx.Infer(expr, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, types.TypeString(t))
	return nil
}
