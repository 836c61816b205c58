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
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/algw/hmerr"
	"github.com/wdamron/algw/internal/log"
	"github.com/wdamron/algw/prelude"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	preludePath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "algw [subcommand]",
		Short:         "algw\n type inference for the lambda calculus with let-polymorphism",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return errors.Wrapf(err, "invalid log level %q", opts.logLevel)
			}
			log.SetLevel(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.preludePath, "prelude", "", "load built-in bindings from a YAML file instead of the default prelude")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "minimum level of log records (debug, info, warn, error)")

	rootCmd.AddCommand(newREPLCmd(opts))
	rootCmd.AddCommand(newInferCmd(opts))
	return rootCmd
}

func (o *rootOptions) loadPrelude() (*prelude.Config, error) {
	if o.preludePath == "" {
		return prelude.Default(), nil
	}
	return prelude.LoadFile(o.preludePath)
}

// reportError writes err prefixed by its kind: `Syntax Error: ...` or `Type Error: ...`.
func reportError(w io.Writer, err error) {
	switch hmerr.CodeOf(err) {
	case hmerr.None:
		fmt.Fprintf(w, "Error: %s\n", err)
	case hmerr.Syntax:
		fmt.Fprintf(w, "Syntax Error: %s\n", err)
	default:
		fmt.Fprintf(w, "Type Error: %s\n", err)
	}
}
