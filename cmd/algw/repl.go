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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wdamron/algw"
	"github.com/wdamron/algw/internal/log"
	"github.com/wdamron/algw/parser"
	"github.com/wdamron/algw/prelude"
	"github.com/wdamron/algw/types"
)

const syntaxHelp = `syntax: e ::= x | int | true | false | (e e ...) | (\x -> e) | (let x = e in e)
commands: :env (list the context), :help, :quit
`

func newREPLCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Infer the type of each expression read from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadPrelude()
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			interactive := false
			if f, ok := in.(*os.File); ok {
				interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
			}
			return runREPL(in, cmd.OutOrStdout(), cfg, interactive)
		},
	}
}

type repl struct {
	env         *algw.TypeEnv
	ctx         *algw.InferenceContext
	out         io.Writer
	interactive bool
	logger      *slog.Logger
}

// runREPL infers the type of each line read from in. The banner and prompt are only written in interactive sessions.
func runREPL(in io.Reader, out io.Writer, cfg *prelude.Config, interactive bool) error {
	r := &repl{
		env:         cfg.Env(),
		ctx:         algw.NewContext(),
		out:         out,
		interactive: interactive,
		logger:      log.Section(log.DefaultLogger, "repl"),
	}
	if interactive {
		fmt.Fprint(out, syntaxHelp)
		fmt.Fprintln(out, "Run in Context:")
		fmt.Fprintln(out, r.env.String())
	}

	scanner := bufio.NewScanner(in)
	r.prompt()
	for scanner.Scan() {
		if quit := r.eval(scanner.Text()); quit {
			return nil
		}
		r.prompt()
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

func (r *repl) prompt() {
	if r.interactive {
		fmt.Fprint(r.out, "> ")
	}
}

func (r *repl) eval(line string) (quit bool) {
	src := strings.TrimSpace(line)
	switch {
	case src == "":
		return false
	case src == ":quit" || src == ":q":
		return true
	case src == ":help":
		fmt.Fprint(r.out, syntaxHelp)
		return false
	case src == ":env":
		fmt.Fprint(r.out, r.env.String())
		return false
	case strings.HasPrefix(src, ":"):
		fmt.Fprintf(r.out, "Unknown command %s (try :help)\n", src)
		return false
	}

	// Each line is inferred independently; type-variables are named from t0 again:
	defer r.ctx.Reset()
	r.logger.Debug("eval", "src", src)

	expr, err := parser.ParseExpr(src)
	if err != nil {
		reportError(r.out, err)
		return false
	}
	_, t, err := r.ctx.Infer(expr, r.env)
	if err != nil {
		reportError(r.out, err)
		return false
	}
	fmt.Fprintf(r.out, "`%s` infer as `%s`\n", src, types.TypeString(t))
	return false
}
