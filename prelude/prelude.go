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

// Package prelude loads the built-in bindings of the type-environment from YAML.
package prelude

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/algw"
	"github.com/wdamron/algw/ast"
	"github.com/wdamron/algw/internal/log"
	"github.com/wdamron/algw/parser"
	"github.com/wdamron/algw/types"
)

//go:embed prelude.yaml
var defaultPrelude []byte

var logger = log.Section(log.DefaultLogger, "prelude")

// Config is the top-level prelude configuration.
type Config struct {
	Bindings []Binding `yaml:"bindings"`
}

// Binding declares the type-scheme of a built-in name.
type Binding struct {
	// Name is the identifier bound in the environment (e.g. "isNull").
	Name string `yaml:"name"`
	// Type is the signature of the binding (e.g. "forall a. a -> Bool").
	// Type-variables which are not explicitly quantified are quantified implicitly.
	Type string `yaml:"type"`
	// Doc is an optional description, listed by the REPL.
	Doc string `yaml:"doc,omitempty"`

	scheme types.Scheme
}

// Scheme returns the parsed signature of b. Schemes are available after a configuration has been validated.
func (b Binding) Scheme() types.Scheme { return b.scheme }

// Default returns the embedded prelude.
func Default() *Config {
	cfg, err := Parse(defaultPrelude, "prelude.yaml")
	if err != nil {
		logger.Error("failed to load embedded prelude", "err", err)
		panic(err.Error())
	}
	return cfg
}

// Load reads and validates a prelude from r.
func Load(r io.Reader) (*Config, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, errors.Wrap(err, "reading prelude")
	}
	return Parse(buf.Bytes(), "<input>")
}

// LoadFile reads and validates the prelude at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading prelude %s", path)
	}
	return Parse(data, path)
}

// Parse validates prelude content. The path argument is used only for error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	logger.Debug("loaded prelude", "path", path, "bindings", len(cfg.Bindings))
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	seen := make(map[string]bool, len(c.Bindings))
	for i := range c.Bindings {
		b := &c.Bindings[i]
		if b.Name == "" {
			return errors.Errorf("%s: bindings[%d]: name is required", path, i)
		}
		e, err := parser.ParseExpr(b.Name)
		if _, ok := e.(*ast.Var); err != nil || !ok {
			return errors.Errorf("%s: bindings[%d]: %q is not a valid identifier", path, i, b.Name)
		}
		if seen[b.Name] {
			return errors.Errorf("%s: bindings[%d]: duplicate binding %q", path, i, b.Name)
		}
		seen[b.Name] = true

		if b.Type == "" {
			return errors.Errorf("%s: bindings[%d] (%s): type is required", path, i, b.Name)
		}
		scheme, err := parser.ParseScheme(b.Type)
		if err != nil {
			return errors.Wrapf(err, "%s: bindings[%d] (%s): invalid type", path, i, b.Name)
		}
		b.scheme = closeScheme(scheme)
		logger.Debug("binding", "name", b.Name, "scheme", types.SchemeString(b.scheme))
	}
	return nil
}

// closeScheme quantifies the free type-variables of s, so built-in bindings never share type-variables.
func closeScheme(s types.Scheme) types.Scheme {
	free := types.FreeSchemeVars(s)
	if len(free) == 0 {
		return s
	}
	return types.NewForall(append(types.BoundVars(s), free...), types.Underlying(s))
}

// Env returns a type-environment containing the bindings of c.
func (c *Config) Env() *algw.TypeEnv {
	env := algw.NewTypeEnv()
	for _, b := range c.Bindings {
		env = env.Extend(b.Name, b.scheme)
	}
	return env
}

// Lookup returns the binding named name.
func (c *Config) Lookup(name string) (Binding, bool) {
	for _, b := range c.Bindings {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}
