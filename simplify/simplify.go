// Copyright 2019 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package simplify is the public entry point to the AST simplification pass
// described in full by SPEC_FULL.md: a visitor-driven tree transformer that
// runs a fixed table of local rewrite rules, plus a non-local sequence
// folder, to a fixed point. Everything below wires internal/rewrite and
// internal/analysis behind a small functional-options API, in the style of
// the teacher's own cue/ key-value option constructors.
package simplify

import (
	"corelang.org/simplify/ast"
	"corelang.org/simplify/ast/astutil"
	"corelang.org/simplify/internal/analysis"
	"corelang.org/simplify/internal/rewrite"
)

// Option configures a Simplify call.
type Option func(*rewrite.Config)

// WithMaxIterations overrides the fixed-point iteration cap (default
// rewrite.DefaultMaxIterations). Simplify returns a NonTerminating error
// (see the errors package) if the cap is reached before the tree stops
// changing.
func WithMaxIterations(n int) Option {
	return func(cfg *rewrite.Config) { cfg.MaxIterations = n }
}

// WithTrace registers fn to be called once per fixed-point pass with the
// iteration number and the deduplicated, sorted set of rule names that ran
// during that pass. It is a debugging aid, not a stable diagnostic API.
func WithTrace(fn func(iteration int, rules []string)) Option {
	return func(cfg *rewrite.Config) { cfg.Trace = fn }
}

// WithDisabledRules turns off the named rules (internal/rewrite's R1..R18,
// "hoist", and "fold" constants) without otherwise reshaping the rule
// table. It exists for isolating a single rule's effect in tests and tools.
func WithDisabledRules(names ...string) Option {
	return func(cfg *rewrite.Config) { cfg.DisabledRules = append(cfg.DisabledRules, names...) }
}

// WithAnalyzer supplies a scope analyzer other than the conservative
// default (internal/analysis.New), for embedders that already have real
// purity and type information from an earlier compiler pass.
func WithAnalyzer(a astutil.Analyzer) Option {
	return func(cfg *rewrite.Config) { cfg.Analyzer = a }
}

// Simplify runs the rewrite rules and sequence folder over root until no
// further change occurs, and returns the (possibly entirely different)
// resulting node. root is mutated in place in addition to being returned;
// callers that need the original tree intact must copy it first.
func Simplify(root ast.Node, opts ...Option) (ast.Node, error) {
	cfg := rewrite.Config{Analyzer: analysis.New()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return rewrite.Run(root, cfg)
}
