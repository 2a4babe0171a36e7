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

package rewrite

import (
	"corelang.org/simplify/ast"
	"corelang.org/simplify/ast/astutil"
	"corelang.org/simplify/errors"
)

// DefaultMaxIterations is the iteration cap §5 asks for as defense in depth
// against a rule the well-founded-measure argument failed to anticipate.
// Every documented rule in this package converges in at most a handful of
// passes over any real program; 16 leaves generous headroom without letting
// a runaway rule spin unboundedly.
const DefaultMaxIterations = 16

// Config controls one Run call.
type Config struct {
	// Analyzer supplies the purity, base-type, and completion-record
	// predicates (§6). Callers of Run must set this; simplify.Simplify
	// defaults it to internal/analysis's conservative implementation.
	Analyzer astutil.Analyzer
	// MaxIterations overrides DefaultMaxIterations; zero keeps the default.
	MaxIterations int
	// DisabledRules names rules (the R1..R18, "hoist", and "fold" constants
	// of this package) to register as no-ops, for callers isolating one
	// rule's effect.
	DisabledRules []string
	// Trace, if non-nil, is called once per iteration with the
	// deduplicated, sorted set of rule names that ran during that pass.
	Trace func(iteration int, rules []string)
}

// Run iterates astutil.Apply over root, using the rule table built from
// cfg.Analyzer, until a pass makes no change (the fixed point of §4.5) or
// cfg.MaxIterations passes have run without reaching one, in which case it
// returns an *errors.Error of Kind NonTerminating.
func Run(root ast.Node, cfg Config) (ast.Node, error) {
	max := cfg.MaxIterations
	if max <= 0 {
		max = DefaultMaxIterations
	}

	disabled := map[string]bool{}
	for _, name := range cfg.DisabledRules {
		disabled[name] = true
	}

	rt := &tracker{}
	hooks := Build(cfg.Analyzer, disabled, rt)

	node := root
	for i := 0; i < max; i++ {
		rt.reset()
		next, changed, err := apply(node, hooks, cfg.Analyzer, rt)
		if err != nil {
			return node, err
		}
		node = next
		if cfg.Trace != nil {
			cfg.Trace(i, rt.dedupedNames())
		}
		if !changed {
			return node, nil
		}
	}
	return node, errors.NonTerminating(node, max)
}

// apply runs one astutil.Apply pass, turning the two panic values §7
// documents as recoverable (an unrecognized node kind, a Cursor mutation
// called outside its stated precondition) into the matching *errors.Error
// kind instead of letting them unwind past Run. Any other panic is a
// programmer error in this package and is left to propagate.
func apply(root ast.Node, hooks *astutil.Hooks, analyzer astutil.Analyzer, rt *tracker) (result ast.Node, changed bool, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case astutil.UnknownNodeKind:
			err = errors.Malformed(e.Node, "unrecognized node kind in input tree")
		case astutil.CursorPrecondition:
			err = errors.Violation(e.Node, rt.current(), e.Msg)
		default:
			panic(r)
		}
	}()
	result, changed = astutil.Apply(root, hooks, analyzer)
	return result, changed, nil
}
