// Copyright 2018 The CUE Authors
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

// Package errors defines the error taxonomy of §7: malformed input, rule
// invariant violations, and non-terminating fixed points. All three carry
// the offending node so a caller can report where in the tree things went
// wrong, following the node-attached error style of the teacher's
// cue/errors.go (nodeError).
package errors

import (
	"fmt"

	"golang.org/x/xerrors"

	"corelang.org/simplify/ast"
)

// Kind classifies why simplify stopped.
type Kind uint8

const (
	// MalformedInput means a node's kind is unknown or a required
	// attribute is absent/ill-typed.
	MalformedInput Kind = iota
	// RuleViolation means a rule broke an invariant the core promises to
	// maintain (e.g. tried to remove a node that isn't in a list).
	RuleViolation
	// NonTerminating means the fixed-point iteration cap (§5) was hit.
	NonTerminating
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case RuleViolation:
		return "rule invariant violation"
	case NonTerminating:
		return "non-terminating fixed point"
	default:
		return "unknown error"
	}
}

// Error is the error type simplify.Simplify returns. It always identifies
// the node being processed when the failure was detected.
type Error struct {
	Kind Kind
	Node ast.Node
	Rule string // which rule was running, if any; empty for malformed input
	err  error
}

func (e *Error) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("%s: %s (rule %s, node %s)", e.Kind, e.err, e.Rule, nodeKind(e.Node))
	}
	return fmt.Sprintf("%s: %s (node %s)", e.Kind, e.err, nodeKind(e.Node))
}

func (e *Error) Unwrap() error { return e.err }

func nodeKind(n ast.Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Kind().String()
}

// Malformed builds a MalformedInput error.
func Malformed(n ast.Node, format string, args ...interface{}) *Error {
	return &Error{Kind: MalformedInput, Node: n, err: xerrors.Errorf(format, args...)}
}

// Violation builds a RuleViolation error naming the rule that misbehaved.
func Violation(n ast.Node, rule string, format string, args ...interface{}) *Error {
	return &Error{Kind: RuleViolation, Node: n, Rule: rule, err: xerrors.Errorf(format, args...)}
}

// NonTerminating builds a NonTerminating error carrying n. internal/rewrite's
// Run passes the root of the tree as it stood when the iteration cap was
// hit; the individual node whose transformation last changed is not
// recorded.
func NonTerminating(n ast.Node, cap int) *Error {
	return &Error{Kind: NonTerminating, Node: n, err: xerrors.Errorf("exceeded %d fixed-point iterations", cap)}
}

// Is supports errors.Is/xerrors.Is matching on Kind via a sentinel wrapper.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
