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

// Package analysis provides a conservative, self-contained implementation
// of the three predicates the core only consumes through an interface (§6):
// purity, base-type identity, and completion-record position. In a full
// minifier pipeline these live in
// a separate scope analyzer; this package exists so the simplify pass is
// runnable on its own, and is deliberately sound-but-incomplete — it never
// reports something impure as pure, but it is free to report something
// pure as impure (and a rewrite rule then simply doesn't fire).
package analysis

import (
	"corelang.org/simplify/ast"
	"corelang.org/simplify/ast/astutil"
)

// Analyzer is the default astutil.Analyzer. It has no mutable state: every
// method is a pure function of its arguments, as §6 requires of the
// environment's predicates.
type Analyzer struct{}

// New returns the default Analyzer.
func New() *Analyzer { return &Analyzer{} }

// IsPure reports whether evaluating e can neither throw nor have an
// observable side effect. Literals, identifier references (reading a
// binding can throw only under a temporal-dead-zone access this analyzer
// doesn't model, so references are treated as pure, matching how real
// minifiers reason about this), and structural expressions built entirely
// from pure sub-expressions are pure. Calls, member access (the object may
// be null/undefined, and property access or a getter may throw), and
// assignment-shaped unary operators (++/--) are never pure.
func (a *Analyzer) IsPure(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.Identifier:
		return true
	case *ast.Literal:
		return true
	case *ast.UnaryExpression:
		switch n.Operator {
		case "++", "--", "delete":
			return false
		}
		return a.IsPure(n.Argument)
	case *ast.BinaryExpression:
		return a.IsPure(n.Left) && a.IsPure(n.Right)
	case *ast.LogicalExpression:
		return a.IsPure(n.Left) && a.IsPure(n.Right)
	case *ast.ConditionalExpression:
		return a.IsPure(n.Test) && a.IsPure(n.Consequent) && a.IsPure(n.Alternate)
	case *ast.SequenceExpression:
		for _, x := range n.Expressions {
			if !a.IsPure(x) {
				return false
			}
		}
		return true
	case *ast.FunctionExpression:
		// Constructing a closure has no side effect; calling it might, but
		// that's a separate node.
		return true
	case *ast.CallExpression, *ast.MemberExpression, *ast.AssignmentExpression:
		return false
	}
	return false
}

// BaseTypeMatches reports whether a and b are provably the same primitive
// type tag (boolean, number, string) on every execution. This analyzer only
// proves the easy cases: two literals of the same Go dynamic type, or two
// expressions it can show reduce to the same literal type through purely
// structural means. Anything else is reported as not matching — R10 simply
// won't fire, which is always safe.
func (a *Analyzer) BaseTypeMatches(x, y ast.Expr) bool {
	tx, ok := a.literalTypeTag(x)
	if !ok {
		return false
	}
	ty, ok := a.literalTypeTag(y)
	if !ok {
		return false
	}
	return tx == ty
}

// literalTypeTag reports the primitive type tag an expression is
// structurally guaranteed to produce, if this analyzer can tell.
func (a *Analyzer) literalTypeTag(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case *ast.Literal:
		switch n.Value.(type) {
		case bool:
			return "boolean", true
		case float64:
			return "number", true
		case string:
			return "string", true
		case nil:
			return "", false // null has its own tag; never treated as matching
		}
	case *ast.UnaryExpression:
		switch n.Operator {
		case "!":
			return "boolean", true
		case "void":
			return "", false // undefined; deliberately not unified with any tag
		case "+", "-", "~":
			return "number", true
		case "typeof":
			return "string", true
		}
	case *ast.BinaryExpression:
		if n.Operator == "+" {
			// Ambiguous in general (string concatenation vs numeric add);
			// only safe to call when both operands are themselves known
			// numbers or both are known strings.
			lt, lok := a.literalTypeTag(n.Left)
			rt, rok := a.literalTypeTag(n.Right)
			if lok && rok && lt == rt && (lt == "number" || lt == "string") {
				return lt, true
			}
			return "", false
		}
		switch n.Operator {
		case "-", "*", "/", "%", "**", "|", "&", "^", "<<", ">>", ">>>":
			return "number", true
		case "==", "!=", "===", "!==", "<", ">", "<=", ">=", "in", "instanceof":
			return "boolean", true
		}
	case *ast.LogicalExpression:
		lt, lok := a.literalTypeTag(n.Left)
		rt, rok := a.literalTypeTag(n.Right)
		if lok && rok && lt == rt {
			return lt, true
		}
	}
	return "", false
}

// IsCompletionRecord reports whether the statement at c's current position
// may be observed by the enclosing construct. This package resolves the
// open question spec.md §9 leaves to the environment conservatively: the
// final statement of a Program is always a completion record (its value is
// observable the way a top-level `eval` result is), and nothing else is,
// since this analyzer does not track whether an enclosing arrow body or
// do-expression makes an inner statement's value observable.
func (a *Analyzer) IsCompletionRecord(c *astutil.Cursor) bool {
	parent := c.Parent()
	if parent == nil {
		return false
	}
	prog, ok := parent.Node().(*ast.Program)
	if !ok {
		return false
	}
	return c.Index() == len(prog.Body)-1
}
