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

// Package rewrite holds the rule table (§4.3), the sequence folder (§4.4),
// and the fixed-point controller (§4.5) built on top of ast/astutil. It is
// the direct generalization of the teacher's cmd/cue/cmd/fix.go, which runs
// a single astutil.Apply pass over one legacy syntax form, into a registered
// table of many rules iterated to a fixed point.
package rewrite

import (
	"corelang.org/simplify/ast"
	"corelang.org/simplify/ast/astutil"
)

// Name identifies a single rule or pass for Config.DisabledRules and trace
// output. These match the rule numbers of §4.3 except for ruleFold and
// ruleHoist, which name the sequence folding of §4.4 and the declaration
// hoist behind R12. The hoist is registered (and disabled) under ruleHoist;
// no hook is registered under R12 itself.
const (
	R1  = "R1"  // undefined -> void 0
	R2  = "R2"  // literal property key -> identifier
	R3  = "R3"  // computed member access -> dotted
	R4  = "R4"  // Number(x) -> +x
	R5  = "R5"  // String(x) -> x + ""
	R6  = "R6"  // IIFE callee parenthesization marker
	R7  = "R7"  // guarded "!a && b" -> "a || b"
	R8  = "R8"  // boolean literal -> negated number
	R9  = "R9"  // equality flip toward a canonical operand order
	R10 = "R10" // strict equality -> loose equality when types provably match
	R11 = "R11" // negated test -> flipped branches
	R12 = "R12" // function declaration hoist
	R13 = "R13" // adjacent same-kind declaration merge
	R14 = "R14" // declaration folded into a following for-init
	R15 = "R15" // single-statement loop body unwrap
	R16 = "R16" // expression statement folded into a following for-init
	R17 = "R17" // while -> for
	R18 = "R18" // if-cascade (ten sub-steps, applied in order)

	ruleFold  = "fold"  // §4.4 sequence folding
	ruleHoist = "hoist" // declaration-list reordering underlying R12
)

// Build returns the hook table for one Run call, wired against
// analyzer for the rules (R9, R10) that need to query purity or base-type
// identity of a sub-expression other than the Cursor's own node. disabled
// rule names are registered as no-ops so Config.DisabledRules can turn off
// individual rules without reshaping the table.
func Build(analyzer astutil.Analyzer, disabled map[string]bool, rt *tracker) *astutil.Hooks {
	h := astutil.NewHooks()

	reg := func(name string, fn astutil.HookFunc) astutil.HookFunc {
		if disabled[name] {
			return func(c *astutil.Cursor) {}
		}
		return func(c *astutil.Cursor) {
			rt.record(name)
			fn(c)
		}
	}

	h.OnExit(ast.KindIdentifier, reg(R1, ruleUndefinedToVoid))
	h.OnExit(ast.KindProperty, reg(R2, ruleLiteralKeyToIdentifier))
	h.OnExit(ast.KindMemberExpression, reg(R3, ruleComputedMemberToDotted))
	h.OnExit(ast.KindCallExpression, reg(R4, ruleNumberCallToUnaryPlus))
	h.OnExit(ast.KindCallExpression, reg(R5, ruleStringCallToConcat))
	h.OnExit(ast.KindCallExpression, reg(R6, ruleParenthesizeIIFE))
	h.OnExit(ast.KindLogicalExpression, reg(R7, ruleGuardedNegatedAnd))
	h.OnExit(ast.KindLiteral, reg(R8, ruleBooleanLiteralCompress))
	h.OnExit(ast.KindBinaryExpression, reg(R9, ruleEqualityFlip(analyzer)))
	h.OnExit(ast.KindBinaryExpression, reg(R10, ruleStrictToLooseEquality(analyzer)))
	h.OnExit(ast.KindConditionalExpression, reg(R11, ruleConditionalNegationFlip))
	h.OnExit(ast.KindVariableDeclaration, reg(R13, ruleMergeAdjacentDeclarations))
	h.OnEnter(ast.KindVariableDeclaration, reg(R14, ruleFoldDeclarationIntoFor))
	h.OnEnter(ast.KindExpressionStatement, reg(R16, ruleFoldExpressionIntoFor))
	h.OnExit(ast.KindFor, reg(R15, ruleUnwrapSingleStatementLoopBody))
	h.OnExit(ast.KindWhileStatement, reg(R17, ruleWhileToFor))
	h.OnExit(ast.KindIfStatement, reg(R18, ruleIfCascade(analyzer)))
	h.OnExit(ast.KindBlock, reg(ruleHoist, ruleHoistFunctionDeclarations))
	h.OnExit(ast.KindBlock, reg(ruleFold, ruleFoldSequences(analyzer)))

	return h
}

// --- R1 ---------------------------------------------------------------

func ruleUndefinedToVoid(c *astutil.Cursor) {
	id, ok := c.Node().(*ast.Identifier)
	if !ok || id.Name != "undefined" {
		return
	}
	// The walker never descends into a binding or property-key position
	// (see ast/astutil/apply.go), so every Identifier this hook sees is a
	// value reference, never a declaration or a non-computed key.
	c.Replace(voidZero())
}

func voidZero() ast.Expr {
	return &ast.UnaryExpression{Operator: "void", Argument: &ast.Literal{Value: float64(0)}, Prefix: true}
}

// --- R2 -----------------------------------------------------------------

func ruleLiteralKeyToIdentifier(c *astutil.Cursor) {
	p := c.Node().(*ast.Property)
	lit, ok := p.Key.(*ast.Literal)
	if !ok {
		return
	}
	s, ok := lit.Value.(string)
	if !ok || !ast.IsValidIdentifier(s) {
		return
	}
	p.Key = &ast.Identifier{Name: s}
	p.Computed = false
	c.MarkChanged()
}

// --- R3 -------------------------------------------------------------------

func ruleComputedMemberToDotted(c *astutil.Cursor) {
	m := c.Node().(*ast.MemberExpression)
	if !m.Computed {
		return
	}
	lit, ok := m.Property.(*ast.Literal)
	if !ok {
		return
	}
	s, ok := lit.Value.(string)
	if !ok || !ast.IsValidIdentifier(s) {
		return
	}
	m.Property = &ast.Identifier{Name: s}
	m.Computed = false
	c.MarkChanged()
}

// --- R4 / R5 / R6 -----------------------------------------------------

func ruleNumberCallToUnaryPlus(c *astutil.Cursor) {
	call := c.Node().(*ast.CallExpression)
	id, ok := call.Callee.(*ast.Identifier)
	if !ok || id.Name != "Number" || len(call.Arguments) != 1 {
		return
	}
	c.Replace(&ast.UnaryExpression{Operator: "+", Argument: call.Arguments[0], Prefix: true})
}

func ruleStringCallToConcat(c *astutil.Cursor) {
	call := c.Node().(*ast.CallExpression)
	id, ok := call.Callee.(*ast.Identifier)
	if !ok || id.Name != "String" || len(call.Arguments) != 1 {
		return
	}
	c.Replace(&ast.BinaryExpression{Operator: "+", Left: call.Arguments[0], Right: &ast.Literal{Value: ""}})
}

// ruleParenthesizeIIFE marks an immediately-invoked function expression so a
// later printing stage doesn't emit `function(){}()`, which a parser would
// read as a function declaration followed by a stray call. Wrapping the
// callee in `!` is idempotent: once wrapped, the callee is a
// UnaryExpression, not a FunctionExpression, so the type assertion below
// fails on any later pass.
func ruleParenthesizeIIFE(c *astutil.Cursor) {
	call := c.Node().(*ast.CallExpression)
	fn, ok := call.Callee.(*ast.FunctionExpression)
	if !ok {
		return
	}
	parent := c.Parent()
	if parent == nil {
		return
	}
	switch parent.Node().(type) {
	case *ast.ExpressionStatement, *ast.SequenceExpression:
	default:
		return
	}
	call.Callee = &ast.UnaryExpression{Operator: "!", Argument: fn, Prefix: true}
	c.MarkChanged()
}

// --- R7 -------------------------------------------------------------------

// ruleGuardedNegatedAnd resolves the first of spec.md §9's open questions:
// "!a && b" only folds to "a || b" when the result is discarded, since the
// transformation changes the expression's value (though never its control
// flow) whenever a is truthy: false before, a after. The clearest discarded-value
// context available to a statement-granularity pass is the expression of an
// ExpressionStatement, so the rule is gated on that.
func ruleGuardedNegatedAnd(c *astutil.Cursor) {
	le := c.Node().(*ast.LogicalExpression)
	if le.Operator != "&&" {
		return
	}
	un, ok := le.Left.(*ast.UnaryExpression)
	if !ok || un.Operator != "!" || !un.Prefix {
		return
	}
	parent := c.Parent()
	if parent == nil {
		return
	}
	if _, discarded := parent.Node().(*ast.ExpressionStatement); !discarded {
		return
	}
	le.Operator = "||"
	le.Left = un.Argument
	c.MarkChanged()
}

// --- R8 -------------------------------------------------------------------

func ruleBooleanLiteralCompress(c *astutil.Cursor) {
	lit := c.Node().(*ast.Literal)
	b, ok := lit.Value.(bool)
	if !ok {
		return
	}
	if b {
		c.Replace(&ast.UnaryExpression{Operator: "!", Argument: &ast.Literal{Value: float64(0)}, Prefix: true})
	} else {
		c.Replace(&ast.UnaryExpression{Operator: "!", Argument: &ast.Literal{Value: float64(1)}, Prefix: true})
	}
}

// --- R9 -------------------------------------------------------------------

// ruleEqualityFlip resolves spec.md §9's second open question: R9 fires
// whenever the right operand is pure, unconditionally swapping — except
// when the left operand is *also* pure, where swapping unconditionally
// would oscillate forever (both orderings satisfy "right is pure"). In that
// case the rule only swaps toward the structuralKey-ascending order, which
// is a fixed point: once Left's key <= Right's key, the condition below is
// false and the rule stops. When purity is asymmetric the swap is
// self-limiting anyway, since after one flip the new right operand is the
// formerly-impure side and the gate fails.
func ruleEqualityFlip(analyzer astutil.Analyzer) astutil.HookFunc {
	return func(c *astutil.Cursor) {
		be := c.Node().(*ast.BinaryExpression)
		if !ast.IsEqualityOperator(be.Operator) {
			return
		}
		if !analyzer.IsPure(be.Right) {
			return
		}
		if analyzer.IsPure(be.Left) && structuralKey(be.Left) <= structuralKey(be.Right) {
			return
		}
		be.Left, be.Right = be.Right, be.Left
		c.MarkChanged()
	}
}

// --- R10 ------------------------------------------------------------------

func ruleStrictToLooseEquality(analyzer astutil.Analyzer) astutil.HookFunc {
	return func(c *astutil.Cursor) {
		be := c.Node().(*ast.BinaryExpression)
		if !analyzer.BaseTypeMatches(be.Left, be.Right) {
			return
		}
		switch be.Operator {
		case ast.OpStrictEq:
			be.Operator = ast.OpEq
			c.MarkChanged()
		case ast.OpStrictNEq:
			be.Operator = ast.OpNotEq
			c.MarkChanged()
		}
	}
}

// --- R11 --------------------------------------------------------------

// negationFlip reports the de-negated form of test and whether test was
// negated at all: a `!x` unary strips to x, a `!==`/`!=` comparison flips
// its operator in place (the same *ast.BinaryExpression node, which is why
// this returns the node unchanged but still signals did==true).
func negationFlip(test ast.Expr) (flipped ast.Expr, did bool) {
	if un, ok := test.(*ast.UnaryExpression); ok && un.Operator == "!" && un.Prefix {
		return un.Argument, true
	}
	if be, ok := test.(*ast.BinaryExpression); ok {
		switch be.Operator {
		case "!==":
			be.Operator = "==="
			return be, true
		case "!=":
			be.Operator = "=="
			return be, true
		}
	}
	return test, false
}

func ruleConditionalNegationFlip(c *astutil.Cursor) {
	ce := c.Node().(*ast.ConditionalExpression)
	newTest, did := negationFlip(ce.Test)
	if !did {
		return
	}
	ce.Test = newTest
	ce.Consequent, ce.Alternate = ce.Alternate, ce.Consequent
	c.MarkChanged()
}

// --- R13 --------------------------------------------------------------

// ruleMergeAdjacentDeclarations absorbs the current declaration into its
// immediately preceding sibling when both are the same DeclKind, repeatedly
// collapsing a run of `var a = 1; var b = 2;` into one declaration. It
// mutates the previous sibling through the pointer Sibling returns (safe:
// VariableDeclaration is only ever held by pointer) and removes itself,
// which is always legal since RemoveSelf only ever touches the current
// index.
func ruleMergeAdjacentDeclarations(c *astutil.Cursor) {
	if !c.InList() {
		return
	}
	prevNode, ok := c.Sibling(-1)
	if !ok {
		return
	}
	prev, ok := prevNode.(*ast.VariableDeclaration)
	if !ok {
		return
	}
	cur := c.Node().(*ast.VariableDeclaration)
	if prev.DeclKind != cur.DeclKind {
		return
	}
	prev.Declarations = append(prev.Declarations, cur.Declarations...)
	c.RemoveSelf()
}

// --- R14 --------------------------------------------------------------

// ruleFoldDeclarationIntoFor looks forward (never backward, so it can always
// remove itself rather than a sibling) for a following ForStatement whose
// init either is absent or is already a same-kind VariableDeclaration, and
// prepends this declaration's declarators there.
func ruleFoldDeclarationIntoFor(c *astutil.Cursor) {
	if !c.InList() {
		return
	}
	nextNode, ok := c.Sibling(1)
	if !ok {
		return
	}
	forStmt, ok := nextNode.(*ast.ForStatement)
	if !ok {
		return
	}
	cur := c.Node().(*ast.VariableDeclaration)
	if forStmt.Init == nil {
		forStmt.Init = &ast.VariableDeclaration{
			DeclKind:     cur.DeclKind,
			Declarations: append([]*ast.VariableDeclarator(nil), cur.Declarations...),
		}
		c.RemoveSelf()
		return
	}
	initDecl, ok := forStmt.Init.(*ast.VariableDeclaration)
	if !ok || initDecl.DeclKind != cur.DeclKind {
		return
	}
	initDecl.Declarations = append(append([]*ast.VariableDeclarator(nil), cur.Declarations...), initDecl.Declarations...)
	c.RemoveSelf()
}

// --- R16 --------------------------------------------------------------

// ruleFoldExpressionIntoFor is R14's counterpart for a preceding expression
// statement: it folds into an absent or already-expression for-init,
// comma-joining with whatever expression was already there.
func ruleFoldExpressionIntoFor(c *astutil.Cursor) {
	if !c.InList() {
		return
	}
	nextNode, ok := c.Sibling(1)
	if !ok {
		return
	}
	forStmt, ok := nextNode.(*ast.ForStatement)
	if !ok {
		return
	}
	es := c.Node().(*ast.ExpressionStatement)
	switch init := forStmt.Init.(type) {
	case nil:
		forStmt.Init = es.Expression
	case ast.Expr:
		forStmt.Init = &ast.SequenceExpression{Expressions: []ast.Expr{es.Expression, init}}
	default:
		return // a VariableDeclaration init is R14's job, not this rule's
	}
	c.RemoveSelf()
}

// --- R15 --------------------------------------------------------------

// ruleUnwrapSingleStatementLoopBody applies to every LoopLike kind via the
// KindFor virtual registration. A lexical declaration is never unwrapped:
// `for (...) let x = 1;` is not valid grammar in the single-statement body
// position, the same restriction the teacher's parser enforces for
// if-branches.
func ruleUnwrapSingleStatementLoopBody(c *astutil.Cursor) {
	ll := c.Node().(ast.LoopLike)
	blk, ok := ll.LoopBody().(*ast.BlockStatement)
	if !ok || len(blk.Body) != 1 {
		return
	}
	inner := blk.Body[0]
	if isLexicalDeclaration(inner) {
		return
	}
	ll.SetLoopBody(inner)
	c.MarkChanged()
}

// --- R17 ------------------------------------------------------------------

func ruleWhileToFor(c *astutil.Cursor) {
	w := c.Node().(*ast.WhileStatement)
	c.Replace(&ast.ForStatement{Test: w.Test, Body: w.Body})
}
