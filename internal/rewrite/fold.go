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
)

// ruleHoistFunctionDeclarations is R12: a stable partition of a block's body
// that moves every FunctionDeclaration ahead of the statements that aren't
// one, preserving the relative order within each group. It runs on exit so
// it sees the body after any statement that R18 or R13/R14 may have already
// folded or removed.
func ruleHoistFunctionDeclarations(c *astutil.Cursor) {
	bl := c.Node().(ast.BlockLike)
	body := bl.Statements()

	decls := make([]ast.Stmt, 0, len(body))
	rest := make([]ast.Stmt, 0, len(body))
	reordered := false
	sawNonDecl := false
	for _, s := range body {
		if _, ok := s.(*ast.FunctionDeclaration); ok {
			if sawNonDecl {
				reordered = true
			}
			decls = append(decls, s)
		} else {
			sawNonDecl = true
			rest = append(rest, s)
		}
	}
	if !reordered {
		return
	}
	bl.SetStatements(append(decls, rest...))
	c.MarkChanged()
}

// ruleFoldSequences is §4.4's sequence folder. It runs after every other
// rule has had a chance to shrink a block's statement list (registration
// order within KindBlock puts the hoist first, the fold last), so it always
// sees the most-reduced shape a single pass can produce before deciding
// whether a run of statements collapses into one ExpressionStatement.
func ruleFoldSequences(analyzer astutil.Analyzer) astutil.HookFunc {
	return func(c *astutil.Cursor) {
		switch n := c.Node().(type) {
		case *ast.Program:
			out := foldStatementList(n.Body, analyzer)
			if !sameSlice(n.Body, out) {
				n.Body = out
				c.MarkChanged()
			}
		case *ast.BlockStatement:
			out := foldStatementList(n.Body, analyzer)
			if len(out) == 1 && !isRequiredBlockBody(c) && !isLexicalDeclaration(out[0]) {
				c.Replace(out[0])
				return
			}
			if !sameSlice(n.Body, out) {
				n.Body = out
				c.MarkChanged()
			}
		}
	}
}

// isRequiredBlockBody reports whether the BlockStatement at c is mandated
// by its parent's grammar (a function body, a try block, or a catch body),
// where a single surviving statement still can't be unwrapped to a bare
// statement.
func isRequiredBlockBody(c *astutil.Cursor) bool {
	p := c.Parent()
	if p == nil {
		return true // unknown context: conservatively keep the block
	}
	switch p.Node().(type) {
	case *ast.FunctionDeclaration, *ast.FunctionExpression, *ast.TryStatement, *ast.CatchClause:
		return true
	}
	return false
}

// foldStatementList implements the fold/convert pair of §4.4: run through
// stmts left to right, converting the longest expressible prefix into one
// joined sequence expression, emit the first inexpressible statement
// verbatim as a fence, and repeat on what's left.
func foldStatementList(stmts []ast.Stmt, analyzer astutil.Analyzer) []ast.Stmt {
	var out []ast.Stmt
	for len(stmts) > 0 {
		exprs, bailedAt := convertPrefix(stmts, analyzer)
		if len(exprs) == 1 {
			// A lone expressible statement that was already a bare
			// ExpressionStatement wrapping this exact expression needs no
			// new node — allocating one anyway would report a change every
			// single pass and defeat the fixed point.
			out = append(out, reuseOrWrapExpression(stmts[0], exprs[0]))
		} else if len(exprs) > 1 {
			out = append(out, &ast.ExpressionStatement{Expression: joinSequence(exprs)})
		}
		if bailedAt < 0 {
			break
		}
		out = append(out, stmts[bailedAt])
		stmts = stmts[bailedAt+1:]
	}
	return out
}

// reuseOrWrapExpression returns orig unchanged when it is already the
// ExpressionStatement that would wrap e, and a fresh wrapper otherwise (the
// genuine case: orig was an IfStatement or BlockStatement converted to an
// equivalent expression form).
func reuseOrWrapExpression(orig ast.Stmt, e ast.Expr) ast.Stmt {
	if es, ok := orig.(*ast.ExpressionStatement); ok && es.Expression == e {
		return es
	}
	return &ast.ExpressionStatement{Expression: e}
}

// convertPrefix converts as many leading statements of nodes as are
// expressible, returning their expressions and the index of the first
// statement it could not convert (-1 if all of nodes converted).
func convertPrefix(nodes []ast.Stmt, analyzer astutil.Analyzer) (exprs []ast.Expr, bailedAt int) {
	for i, s := range nodes {
		e, ok := expressible(s, analyzer)
		if !ok {
			return exprs, i
		}
		exprs = append(exprs, e)
	}
	return exprs, -1
}

// convertAll is convertPrefix without a bail: it demands every statement be
// expressible, returning nil if even one isn't. It backs the BlockStatement
// case of expressible itself, so a nested `{ a; b; }` folds into the outer
// sequence only when nothing inside it would otherwise need to stay a
// statement.
func convertAll(nodes []ast.Stmt, analyzer astutil.Analyzer) []ast.Expr {
	exprs, bailedAt := convertPrefix(nodes, analyzer)
	if bailedAt >= 0 {
		return nil
	}
	return exprs
}

// expressible reports the expression a single statement reduces to when it
// has no control-flow meaning beyond evaluation order, per §4.4's
// statement-shape table.
func expressible(s ast.Stmt, analyzer astutil.Analyzer) (ast.Expr, bool) {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		return n.Expression, true

	case *ast.IfStatement:
		if n.Alternate == nil {
			if _, empty := n.Consequent.(*ast.EmptyStatement); empty {
				return nil, false
			}
			ces, ok := n.Consequent.(*ast.ExpressionStatement)
			if !ok {
				return nil, false
			}
			return &ast.LogicalExpression{Operator: "&&", Left: n.Test, Right: ces.Expression}, true
		}
		if _, empty := n.Consequent.(*ast.EmptyStatement); empty {
			aes, ok := n.Alternate.(*ast.ExpressionStatement)
			if !ok {
				return nil, false
			}
			return &ast.LogicalExpression{Operator: "||", Left: n.Test, Right: aes.Expression}, true
		}
		if _, empty := n.Alternate.(*ast.EmptyStatement); empty {
			ces, ok := n.Consequent.(*ast.ExpressionStatement)
			if !ok {
				return nil, false
			}
			return &ast.LogicalExpression{Operator: "&&", Left: n.Test, Right: ces.Expression}, true
		}
		ces, cok := n.Consequent.(*ast.ExpressionStatement)
		aes, aok := n.Alternate.(*ast.ExpressionStatement)
		if !cok || !aok {
			return nil, false
		}
		return &ast.ConditionalExpression{Test: n.Test, Consequent: ces.Expression, Alternate: aes.Expression}, true

	case *ast.BlockStatement:
		inner := convertAll(n.Body, analyzer)
		if inner == nil {
			return nil, false
		}
		return joinSequence(inner), true

	default:
		return nil, false
	}
}

func joinSequence(exprs []ast.Expr) ast.Expr {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &ast.SequenceExpression{Expressions: exprs}
}

// isLexicalDeclaration reports whether s is a let/const declaration, which
// must keep its enclosing block (a var declaration has no such
// restriction: it isn't block-scoped, so unwrapping is always safe).
func isLexicalDeclaration(s ast.Stmt) bool {
	vd, ok := s.(*ast.VariableDeclaration)
	return ok && vd.DeclKind != ast.DeclVar
}

// sameSlice reports whether a and b have the same length and the same
// statement at every index, the
// fast path that lets ruleFoldSequences skip MarkChanged when foldStatementList
// made no change at all (the common case: most blocks have nothing to fold).
func sameSlice(a, b []ast.Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
