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

// ruleIfCascade runs R18's ten sub-steps, in the fixed order spec.md §4.3
// requires, against a single IfStatement. Steps 3 through 7 replace the
// statement outright (a different node kind entirely), so each calls
// Cursor.Replace and returns immediately — running a later step against ifs
// after the node it described has already been swapped out would mutate a
// detached struct. Steps 1, 2, 8, and 9 are narrow edits to ifs's own fields
// (and, for 8, its following siblings) and fall through to the steps after
// them. Step 10 edits ifs in place, then calls Cursor.Revisit and returns.
func ruleIfCascade(analyzer astutil.Analyzer) astutil.HookFunc {
	return func(c *astutil.Cursor) {
		ifs := c.Node().(*ast.IfStatement)

		// 1. Coerce single-statement block branches (the same lexical-
		// declaration exception as R15's loop-body unwrap: a bare let/const
		// can't sit directly in a branch position).
		if unwrapBranch(&ifs.Consequent) {
			c.MarkChanged()
		}
		if ifs.Alternate != nil && unwrapBranch(&ifs.Alternate) {
			c.MarkChanged()
		}

		// 2. Negation flip (R11's helper, reused): only meaningful with two
		// branches to swap.
		if ifs.Alternate != nil {
			if newTest, did := negationFlip(ifs.Test); did {
				ifs.Test = newTest
				ifs.Consequent, ifs.Alternate = ifs.Alternate, ifs.Consequent
				c.MarkChanged()
			}
		}

		// 3. Guarded expression: no alternate, consequent is a bare
		// expression statement, and the statement's value is not a
		// completion record.
		if ifs.Alternate == nil {
			if ces, ok := ifs.Consequent.(*ast.ExpressionStatement); ok && !c.IsCompletionRecord() {
				c.Replace(&ast.ExpressionStatement{
					Expression: &ast.LogicalExpression{Operator: "&&", Left: ifs.Test, Right: ces.Expression},
				})
				return
			}
		}

		// 4. Ternary: both branches are bare expression statements.
		if ifs.Alternate != nil {
			ces, cok := ifs.Consequent.(*ast.ExpressionStatement)
			aes, aok := ifs.Alternate.(*ast.ExpressionStatement)
			if cok && aok {
				c.Replace(&ast.ExpressionStatement{
					Expression: &ast.ConditionalExpression{Test: ifs.Test, Consequent: ces.Expression, Alternate: aes.Expression},
				})
				return
			}
		}

		// 5. Dual return: both branches return, and nothing follows this
		// statement in its list (a following statement would become
		// unreachable dead code the fold must not silently absorb).
		if ifs.Alternate != nil {
			cret, cok := ifs.Consequent.(*ast.ReturnStatement)
			aret, aok := ifs.Alternate.(*ast.ReturnStatement)
			if cok && aok {
				if _, hasNext := c.Sibling(1); !hasNext {
					c.Replace(&ast.ReturnStatement{Argument: &ast.ConditionalExpression{
						Test:       ifs.Test,
						Consequent: argOrVoidZero(cret.Argument),
						Alternate:  argOrVoidZero(aret.Argument),
					}})
					return
				}
			}
		}

		if ifs.Alternate == nil {
			if cret, ok := ifs.Consequent.(*ast.ReturnStatement); ok {
				if nextNode, hasNext := c.Sibling(1); hasNext {
					// 6. Return, next statement is also a return: absorb it.
					if nret, ok := nextNode.(*ast.ReturnStatement); ok {
						c.RemoveFollowing(1)
						c.Replace(&ast.ReturnStatement{Argument: &ast.ConditionalExpression{
							Test:       ifs.Test,
							Consequent: argOrVoidZero(cret.Argument),
							Alternate:  argOrVoidZero(nret.Argument),
						}})
						return
					}
					// 7. Return, the next statement is the last statement of
					// a function body and is a bare expression: fold it in as
					// a discarded value via void. Like step 10, this is
					// limited to a function body, where nothing runs after
					// that last statement.
					if _, hasNextNext := c.Sibling(2); !hasNextNext && isFunctionBody(c.Parent()) {
						if nes, ok := nextNode.(*ast.ExpressionStatement); ok {
							c.RemoveFollowing(1)
							voided := &ast.UnaryExpression{Operator: "void", Argument: nes.Expression, Prefix: true}
							if cret.Argument != nil {
								c.Replace(&ast.ReturnStatement{Argument: &ast.ConditionalExpression{
									Test: ifs.Test, Consequent: cret.Argument, Alternate: voided,
								}})
							} else {
								c.Replace(&ast.ReturnStatement{
									Argument: &ast.LogicalExpression{Operator: "||", Left: ifs.Test, Right: voided},
								})
							}
							return
						}
					}
				}
			}
		}

		// 8. Lift an else after a returning consequent: once the consequent
		// definitely returns on every path, the alternate no longer needs
		// its own branch — splice its statements in after this one and
		// drop it. Requires a containing list to splice into.
		if ifs.Alternate != nil && consequentAlwaysReturns(ifs.Consequent) && c.InList() {
			tail := blockOrSingle(ifs.Alternate)
			for i := len(tail) - 1; i >= 0; i-- {
				c.InsertAfter(tail[i])
			}
			ifs.Alternate = nil
			c.MarkChanged()
		}

		// 9. If-in-if fold: a consequent that is itself a bare if (no
		// alternate of its own) merges its test and consequent up a level.
		if inner, ok := ifs.Consequent.(*ast.IfStatement); ok && inner.Alternate == nil {
			ifs.Test = &ast.LogicalExpression{Operator: "&&", Left: ifs.Test, Right: inner.Test}
			ifs.Consequent = inner.Consequent
			c.MarkChanged()
		}

		// 10. Invert-and-consume tail: a bare `if (t) return;` in a
		// function body's statement list absorbs everything after it by
		// inverting its test and making the rest its consequent, saving the
		// need to repeat that tail in an else.
		if ifs.Alternate == nil && c.InList() && isFunctionBody(c.Parent()) {
			if ret, ok := ifs.Consequent.(*ast.ReturnStatement); ok && ret.Argument == nil {
				var tail []ast.Stmt
				for {
					nxt, ok := c.Sibling(1)
					if !ok {
						break
					}
					tail = append(tail, nxt.(ast.Stmt))
					c.RemoveFollowing(1)
				}
				if len(tail) > 0 {
					ifs.Test = invertTest(ifs.Test)
					if len(tail) == 1 {
						ifs.Consequent = tail[0]
					} else {
						ifs.Consequent = &ast.BlockStatement{Body: tail}
					}
					c.Revisit()
					return
				}
			}
		}
	}
}

// unwrapBranch replaces *branch with its sole inner statement when *branch
// is a one-statement block whose statement isn't a lexical declaration, and
// reports whether it did so.
func unwrapBranch(branch *ast.Stmt) bool {
	blk, ok := (*branch).(*ast.BlockStatement)
	if !ok || len(blk.Body) != 1 {
		return false
	}
	inner := blk.Body[0]
	if isLexicalDeclaration(inner) {
		return false
	}
	*branch = inner
	return true
}

// argOrVoidZero fills in a missing return value with `void 0` so folding a
// bare `return;` into a ConditionalExpression branch never leaves a nil
// Expr field, which would violate the AST's own well-formedness.
func argOrVoidZero(e ast.Expr) ast.Expr {
	if e == nil {
		return voidZero()
	}
	return e
}

// consequentAlwaysReturns reports whether s is a ReturnStatement, or a block
// whose last statement is (step 1 only unwraps one-statement blocks, so a
// longer block ending in a return reaches step 8 still wrapped).
func consequentAlwaysReturns(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.ReturnStatement:
		return true
	case *ast.BlockStatement:
		if len(n.Body) == 0 {
			return false
		}
		_, ok := n.Body[len(n.Body)-1].(*ast.ReturnStatement)
		return ok
	}
	return false
}

// blockOrSingle flattens a Stmt into the list of statements it should
// contribute when spliced into a surrounding list: a block's own body, or a
// single-element slice for anything else.
func blockOrSingle(s ast.Stmt) []ast.Stmt {
	if blk, ok := s.(*ast.BlockStatement); ok {
		return blk.Body
	}
	return []ast.Stmt{s}
}

// isFunctionBody reports whether parent is the outermost BlockStatement of
// a function body, the context steps 7 and 10 restrict themselves to so
// they never reorder statements against a loop's or a try-block's control
// flow.
func isFunctionBody(parent *astutil.Cursor) bool {
	if parent == nil {
		return false
	}
	if _, ok := parent.Node().(*ast.BlockStatement); !ok {
		return false
	}
	grandparent := parent.Parent()
	if grandparent == nil {
		return false
	}
	switch grandparent.Node().(type) {
	case *ast.FunctionDeclaration, *ast.FunctionExpression:
		return true
	}
	return false
}

// invertTest produces the logical negation of test, preferring to toggle an
// existing !/!=/!== rather than double-wrap.
func invertTest(test ast.Expr) ast.Expr {
	if un, ok := test.(*ast.UnaryExpression); ok && un.Operator == "!" && un.Prefix {
		return un.Argument
	}
	if be, ok := test.(*ast.BinaryExpression); ok {
		switch be.Operator {
		case "!=":
			be.Operator = "=="
			return be
		case "!==":
			be.Operator = "==="
			return be
		case "==":
			be.Operator = "!="
			return be
		case "===":
			be.Operator = "!=="
			return be
		}
	}
	return &ast.UnaryExpression{Operator: "!", Argument: test, Prefix: true}
}
