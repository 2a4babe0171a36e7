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

package astutil_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"corelang.org/simplify/ast"
	"corelang.org/simplify/ast/astutil"
	"corelang.org/simplify/internal/analysis"
)

// fakeAnalyzer treats every expression as pure and every base type as
// unmatched; it exists so these tests can drive Apply without depending on
// internal/analysis.
type fakeAnalyzer struct{}

func (fakeAnalyzer) IsPure(ast.Expr) bool                    { return true }
func (fakeAnalyzer) BaseTypeMatches(ast.Expr, ast.Expr) bool { return false }
func (fakeAnalyzer) IsCompletionRecord(*astutil.Cursor) bool { return false }

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func litNum(f float64) *ast.Literal { return &ast.Literal{Value: f} }

func exprStmt(e ast.Expr) *ast.ExpressionStatement { return &ast.ExpressionStatement{Expression: e} }

func TestApplyVisitsEveryIdentifierExactlyOnce(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		exprStmt(&ast.BinaryExpression{Operator: "+", Left: ident("a"), Right: ident("b")}),
		exprStmt(ident("c")),
	}}

	var seen []string
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindIdentifier, func(c *astutil.Cursor) {
		seen = append(seen, c.Node().(*ast.Identifier).Name)
	})

	_, changed := astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.False(t, changed, "a read-only hook table must never report a change")
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestApplyReplaceRevisitsTheNewNode(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{exprStmt(ident("x"))}}

	depth := 0
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindIdentifier, func(c *astutil.Cursor) {
		id := c.Node().(*ast.Identifier)
		if id.Name == "x" {
			depth++
			c.Replace(ident("y"))
		}
	})

	got, changed := astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.True(t, changed)
	assert.Equal(t, 1, depth, "the revisited replacement (\"y\") must not match the hook's \"x\" test again")
	want := &ast.Program{Body: []ast.Stmt{exprStmt(ident("y"))}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyRemoveSelfShiftsSubsequentSiblings(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		exprStmt(ident("a")),
		exprStmt(ident("b")),
		exprStmt(ident("c")),
	}}

	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindExpressionStatement, func(c *astutil.Cursor) {
		es := c.Node().(*ast.ExpressionStatement)
		if es.Expression.(*ast.Identifier).Name == "b" {
			c.RemoveSelf()
		}
	})

	got, changed := astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.True(t, changed)
	want := &ast.Program{Body: []ast.Stmt{exprStmt(ident("a")), exprStmt(ident("c"))}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyInsertAfterIsObservedLaterInThePass(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{exprStmt(ident("a"))}}

	var seen []string
	inserted := false
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindExpressionStatement, func(c *astutil.Cursor) {
		es := c.Node().(*ast.ExpressionStatement)
		name := es.Expression.(*ast.Identifier).Name
		seen = append(seen, name)
		if name == "a" && !inserted {
			inserted = true
			c.InsertAfter(exprStmt(ident("b")))
		}
	})

	_, changed := astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.True(t, changed)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestCursorRemoveFollowingConsumesASpecificLaterSibling(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		exprStmt(ident("a")),
		exprStmt(ident("b")),
		exprStmt(ident("c")),
	}}

	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindExpressionStatement, func(c *astutil.Cursor) {
		es := c.Node().(*ast.ExpressionStatement)
		if es.Expression.(*ast.Identifier).Name == "a" {
			c.RemoveFollowing(2) // removes "c", leaving "a" and "b"
		}
	})

	got, changed := astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.True(t, changed)
	want := &ast.Program{Body: []ast.Stmt{exprStmt(ident("a")), exprStmt(ident("b"))}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorRemoveFollowingPanicsOnNonPositiveOffset(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{exprStmt(ident("a")), exprStmt(ident("b"))}}
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindExpressionStatement, func(c *astutil.Cursor) {
		assert.Panics(t, func() { c.RemoveFollowing(0) })
	})
	astutil.Apply(prog, hooks, fakeAnalyzer{})
}

func TestCursorSiblingReportsNoneAtListBoundaries(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{exprStmt(ident("only"))}}
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindExpressionStatement, func(c *astutil.Cursor) {
		_, hasPrev := c.Sibling(-1)
		_, hasNext := c.Sibling(1)
		assert.False(t, hasPrev)
		assert.False(t, hasNext)
	})
	astutil.Apply(prog, hooks, fakeAnalyzer{})
}

func TestVirtualForKindFiresForEveryLoopShape(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.ForStatement{Test: ident("a"), Body: exprStmt(ident("x"))},
		&ast.WhileStatement{Test: ident("b"), Body: exprStmt(ident("y"))},
	}}

	count := 0
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindFor, func(c *astutil.Cursor) { count++ })

	astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.Equal(t, 2, count, "KindFor must match every LoopLike concrete kind")
}

func TestVirtualBlockKindFiresForProgramAndBlockStatement(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.BlockStatement{Body: []ast.Stmt{exprStmt(ident("x"))}},
	}}

	count := 0
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindBlock, func(c *astutil.Cursor) { count++ })

	astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.Equal(t, 2, count, "KindBlock must match both Program and BlockStatement")
}

func TestApplyDoesNotDescendIntoNonComputedMemberProperty(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		exprStmt(&ast.MemberExpression{Object: ident("o"), Property: ident("undefined"), Computed: false}),
	}}

	var seen []string
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindIdentifier, func(c *astutil.Cursor) {
		seen = append(seen, c.Node().(*ast.Identifier).Name)
	})

	astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.Equal(t, []string{"o"}, seen, "a non-computed member name is a binding-like slot, never visited as a reference")
}

func TestIsCompletionRecordOnlyTheLastProgramStatement(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		exprStmt(ident("a")),
		exprStmt(ident("b")),
	}}

	var results []bool
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindExpressionStatement, func(c *astutil.Cursor) {
		results = append(results, c.IsCompletionRecord())
	})

	astutil.Apply(prog, hooks, analysis.New())
	assert.Equal(t, []bool{false, true}, results)
}

func TestMarkChangedIsObservedByApply(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{exprStmt(litNum(1))}}
	hooks := astutil.NewHooks()
	hooks.OnExit(ast.KindLiteral, func(c *astutil.Cursor) {
		lit := c.Node().(*ast.Literal)
		lit.Value = lit.Value.(float64) + 1
		c.MarkChanged()
	})
	_, changed := astutil.Apply(prog, hooks, fakeAnalyzer{})
	assert.True(t, changed)
}
