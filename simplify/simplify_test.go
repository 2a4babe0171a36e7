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

package simplify_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"corelang.org/simplify/ast"
	"corelang.org/simplify/ast/astutil"
	"corelang.org/simplify/simplify"
)

func exprStmt(e ast.Expr) *ast.ExpressionStatement { return &ast.ExpressionStatement{Expression: e} }

func TestSimplifyUndefinedToVoid(t *testing.T) {
	root := &ast.Program{Body: []ast.Stmt{exprStmt(&ast.Identifier{Name: "undefined"})}}
	got, err := simplify.Simplify(root)
	assert.NoError(t, err)

	want := &ast.Program{Body: []ast.Stmt{exprStmt(&ast.UnaryExpression{
		Operator: "void", Argument: &ast.Literal{Value: float64(0)}, Prefix: true,
	})}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyWithDisabledRules(t *testing.T) {
	root := &ast.Program{Body: []ast.Stmt{exprStmt(&ast.Identifier{Name: "undefined"})}}
	got, err := simplify.Simplify(root, simplify.WithDisabledRules("R1"))
	assert.NoError(t, err)

	want := &ast.Program{Body: []ast.Stmt{exprStmt(&ast.Identifier{Name: "undefined"})}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyWithTraceObservesRuleNames(t *testing.T) {
	root := &ast.Program{Body: []ast.Stmt{exprStmt(&ast.Identifier{Name: "undefined"})}}

	var passes [][]string
	_, err := simplify.Simplify(root, simplify.WithTrace(func(iteration int, rules []string) {
		passes = append(passes, rules)
	}))
	assert.NoError(t, err)
	assert.NotEmpty(t, passes)
	assert.Contains(t, passes[0], "R1")
}

func TestSimplifyWithMaxIterationsReportsNonTerminating(t *testing.T) {
	root := &ast.Program{Body: []ast.Stmt{
		&ast.VariableDeclaration{DeclKind: ast.DeclVar, Declarations: []*ast.VariableDeclarator{{Id: &ast.Identifier{Name: "a"}, Init: &ast.Literal{Value: float64(1)}}}},
		&ast.VariableDeclaration{DeclKind: ast.DeclVar, Declarations: []*ast.VariableDeclarator{{Id: &ast.Identifier{Name: "b"}, Init: &ast.Literal{Value: float64(2)}}}},
	}}
	_, err := simplify.Simplify(root, simplify.WithMaxIterations(1))
	assert.Error(t, err)
}

func TestSimplifyWithAnalyzerOverridesPurityJudgments(t *testing.T) {
	// A stand-in analyzer that reports nothing as pure suppresses R9 (the
	// equality flip), since R9 is gated on the right operand being pure.
	root := &ast.Program{Body: []ast.Stmt{exprStmt(&ast.BinaryExpression{
		Operator: ast.OpEq,
		Left:     &ast.CallExpression{Callee: &ast.Identifier{Name: "f"}},
		Right:    &ast.Literal{Value: float64(1)},
	})}}

	got, err := simplify.Simplify(root, simplify.WithAnalyzer(neverPureAnalyzer{}))
	assert.NoError(t, err)

	be := got.(*ast.Program).Body[0].(*ast.ExpressionStatement).Expression.(*ast.BinaryExpression)
	_, stillCall := be.Left.(*ast.CallExpression)
	assert.True(t, stillCall, "with no operand ever judged pure, R9 must never swap")
}

type neverPureAnalyzer struct{}

func (neverPureAnalyzer) IsPure(ast.Expr) bool                         { return false }
func (neverPureAnalyzer) BaseTypeMatches(ast.Expr, ast.Expr) bool      { return false }
func (neverPureAnalyzer) IsCompletionRecord(*astutil.Cursor) bool { return false }
