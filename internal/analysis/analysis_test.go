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

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"corelang.org/simplify/ast"
)

func TestIsPure(t *testing.T) {
	a := New()

	testCases := []struct {
		name string
		expr ast.Expr
		pure bool
	}{
		{"identifier", &ast.Identifier{Name: "x"}, true},
		{"literal", &ast.Literal{Value: float64(1)}, true},
		{"call", &ast.CallExpression{Callee: &ast.Identifier{Name: "f"}}, false},
		{"member", &ast.MemberExpression{Object: &ast.Identifier{Name: "o"}, Property: &ast.Identifier{Name: "p"}}, false},
		{"increment", &ast.UnaryExpression{Operator: "++", Argument: &ast.Identifier{Name: "x"}}, false},
		{"negation of pure", &ast.UnaryExpression{Operator: "!", Argument: &ast.Identifier{Name: "x"}}, true},
		{"negation of impure", &ast.UnaryExpression{Operator: "!", Argument: &ast.CallExpression{Callee: &ast.Identifier{Name: "f"}}}, false},
		{"binary of pure operands", &ast.BinaryExpression{Operator: "+", Left: &ast.Literal{Value: float64(1)}, Right: &ast.Identifier{Name: "x"}}, true},
		{"binary with an impure operand", &ast.BinaryExpression{Operator: "+", Left: &ast.CallExpression{Callee: &ast.Identifier{Name: "f"}}, Right: &ast.Literal{Value: float64(1)}}, false},
		{"function literal", &ast.FunctionExpression{Body: &ast.BlockStatement{}}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.pure, a.IsPure(tc.expr))
		})
	}
}

func TestBaseTypeMatches(t *testing.T) {
	a := New()

	testCases := []struct {
		name    string
		x, y    ast.Expr
		matches bool
	}{
		{"two number literals", &ast.Literal{Value: float64(1)}, &ast.Literal{Value: float64(2)}, true},
		{"number and string literal", &ast.Literal{Value: float64(1)}, &ast.Literal{Value: "1"}, false},
		{"two boolean-yielding negations", &ast.UnaryExpression{Operator: "!", Argument: &ast.Identifier{Name: "a"}}, &ast.UnaryExpression{Operator: "!", Argument: &ast.Identifier{Name: "b"}}, true},
		{"comparison and negation both yield boolean", &ast.BinaryExpression{Operator: "<", Left: &ast.Identifier{Name: "a"}, Right: &ast.Identifier{Name: "b"}}, &ast.UnaryExpression{Operator: "!", Argument: &ast.Identifier{Name: "c"}}, true},
		{"two identifiers of unknown type", &ast.Identifier{Name: "x"}, &ast.Identifier{Name: "y"}, false},
		{"null literal never matches", &ast.Literal{Value: nil}, &ast.Literal{Value: nil}, false},
		{"plus of two numbers", &ast.BinaryExpression{Operator: "+", Left: &ast.Literal{Value: float64(1)}, Right: &ast.Literal{Value: float64(2)}}, &ast.Literal{Value: float64(3)}, true},
		{"plus of a number and a string is ambiguous", &ast.BinaryExpression{Operator: "+", Left: &ast.Literal{Value: float64(1)}, Right: &ast.Literal{Value: "s"}}, &ast.Literal{Value: float64(1)}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.matches, a.BaseTypeMatches(tc.x, tc.y))
		})
	}
}
