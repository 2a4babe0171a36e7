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
	"fmt"
	"testing"

	"github.com/kylelemons/godebug/diff"

	"corelang.org/simplify/ast"
	"corelang.org/simplify/internal/analysis"
)

// dump renders a node as a stable, human-readable tree, one line per node,
// for golden comparison. It is deliberately unsophisticated: the sequence
// folder's output shape is what's under test here, not a pretty-printer.
func dump(n ast.Node, depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if n == nil {
		return indent + "nil\n"
	}
	s := indent + n.Kind().String()
	switch x := n.(type) {
	case *ast.Identifier:
		return fmt.Sprintf("%s(%s)\n", s, x.Name)
	case *ast.Literal:
		return fmt.Sprintf("%s(%v)\n", s, x.Value)
	case *ast.BinaryExpression:
		out := fmt.Sprintf("%s(%s)\n", s, x.Operator)
		out += dump(x.Left, depth+1)
		out += dump(x.Right, depth+1)
		return out
	case *ast.SequenceExpression:
		out := s + "\n"
		for _, e := range x.Expressions {
			out += dump(e, depth+1)
		}
		return out
	case *ast.CallExpression:
		out := s + "\n"
		out += dump(x.Callee, depth+1)
		for _, a := range x.Arguments {
			out += dump(a, depth+1)
		}
		return out
	case *ast.ExpressionStatement:
		out := s + "\n"
		out += dump(x.Expression, depth+1)
		return out
	case *ast.Program:
		out := s + "\n"
		for _, stmt := range x.Body {
			out += dump(stmt, depth+1)
		}
		return out
	default:
		return s + "\n"
	}
}

// TestFoldSequencesGoldenOutput pins the exact shape the sequence folder
// produces for a run of adjacent expressible statements, using a readable
// line-oriented diff on mismatch rather than a structural one.
func TestFoldSequencesGoldenOutput(t *testing.T) {
	root := &ast.Program{Body: []ast.Stmt{
		&ast.ExpressionStatement{Expression: &ast.CallExpression{Callee: &ast.Identifier{Name: "a"}}},
		&ast.ExpressionStatement{Expression: &ast.CallExpression{Callee: &ast.Identifier{Name: "b"}}},
		&ast.ExpressionStatement{Expression: &ast.CallExpression{Callee: &ast.Identifier{Name: "c"}}},
	}}

	got, err := Run(root, Config{Analyzer: analysis.New()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	const want = `Program
  ExpressionStatement
    SequenceExpression
      CallExpression
        Identifier(a)
      CallExpression
        Identifier(b)
      CallExpression
        Identifier(c)
`

	gotDump := dump(got, 0)
	if d := diff.Diff(want, gotDump); d != "" {
		t.Errorf("golden mismatch:\n%s", d)
	}
}
