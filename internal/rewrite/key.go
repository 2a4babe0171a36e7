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

	"corelang.org/simplify/ast"
)

// structuralKey renders a deterministic, total-order sort key for an
// expression. It exists only to give R9's equality flip (§4.5's one
// documented exception to the well-founded-measure argument) a canonical
// order to converge toward when both operands are pure: see the tiebreak
// in rules.go. It is not a serialization and must never be shown to users.
func structuralKey(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return "I:" + n.Name
	case *ast.Literal:
		return fmt.Sprintf("L:%T:%v", n.Value, n.Value)
	case *ast.UnaryExpression:
		return "U:" + n.Operator + "(" + structuralKey(n.Argument) + ")"
	case *ast.BinaryExpression:
		return "B:" + n.Operator + "(" + structuralKey(n.Left) + "," + structuralKey(n.Right) + ")"
	case *ast.LogicalExpression:
		return "G:" + n.Operator + "(" + structuralKey(n.Left) + "," + structuralKey(n.Right) + ")"
	case *ast.ConditionalExpression:
		return "C:(" + structuralKey(n.Test) + "?" + structuralKey(n.Consequent) + ":" + structuralKey(n.Alternate) + ")"
	case *ast.SequenceExpression:
		s := "S:("
		for i, x := range n.Expressions {
			if i > 0 {
				s += ","
			}
			s += structuralKey(x)
		}
		return s + ")"
	case *ast.MemberExpression:
		return "M:(" + structuralKey(n.Object) + ")"
	case *ast.CallExpression:
		return "F:(" + structuralKey(n.Callee) + ")"
	default:
		return fmt.Sprintf("?:%T", e)
	}
}
