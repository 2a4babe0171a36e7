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

package astutil

import (
	"golang.org/x/exp/slices"

	"corelang.org/simplify/ast"
)

// nodeList abstracts over the handful of ordered-list fields a node can
// expose ([]ast.Stmt bodies, []ast.Expr argument/element lists) so the
// walker and Cursor can splice siblings without knowing which concrete
// slice type they're holding.
type nodeList interface {
	Len() int
	Get(i int) ast.Node
	Set(i int, n ast.Node)
	RemoveAt(i int)
	InsertAfter(i int, n ast.Node)
}

type stmtList struct{ slice *[]ast.Stmt }

func (l stmtList) Len() int          { return len(*l.slice) }
func (l stmtList) Get(i int) ast.Node { return (*l.slice)[i] }
func (l stmtList) Set(i int, n ast.Node) { (*l.slice)[i] = n.(ast.Stmt) }
func (l stmtList) RemoveAt(i int) {
	*l.slice = slices.Delete(*l.slice, i, i+1)
}
func (l stmtList) InsertAfter(i int, n ast.Node) {
	*l.slice = slices.Insert(*l.slice, i+1, n.(ast.Stmt))
}

type propertyList struct{ slice *[]*ast.Property }

func (l propertyList) Len() int           { return len(*l.slice) }
func (l propertyList) Get(i int) ast.Node { return (*l.slice)[i] }
func (l propertyList) Set(i int, n ast.Node) { (*l.slice)[i] = n.(*ast.Property) }
func (l propertyList) RemoveAt(i int) {
	*l.slice = slices.Delete(*l.slice, i, i+1)
}
func (l propertyList) InsertAfter(i int, n ast.Node) {
	*l.slice = slices.Insert(*l.slice, i+1, n.(*ast.Property))
}

type exprList struct{ slice *[]ast.Expr }

func (l exprList) Len() int          { return len(*l.slice) }
func (l exprList) Get(i int) ast.Node { return (*l.slice)[i] }
func (l exprList) Set(i int, n ast.Node) { (*l.slice)[i] = n.(ast.Expr) }
func (l exprList) RemoveAt(i int) {
	*l.slice = slices.Delete(*l.slice, i, i+1)
}
func (l exprList) InsertAfter(i int, n ast.Node) {
	*l.slice = slices.Insert(*l.slice, i+1, n.(ast.Expr))
}
