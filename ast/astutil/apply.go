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

// Package astutil implements the Traversal Driver and Path Handle of §4.1
// and §4.2: a depth-first walker, keyed by node kind, that hands each rule a
// Cursor capable of replacing, removing, or growing its own siblings
// in place. It is the direct descendant of cuelang.org/go's
// cue/ast/astutil.Apply, generalized from "Cursor only mutates struct
// literals" to "Cursor mutates any ordered statement or expression list".
package astutil

import "corelang.org/simplify/ast"

type driverState struct {
	hooks    *Hooks
	analyzer Analyzer
	changed  bool
}

// Apply walks root depth-first, running hooks.enter before a node's
// children and hooks.exit after, and returns the (possibly replaced) root
// along with whether anything in the tree changed. Determinism: children
// are visited left-to-right in the order they appear on their node (§4.1).
func Apply(root ast.Node, hooks *Hooks, analyzer Analyzer) (ast.Node, bool) {
	ds := &driverState{hooks: hooks, analyzer: analyzer}
	result := root
	walkNode(ds, nil, root, -1, nil, func(n ast.Node) { result = n })
	return result, ds.changed
}

func runHooks(fns []HookFunc, c *Cursor) {
	for _, fn := range fns {
		fn(c)
		if c.removed || c.revisit {
			return
		}
	}
}

// walkNode visits node (a child at position index of list, or a scalar
// child addressed only through setSelf if list is nil) and reports whether
// the node was removed from its containing list.
func walkNode(ds *driverState, parent *Cursor, node ast.Node, index int, list nodeList, setSelf func(ast.Node)) (removed bool) {
	for {
		c := &Cursor{node: node, parent: parent, index: index, list: list, setSelf: setSelf, driver: ds}

		runHooks(ds.hooks.enterFor(node), c)
		if c.removed {
			return true
		}
		node = c.node
		if c.revisit {
			continue
		}

		walkChildren(ds, c, node)

		runHooks(ds.hooks.exitFor(node), c)
		if c.removed {
			return true
		}
		node = c.node
		if c.revisit {
			continue
		}
		return false
	}
}

func walkChild(ds *driverState, parent *Cursor, get func() ast.Node, set func(ast.Node)) {
	n := get()
	if n == nil {
		return
	}
	walkNode(ds, parent, n, -1, nil, set)
}

func walkList(ds *driverState, parent *Cursor, list nodeList) {
	i := 0
	for i < list.Len() {
		child := list.Get(i)
		j := i // capture for the closure
		removed := walkNode(ds, parent, child, i, list, func(n ast.Node) { list.Set(j, n) })
		if removed {
			continue // the successor shifted into index i; don't advance
		}
		i++
	}
}

// walkChildren dispatches on node's concrete type and visits each child in
// source order. An unknown kind panics with UnknownNodeKind; nothing checks
// node kinds before this switch, and internal/rewrite recovers that panic
// and reports it to its caller as §7 malformed input.
func walkChildren(ds *driverState, c *Cursor, node ast.Node) {
	switch n := node.(type) {
	case *ast.Identifier, *ast.Literal:
		// leaves

	case *ast.UnaryExpression:
		walkChild(ds, c, func() ast.Node { return n.Argument }, func(x ast.Node) { n.Argument = x.(ast.Expr) })

	case *ast.BinaryExpression:
		walkChild(ds, c, func() ast.Node { return n.Left }, func(x ast.Node) { n.Left = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Right }, func(x ast.Node) { n.Right = x.(ast.Expr) })

	case *ast.LogicalExpression:
		walkChild(ds, c, func() ast.Node { return n.Left }, func(x ast.Node) { n.Left = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Right }, func(x ast.Node) { n.Right = x.(ast.Expr) })

	case *ast.ConditionalExpression:
		walkChild(ds, c, func() ast.Node { return n.Test }, func(x ast.Node) { n.Test = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Consequent }, func(x ast.Node) { n.Consequent = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Alternate }, func(x ast.Node) { n.Alternate = x.(ast.Expr) })

	case *ast.AssignmentExpression:
		walkChild(ds, c, func() ast.Node { return n.Left }, func(x ast.Node) { n.Left = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Right }, func(x ast.Node) { n.Right = x.(ast.Expr) })

	case *ast.SequenceExpression:
		walkList(ds, c, exprList{&n.Expressions})

	case *ast.CallExpression:
		walkChild(ds, c, func() ast.Node { return n.Callee }, func(x ast.Node) { n.Callee = x.(ast.Expr) })
		walkList(ds, c, exprList{&n.Arguments})

	case *ast.MemberExpression:
		walkChild(ds, c, func() ast.Node { return n.Object }, func(x ast.Node) { n.Object = x.(ast.Expr) })
		// Property is a binding-like name slot when !Computed (a bare dotted
		// name, not a reference); only a computed property is a real
		// sub-expression that rules may rewrite.
		if n.Computed {
			walkChild(ds, c, func() ast.Node { return n.Property }, func(x ast.Node) { n.Property = x.(ast.Expr) })
		}

	case *ast.ObjectExpression:
		walkList(ds, c, propertyList{&n.Properties})

	case *ast.Property:
		if n.Computed {
			walkChild(ds, c, func() ast.Node { return n.Key }, func(x ast.Node) { n.Key = x.(ast.Expr) })
		}
		walkChild(ds, c, func() ast.Node { return n.Value }, func(x ast.Node) { n.Value = x.(ast.Expr) })

	case *ast.FunctionExpression:
		// Params and Id are binding positions, not references; not traversed.
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(*ast.BlockStatement) })

	case *ast.FunctionDeclaration:
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(*ast.BlockStatement) })

	case *ast.VariableDeclarator:
		walkChild(ds, c, func() ast.Node { return n.Init }, func(x ast.Node) { n.Init = x.(ast.Expr) })

	case *ast.VariableDeclaration:
		for i, d := range n.Declarations {
			j := i
			walkNode(ds, c, d, -1, nil, func(x ast.Node) { n.Declarations[j] = x.(*ast.VariableDeclarator) })
		}

	case *ast.ExpressionStatement:
		walkChild(ds, c, func() ast.Node { return n.Expression }, func(x ast.Node) { n.Expression = x.(ast.Expr) })

	case *ast.ReturnStatement:
		walkChild(ds, c, func() ast.Node { return n.Argument }, func(x ast.Node) { n.Argument = x.(ast.Expr) })

	case *ast.BreakStatement, *ast.ContinueStatement, *ast.EmptyStatement:
		// leaves

	case *ast.IfStatement:
		walkChild(ds, c, func() ast.Node { return n.Test }, func(x ast.Node) { n.Test = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Consequent }, func(x ast.Node) { n.Consequent = x.(ast.Stmt) })
		walkChild(ds, c, func() ast.Node { return n.Alternate }, func(x ast.Node) { n.Alternate = x.(ast.Stmt) })

	case *ast.ForStatement:
		walkChild(ds, c, func() ast.Node { return n.Init }, func(x ast.Node) { n.Init = x })
		walkChild(ds, c, func() ast.Node { return n.Test }, func(x ast.Node) { n.Test = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Update }, func(x ast.Node) { n.Update = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(ast.Stmt) })

	case *ast.ForInStatement:
		// Left is a binding or assignment target, not traversed.
		walkChild(ds, c, func() ast.Node { return n.Right }, func(x ast.Node) { n.Right = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(ast.Stmt) })

	case *ast.ForOfStatement:
		walkChild(ds, c, func() ast.Node { return n.Right }, func(x ast.Node) { n.Right = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(ast.Stmt) })

	case *ast.WhileStatement:
		walkChild(ds, c, func() ast.Node { return n.Test }, func(x ast.Node) { n.Test = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(ast.Stmt) })

	case *ast.DoWhileStatement:
		walkChild(ds, c, func() ast.Node { return n.Test }, func(x ast.Node) { n.Test = x.(ast.Expr) })
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(ast.Stmt) })

	case *ast.BlockStatement:
		walkList(ds, c, stmtList{&n.Body})

	case *ast.Program:
		walkList(ds, c, stmtList{&n.Body})

	case *ast.TryStatement:
		walkChild(ds, c, func() ast.Node { return n.Block }, func(x ast.Node) { n.Block = x.(*ast.BlockStatement) })
		// n.Handler/n.Finalizer are concrete-pointer-typed optional fields;
		// guard with a direct nil check before boxing into ast.Node, since a
		// typed nil pointer boxed into an interface is itself non-nil.
		if n.Handler != nil {
			walkChild(ds, c, func() ast.Node { return n.Handler }, func(x ast.Node) { n.Handler = x.(*ast.CatchClause) })
		}
		if n.Finalizer != nil {
			walkChild(ds, c, func() ast.Node { return n.Finalizer }, func(x ast.Node) { n.Finalizer = x.(*ast.BlockStatement) })
		}

	case *ast.CatchClause:
		// Param is a binding, not traversed.
		walkChild(ds, c, func() ast.Node { return n.Body }, func(x ast.Node) { n.Body = x.(*ast.BlockStatement) })

	default:
		panic(UnknownNodeKind{Node: node})
	}
}
