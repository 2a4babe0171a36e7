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

import "corelang.org/simplify/ast"

// UnknownNodeKind is the panic value walkChildren raises when it meets a
// node type its dispatch switch doesn't recognize (§7 malformed input). Run
// recovers it and reports it to its caller as an *errors.Error of Kind
// MalformedInput rather than letting it escape as a bare panic.
type UnknownNodeKind struct{ Node ast.Node }

func (e UnknownNodeKind) Error() string { return "astutil: unexpected node type" }

// CursorPrecondition is the panic value a Cursor mutation method raises when
// called outside the precondition its doc comment states (RemoveSelf,
// InsertAfter, and RemoveFollowing all require the current node to be part
// of a list; RemoveFollowing also requires its offset in range). Run
// recovers it and reports it as an *errors.Error of Kind RuleViolation.
type CursorPrecondition struct {
	Node ast.Node
	Msg  string
}

func (e CursorPrecondition) Error() string { return "astutil: " + e.Msg }

// Cursor is the path handle a hook receives (§4.2). It exposes the current
// node, its parent chain, its position in a containing list, sibling
// access, the mutation primitives (Replace, RemoveSelf, InsertAfter,
// Revisit), and the two scope-analysis predicates.
//
// A Cursor is only valid for the duration of the hook call that received
// it; hooks must not retain one past return.
type Cursor struct {
	node    ast.Node
	parent  *Cursor
	index   int // -1 when not in a list
	list    nodeList
	setSelf func(ast.Node)

	removed bool
	revisit bool

	driver *driverState
}

// Node returns the node currently being visited.
func (c *Cursor) Node() ast.Node { return c.node }

// Parent returns the Cursor for the enclosing node, or nil at the root.
func (c *Cursor) Parent() *Cursor { return c.parent }

// InList reports whether Node lives in an ordered sibling list (a block
// body, an argument list, a declarator list, ...).
func (c *Cursor) InList() bool { return c.list != nil }

// Index reports the position of Node within its containing list, or a
// value < 0 if Node is not part of a list.
func (c *Cursor) Index() int { return c.index }

// Sibling returns the node at a position rel away from the current one
// within the same list (rel == 1 is "next", rel == -1 is "previous"). ok is
// false if there is no list or the position is out of range — the
// "sentinel empty path" of §4.2 is modeled as this boolean.
func (c *Cursor) Sibling(rel int) (n ast.Node, ok bool) {
	if c.list == nil {
		return nil, false
	}
	j := c.index + rel
	if j < 0 || j >= c.list.Len() {
		return nil, false
	}
	return c.list.Get(j), true
}

// Replace substitutes n for the current node. Per the traversal contract,
// the replacement is re-visited from the enter phase before the walker
// returns control to the parent's child loop.
func (c *Cursor) Replace(n ast.Node) {
	c.node = n
	c.setSelf(n)
	c.revisit = true
	c.driver.changed = true
}

// RemoveSelf deletes the current node from its containing list. Subsequent
// siblings shift left; the walker continues as though this index now
// addresses the former successor. RemoveSelf panics if the current node is
// not part of a list.
func (c *Cursor) RemoveSelf() {
	if c.list == nil {
		panic(CursorPrecondition{Node: c.node, Msg: "RemoveSelf of a node that is not in a list"})
	}
	c.list.RemoveAt(c.index)
	c.removed = true
	c.driver.changed = true
}

// InsertAfter inserts n as the sibling immediately following the current
// node. The walker observes n later in the same pass over this list.
// InsertAfter panics if the current node is not part of a list.
func (c *Cursor) InsertAfter(n ast.Node) {
	if c.list == nil {
		panic(CursorPrecondition{Node: c.node, Msg: "InsertAfter of a node that is not in a list"})
	}
	c.list.InsertAfter(c.index, n)
	c.driver.changed = true
}

// Revisit asks the walker to re-run the current node's hooks from the enter
// phase, without otherwise changing the node.
func (c *Cursor) Revisit() { c.revisit = true }

// MarkChanged tells the fixed-point controller that this hook mutated the
// tree without going through Replace/RemoveSelf/InsertAfter — a field
// assignment on the current node itself (R2's Property.Key swap, R12's
// statement reordering, and the like). Rules that only ever call Replace or
// RemoveSelf never need this; it exists for the narrow in-place edits.
func (c *Cursor) MarkChanged() { c.driver.changed = true }

// RemoveFollowing deletes the sibling rel positions after the current node
// from the containing list (rel must be > 0; removing a node before the
// current one would invalidate the index this Cursor was built with).
// RemoveFollowing panics if the current node is not part of a list or rel
// is out of range.
func (c *Cursor) RemoveFollowing(rel int) {
	if c.list == nil {
		panic(CursorPrecondition{Node: c.node, Msg: "RemoveFollowing of a node that is not in a list"})
	}
	if rel <= 0 {
		panic(CursorPrecondition{Node: c.node, Msg: "RemoveFollowing requires a positive offset"})
	}
	j := c.index + rel
	if j >= c.list.Len() {
		panic(CursorPrecondition{Node: c.node, Msg: "RemoveFollowing offset out of range"})
	}
	c.list.RemoveAt(j)
	c.driver.changed = true
}

// IsPure reports whether the current node (which must be an ast.Expr) is
// free of side effects and cannot throw. Delegates to the Analyzer supplied
// to Apply.
func (c *Cursor) IsPure() bool {
	e, ok := c.node.(ast.Expr)
	if !ok {
		return false
	}
	return c.driver.analyzer.IsPure(e)
}

// BaseTypeStrictlyMatches reports whether the current node and other are
// provably the same primitive type tag on every execution.
func (c *Cursor) BaseTypeStrictlyMatches(other ast.Expr) bool {
	e, ok := c.node.(ast.Expr)
	if !ok {
		return false
	}
	return c.driver.analyzer.BaseTypeMatches(e, other)
}

// IsCompletionRecord reports whether the value of the current statement may
// be observed by the enclosing construct.
func (c *Cursor) IsCompletionRecord() bool {
	return c.driver.analyzer.IsCompletionRecord(c)
}

// HookFunc is a single enter or exit action. It mutates the AST (if at all)
// through c's Replace/RemoveSelf/InsertAfter/Revisit methods; it has no
// return value because the walker inspects the Cursor's resulting state,
// not a status code, to decide how to proceed (§9 design notes).
type HookFunc func(c *Cursor)

// Hooks is a table of enter/exit actions keyed by node kind, built once and
// reused across Apply calls (and across fixed-point iterations).
type Hooks struct {
	enter map[ast.Kind][]HookFunc
	exit  map[ast.Kind][]HookFunc
}

// NewHooks returns an empty hook table.
func NewHooks() *Hooks {
	return &Hooks{
		enter: map[ast.Kind][]HookFunc{},
		exit:  map[ast.Kind][]HookFunc{},
	}
}

// OnEnter registers fn to run, in registration order, when a node of kind k
// (or the matching virtual kind, KindBlock/KindFor) is entered.
func (h *Hooks) OnEnter(k ast.Kind, fn HookFunc) *Hooks {
	h.enter[k] = append(h.enter[k], fn)
	return h
}

// OnExit registers fn to run, in registration order, when a node of kind k
// is exited, after all of its children have been visited.
func (h *Hooks) OnExit(k ast.Kind, fn HookFunc) *Hooks {
	h.exit[k] = append(h.exit[k], fn)
	return h
}

// virtualKinds returns the additional registration keys that apply to node,
// beyond its own concrete Kind — KindBlock for any BlockLike body container,
// KindFor for any LoopLike construct (§4.1).
func virtualKinds(node ast.Node) []ast.Kind {
	var ks []ast.Kind
	if _, ok := node.(ast.BlockLike); ok {
		ks = append(ks, ast.KindBlock)
	}
	if _, ok := node.(ast.LoopLike); ok {
		ks = append(ks, ast.KindFor)
	}
	return ks
}

func (h *Hooks) enterFor(node ast.Node) []HookFunc {
	fns := h.enter[node.Kind()]
	for _, vk := range virtualKinds(node) {
		fns = append(fns, h.enter[vk]...)
	}
	return fns
}

func (h *Hooks) exitFor(node ast.Node) []HookFunc {
	fns := h.exit[node.Kind()]
	for _, vk := range virtualKinds(node) {
		fns = append(fns, h.exit[vk]...)
	}
	return fns
}
