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

// Package ast defines the tagged-variant AST node model consumed and produced by
// the simplify pass. It mirrors the surface grammar of a mainstream curly-brace
// scripting language (expressions, statements, a handful of declaration forms)
// and carries no position or comment information: this package's only job is to
// describe shape, not provenance.
package ast

// Kind tags every node with its concrete variant. Rewrite rules switch
// exhaustively on Kind (or on a node's Go type, which is equivalent and what
// the walker in ast/astutil actually does); Kind exists for cheap dispatch in
// hook tables that don't want a type switch of their own.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindIdentifier
	KindLiteral
	KindUnaryExpression
	KindBinaryExpression
	KindLogicalExpression
	KindConditionalExpression
	KindAssignmentExpression
	KindSequenceExpression
	KindCallExpression
	KindMemberExpression
	KindObjectExpression
	KindProperty
	KindFunctionExpression
	KindFunctionDeclaration
	KindVariableDeclarator
	KindVariableDeclaration
	KindExpressionStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindEmptyStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindBlockStatement
	KindProgram
	KindTryStatement
	KindCatchClause

	// KindBlock and KindFor are virtual kinds: they never tag an actual node,
	// but astutil.Hooks accepts them as registration keys and the driver
	// additionally runs their hooks for any node kind they match (§4.1).
	KindBlock
	KindFor
)

//go:generate stringer -type=Kind

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

var kindNames = map[Kind]string{
	KindInvalid:             "Invalid",
	KindIdentifier:          "Identifier",
	KindLiteral:             "Literal",
	KindUnaryExpression:     "UnaryExpression",
	KindBinaryExpression:    "BinaryExpression",
	KindLogicalExpression:   "LogicalExpression",
	KindConditionalExpression: "ConditionalExpression",
	KindAssignmentExpression: "AssignmentExpression",
	KindSequenceExpression:  "SequenceExpression",
	KindCallExpression:      "CallExpression",
	KindMemberExpression:    "MemberExpression",
	KindObjectExpression:    "ObjectExpression",
	KindProperty:            "Property",
	KindFunctionExpression:  "FunctionExpression",
	KindFunctionDeclaration: "FunctionDeclaration",
	KindVariableDeclarator:  "VariableDeclarator",
	KindVariableDeclaration: "VariableDeclaration",
	KindExpressionStatement: "ExpressionStatement",
	KindReturnStatement:     "ReturnStatement",
	KindBreakStatement:      "BreakStatement",
	KindContinueStatement:   "ContinueStatement",
	KindEmptyStatement:      "EmptyStatement",
	KindIfStatement:         "IfStatement",
	KindForStatement:        "ForStatement",
	KindForInStatement:      "ForInStatement",
	KindForOfStatement:      "ForOfStatement",
	KindWhileStatement:      "WhileStatement",
	KindDoWhileStatement:    "DoWhileStatement",
	KindBlockStatement:      "BlockStatement",
	KindProgram:             "Program",
	KindTryStatement:        "TryStatement",
	KindCatchClause:         "CatchClause",
	KindBlock:               "Block",
	KindFor:                 "For",
}

// Node is implemented by every AST node. It is intentionally minimal: no
// position, no comments, no scope pointers — those belong to the parser and
// the scope analyzer, both external collaborators of this pass (§1).
type Node interface {
	Kind() Kind
	node()
}

// Expr is implemented by nodes valid in expression position.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by nodes valid in statement position.
type Stmt interface {
	Node
	stmt()
}

// BlockLike is implemented by the two node kinds astutil treats as the
// virtual "Block" kind: Program and BlockStatement.
type BlockLike interface {
	Node
	Statements() []Stmt
	SetStatements([]Stmt)
}

// LoopLike is implemented by the five node kinds astutil treats as the
// virtual "For" kind.
type LoopLike interface {
	Node
	LoopBody() Stmt
	SetLoopBody(Stmt)
}
