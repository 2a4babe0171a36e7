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

package ast

// VariableDeclarator is one `id = init` entry of a VariableDeclaration.
type VariableDeclarator struct {
	Id   Expr // usually *Identifier
	Init Expr // optional
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }
func (*VariableDeclarator) node()      {}

const (
	DeclVar   = "var"
	DeclLet   = "let"
	DeclConst = "const"
)

// VariableDeclaration is `var|let|const a = 1, b = 2;`. The field is named
// DeclKind, not Kind, because Kind is already the node-tag accessor.
type VariableDeclaration struct {
	DeclKind     string
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }
func (*VariableDeclaration) node()      {}
func (*VariableDeclaration) stmt()      {}

// ExpressionStatement wraps an expression evaluated for its side effects.
type ExpressionStatement struct {
	Expression Expr
}

func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (*ExpressionStatement) node()      {}
func (*ExpressionStatement) stmt()      {}

// ReturnStatement is `return;` (Argument == nil) or `return expr;`.
type ReturnStatement struct {
	Argument Expr
}

func (*ReturnStatement) Kind() Kind { return KindReturnStatement }
func (*ReturnStatement) node()      {}
func (*ReturnStatement) stmt()      {}

// BreakStatement is `break;` or `break label;`.
type BreakStatement struct {
	Label *Identifier
}

func (*BreakStatement) Kind() Kind { return KindBreakStatement }
func (*BreakStatement) node()      {}
func (*BreakStatement) stmt()      {}

// ContinueStatement is `continue;` or `continue label;`.
type ContinueStatement struct {
	Label *Identifier
}

func (*ContinueStatement) Kind() Kind { return KindContinueStatement }
func (*ContinueStatement) node()      {}
func (*ContinueStatement) stmt()      {}

// EmptyStatement is a bare `;`.
type EmptyStatement struct{}

func (*EmptyStatement) Kind() Kind { return KindEmptyStatement }
func (*EmptyStatement) node()      {}
func (*EmptyStatement) stmt()      {}

// IfStatement is `if (test) consequent [else alternate]`.
type IfStatement struct {
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // optional
}

func (*IfStatement) Kind() Kind { return KindIfStatement }
func (*IfStatement) node()      {}
func (*IfStatement) stmt()      {}

// ForStatement is a C-style for loop. Init is nil, a *VariableDeclaration,
// or an Expr; Test and Update are optional expressions.
type ForStatement struct {
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

func (*ForStatement) Kind() Kind   { return KindForStatement }
func (*ForStatement) node()        {}
func (*ForStatement) stmt()        {}
func (f *ForStatement) LoopBody() Stmt     { return f.Body }
func (f *ForStatement) SetLoopBody(s Stmt) { f.Body = s }

// ForInStatement is `for (left in right) body`.
type ForInStatement struct {
	Left  Node // *VariableDeclaration or Expr
	Right Expr
	Body  Stmt
}

func (*ForInStatement) Kind() Kind   { return KindForInStatement }
func (*ForInStatement) node()        {}
func (*ForInStatement) stmt()        {}
func (f *ForInStatement) LoopBody() Stmt     { return f.Body }
func (f *ForInStatement) SetLoopBody(s Stmt) { f.Body = s }

// ForOfStatement is `for (left of right) body`.
type ForOfStatement struct {
	Left  Node
	Right Expr
	Body  Stmt
}

func (*ForOfStatement) Kind() Kind   { return KindForOfStatement }
func (*ForOfStatement) node()        {}
func (*ForOfStatement) stmt()        {}
func (f *ForOfStatement) LoopBody() Stmt     { return f.Body }
func (f *ForOfStatement) SetLoopBody(s Stmt) { f.Body = s }

// WhileStatement is `while (test) body`. R17 rewrites these into
// ForStatement so no WhileStatement survives simplification.
type WhileStatement struct {
	Test Expr
	Body Stmt
}

func (*WhileStatement) Kind() Kind   { return KindWhileStatement }
func (*WhileStatement) node()        {}
func (*WhileStatement) stmt()        {}
func (w *WhileStatement) LoopBody() Stmt     { return w.Body }
func (w *WhileStatement) SetLoopBody(s Stmt) { w.Body = s }

// DoWhileStatement is `do body while (test);`.
type DoWhileStatement struct {
	Test Expr
	Body Stmt
}

func (*DoWhileStatement) Kind() Kind   { return KindDoWhileStatement }
func (*DoWhileStatement) node()        {}
func (*DoWhileStatement) stmt()        {}
func (d *DoWhileStatement) LoopBody() Stmt     { return d.Body }
func (d *DoWhileStatement) SetLoopBody(s Stmt) { d.Body = s }

// BlockStatement is `{ body... }`.
type BlockStatement struct {
	Body []Stmt
}

func (*BlockStatement) Kind() Kind { return KindBlockStatement }
func (*BlockStatement) node()      {}
func (*BlockStatement) stmt()      {}
func (b *BlockStatement) Statements() []Stmt     { return b.Body }
func (b *BlockStatement) SetStatements(s []Stmt) { b.Body = s }

// Program is the root of a parsed source file.
type Program struct {
	Body []Stmt
}

func (*Program) Kind() Kind { return KindProgram }
func (*Program) node()      {}
func (p *Program) Statements() []Stmt     { return p.Body }
func (p *Program) SetStatements(s []Stmt) { p.Body = s }

// TryStatement is `try block [catch (param) handlerBody] [finally fin]`.
type TryStatement struct {
	Block     *BlockStatement
	Handler   *CatchClause // optional
	Finalizer *BlockStatement // optional
}

func (*TryStatement) Kind() Kind { return KindTryStatement }
func (*TryStatement) node()      {}
func (*TryStatement) stmt()      {}

// CatchClause is the `catch (param) body` part of a TryStatement.
type CatchClause struct {
	Param Expr // optional
	Body  *BlockStatement
}

func (*CatchClause) Kind() Kind { return KindCatchClause }
func (*CatchClause) node()      {}
