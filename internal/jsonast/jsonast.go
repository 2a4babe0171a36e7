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

// Package jsonast marshals and unmarshals the ast package's tagged-variant
// tree to and from the ESTree-style JSON that a parser hands this pass and a
// printer reads back. encoding/json has no notion of a discriminated union,
// so every node is wrapped with its own "type" field on the way out and
// switched on by that field on the way in.
package jsonast

import (
	"encoding/json"
	"fmt"

	"corelang.org/simplify/ast"
)

// Marshal encodes n as ESTree-style JSON.
func Marshal(n ast.Node) ([]byte, error) {
	v, err := toWire(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// Unmarshal decodes ESTree-style JSON into the ast package's node types.
func Unmarshal(data []byte) (ast.Node, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromWire(raw)
}

func toWire(n ast.Node) (map[string]interface{}, error) {
	if n == nil {
		return nil, nil
	}
	switch x := n.(type) {
	case *ast.Identifier:
		return obj("Identifier", map[string]interface{}{"name": x.Name}), nil
	case *ast.Literal:
		return obj("Literal", map[string]interface{}{"value": x.Value}), nil
	case *ast.UnaryExpression:
		arg, err := toWire(x.Argument)
		if err != nil {
			return nil, err
		}
		return obj("UnaryExpression", map[string]interface{}{
			"operator": x.Operator, "prefix": x.Prefix, "argument": arg,
		}), nil
	case *ast.BinaryExpression:
		l, err := toWire(x.Left)
		if err != nil {
			return nil, err
		}
		r, err := toWire(x.Right)
		if err != nil {
			return nil, err
		}
		return obj("BinaryExpression", map[string]interface{}{
			"operator": x.Operator, "left": l, "right": r,
		}), nil
	case *ast.LogicalExpression:
		l, err := toWire(x.Left)
		if err != nil {
			return nil, err
		}
		r, err := toWire(x.Right)
		if err != nil {
			return nil, err
		}
		return obj("LogicalExpression", map[string]interface{}{
			"operator": x.Operator, "left": l, "right": r,
		}), nil
	case *ast.ConditionalExpression:
		test, err := toWire(x.Test)
		if err != nil {
			return nil, err
		}
		cons, err := toWire(x.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := toWire(x.Alternate)
		if err != nil {
			return nil, err
		}
		return obj("ConditionalExpression", map[string]interface{}{
			"test": test, "consequent": cons, "alternate": alt,
		}), nil
	case *ast.AssignmentExpression:
		l, err := toWire(x.Left)
		if err != nil {
			return nil, err
		}
		r, err := toWire(x.Right)
		if err != nil {
			return nil, err
		}
		return obj("AssignmentExpression", map[string]interface{}{"left": l, "right": r}), nil
	case *ast.SequenceExpression:
		list, err := toWireExprList(x.Expressions)
		if err != nil {
			return nil, err
		}
		return obj("SequenceExpression", map[string]interface{}{"expressions": list}), nil
	case *ast.CallExpression:
		callee, err := toWire(x.Callee)
		if err != nil {
			return nil, err
		}
		args, err := toWireExprList(x.Arguments)
		if err != nil {
			return nil, err
		}
		return obj("CallExpression", map[string]interface{}{"callee": callee, "arguments": args}), nil
	case *ast.MemberExpression:
		o, err := toWire(x.Object)
		if err != nil {
			return nil, err
		}
		p, err := toWire(x.Property)
		if err != nil {
			return nil, err
		}
		return obj("MemberExpression", map[string]interface{}{
			"object": o, "property": p, "computed": x.Computed,
		}), nil
	case *ast.ObjectExpression:
		props := make([]interface{}, len(x.Properties))
		for i, p := range x.Properties {
			w, err := toWire(p)
			if err != nil {
				return nil, err
			}
			props[i] = w
		}
		return obj("ObjectExpression", map[string]interface{}{"properties": props}), nil
	case *ast.Property:
		k, err := toWire(x.Key)
		if err != nil {
			return nil, err
		}
		v, err := toWire(x.Value)
		if err != nil {
			return nil, err
		}
		return obj("Property", map[string]interface{}{"key": k, "value": v, "computed": x.Computed}), nil
	case *ast.FunctionExpression:
		return toWireFunction("FunctionExpression", x.Id, x.Params, x.Body)
	case *ast.FunctionDeclaration:
		return toWireFunction("FunctionDeclaration", x.Id, x.Params, x.Body)
	case *ast.VariableDeclarator:
		id, err := toWire(x.Id)
		if err != nil {
			return nil, err
		}
		init, err := toWire(x.Init)
		if err != nil {
			return nil, err
		}
		return obj("VariableDeclarator", map[string]interface{}{"id": id, "init": init}), nil
	case *ast.VariableDeclaration:
		decls := make([]interface{}, len(x.Declarations))
		for i, d := range x.Declarations {
			w, err := toWire(d)
			if err != nil {
				return nil, err
			}
			decls[i] = w
		}
		return obj("VariableDeclaration", map[string]interface{}{
			"kind": x.DeclKind, "declarations": decls,
		}), nil
	case *ast.ExpressionStatement:
		e, err := toWire(x.Expression)
		if err != nil {
			return nil, err
		}
		return obj("ExpressionStatement", map[string]interface{}{"expression": e}), nil
	case *ast.ReturnStatement:
		a, err := toWire(x.Argument)
		if err != nil {
			return nil, err
		}
		return obj("ReturnStatement", map[string]interface{}{"argument": a}), nil
	case *ast.BreakStatement:
		l, err := toWire(x.Label)
		if err != nil {
			return nil, err
		}
		return obj("BreakStatement", map[string]interface{}{"label": l}), nil
	case *ast.ContinueStatement:
		l, err := toWire(x.Label)
		if err != nil {
			return nil, err
		}
		return obj("ContinueStatement", map[string]interface{}{"label": l}), nil
	case *ast.EmptyStatement:
		return obj("EmptyStatement", nil), nil
	case *ast.IfStatement:
		test, err := toWire(x.Test)
		if err != nil {
			return nil, err
		}
		cons, err := toWire(x.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := toWire(x.Alternate)
		if err != nil {
			return nil, err
		}
		return obj("IfStatement", map[string]interface{}{
			"test": test, "consequent": cons, "alternate": alt,
		}), nil
	case *ast.ForStatement:
		init, err := toWire(x.Init)
		if err != nil {
			return nil, err
		}
		test, err := toWire(x.Test)
		if err != nil {
			return nil, err
		}
		update, err := toWire(x.Update)
		if err != nil {
			return nil, err
		}
		body, err := toWire(x.Body)
		if err != nil {
			return nil, err
		}
		return obj("ForStatement", map[string]interface{}{
			"init": init, "test": test, "update": update, "body": body,
		}), nil
	case *ast.ForInStatement:
		return toWireForEach("ForInStatement", x.Left, x.Right, x.Body)
	case *ast.ForOfStatement:
		return toWireForEach("ForOfStatement", x.Left, x.Right, x.Body)
	case *ast.WhileStatement:
		test, err := toWire(x.Test)
		if err != nil {
			return nil, err
		}
		body, err := toWire(x.Body)
		if err != nil {
			return nil, err
		}
		return obj("WhileStatement", map[string]interface{}{"test": test, "body": body}), nil
	case *ast.DoWhileStatement:
		test, err := toWire(x.Test)
		if err != nil {
			return nil, err
		}
		body, err := toWire(x.Body)
		if err != nil {
			return nil, err
		}
		return obj("DoWhileStatement", map[string]interface{}{"test": test, "body": body}), nil
	case *ast.BlockStatement:
		body, err := toWireStmtList(x.Body)
		if err != nil {
			return nil, err
		}
		return obj("BlockStatement", map[string]interface{}{"body": body}), nil
	case *ast.Program:
		body, err := toWireStmtList(x.Body)
		if err != nil {
			return nil, err
		}
		return obj("Program", map[string]interface{}{"body": body}), nil
	case *ast.TryStatement:
		block, err := toWire(x.Block)
		if err != nil {
			return nil, err
		}
		var handler interface{}
		if x.Handler != nil {
			h, err := toWire(x.Handler)
			if err != nil {
				return nil, err
			}
			handler = h
		}
		fin, err := toWire(x.Finalizer)
		if err != nil {
			return nil, err
		}
		return obj("TryStatement", map[string]interface{}{
			"block": block, "handler": handler, "finalizer": fin,
		}), nil
	case *ast.CatchClause:
		param, err := toWire(x.Param)
		if err != nil {
			return nil, err
		}
		body, err := toWire(x.Body)
		if err != nil {
			return nil, err
		}
		return obj("CatchClause", map[string]interface{}{"param": param, "body": body}), nil
	default:
		return nil, fmt.Errorf("jsonast: unknown node type %T", n)
	}
}

func toWireFunction(typ string, id *ast.Identifier, params []ast.Expr, body *ast.BlockStatement) (map[string]interface{}, error) {
	idw, err := toWire(id)
	if err != nil {
		return nil, err
	}
	ps, err := toWireExprList(params)
	if err != nil {
		return nil, err
	}
	b, err := toWire(body)
	if err != nil {
		return nil, err
	}
	return obj(typ, map[string]interface{}{"id": idw, "params": ps, "body": b}), nil
}

func toWireForEach(typ string, left ast.Node, right ast.Expr, body ast.Stmt) (map[string]interface{}, error) {
	l, err := toWire(left)
	if err != nil {
		return nil, err
	}
	r, err := toWire(right)
	if err != nil {
		return nil, err
	}
	b, err := toWire(body)
	if err != nil {
		return nil, err
	}
	return obj(typ, map[string]interface{}{"left": l, "right": r, "body": b}), nil
}

func toWireExprList(exprs []ast.Expr) ([]interface{}, error) {
	out := make([]interface{}, len(exprs))
	for i, e := range exprs {
		w, err := toWire(e)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func toWireStmtList(stmts []ast.Stmt) ([]interface{}, error) {
	out := make([]interface{}, len(stmts))
	for i, s := range stmts {
		w, err := toWire(s)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func obj(typ string, fields map[string]interface{}) map[string]interface{} {
	m := map[string]interface{}{"type": typ}
	for k, v := range fields {
		m[k] = v
	}
	return m
}

type wireEnvelope struct {
	Type string `json:"type"`
}

func fromWire(data json.RawMessage) (ast.Node, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var env wireEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case "Identifier":
		var w struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return &ast.Identifier{Name: w.Name}, nil
	case "Literal":
		var w struct {
			Value interface{} `json:"value"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: w.Value}, nil
	case "UnaryExpression":
		var w struct {
			Operator string          `json:"operator"`
			Prefix   bool            `json:"prefix"`
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		arg, err := fromWireExpr(w.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: w.Operator, Prefix: w.Prefix, Argument: arg}, nil
	case "BinaryExpression", "LogicalExpression":
		var w struct {
			Operator string          `json:"operator"`
			Left     json.RawMessage `json:"left"`
			Right    json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		l, err := fromWireExpr(w.Left)
		if err != nil {
			return nil, err
		}
		r, err := fromWireExpr(w.Right)
		if err != nil {
			return nil, err
		}
		if env.Type == "LogicalExpression" {
			return &ast.LogicalExpression{Operator: w.Operator, Left: l, Right: r}, nil
		}
		return &ast.BinaryExpression{Operator: w.Operator, Left: l, Right: r}, nil
	case "ConditionalExpression":
		var w struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		test, err := fromWireExpr(w.Test)
		if err != nil {
			return nil, err
		}
		cons, err := fromWireExpr(w.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := fromWireExpr(w.Alternate)
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}, nil
	case "AssignmentExpression":
		var w struct {
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		l, err := fromWireExpr(w.Left)
		if err != nil {
			return nil, err
		}
		r, err := fromWireExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Left: l, Right: r}, nil
	case "SequenceExpression":
		var w struct {
			Expressions []json.RawMessage `json:"expressions"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		exprs, err := fromWireExprList(w.Expressions)
		if err != nil {
			return nil, err
		}
		return &ast.SequenceExpression{Expressions: exprs}, nil
	case "CallExpression":
		var w struct {
			Callee    json.RawMessage   `json:"callee"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		callee, err := fromWireExpr(w.Callee)
		if err != nil {
			return nil, err
		}
		args, err := fromWireExprList(w.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{Callee: callee, Arguments: args}, nil
	case "MemberExpression":
		var w struct {
			Object   json.RawMessage `json:"object"`
			Property json.RawMessage `json:"property"`
			Computed bool            `json:"computed"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		o, err := fromWireExpr(w.Object)
		if err != nil {
			return nil, err
		}
		p, err := fromWireExpr(w.Property)
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpression{Object: o, Property: p, Computed: w.Computed}, nil
	case "ObjectExpression":
		var w struct {
			Properties []json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		props := make([]*ast.Property, len(w.Properties))
		for i, r := range w.Properties {
			n, err := fromWire(r)
			if err != nil {
				return nil, err
			}
			p, ok := n.(*ast.Property)
			if !ok {
				return nil, fmt.Errorf("jsonast: properties[%d] is not a Property", i)
			}
			props[i] = p
		}
		return &ast.ObjectExpression{Properties: props}, nil
	case "Property":
		var w struct {
			Key      json.RawMessage `json:"key"`
			Value    json.RawMessage `json:"value"`
			Computed bool            `json:"computed"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		k, err := fromWireExpr(w.Key)
		if err != nil {
			return nil, err
		}
		v, err := fromWireExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Property{Key: k, Value: v, Computed: w.Computed}, nil
	case "FunctionExpression", "FunctionDeclaration":
		id, params, body, err := fromWireFunction(data)
		if err != nil {
			return nil, err
		}
		if env.Type == "FunctionDeclaration" {
			return &ast.FunctionDeclaration{Id: id, Params: params, Body: body}, nil
		}
		return &ast.FunctionExpression{Id: id, Params: params, Body: body}, nil
	case "VariableDeclarator":
		var w struct {
			Id   json.RawMessage `json:"id"`
			Init json.RawMessage `json:"init"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		id, err := fromWireExpr(w.Id)
		if err != nil {
			return nil, err
		}
		init, err := fromWireExpr(w.Init)
		if err != nil {
			return nil, err
		}
		return &ast.VariableDeclarator{Id: id, Init: init}, nil
	case "VariableDeclaration":
		var w struct {
			Kind         string            `json:"kind"`
			Declarations []json.RawMessage `json:"declarations"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		decls := make([]*ast.VariableDeclarator, len(w.Declarations))
		for i, d := range w.Declarations {
			n, err := fromWire(d)
			if err != nil {
				return nil, err
			}
			decl, ok := n.(*ast.VariableDeclarator)
			if !ok {
				return nil, fmt.Errorf("jsonast: declarations[%d] is not a VariableDeclarator", i)
			}
			decls[i] = decl
		}
		return &ast.VariableDeclaration{DeclKind: w.Kind, Declarations: decls}, nil
	case "ExpressionStatement":
		var w struct {
			Expression json.RawMessage `json:"expression"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		e, err := fromWireExpr(w.Expression)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expression: e}, nil
	case "ReturnStatement":
		var w struct {
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		a, err := fromWireExpr(w.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Argument: a}, nil
	case "BreakStatement", "ContinueStatement":
		var w struct {
			Label json.RawMessage `json:"label"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		label, err := fromWireIdentifier(w.Label)
		if err != nil {
			return nil, err
		}
		if env.Type == "ContinueStatement" {
			return &ast.ContinueStatement{Label: label}, nil
		}
		return &ast.BreakStatement{Label: label}, nil
	case "EmptyStatement":
		return &ast.EmptyStatement{}, nil
	case "IfStatement":
		var w struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		test, err := fromWireExpr(w.Test)
		if err != nil {
			return nil, err
		}
		cons, err := fromWireStmt(w.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := fromWireStmt(w.Alternate)
		if err != nil {
			return nil, err
		}
		return &ast.IfStatement{Test: test, Consequent: cons, Alternate: alt}, nil
	case "ForStatement":
		var w struct {
			Init   json.RawMessage `json:"init"`
			Test   json.RawMessage `json:"test"`
			Update json.RawMessage `json:"update"`
			Body   json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		init, err := fromWire(w.Init)
		if err != nil {
			return nil, err
		}
		test, err := fromWireExpr(w.Test)
		if err != nil {
			return nil, err
		}
		update, err := fromWireExpr(w.Update)
		if err != nil {
			return nil, err
		}
		body, err := fromWireStmt(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil
	case "ForInStatement", "ForOfStatement":
		left, right, body, err := fromWireForEach(data)
		if err != nil {
			return nil, err
		}
		if env.Type == "ForOfStatement" {
			return &ast.ForOfStatement{Left: left, Right: right, Body: body}, nil
		}
		return &ast.ForInStatement{Left: left, Right: right, Body: body}, nil
	case "WhileStatement", "DoWhileStatement":
		var w struct {
			Test json.RawMessage `json:"test"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		test, err := fromWireExpr(w.Test)
		if err != nil {
			return nil, err
		}
		body, err := fromWireStmt(w.Body)
		if err != nil {
			return nil, err
		}
		if env.Type == "DoWhileStatement" {
			return &ast.DoWhileStatement{Test: test, Body: body}, nil
		}
		return &ast.WhileStatement{Test: test, Body: body}, nil
	case "BlockStatement", "Program":
		var w struct {
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		stmts, err := fromWireStmtList(w.Body)
		if err != nil {
			return nil, err
		}
		if env.Type == "Program" {
			return &ast.Program{Body: stmts}, nil
		}
		return &ast.BlockStatement{Body: stmts}, nil
	case "TryStatement":
		var w struct {
			Block     json.RawMessage `json:"block"`
			Handler   json.RawMessage `json:"handler"`
			Finalizer json.RawMessage `json:"finalizer"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		block, err := fromWireBlock(w.Block)
		if err != nil {
			return nil, err
		}
		var handler *ast.CatchClause
		if len(w.Handler) > 0 && string(w.Handler) != "null" {
			n, err := fromWire(w.Handler)
			if err != nil {
				return nil, err
			}
			h, ok := n.(*ast.CatchClause)
			if !ok {
				return nil, fmt.Errorf("jsonast: handler is not a CatchClause")
			}
			handler = h
		}
		fin, err := fromWireBlock(w.Finalizer)
		if err != nil {
			return nil, err
		}
		return &ast.TryStatement{Block: block, Handler: handler, Finalizer: fin}, nil
	case "CatchClause":
		var w struct {
			Param json.RawMessage `json:"param"`
			Body  json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		param, err := fromWireExpr(w.Param)
		if err != nil {
			return nil, err
		}
		body, err := fromWireBlock(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.CatchClause{Param: param, Body: body}, nil
	default:
		return nil, fmt.Errorf("jsonast: unknown node type %q", env.Type)
	}
}

func fromWireFunction(data json.RawMessage) (*ast.Identifier, []ast.Expr, *ast.BlockStatement, error) {
	var w struct {
		Id     json.RawMessage   `json:"id"`
		Params []json.RawMessage `json:"params"`
		Body   json.RawMessage   `json:"body"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, nil, nil, err
	}
	id, err := fromWireIdentifier(w.Id)
	if err != nil {
		return nil, nil, nil, err
	}
	params, err := fromWireExprList(w.Params)
	if err != nil {
		return nil, nil, nil, err
	}
	body, err := fromWireBlock(w.Body)
	if err != nil {
		return nil, nil, nil, err
	}
	return id, params, body, nil
}

func fromWireForEach(data json.RawMessage) (ast.Node, ast.Expr, ast.Stmt, error) {
	var w struct {
		Left  json.RawMessage `json:"left"`
		Right json.RawMessage `json:"right"`
		Body  json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, nil, nil, err
	}
	left, err := fromWire(w.Left)
	if err != nil {
		return nil, nil, nil, err
	}
	right, err := fromWireExpr(w.Right)
	if err != nil {
		return nil, nil, nil, err
	}
	body, err := fromWireStmt(w.Body)
	if err != nil {
		return nil, nil, nil, err
	}
	return left, right, body, nil
}

func fromWireExprList(raws []json.RawMessage) ([]ast.Expr, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]ast.Expr, len(raws))
	for i, r := range raws {
		e, err := fromWireExpr(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func fromWireStmtList(raws []json.RawMessage) ([]ast.Stmt, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]ast.Stmt, len(raws))
	for i, r := range raws {
		s, err := fromWireStmt(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func fromWireExpr(data json.RawMessage) (ast.Expr, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	n, err := fromWire(data)
	if err != nil || n == nil {
		return nil, err
	}
	e, ok := n.(ast.Expr)
	if !ok {
		return nil, fmt.Errorf("jsonast: %T is not valid in expression position", n)
	}
	return e, nil
}

func fromWireStmt(data json.RawMessage) (ast.Stmt, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	n, err := fromWire(data)
	if err != nil || n == nil {
		return nil, err
	}
	s, ok := n.(ast.Stmt)
	if !ok {
		return nil, fmt.Errorf("jsonast: %T is not valid in statement position", n)
	}
	return s, nil
}

func fromWireIdentifier(data json.RawMessage) (*ast.Identifier, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	n, err := fromWire(data)
	if err != nil || n == nil {
		return nil, err
	}
	id, ok := n.(*ast.Identifier)
	if !ok {
		return nil, fmt.Errorf("jsonast: %T is not an Identifier", n)
	}
	return id, nil
}

func fromWireBlock(data json.RawMessage) (*ast.BlockStatement, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	n, err := fromWire(data)
	if err != nil || n == nil {
		return nil, err
	}
	b, ok := n.(*ast.BlockStatement)
	if !ok {
		return nil, fmt.Errorf("jsonast: %T is not a BlockStatement", n)
	}
	return b, nil
}
