// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ir

// Stmt is a statement node.
type Stmt interface {
	stmt()
}

// VarDecl declares and initializes a local variable.
type VarDecl struct {
	Name  string
	Value Expr
}

// ExprStmt evaluates X for its effect.
type ExprStmt struct {
	X Expr
}

// If runs Then when Cond holds.
type If struct {
	Cond Expr
	Then []Stmt
}

// Return leaves the method, with X as result unless nil.
type Return struct {
	X Expr
}

// Assign stores Value into Target.
type Assign struct {
	Target Expr
	Value  Expr
}

// ThrowIfNull fails fast when the named parameter is absent.
type ThrowIfNull struct {
	Name string
}

// SetEntry adds Key to the payload map.
type SetEntry struct {
	Map   Expr
	Key   string
	Value Expr
}

func (*VarDecl) stmt()     {}
func (*ExprStmt) stmt()    {}
func (*If) stmt()          {}
func (*Return) stmt()      {}
func (*Assign) stmt()      {}
func (*ThrowIfNull) stmt() {}
func (*SetEntry) stmt()    {}
