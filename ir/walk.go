// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ir

// Inspect traverses statements depth-first, calling f for every statement
// and expression. Children are skipped when f returns false.
func Inspect(stmts []Stmt, f func(node any) bool) {
	for _, s := range stmts {
		inspectStmt(s, f)
	}
}

func inspectStmt(s Stmt, f func(any) bool) {
	if s == nil || !f(s) {
		return
	}
	switch s := s.(type) {
	case *VarDecl:
		inspectExpr(s.Value, f)
	case *ExprStmt:
		inspectExpr(s.X, f)
	case *If:
		inspectExpr(s.Cond, f)
		Inspect(s.Then, f)
	case *Return:
		inspectExpr(s.X, f)
	case *Assign:
		inspectExpr(s.Target, f)
		inspectExpr(s.Value, f)
	case *SetEntry:
		inspectExpr(s.Map, f)
		inspectExpr(s.Value, f)
	}
}

func inspectExpr(e Expr, f func(any) bool) {
	if e == nil || !f(e) {
		return
	}
	switch e := e.(type) {
	case *Member:
		inspectExpr(e.X, f)
	case *Unwrap:
		inspectExpr(e.X, f)
	case *Present:
		inspectExpr(e.X, f)
	case *NonEmpty:
		inspectExpr(e.X, f)
	case *Greater:
		inspectExpr(e.X, f)
		inspectExpr(e.Y, f)
	case *Or:
		for _, o := range e.Operands {
			inspectExpr(o, f)
		}
	case *NewValue:
		for _, a := range e.Args {
			inspectExpr(a, f)
		}
	case *Convert:
		inspectExpr(e.X, f)
	case *MethodCall:
		inspectExpr(e.Recv, f)
		for _, a := range e.Args {
			inspectExpr(a, f)
		}
	case *TransportCall:
		inspectExpr(e.URL, f)
		inspectExpr(e.Body, f)
		inspectExpr(e.Cancel, f)
	case *OperationCall:
		inspectExpr(e.Recv, f)
		for _, a := range e.Args {
			inspectExpr(a, f)
		}
	}
}

// Values computes the numeric value of every member. Implicit values follow
// the previous member plus one, starting at zero. Aggregates evaluate the
// referenced members of the same enumeration.
func (d *EnumDecl) Values() []int64 {
	values := make([]int64, len(d.Members))
	byName := make(map[string]int64, len(d.Members))
	var next int64
	for i, m := range d.Members {
		v := next
		switch val := m.Value.(type) {
		case *IntLit:
			v = val.Value
		case *Or:
			v = 0
			for _, op := range val.Operands {
				if ref, ok := op.(*EnumMemberRef); ok {
					v |= byName[ref.Member]
				}
			}
		}
		values[i] = v
		byName[m.Name] = v
		next = v + 1
	}
	return values
}
