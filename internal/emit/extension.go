// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"github.com/albertocavalcante/clientgen/internal/naming"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// ExtensionName derives the contextual name of an extension operation by
// removing every case-insensitive occurrence of the receiver type name.
func ExtensionName(base, receiver string) string {
	return naming.RemoveFold(base, receiver)
}

// extension is one derived operation waiting for its receiver type.
type extension struct {
	receiver string
	decl     *ir.MethodDecl
}

// synthesizeExtensions derives, for every wrapper-typed parameter of m and
// every Ref of that wrapper targeting an entity, an operation attached to
// the entity that forwards to base with the receiver bound to the
// parameter. Derivations whose name would be empty are reported and
// skipped.
func synthesizeExtensions(m *model.Method, base *ir.MethodDecl, clientMember string, report *Report) []extension {
	var out []extension
	for _, p := range m.Parameters {
		if p.Type.Kind() != model.RefIdentifier || p.Type.IsCollection() {
			continue
		}
		for _, ref := range p.Type.Wrapper().Refs {
			if !ref.Target.IsModelEntity() {
				continue
			}
			receiver := ref.Target.Entity().Name
			name := ExtensionName(base.Name, receiver)
			if name == "" {
				report.add(Diagnostic{
					Code:     CodeEmptyExtensionName,
					Subject:  m.Name,
					Message:  "removing receiver " + receiver + " leaves an empty operation name; extension skipped",
					Severity: Warning,
				})
				continue
			}
			out = append(out, extension{
				receiver: receiver,
				decl:     bind(base, ArgumentName(p), name, receiver, clientMember, TypeOf(ref.Target, ArgumentUsage)),
			})
		}
	}
	return out
}

// bind copies the base signature without the bound parameter and forwards
// every argument, substituting the receiver for the bound one.
func bind(base *ir.MethodDecl, bound, name, receiver, clientMember string, receiverType *ir.TypeRef) *ir.MethodDecl {
	decl := &ir.MethodDecl{
		Name:   name,
		Doc:    base.Doc,
		Return: base.Return,
		Extension: &ir.Extension{
			Base:         base.Name,
			Bound:        bound,
			Receiver:     receiver,
			ClientMember: clientMember,
		},
	}

	args := make([]ir.Expr, 0, len(base.Params))
	for _, p := range base.Params {
		if p.Name == bound {
			args = append(args, &ir.Convert{X: &ir.This{}, From: receiverType, To: p.Type})
			continue
		}
		decl.Params = append(decl.Params, p)
		args = append(args, &ir.Ident{Name: p.Name})
	}

	decl.Body = []ir.Stmt{&ir.Return{X: &ir.OperationCall{
		Recv: &ir.Member{X: &ir.This{}, Name: clientMember},
		Name: base.Name,
		Args: args,
	}}}
	return decl
}
