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

// EmitEnumeration produces an enumeration type. The synthesized All member,
// when requested, ORs every declared member in declaration order whether or
// not the enumeration is a flag set.
func EmitEnumeration(e *model.Enumeration) *ir.EnumDecl {
	d := &ir.EnumDecl{
		Name:             e.Name,
		Doc:              docOf(e.Documentation),
		Backing:          string(e.Backing()),
		Flags:            e.IsFlags,
		StringSerialized: e.SerializeAsString,
	}

	for _, m := range e.Members {
		member := &ir.EnumMember{
			Name: naming.Pascal(m.Name),
			Doc:  docOf(m.Documentation),
		}
		if m.Value != nil {
			member.Value = &ir.IntLit{Value: *m.Value}
		}
		if e.SerializeAsString {
			member.SerializedName = m.WireName()
		}
		d.Members = append(d.Members, member)
	}

	if e.GenerateAllMember {
		all := &ir.Or{}
		for _, m := range d.Members {
			all.Operands = append(all.Operands, &ir.EnumMemberRef{Enum: d.Name, Member: m.Name})
		}
		d.Members = append(d.Members, &ir.EnumMember{Name: naming.Pascal("all"), Value: all})
	}
	return d
}
