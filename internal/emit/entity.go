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

// DateReason documents why date-only properties skip time zone validation.
const DateReason = "Does not contain time nor timezone (e.g. 2018-01-01)"

// EmitEntity produces the class of one entity. Properties delegate to
// private backing fields and can only be set by the type itself.
func EmitEntity(e *model.Entity, baseType string) *ir.ClassDecl {
	c := &ir.ClassDecl{
		Name: e.Name,
		Doc:  docOf(e.Documentation),
		Base: e.BaseType,
	}
	if c.Base == "" {
		c.Base = baseType
	}

	for _, p := range e.Properties {
		t := TypeOf(p.Type, PropertyUsage)
		field := &ir.Field{Name: naming.Field(p.Name), Type: t}
		prop := &ir.Property{
			Name:          naming.Pascal(p.Name),
			Doc:           docOf(p.Documentation),
			Type:          t,
			Field:         field.Name,
			PrivateSetter: true,
			Serialization: ir.Serialization{Name: p.WireName()},
		}
		if p.JSONConverter != nil {
			prop.Serialization.Converter = TypeOf(p.JSONConverter, PropertyUsage)
		}
		if p.Type.IsDate() {
			prop.Serialization.SkipDateValidation = true
			prop.Serialization.SkipReason = DateReason
		}
		c.Fields = append(c.Fields, field)
		c.Properties = append(c.Properties, prop)
	}
	return c
}

// EmitBase produces the common base type of entities. It exposes the owning
// client so extension operations can reach it.
func EmitBase(name, clientName string) *ir.ClassDecl {
	return &ir.ClassDecl{
		Name:     name,
		Abstract: true,
		Properties: []*ir.Property{{
			Name:          clientName,
			Type:          &ir.TypeRef{Kind: ir.Named, Name: clientName, Of: ir.NamedClient},
			Serialization: ir.Serialization{Ignore: true},
		}},
	}
}
