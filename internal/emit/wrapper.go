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

const (
	wrapperField = "_value"
	wrapperValue = "Value"
	wrapperParam = "value"
)

// EmitWrapper produces the value type of an identifier wrapper with one
// converting constructor and one implicit conversion per Ref. Both reject
// an absent entity before reading through the property path.
func EmitWrapper(w *model.IdentifierWrapper) *ir.StructDecl {
	final := TypeOf(w.FinalType, PropertyUsage)
	s := &ir.StructDecl{
		Name:      w.Name,
		Doc:       docOf(w.Documentation),
		Field:     &ir.Field{Name: wrapperField, Type: final},
		Value:     &ir.Property{Name: wrapperValue, Type: final, Field: wrapperField, ReadOnly: true},
		Reference: true,
	}
	self := &ir.TypeRef{Kind: ir.Named, Name: w.Name, Of: ir.NamedWrapper, Value: true}

	for _, ref := range w.Refs {
		src := TypeOf(ref.Target, PropertyUsage)

		var projection ir.Expr = &ir.Ident{Name: wrapperParam}
		for _, prop := range ref.PropertyPath {
			projection = &ir.Member{X: projection, Name: naming.Pascal(prop)}
		}

		var guard []ir.Stmt
		if ref.Target.Kind() == model.RefEntity {
			guard = []ir.Stmt{&ir.ThrowIfNull{Name: wrapperParam}}
		}

		s.Ctors = append(s.Ctors, &ir.Ctor{
			Param: &ir.Param{Name: wrapperParam, Type: src},
			Body: append(guard[:len(guard):len(guard)], &ir.Assign{
				Target: &ir.Member{X: &ir.This{}, Name: wrapperField},
				Value:  projection,
			}),
		})
		s.Conversions = append(s.Conversions, &ir.Conversion{
			Param: &ir.Param{Name: wrapperParam, Type: src},
			Body: append(guard[:len(guard):len(guard)], &ir.Return{
				X: &ir.NewValue{Type: self, Args: []ir.Expr{&ir.Ident{Name: wrapperParam}}},
			}),
		})
	}
	return s
}
