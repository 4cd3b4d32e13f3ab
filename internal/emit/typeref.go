// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// Usage is where a type reference appears.
type Usage int

const (
	// PropertyUsage exposes collections as read-only sequences.
	PropertyUsage Usage = iota

	// ArgumentUsage accepts any iterable sequence.
	ArgumentUsage
)

// TypeOf maps a model reference to an emittable type. Nullability is only
// represented on value types; reference types are already nullable.
func TypeOf(ref *model.ModelRef, usage Usage) *ir.TypeRef {
	elem := elementType(ref)
	if ref.IsNullable() && elem.Value {
		elem.Nullable = true
	}
	if !ref.IsCollection() {
		return elem
	}
	if usage == ArgumentUsage {
		return &ir.TypeRef{Kind: ir.IterableSeq, Elem: elem}
	}
	return &ir.TypeRef{Kind: ir.ReadOnlySeq, Elem: elem}
}

func elementType(ref *model.ModelRef) *ir.TypeRef {
	switch ref.Kind() {
	case model.RefPrimitive:
		return &ir.TypeRef{Kind: ir.Primitive, Name: string(ref.Primitive()), Value: ref.Primitive().IsValueType()}
	case model.RefEntity:
		return &ir.TypeRef{Kind: ir.Named, Name: ref.Name(), Of: ir.NamedEntity}
	case model.RefEnumeration:
		return &ir.TypeRef{Kind: ir.Named, Name: ref.Name(), Of: ir.NamedEnum, Value: true}
	case model.RefIdentifier:
		return &ir.TypeRef{Kind: ir.Named, Name: ref.Name(), Of: ir.NamedWrapper, Value: true}
	}
	return &ir.TypeRef{Kind: ir.Named, Name: ref.Name(), Of: ir.NamedExternal}
}
