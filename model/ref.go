// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import "strings"

// RefKind classifies what a ModelRef points at.
type RefKind int

const (
	RefPrimitive RefKind = iota
	RefEntity
	RefEnumeration
	RefIdentifier

	// RefExternal names a type provided by the runtime support package
	// rather than the model, such as a custom serialization converter.
	RefExternal
)

// String returns a lowercase label for diagnostics.
func (k RefKind) String() string {
	switch k {
	case RefPrimitive:
		return "primitive"
	case RefEntity:
		return "entity"
	case RefEnumeration:
		return "enumeration"
	case RefIdentifier:
		return "identifier"
	case RefExternal:
		return "external"
	}
	return "unknown"
}

// ModelRef is an immutable type reference. Exactly one target is set,
// matching Kind.
type ModelRef struct {
	kind        RefKind
	external    string
	primitive   Primitive
	entity      *Entity
	enumeration *Enumeration
	wrapper     *IdentifierWrapper
	collection  bool
	nullable    bool
}

// PrimitiveRef references a built-in scalar.
func PrimitiveRef(p Primitive) *ModelRef {
	return &ModelRef{kind: RefPrimitive, primitive: p}
}

// EntityRef references a model entity.
func EntityRef(e *Entity) *ModelRef {
	return &ModelRef{kind: RefEntity, entity: e}
}

// EnumRef references an enumeration.
func EnumRef(e *Enumeration) *ModelRef {
	return &ModelRef{kind: RefEnumeration, enumeration: e}
}

// WrapperRef references an identifier wrapper.
func WrapperRef(w *IdentifierWrapper) *ModelRef {
	return &ModelRef{kind: RefIdentifier, wrapper: w}
}

// ExternalRef references a type defined outside the model.
func ExternalRef(name string) *ModelRef {
	return &ModelRef{kind: RefExternal, external: name}
}

// AsCollection returns a copy marked as a collection.
func (r *ModelRef) AsCollection() *ModelRef {
	c := *r
	c.collection = true
	return &c
}

// AsNullable returns a copy marked as nullable.
func (r *ModelRef) AsNullable() *ModelRef {
	c := *r
	c.nullable = true
	return &c
}

// Kind reports what the reference points at.
func (r *ModelRef) Kind() RefKind { return r.kind }

// Primitive returns the primitive target, empty unless Kind is RefPrimitive.
func (r *ModelRef) Primitive() Primitive { return r.primitive }

// Entity returns the entity target or nil.
func (r *ModelRef) Entity() *Entity { return r.entity }

// Enumeration returns the enumeration target or nil.
func (r *ModelRef) Enumeration() *Enumeration { return r.enumeration }

// Wrapper returns the identifier wrapper target or nil.
func (r *ModelRef) Wrapper() *IdentifierWrapper { return r.wrapper }

// IsCollection reports whether the reference denotes a sequence.
func (r *ModelRef) IsCollection() bool { return r.collection }

// IsNullable reports whether absence is a valid value.
func (r *ModelRef) IsNullable() bool { return r.nullable }

// IsModelEntity reports whether the reference is a non-collection entity.
func (r *ModelRef) IsModelEntity() bool {
	return r.kind == RefEntity && !r.collection
}

// IsDate reports whether the reference is the calendar-date primitive.
func (r *ModelRef) IsDate() bool {
	return r.kind == RefPrimitive && r.primitive == Date && !r.collection
}

// IsValueType reports whether the element type has value semantics.
// Entities are reference types; enumerations and wrappers are values.
func (r *ModelRef) IsValueType() bool {
	switch r.kind {
	case RefPrimitive:
		return r.primitive.IsValueType()
	case RefEnumeration, RefIdentifier:
		return true
	}
	return false
}

// Name returns the element type name, without collection or nullable markers.
func (r *ModelRef) Name() string {
	switch r.kind {
	case RefPrimitive:
		return string(r.primitive)
	case RefEntity:
		return r.entity.Name
	case RefEnumeration:
		return r.enumeration.Name
	case RefIdentifier:
		return r.wrapper.Name
	case RefExternal:
		return r.external
	}
	return ""
}

// String renders the catalog spelling (e.g., "Project[]?").
func (r *ModelRef) String() string {
	var b strings.Builder
	b.WriteString(r.Name())
	if r.collection {
		b.WriteString("[]")
	}
	if r.nullable {
		b.WriteString("?")
	}
	return b.String()
}
