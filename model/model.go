// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the declarative description of an HTTP API surface:
// entities, enumerations, identifier wrappers and the operations a client
// exposes.
//
// A model is assembled once through a [Builder] and frozen into a
// [Registry]. Emitters only read it; nothing in this package is safe to
// mutate after [Builder.Build] returns.
package model

// Documentation is optional prose attached to model elements. Empty fields
// are skipped by the emitters.
type Documentation struct {
	Summary string `yaml:"summary"`
	Remark  string `yaml:"remark"`
	Returns string `yaml:"returns"`
}

// Entity is a resource returned or accepted by the API.
type Entity struct {
	// Name is the emitted type name (e.g., "Project").
	Name string

	// BaseType names the type the entity derives from. Empty means the
	// configured common base type.
	BaseType string

	// Properties are emitted in declaration order.
	Properties []*Property

	Documentation *Documentation
}

// Property is one serialized member of an entity.
type Property struct {
	// Name is the raw catalog name (e.g., "web_url").
	Name string

	Type *ModelRef

	// SerializationName overrides the wire name. Empty means Name, which is
	// never case-converted for serialization.
	SerializationName string

	// JSONConverter references a custom (de)serialization converter type.
	JSONConverter *ModelRef

	Documentation *Documentation
}

// WireName returns the name the property is serialized under.
func (p *Property) WireName() string {
	if p.SerializationName != "" {
		return p.SerializationName
	}
	return p.Name
}

// Enumeration is a named set of numeric constants.
type Enumeration struct {
	Name string

	// BaseType is the backing numeric type. Empty means Int32.
	BaseType Primitive

	// IsFlags marks a bit-flag set.
	IsFlags bool

	// SerializeAsString serializes members by name instead of value.
	SerializeAsString bool

	// GenerateAllMember appends an "All" member OR-ing every declared
	// member. Only meaningful together with IsFlags; not enforced.
	GenerateAllMember bool

	Members []*EnumerationMember

	Documentation *Documentation
}

// Backing returns the backing numeric type, defaulting to Int32.
func (e *Enumeration) Backing() Primitive {
	if e.BaseType == "" {
		return Int32
	}
	return e.BaseType
}

// EnumerationMember is one constant of an enumeration.
type EnumerationMember struct {
	Name string

	// Value is the explicit numeric value, nil for implicit.
	Value *int64

	SerializationName string

	Documentation *Documentation
}

// WireName returns the serialized member name.
func (m *EnumerationMember) WireName() string {
	if m.SerializationName != "" {
		return m.SerializationName
	}
	return m.Name
}

// IdentifierWrapper (parameter entity) is a value type that stores a single
// FinalType value and can be built implicitly from each of its Refs.
type IdentifierWrapper struct {
	Name string

	// FinalType is what the wrapper ultimately stores.
	FinalType *ModelRef

	// Refs lists the admissible source types in declaration order. A wrapper
	// without refs has no construction path.
	Refs []*Ref

	Documentation *Documentation
}

// Ref is one admissible source of an IdentifierWrapper.
type Ref struct {
	// Target is the source type.
	Target *ModelRef

	// PropertyPath is read from the source, in order, to reach FinalType.
	// Empty means the source already is the final value.
	PropertyPath []string
}

// MethodType selects the HTTP verb and result shape of an operation.
type MethodType string

// Supported method types.
const (
	Get      MethodType = "get"
	GetPaged MethodType = "get_paged"
	Put      MethodType = "put"
	Post     MethodType = "post"
	Delete   MethodType = "delete"
)

// Location is where a parameter is transmitted.
type Location string

// Parameter locations. LocationDefault defers to the inference rules.
const (
	LocationDefault Location = ""
	LocationURL     Location = "url"
	LocationBody    Location = "body"
)

// Method is a callable API operation.
type Method struct {
	Name string

	MethodType MethodType

	// URLTemplate holds ":param" placeholders (e.g., "/projects/:id/issues").
	URLTemplate string

	// Parameters are in declaration order.
	Parameters []*MethodParameter

	// ReturnType is nil for operations without a result.
	ReturnType *ModelRef

	Documentation *Documentation
}

// MethodParameter is one argument of a Method.
type MethodParameter struct {
	// Name is the wire name, used as URL key and body key.
	Name string

	Type *ModelRef

	IsOptional bool

	Location Location

	// OverrideArgumentName replaces the derived argument name.
	OverrideArgumentName string

	Documentation *Documentation
}
