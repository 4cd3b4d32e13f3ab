// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ir is the language-neutral intermediate representation produced
// by the emitters and consumed by backend printers.
//
// A [Unit] holds declarations; declarations hold statements; statements hold
// expressions. Nodes carry names already converted to the client's naming
// conventions (PascalCase members, camelCase arguments) so that backends
// only decide spelling details specific to their language.
package ir

// Printer turns a Unit into source text. Each backend provides one.
type Printer interface {
	Print(u *Unit) ([]byte, error)
}

// Unit is one generated source artifact.
type Unit struct {
	// Namespace is the package or namespace the declarations live in.
	Namespace string

	// Source describes where the model came from. Printed in the header.
	Source string

	Decls []Decl
}

// Add appends declarations.
func (u *Unit) Add(d ...Decl) {
	u.Decls = append(u.Decls, d...)
}

// Lookup finds a declaration by name.
func (u *Unit) Lookup(name string) (Decl, bool) {
	for _, d := range u.Decls {
		if d.DeclName() == name {
			return d, true
		}
	}
	return nil, false
}

// Class finds a class declaration by name.
func (u *Unit) Class(name string) (*ClassDecl, bool) {
	d, ok := u.Lookup(name)
	if !ok {
		return nil, false
	}
	c, ok := d.(*ClassDecl)
	return c, ok
}

// Client returns the client declaration, if any.
func (u *Unit) Client() (*ClientDecl, bool) {
	for _, d := range u.Decls {
		if c, ok := d.(*ClientDecl); ok {
			return c, true
		}
	}
	return nil, false
}

// Doc is optional prose. A nil *Doc or empty fields print nothing.
type Doc struct {
	Summary string
	Remark  string
	Returns string
}

// IsZero reports whether there is nothing to print.
func (d *Doc) IsZero() bool {
	return d == nil || (d.Summary == "" && d.Remark == "" && d.Returns == "")
}

// Decl is a top-level declaration.
type Decl interface {
	DeclName() string
	decl()
}

// EnumDecl is an enumeration type.
type EnumDecl struct {
	Name string
	Doc  *Doc

	// Backing is the primitive name of the underlying integer type.
	Backing string

	Flags bool

	// StringSerialized marks enumerations serialized by member name.
	StringSerialized bool

	Members []*EnumMember
}

// EnumMember is one enumeration constant.
type EnumMember struct {
	Name string
	Doc  *Doc

	// Value is nil for an implicit value, an *IntLit, or an *Or of
	// *EnumMemberRef for the synthesized aggregate member.
	Value Expr

	// SerializedName is set only on string-serialized enumerations.
	SerializedName string
}

// ClassDecl is an entity type, or the common base type of entities.
type ClassDecl struct {
	Name string
	Doc  *Doc

	// Base is the parent type name, empty for none.
	Base string

	// Abstract marks the common base type.
	Abstract bool

	Fields     []*Field
	Properties []*Property

	// Methods are extension operations attached in the second phase.
	Methods []*MethodDecl
}

// Field is a private backing field.
type Field struct {
	Name string
	Type *TypeRef
}

// Property is a public member, usually delegating to a Field.
type Property struct {
	Name string
	Doc  *Doc
	Type *TypeRef

	// Field names the backing field. Empty for auto-properties.
	Field string

	// PrivateSetter restricts assignment to the declaring type.
	PrivateSetter bool

	// ReadOnly properties have no setter at all.
	ReadOnly bool

	Serialization Serialization
}

// Serialization is descriptive metadata a backend renders as attributes,
// struct tags or whatever its serialization library expects.
type Serialization struct {
	// Name is the wire name.
	Name string

	// Converter is a custom converter type, nil for none.
	Converter *TypeRef

	// SkipDateValidation marks date-only values as intentionally lacking a
	// time and zone.
	SkipDateValidation bool
	SkipReason         string

	// Ignore excludes the member from serialization.
	Ignore bool
}

// StructDecl is an identifier wrapper value type.
type StructDecl struct {
	Name string
	Doc  *Doc

	// Field stores the final value.
	Field *Field

	// Value exposes Field read-only.
	Value *Property

	// Reference marks the type as an identifier reference with its own
	// serialization converter.
	Reference bool

	Ctors       []*Ctor
	Conversions []*Conversion
}

// Ctor is a converting constructor from one source type.
type Ctor struct {
	Param *Param
	Body  []Stmt
}

// Conversion is an implicit conversion operator from one source type.
type Conversion struct {
	Param *Param
	Body  []Stmt
}

// ClientDecl is the client type holding every base operation.
type ClientDecl struct {
	Name    string
	Doc     *Doc
	Methods []*MethodDecl
}

// Method finds an operation by name.
func (c *ClientDecl) Method(name string) (*MethodDecl, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// MethodDecl is an asynchronous, cancellable operation.
type MethodDecl struct {
	Name   string
	Doc    *Doc
	Params []*Param

	// Return is always an Awaitable.
	Return *TypeRef

	Body []Stmt

	// Extension is set on derived operations attached to an entity.
	Extension *Extension
}

// Param finds a parameter by name.
func (m *MethodDecl) Param(name string) (*Param, bool) {
	for _, p := range m.Params {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Extension describes how a derived operation forwards to its base.
type Extension struct {
	// Base is the forwarded operation.
	Base string

	// Bound is the base parameter replaced by the receiver.
	Bound string

	// Receiver is the entity type the operation is attached to.
	Receiver string

	// ClientMember is the receiver member holding the client.
	ClientMember string
}

// Param is a method, constructor or conversion parameter.
type Param struct {
	Name string
	Type *TypeRef

	// Optional parameters default to the zero value of their type.
	Optional bool

	Doc string

	// Wire is the model name for parameters derived from the model, empty
	// for synthesized ones.
	Wire string
}

func (*EnumDecl) decl()   {}
func (*ClassDecl) decl()  {}
func (*StructDecl) decl() {}
func (*ClientDecl) decl() {}

func (d *EnumDecl) DeclName() string   { return d.Name }
func (d *ClassDecl) DeclName() string  { return d.Name }
func (d *StructDecl) DeclName() string { return d.Name }
func (d *ClientDecl) DeclName() string { return d.Name }
