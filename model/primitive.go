// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

// Primitive is a built-in scalar type name.
type Primitive string

// Primitive type names as they appear in catalogs.
const (
	String   Primitive = "string"
	Bool     Primitive = "bool"
	Int32    Primitive = "int32"
	Int64    Primitive = "int64"
	Double   Primitive = "double"
	DateTime Primitive = "datetime"
	Date     Primitive = "date"
	Duration Primitive = "duration"
	Object   Primitive = "object"
)

var primitives = map[Primitive]bool{
	String:   true,
	Bool:     true,
	Int32:    true,
	Int64:    true,
	Double:   true,
	DateTime: true,
	Date:     true,
	Duration: true,
	Object:   true,
}

// IsPrimitive reports whether name is a recognized primitive.
func IsPrimitive(name string) bool {
	return primitives[Primitive(name)]
}

// IsValueType reports whether the primitive has value semantics, meaning
// nullability must be expressed on the type itself.
func (p Primitive) IsValueType() bool {
	switch p {
	case String, Object:
		return false
	}
	return true
}

// IsNumeric reports whether the primitive can back an enumeration.
func (p Primitive) IsNumeric() bool {
	switch p {
	case Int32, Int64:
		return true
	}
	return false
}
