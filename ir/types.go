// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ir

import "strings"

// TypeKind classifies a TypeRef.
type TypeKind int

const (
	// Primitive names a model primitive in Name (e.g., "int64").
	Primitive TypeKind = iota

	// Named is a declared type; Of tells which kind.
	Named

	// ReadOnlySeq is the sequence exposed by properties and results.
	ReadOnlySeq

	// IterableSeq is the broader sequence accepted by arguments.
	IterableSeq

	// Awaitable is an asynchronous result of Elem, or of nothing when Elem
	// is nil.
	Awaitable

	// Paged is a paged response of Elem.
	Paged

	// BodyMap is the string-keyed request payload.
	BodyMap

	// PageOptions is the runtime paging options type.
	PageOptions

	// Cancellation is the cancellation signal.
	Cancellation

	// URLBuilder is the runtime URL builder.
	URLBuilder
)

var kindNames = [...]string{
	Primitive:    "primitive",
	Named:        "named",
	ReadOnlySeq:  "readonly-seq",
	IterableSeq:  "iterable-seq",
	Awaitable:    "awaitable",
	Paged:        "paged",
	BodyMap:      "body-map",
	PageOptions:  "page-options",
	Cancellation: "cancellation",
	URLBuilder:   "url-builder",
}

func (k TypeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// NamedKind tells what a Named TypeRef refers to.
type NamedKind int

const (
	NamedEntity NamedKind = iota
	NamedEnum
	NamedWrapper
	NamedExternal
	NamedClient
)

// TypeRef is a concrete, emittable type.
type TypeRef struct {
	Kind TypeKind

	// Name is the primitive or declared type name.
	Name string

	// Of classifies Named types.
	Of NamedKind

	// Elem is the element of sequences, awaitables and paged responses.
	Elem *TypeRef

	// Nullable marks an optional value type (e.g., int64?).
	Nullable bool

	// Value reports value semantics for Primitive and Named types.
	Value bool
}

// Void is an awaitable without a result.
func Void() *TypeRef { return &TypeRef{Kind: Awaitable} }

// Await wraps t in an Awaitable.
func Await(t *TypeRef) *TypeRef { return &TypeRef{Kind: Awaitable, Elem: t} }

// Builtin returns a TypeRef of a runtime-provided kind.
func Builtin(k TypeKind) *TypeRef { return &TypeRef{Kind: k} }

// IsVoid reports whether t is an awaitable without a result.
func (t *TypeRef) IsVoid() bool {
	return t.Kind == Awaitable && t.Elem == nil
}

// IsSeq reports whether t is either sequence kind.
func (t *TypeRef) IsSeq() bool {
	return t.Kind == ReadOnlySeq || t.Kind == IterableSeq
}

// String is a debugging rendering, not any backend's spelling.
func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	switch t.Kind {
	case Primitive, Named:
		b.WriteString(t.Name)
	case ReadOnlySeq, IterableSeq, Awaitable, Paged:
		b.WriteString(t.Kind.String())
		b.WriteString("<")
		if t.Elem != nil {
			b.WriteString(t.Elem.String())
		}
		b.WriteString(">")
	default:
		b.WriteString(t.Kind.String())
	}
	if t.Nullable {
		b.WriteString("?")
	}
	return b.String()
}
