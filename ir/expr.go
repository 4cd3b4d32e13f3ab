// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ir

// Expr is an expression node.
type Expr interface {
	expr()
}

// Ident names a parameter or local variable.
type Ident struct {
	Name string
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// Null is the absent value.
type Null struct{}

// This is the receiver of the enclosing declaration.
type This struct{}

// Member reads a property or field of X.
type Member struct {
	X    Expr
	Name string
}

// Unwrap reads the stored value of an identifier wrapper. Nullable tells
// whether X itself is an optional wrapper.
type Unwrap struct {
	X        Expr
	Nullable bool
}

// Present tests that X holds a value. Type is the static type of X.
type Present struct {
	X    Expr
	Type *TypeRef
}

// NonEmpty tests that a string is neither absent nor empty.
type NonEmpty struct {
	X Expr
}

// Greater is X > Y.
type Greater struct {
	X, Y Expr
}

// Or is the bitwise OR of its operands, in order.
type Or struct {
	Operands []Expr
}

// EnumMemberRef references a member of an enumeration.
type EnumMemberRef struct {
	Enum   string
	Member string
}

// NewURLBuilder seeds a URL builder from a template.
type NewURLBuilder struct {
	Template string
}

// NewBodyMap creates an empty request payload.
type NewBodyMap struct{}

// NewValue constructs Type from Args through its converting constructor.
type NewValue struct {
	Type *TypeRef
	Args []Expr
}

// Convert implicitly converts X from one type to another.
type Convert struct {
	X    Expr
	From *TypeRef
	To   *TypeRef
}

// MethodCall invokes a runtime helper method on Recv, such as the URL
// builder operations.
type MethodCall struct {
	Recv Expr
	Name string
	Args []Expr
}

// Transport primitives invoked by generated operations.
const (
	TransportGet           = "Get"
	TransportGetCollection = "GetCollection"
	TransportGetPaged      = "GetPaged"
	TransportPut           = "PutJson"
	TransportPost          = "PostJson"
	TransportDelete        = "Delete"
)

// URL builder operations.
const (
	URLBuilderWithValue = "WithValue"
	URLBuilderBuild     = "Build"
)

// TransportCall dispatches a request through the client's transport.
type TransportCall struct {
	// Primitive is one of the Transport* constants.
	Primitive string

	// Result is the element type decoded from the response, nil for none.
	Result *TypeRef

	URL Expr

	// Body is the payload for submit primitives. Null when the operation
	// has no body parameters; ignored by the other primitives.
	Body Expr

	Cancel Expr
}

// OperationCall invokes a generated operation on the client reached
// through Recv.
type OperationCall struct {
	Recv Expr
	Name string
	Args []Expr
}

func (*Ident) expr()         {}
func (*StringLit) expr()     {}
func (*IntLit) expr()        {}
func (*Null) expr()          {}
func (*This) expr()          {}
func (*Member) expr()        {}
func (*Unwrap) expr()        {}
func (*Present) expr()       {}
func (*NonEmpty) expr()      {}
func (*Greater) expr()       {}
func (*Or) expr()            {}
func (*EnumMemberRef) expr() {}
func (*NewURLBuilder) expr() {}
func (*NewBodyMap) expr()    {}
func (*NewValue) expr()      {}
func (*Convert) expr()       {}
func (*MethodCall) expr()    {}
func (*TransportCall) expr() {}
func (*OperationCall) expr() {}
