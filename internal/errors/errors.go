// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package errors provides error handling for clientgen.
//
// It re-exports github.com/cockroachdb/errors so that every package wraps
// errors the same way (stack traces, hints, details) and defines the
// sentinel errors generation can fail with.
//
//	reg, err := model.Build(regs...)
//	if err != nil {
//	    return errors.Wrap(err, "build model")
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing hints and details.
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	WithDetailf  = crdb.WithDetailf
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Inspection.
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
	Join      = crdb.Join
)

// Sentinel errors. Wrap them to add context; test with Is.
var (
	// ErrUnsupportedMethodType aborts generation: the model names an
	// HTTP method type the synthesizer cannot dispatch.
	ErrUnsupportedMethodType = New("unsupported method type")

	// ErrModelDefect marks a validation diagnostic promoted to an error.
	ErrModelDefect = New("model defect")

	// ErrUnknownType indicates a catalog reference to an undeclared type.
	ErrUnknownType = New("unknown type")

	// ErrUnknownBackend indicates no generator is registered under a name.
	ErrUnknownBackend = New("unknown backend")

	// ErrOutOfDate is returned by the check command when files on disk
	// differ from freshly generated output.
	ErrOutOfDate = New("generated files are out of date")
)
