// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the contract between the model and the
// language backends that print a client library from it.
package generator

import (
	"context"

	"github.com/albertocavalcante/clientgen/model"
)

// Generator prints a client library for one target language.
//
// Implementations emit the registry through [Prepare] and render the
// resulting unit; they must not mutate reg.
type Generator interface {
	Metadata() Metadata
	Generate(ctx context.Context, reg *model.Registry, cfg Config) (*Output, error)
}

// Metadata describes a backend.
type Metadata struct {
	// Name selects the backend on the command line ("csharp", "go").
	Name string

	// Aliases are accepted in place of Name.
	Aliases []string

	Version     string
	Description string

	// FileExtensions of the files the backend writes.
	FileExtensions []string

	// Runtime is the support library generated code depends on: a C#
	// namespace or a Go import path.
	Runtime string
}
