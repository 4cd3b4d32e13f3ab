// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/clientgen/internal/emit"

// Config contains generator configuration.
type Config struct {
	// OutputDir is the output directory.
	OutputDir string

	// OutputFile is for single file output (optional).
	OutputFile string

	// Types filters to specific type and operation names (empty = all).
	Types []string

	// ResolveDeps includes transitive dependencies when filtering.
	ResolveDeps bool

	// Namespace is the namespace or package of the generated client.
	Namespace string

	// ClientName is the generated client type.
	ClientName string

	// BaseType is the common base of entities.
	BaseType string

	// Strict fails generation on model defects instead of warning.
	Strict bool

	// Source is the catalog source (for headers).
	Source string

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// EmitOptions returns the emitter options derived from c.
func (c Config) EmitOptions() emit.Options {
	return emit.Options{
		Namespace:  c.Namespace,
		ClientName: c.ClientName,
		BaseType:   c.BaseType,
		Source:     c.Source,
		Strict:     c.Strict,
	}
}
