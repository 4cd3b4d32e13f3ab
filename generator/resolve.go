// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"maps"
	"slices"

	"github.com/albertocavalcante/clientgen/internal/emit"
	"github.com/albertocavalcante/clientgen/internal/log"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// ResolveDeps expands a filter of type and operation names to include all
// transitively referenced types from the model. Returns nil if filter is
// nil (meaning "generate everything").
func ResolveDeps(reg *model.Registry, filter map[string]bool) map[string]bool {
	if filter == nil {
		return nil
	}

	expanded := make(map[string]bool)
	for name := range filter {
		collectDeps(reg, name, expanded)
	}
	return expanded
}

// collectDeps recursively collects all types referenced by name.
func collectDeps(reg *model.Registry, name string, visited map[string]bool) {
	if visited[name] {
		return // Already processed or cycle
	}
	visited[name] = true

	if e, ok := reg.Entity(name); ok {
		if e.BaseType != "" {
			collectDeps(reg, e.BaseType, visited)
		}
		for _, p := range e.Properties {
			collectRef(reg, p.Type, visited)
			collectRef(reg, p.JSONConverter, visited)
		}
		return
	}

	if w, ok := reg.IdentifierWrapper(name); ok {
		collectRef(reg, w.FinalType, visited)
		for _, ref := range w.Refs {
			collectRef(reg, ref.Target, visited)
		}
		return
	}

	if m, ok := reg.Method(name); ok {
		collectRef(reg, m.ReturnType, visited)
		for _, p := range m.Parameters {
			collectRef(reg, p.Type, visited)
		}
	}

	// Enumerations don't reference other types, nothing to do
}

func collectRef(reg *model.Registry, ref *model.ModelRef, visited map[string]bool) {
	if ref == nil {
		return
	}
	switch ref.Kind() {
	case model.RefEntity, model.RefEnumeration, model.RefIdentifier:
		collectDeps(reg, ref.Name(), visited)
	}
}

// Prepare applies the type filter of cfg and emits the unit every backend
// prints.
func Prepare(reg *model.Registry, cfg Config) (*ir.Unit, *emit.Report, error) {
	if len(cfg.Types) > 0 {
		filter := make(map[string]bool, len(cfg.Types))
		for _, name := range cfg.Types {
			filter[name] = true
		}
		if cfg.ResolveDeps {
			filter = ResolveDeps(reg, filter)
		}
		names := slices.Sorted(maps.Keys(filter))
		reg = reg.Filter(names, names)
		log.Logger.Debugw("filtered model", "requested", cfg.Types, "kept", names)
	}
	return emit.Emit(reg, cfg.EmitOptions())
}
