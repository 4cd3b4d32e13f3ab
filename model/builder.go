// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"slices"
	"strings"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

// Registration contributes declarations to a Builder. Catalogs are written
// as Registrations so several sources can be combined into one model.
type Registration func(*Builder) error

// Builder accumulates declarations. It is not safe for concurrent use.
type Builder struct {
	enumerations []*Enumeration
	entities     []*Entity
	wrappers     []*IdentifierWrapper
	methods      []*Method
	names        map[string]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]string)}
}

func (b *Builder) claim(name, kind string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Mark(errors.Newf("%s with empty name", kind), errors.ErrModelDefect)
	}
	if prev, ok := b.names[name]; ok {
		return errors.Mark(
			errors.Newf("%s %q already declared as %s", kind, name, prev),
			errors.ErrModelDefect)
	}
	b.names[name] = kind
	return nil
}

// AddEnumeration declares an enumeration.
func (b *Builder) AddEnumeration(e *Enumeration) error {
	if err := b.claim(e.Name, "enumeration"); err != nil {
		return err
	}
	if e.BaseType != "" && !e.BaseType.IsNumeric() {
		return errors.Mark(
			errors.Newf("enumeration %q: base type %q is not an integer type", e.Name, e.BaseType),
			errors.ErrModelDefect)
	}
	b.enumerations = append(b.enumerations, e)
	return nil
}

// AddEntity declares an entity.
func (b *Builder) AddEntity(e *Entity) error {
	if err := b.claim(e.Name, "entity"); err != nil {
		return err
	}
	b.entities = append(b.entities, e)
	return nil
}

// AddIdentifierWrapper declares an identifier wrapper.
func (b *Builder) AddIdentifierWrapper(w *IdentifierWrapper) error {
	if err := b.claim(w.Name, "identifier wrapper"); err != nil {
		return err
	}
	b.wrappers = append(b.wrappers, w)
	return nil
}

// AddMethod declares an operation. Method names share no namespace with
// types but must be unique among themselves.
func (b *Builder) AddMethod(m *Method) error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.Mark(errors.New("method with empty name"), errors.ErrModelDefect)
	}
	for _, prev := range b.methods {
		if prev.Name == m.Name {
			return errors.Mark(errors.Newf("method %q declared twice", m.Name), errors.ErrModelDefect)
		}
	}
	b.methods = append(b.methods, m)
	return nil
}

// Build checks structural invariants and freezes the declarations.
func (b *Builder) Build() (*Registry, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	r := &Registry{
		enumerations: slices.Clone(b.enumerations),
		entities:     slices.Clone(b.entities),
		wrappers:     slices.Clone(b.wrappers),
		methods:      slices.Clone(b.methods),
	}
	slices.SortStableFunc(r.enumerations, func(a, b *Enumeration) int { return strings.Compare(a.Name, b.Name) })
	slices.SortStableFunc(r.entities, func(a, b *Entity) int { return strings.Compare(a.Name, b.Name) })
	slices.SortStableFunc(r.wrappers, func(a, b *IdentifierWrapper) int { return strings.Compare(a.Name, b.Name) })
	return r, nil
}

func (b *Builder) check() error {
	for _, e := range b.entities {
		for _, p := range e.Properties {
			if p.Type == nil {
				return defect("entity %q: property %q has no type", e.Name, p.Name)
			}
		}
	}
	for _, w := range b.wrappers {
		if w.FinalType == nil {
			return defect("identifier wrapper %q has no final type", w.Name)
		}
		for i, ref := range w.Refs {
			if ref.Target == nil {
				return defect("identifier wrapper %q: ref %d has no target", w.Name, i)
			}
		}
	}
	for _, m := range b.methods {
		for _, p := range m.Parameters {
			if p.Type == nil {
				return defect("method %q: parameter %q has no type", m.Name, p.Name)
			}
			switch p.Location {
			case LocationDefault, LocationURL, LocationBody:
			default:
				return defect("method %q: parameter %q has unknown location %q", m.Name, p.Name, p.Location)
			}
		}
	}
	return nil
}

func defect(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), errors.ErrModelDefect)
}

// Build runs every registration against a fresh Builder and freezes the
// result.
func Build(regs ...Registration) (*Registry, error) {
	b := NewBuilder()
	for _, reg := range regs {
		if err := reg(b); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Registry is a frozen model. Declarations are ordered by name except
// methods, which keep declaration order.
type Registry struct {
	enumerations []*Enumeration
	entities     []*Entity
	wrappers     []*IdentifierWrapper
	methods      []*Method
}

// Enumerations returns all enumerations sorted by name.
func (r *Registry) Enumerations() []*Enumeration { return slices.Clone(r.enumerations) }

// Entities returns all entities sorted by name.
func (r *Registry) Entities() []*Entity { return slices.Clone(r.entities) }

// IdentifierWrappers returns all identifier wrappers sorted by name.
func (r *Registry) IdentifierWrappers() []*IdentifierWrapper { return slices.Clone(r.wrappers) }

// Methods returns all methods in declaration order.
func (r *Registry) Methods() []*Method { return slices.Clone(r.methods) }

// Entity looks up an entity by name.
func (r *Registry) Entity(name string) (*Entity, bool) {
	for _, e := range r.entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Enumeration looks up an enumeration by name.
func (r *Registry) Enumeration(name string) (*Enumeration, bool) {
	for _, e := range r.enumerations {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// IdentifierWrapper looks up an identifier wrapper by name.
func (r *Registry) IdentifierWrapper(name string) (*IdentifierWrapper, bool) {
	for _, w := range r.wrappers {
		if w.Name == name {
			return w, true
		}
	}
	return nil, false
}

// Method looks up a method by name.
func (r *Registry) Method(name string) (*Method, bool) {
	for _, m := range r.methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Filter returns a registry restricted to the named types and methods.
// Unknown names are ignored. The result shares declarations with r.
func (r *Registry) Filter(types, methods []string) *Registry {
	keepType := func(name string) bool { return slices.Contains(types, name) }
	out := &Registry{}
	for _, e := range r.enumerations {
		if keepType(e.Name) {
			out.enumerations = append(out.enumerations, e)
		}
	}
	for _, e := range r.entities {
		if keepType(e.Name) {
			out.entities = append(out.entities, e)
		}
	}
	for _, w := range r.wrappers {
		if keepType(w.Name) {
			out.wrappers = append(out.wrappers, w)
		}
	}
	for _, m := range r.methods {
		if slices.Contains(methods, m.Name) {
			out.methods = append(out.methods, m)
		}
	}
	return out
}
