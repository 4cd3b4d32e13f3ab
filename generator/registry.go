// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

// backends indexes generators by name and alias. Keys are lowercase.
type backends struct {
	mu      sync.RWMutex
	byName  map[string]Generator
	aliases map[string]string
}

var defaultBackends = newBackends()

func newBackends() *backends {
	return &backends{
		byName:  make(map[string]Generator),
		aliases: make(map[string]string),
	}
}

func (b *backends) register(g Generator) {
	b.mu.Lock()
	defer b.mu.Unlock()
	meta := g.Metadata()
	name := strings.ToLower(meta.Name)
	if b.taken(name) {
		panic(fmt.Sprintf("backend %q already registered", meta.Name))
	}
	for _, a := range meta.Aliases {
		if a = strings.ToLower(a); b.taken(a) || a == name {
			panic(fmt.Sprintf("backend %q: alias %q already registered", meta.Name, a))
		}
	}
	b.byName[name] = g
	for _, a := range meta.Aliases {
		b.aliases[strings.ToLower(a)] = name
	}
}

func (b *backends) taken(key string) bool {
	_, isName := b.byName[key]
	_, isAlias := b.aliases[key]
	return isName || isAlias
}

func (b *backends) get(name string) (Generator, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	key := strings.ToLower(name)
	if target, ok := b.aliases[key]; ok {
		key = target
	}
	g, ok := b.byName[key]
	return g, ok
}

func (b *backends) all() []Generator {
	b.mu.RLock()
	defer b.mu.RUnlock()
	gens := make([]Generator, 0, len(b.byName))
	for _, g := range b.byName {
		gens = append(gens, g)
	}
	slices.SortFunc(gens, func(x, y Generator) int {
		return strings.Compare(x.Metadata().Name, y.Metadata().Name)
	})
	return gens
}

// Register adds a backend. It panics when the name or one of the aliases
// is already taken, so registration belongs in init functions.
func Register(g Generator) { defaultBackends.register(g) }

// Get returns the backend registered under name or one of its aliases,
// ignoring case.
func Get(name string) (Generator, bool) { return defaultBackends.get(name) }

// Lookup is Get with an ErrUnknownBackend error naming the alternatives.
func Lookup(name string) (Generator, error) {
	if g, ok := Get(name); ok {
		return g, nil
	}
	err := errors.Mark(errors.Newf("unknown backend %q", name), errors.ErrUnknownBackend)
	return nil, errors.WithHintf(err, "available: %s", strings.Join(List(), ", "))
}

// List returns the registered backend names, sorted. Aliases are omitted.
func List() []string {
	gens := All()
	names := make([]string, len(gens))
	for i, g := range gens {
		names[i] = g.Metadata().Name
	}
	return names
}

// All returns the registered backends sorted by name.
func All() []Generator { return defaultBackends.all() }

// Reset clears the registry. Tests only.
func Reset() {
	defaultBackends.mu.Lock()
	defer defaultBackends.mu.Unlock()
	defaultBackends.byName = make(map[string]Generator)
	defaultBackends.aliases = make(map[string]string)
}
