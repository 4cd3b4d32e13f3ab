// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emit turns a model registry into an intermediate representation
// unit: enumerations, entities, identifier wrappers, the client with every
// base operation, and extension operations attached to entities.
package emit

import (
	"slices"
	"strings"

	"github.com/albertocavalcante/clientgen/internal/log"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// Defaults applied to empty Options fields.
const (
	DefaultNamespace  = "Client"
	DefaultClientName = "Client"
	DefaultBaseType   = "ClientObject"
)

// Options control naming of the generated unit.
type Options struct {
	// Namespace of the generated unit.
	Namespace string

	// ClientName is the client type, also the base type member exposing it.
	ClientName string

	// BaseType is the common base of entities without an explicit one.
	BaseType string

	// Source is recorded in the unit for printing in the header.
	Source string

	// Strict promotes structural defects to errors.
	Strict bool
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.ClientName == "" {
		o.ClientName = DefaultClientName
	}
	if o.BaseType == "" {
		o.BaseType = DefaultBaseType
	}
	return o
}

// Emit builds the unit for reg. Declarations are emitted in a fixed order:
// enumerations, entities, identifier wrappers, then the client. Extension
// operations are attached last, once every entity class exists. On error
// no unit is returned.
func Emit(reg *model.Registry, opts Options) (*ir.Unit, *Report, error) {
	opts = opts.withDefaults()

	report := Validate(reg, opts.Strict)
	if err := report.Err(); err != nil {
		return nil, report, err
	}

	unit := &ir.Unit{Namespace: opts.Namespace, Source: opts.Source}

	enums := reg.Enumerations()
	for _, e := range enums {
		unit.Add(EmitEnumeration(e))
	}

	entities := reg.Entities()
	if needsBase(entities, opts.BaseType) {
		unit.Add(EmitBase(opts.BaseType, opts.ClientName))
	}
	for _, e := range entities {
		unit.Add(EmitEntity(e, opts.BaseType))
	}

	wrappers := reg.IdentifierWrappers()
	for _, w := range wrappers {
		unit.Add(EmitWrapper(w))
	}

	methods := reg.Methods()
	slices.SortStableFunc(methods, func(a, b *model.Method) int { return strings.Compare(a.Name, b.Name) })

	client := &ir.ClientDecl{Name: opts.ClientName}
	var pending []extension
	for _, m := range methods {
		decl, err := SynthesizeMethod(m)
		if err != nil {
			return nil, report, err
		}
		client.Methods = append(client.Methods, decl)
		pending = append(pending, synthesizeExtensions(m, decl, opts.ClientName, report)...)
	}
	unit.Add(client)

	attached := 0
	for _, ext := range pending {
		class, ok := unit.Class(ext.receiver)
		if !ok {
			log.Logger.Debugw("extension receiver not emitted", "operation", ext.decl.Extension.Base, "receiver", ext.receiver)
			continue
		}
		class.Methods = append(class.Methods, ext.decl)
		attached++
	}

	for _, d := range report.Warnings() {
		log.Logger.Warnw(d.Message, "code", d.Code, "subject", d.Subject)
	}
	log.Logger.Debugw("emitted unit",
		"namespace", unit.Namespace,
		"enumerations", len(enums),
		"entities", len(entities),
		"wrappers", len(wrappers),
		"operations", len(client.Methods),
		"extensions", attached,
		"diagnostics", report.Codes())

	return unit, report, nil
}

func needsBase(entities []*model.Entity, base string) bool {
	for _, e := range entities {
		if e.Name == base {
			return false
		}
	}
	for _, e := range entities {
		if e.BaseType == "" {
			return true
		}
	}
	return false
}
