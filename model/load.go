// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

// Catalog is the on-disk YAML shape of a model.
type Catalog struct {
	Enumerations       []catalogEnum    `yaml:"enumerations"`
	Entities           []catalogEntity  `yaml:"entities"`
	IdentifierWrappers []catalogWrapper `yaml:"identifier_wrappers"`
	Methods            []catalogMethod  `yaml:"methods"`
}

type catalogEnum struct {
	Name              string          `yaml:"name"`
	BaseType          string          `yaml:"base_type"`
	Flags             bool            `yaml:"flags"`
	SerializeAsString bool            `yaml:"serialize_as_string"`
	GenerateAll       bool            `yaml:"generate_all"`
	Doc               *Documentation  `yaml:"doc"`
	Members           []catalogMember `yaml:"members"`
}

type catalogMember struct {
	Name              string         `yaml:"name"`
	Value             *int64         `yaml:"value"`
	SerializationName string         `yaml:"serialization_name"`
	Doc               *Documentation `yaml:"doc"`
}

type catalogEntity struct {
	Name       string            `yaml:"name"`
	BaseType   string            `yaml:"base_type"`
	Doc        *Documentation    `yaml:"doc"`
	Properties []catalogProperty `yaml:"properties"`
}

type catalogProperty struct {
	Name              string         `yaml:"name"`
	Type              string         `yaml:"type"`
	SerializationName string         `yaml:"serialization_name"`
	Converter         string         `yaml:"converter"`
	Doc               *Documentation `yaml:"doc"`
}

type catalogWrapper struct {
	Name      string         `yaml:"name"`
	FinalType string         `yaml:"final_type"`
	Doc       *Documentation `yaml:"doc"`
	Refs      []catalogRef   `yaml:"refs"`
}

type catalogRef struct {
	Type string   `yaml:"type"`
	Path []string `yaml:"path"`
}

type catalogMethod struct {
	Name       string             `yaml:"name"`
	Type       string             `yaml:"type"`
	URL        string             `yaml:"url"`
	Returns    string             `yaml:"returns"`
	Doc        *Documentation     `yaml:"doc"`
	Parameters []catalogParameter `yaml:"parameters"`
}

type catalogParameter struct {
	Name         string         `yaml:"name"`
	Type         string         `yaml:"type"`
	Optional     bool           `yaml:"optional"`
	Location     string         `yaml:"location"`
	ArgumentName string         `yaml:"argument_name"`
	Doc          *Documentation `yaml:"doc"`
}

// LoadYAML parses a catalog and returns a Registration declaring its
// contents. Type names are resolved within the document: every type used
// by a property, ref or parameter must be a primitive or declared in the
// same catalog.
func LoadYAML(data []byte) (Registration, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}
	return c.Registration()
}

// Registration resolves the catalog into model declarations.
func (c *Catalog) Registration() (Registration, error) {
	r := &resolver{
		entities: make(map[string]*Entity),
		enums:    make(map[string]*Enumeration),
		wrappers: make(map[string]*IdentifierWrapper),
	}

	// First pass declares every name so references may point forward.
	for _, ce := range c.Enumerations {
		r.enums[ce.Name] = &Enumeration{
			Name:              ce.Name,
			BaseType:          Primitive(ce.BaseType),
			IsFlags:           ce.Flags,
			SerializeAsString: ce.SerializeAsString,
			GenerateAllMember: ce.GenerateAll,
			Documentation:     ce.Doc,
		}
	}
	for _, ce := range c.Entities {
		r.entities[ce.Name] = &Entity{Name: ce.Name, BaseType: ce.BaseType, Documentation: ce.Doc}
	}
	for _, cw := range c.IdentifierWrappers {
		r.wrappers[cw.Name] = &IdentifierWrapper{Name: cw.Name, Documentation: cw.Doc}
	}

	var (
		enums    []*Enumeration
		entities []*Entity
		wrappers []*IdentifierWrapper
		methods  []*Method
	)

	for _, ce := range c.Enumerations {
		e := r.enums[ce.Name]
		for _, cm := range ce.Members {
			e.Members = append(e.Members, &EnumerationMember{
				Name:              cm.Name,
				Value:             cm.Value,
				SerializationName: cm.SerializationName,
				Documentation:     cm.Doc,
			})
		}
		enums = append(enums, e)
	}

	for _, ce := range c.Entities {
		e := r.entities[ce.Name]
		for _, cp := range ce.Properties {
			t, err := r.resolve(cp.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "entity %s: property %s", ce.Name, cp.Name)
			}
			p := &Property{
				Name:              cp.Name,
				Type:              t,
				SerializationName: cp.SerializationName,
				Documentation:     cp.Doc,
			}
			if cp.Converter != "" {
				p.JSONConverter = r.converter(cp.Converter)
			}
			e.Properties = append(e.Properties, p)
		}
		entities = append(entities, e)
	}

	for _, cw := range c.IdentifierWrappers {
		w := r.wrappers[cw.Name]
		ft, err := r.resolve(cw.FinalType)
		if err != nil {
			return nil, errors.Wrapf(err, "identifier wrapper %s: final type", cw.Name)
		}
		w.FinalType = ft
		for _, cr := range cw.Refs {
			t, err := r.resolve(cr.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "identifier wrapper %s: ref", cw.Name)
			}
			w.Refs = append(w.Refs, &Ref{Target: t, PropertyPath: cr.Path})
		}
		wrappers = append(wrappers, w)
	}

	for _, cm := range c.Methods {
		m := &Method{
			Name:          cm.Name,
			MethodType:    MethodType(cm.Type),
			URLTemplate:   cm.URL,
			Documentation: cm.Doc,
		}
		if cm.Returns != "" {
			t, err := r.resolve(cm.Returns)
			if err != nil {
				return nil, errors.Wrapf(err, "method %s: return type", cm.Name)
			}
			m.ReturnType = t
		}
		for _, cp := range cm.Parameters {
			t, err := r.resolve(cp.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "method %s: parameter %s", cm.Name, cp.Name)
			}
			m.Parameters = append(m.Parameters, &MethodParameter{
				Name:                 cp.Name,
				Type:                 t,
				IsOptional:           cp.Optional,
				Location:             Location(cp.Location),
				OverrideArgumentName: cp.ArgumentName,
				Documentation:        cp.Doc,
			})
		}
		methods = append(methods, m)
	}

	return func(b *Builder) error {
		for _, e := range enums {
			if err := b.AddEnumeration(e); err != nil {
				return err
			}
		}
		for _, e := range entities {
			if err := b.AddEntity(e); err != nil {
				return err
			}
		}
		for _, w := range wrappers {
			if err := b.AddIdentifierWrapper(w); err != nil {
				return err
			}
		}
		for _, m := range methods {
			if err := b.AddMethod(m); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

type resolver struct {
	entities map[string]*Entity
	enums    map[string]*Enumeration
	wrappers map[string]*IdentifierWrapper
}

// resolve parses "T", "T?", "T[]" and "T[]?".
func (r *resolver) resolve(spec string) (*ModelRef, error) {
	s := strings.TrimSpace(spec)
	nullable := strings.HasSuffix(s, "?")
	s = strings.TrimSuffix(s, "?")
	collection := strings.HasSuffix(s, "[]")
	s = strings.TrimSuffix(s, "[]")

	ref, err := r.lookup(s)
	if err != nil {
		return nil, err
	}
	if collection {
		ref = ref.AsCollection()
	}
	if nullable {
		ref = ref.AsNullable()
	}
	return ref, nil
}

func (r *resolver) lookup(name string) (*ModelRef, error) {
	if name == "" {
		return nil, errors.Mark(errors.New("missing type"), errors.ErrUnknownType)
	}
	if IsPrimitive(name) {
		return PrimitiveRef(Primitive(name)), nil
	}
	if e, ok := r.entities[name]; ok {
		return EntityRef(e), nil
	}
	if e, ok := r.enums[name]; ok {
		return EnumRef(e), nil
	}
	if w, ok := r.wrappers[name]; ok {
		return WrapperRef(w), nil
	}
	err := errors.Mark(errors.Newf("unknown type %q", name), errors.ErrUnknownType)
	return nil, errors.WithHint(err, "declare it under entities, enumerations or identifier_wrappers, or use a primitive")
}

// converter resolves a converter name against the model, falling back to a
// runtime-provided type.
func (r *resolver) converter(name string) *ModelRef {
	if ref, err := r.lookup(name); err == nil {
		return ref
	}
	return ExternalRef(name)
}
