// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package csharp prints the generated client as a single C# source file
// targeting Newtonsoft.Json and a small runtime support library.
package csharp

import (
	"context"

	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/internal/log"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// Generator implements [generator.Generator] for C#.
type Generator struct{}

// NewGenerator creates a new C# generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "csharp",
		Aliases:        []string{"cs", "c#"},
		Version:        "1.0.0",
		Description:    "Generate a C# client with entities, identifier references and extension operations",
		FileExtensions: []string{".cs"},
		Runtime:        DefaultRuntimeNamespace,
	}
}

// Generate emits the model and prints it.
func (g *Generator) Generate(ctx context.Context, reg *model.Registry, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unit, report, err := generator.Prepare(reg, cfg)
	if err != nil {
		return nil, err
	}

	p := &Printer{
		RuntimeNamespace: cfg.Option("runtime-namespace", DefaultRuntimeNamespace),
		AsyncSuffix:      cfg.Option("async-suffix", "true") != "false",
	}
	src, err := p.Print(unit)
	if err != nil {
		return nil, err
	}

	filename := unitClientName(unit, cfg.ClientName) + ".cs"
	if cfg.OutputFile != "" {
		filename = cfg.OutputFile
	}
	log.Logger.Debugw("printed C# unit", "file", filename, "bytes", len(src), "warnings", len(report.Warnings()))
	return generator.Single(filename, src), nil
}

func unitClientName(u *ir.Unit, fallback string) string {
	if c, ok := u.Client(); ok {
		return c.Name
	}
	if fallback != "" {
		return fallback
	}
	return "Client"
}
