// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"

	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/internal/log"
	"github.com/albertocavalcante/clientgen/model"
)

// GoGenerator implements [generator.Generator] for Go code generation.
type GoGenerator struct{}

// NewGenerator creates a new Go generator.
func NewGenerator() *GoGenerator {
	return &GoGenerator{}
}

// Metadata returns information about this generator.
func (g *GoGenerator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "go",
		Aliases:        []string{"golang"},
		Version:        "1.0.0",
		Description:    "Generate a Go client on top of the clientgen runtime package",
		FileExtensions: []string{".go"},
		Runtime:        DefaultRuntimePath,
	}
}

// Generate produces Go output files from the API model.
func (g *GoGenerator) Generate(ctx context.Context, reg *model.Registry, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unit, _, err := generator.Prepare(reg, cfg)
	if err != nil {
		return nil, err
	}

	internalCfg := Config{
		PackageName: cfg.Option("package", PackageName(unit.Namespace)),
		RuntimePath: cfg.Option("runtime", DefaultRuntimePath),
		Source:      cfg.Source,
		// A single requested file holds everything.
		SplitFiles: cfg.OutputFile == "",
	}

	out, err := New(unit, internalCfg).Generate()
	if err != nil {
		return nil, err
	}

	result := generator.NewOutput()
	if cfg.OutputFile != "" {
		result.Add(cfg.OutputFile, out.Types)
	} else {
		result.Add("types.go", out.Types)
		result.Add("client.go", out.Client)
	}
	log.Logger.Debugw("printed Go unit", "package", internalCfg.PackageName, "files", result.Names())
	return result, nil
}
