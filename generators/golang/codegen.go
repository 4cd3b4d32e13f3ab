// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package golang prints the generated client as Go source built with
// jennifer, on top of the clientgen runtime package.
package golang

import (
	"bytes"
	"path"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/ir"
)

// DefaultRuntimePath is the import path of the runtime support package.
const DefaultRuntimePath = "github.com/albertocavalcante/clientgen/runtime"

// Config controls code generation behavior.
type Config struct {
	// PackageName is the Go package name for generated code.
	PackageName string

	// RuntimePath is the import path of the runtime support package.
	RuntimePath string

	// SplitFiles writes the client and its extension methods to a second
	// file.
	SplitFiles bool

	// Source describes where the model came from (for header comment).
	Source string
}

// DefaultConfig returns sensible defaults for code generation.
func DefaultConfig() Config {
	return Config{
		PackageName: "client",
		RuntimePath: DefaultRuntimePath,
		SplitFiles:  true,
	}
}

// Output contains the generated code files.
type Output struct {
	Types  []byte // Enumerations, entities and identifier wrappers
	Client []byte // Client, operations and extension methods; nil unless split
}

// Codegen prints one unit.
type Codegen struct {
	unit   *ir.Unit
	config Config

	// members tracks, per receiver type, the field and method names already
	// taken so extension methods never collide with them.
	members map[string]map[string]bool

	err error
}

// New creates a new Codegen.
func New(u *ir.Unit, cfg Config) *Codegen {
	if cfg.PackageName == "" {
		cfg.PackageName = PackageName(u.Namespace)
	}
	if cfg.RuntimePath == "" {
		cfg.RuntimePath = DefaultRuntimePath
	}
	if cfg.Source == "" {
		cfg.Source = u.Source
	}
	return &Codegen{
		unit:    u,
		config:  cfg,
		members: make(map[string]map[string]bool),
	}
}

// Generate produces the Go source files.
func (g *Codegen) Generate() (*Output, error) {
	types := g.newFile()
	client := types
	if g.config.SplitFiles {
		client = g.newFile()
	}

	var classes []*ir.ClassDecl
	var clientDecl *ir.ClientDecl
	for _, d := range g.unit.Decls {
		switch d := d.(type) {
		case *ir.EnumDecl:
			g.generateEnumeration(types, d)
		case *ir.ClassDecl:
			g.generateClass(types, d)
			classes = append(classes, d)
		case *ir.StructDecl:
			g.generateWrapper(types, d)
		case *ir.ClientDecl:
			clientDecl = d
		default:
			return nil, errors.Newf("go: unsupported declaration %T", d)
		}
	}

	if clientDecl != nil {
		g.generateClient(client, clientDecl)
	}
	for _, c := range classes {
		g.generateExtensions(client, c)
	}
	if g.err != nil {
		return nil, g.err
	}

	out := &Output{}
	var err error
	if out.Types, err = render(types); err != nil {
		return nil, err
	}
	if g.config.SplitFiles {
		if out.Client, err = render(client); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (g *Codegen) newFile() *jen.File {
	f := jen.NewFile(g.config.PackageName)
	for _, line := range strings.Split(g.fileHeader(), "\n") {
		f.HeaderComment(line)
	}
	if path.Base(g.config.RuntimePath) == "runtime" {
		f.ImportName(g.config.RuntimePath, "runtime")
	} else {
		f.ImportAlias(g.config.RuntimePath, "runtime")
	}
	return f
}

func (g *Codegen) fileHeader() string {
	lines := []string{"Code generated by clientgen. DO NOT EDIT."}
	if g.config.Source != "" {
		lines = append(lines, "Source: "+g.config.Source)
	}
	return strings.Join(lines, "\n")
}

func (g *Codegen) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

func render(f *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errors.Wrap(err, "render go source")
	}
	return buf.Bytes(), nil
}

// PackageName derives a Go package name from a namespace: the last dotted
// segment, lowercased, letters and digits only ("Acme.GitLab" -> "gitlab").
func PackageName(namespace string) string {
	if i := strings.LastIndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(namespace) {
		if unicode.IsLetter(r) || (b.Len() > 0 && unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultConfig().PackageName
	}
	return b.String()
}

func writeDoc(f *jen.File, d *ir.Doc) {
	if d.IsZero() {
		return
	}
	for _, line := range docLines(d) {
		f.Comment(line)
	}
}

func docLines(d *ir.Doc) []string {
	if d.IsZero() {
		return nil
	}
	var lines []string
	add := func(text string) {
		if text == "" {
			return
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}
	add(d.Summary)
	add(d.Remark)
	add(d.Returns)
	return lines
}
