// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/clientgen/internal/naming"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// ── Type mapping ────────────────────────────────────────────────────

// goType converts an emitted type to its Go equivalent. Entities and the
// client are always handled by pointer; nullable value types become
// pointers too.
func (g *Codegen) goType(t *ir.TypeRef) *jen.Statement {
	switch t.Kind {
	case ir.Primitive:
		s := g.primitive(model.Primitive(t.Name))
		if t.Nullable {
			return jen.Op("*").Add(s)
		}
		return s
	case ir.Named:
		switch t.Of {
		case ir.NamedEntity, ir.NamedClient:
			return jen.Op("*").Id(t.Name)
		}
		if t.Nullable {
			return jen.Op("*").Id(t.Name)
		}
		return jen.Id(t.Name)
	case ir.ReadOnlySeq, ir.IterableSeq:
		return jen.Index().Add(g.goType(t.Elem))
	case ir.Paged:
		return jen.Op("*").Qual(g.config.RuntimePath, "PagedResponse").Types(g.goType(t.Elem))
	case ir.BodyMap:
		return jen.Map(jen.String()).Any()
	case ir.PageOptions:
		return jen.Op("*").Qual(g.config.RuntimePath, "PageOptions")
	case ir.Cancellation:
		return jen.Qual("context", "Context")
	case ir.URLBuilder:
		return jen.Op("*").Qual(g.config.RuntimePath, "URLBuilder")
	}
	g.fail(fmt.Errorf("go: no type mapping for %s", t))
	return jen.Any()
}

func (g *Codegen) primitive(p model.Primitive) *jen.Statement {
	switch p {
	case model.String:
		return jen.String()
	case model.Bool:
		return jen.Bool()
	case model.Int32, "":
		return jen.Int32()
	case model.Int64:
		return jen.Int64()
	case model.Double:
		return jen.Float64()
	case model.DateTime:
		return jen.Qual("time", "Time")
	case model.Date:
		return jen.Qual(g.config.RuntimePath, "Date")
	case model.Duration:
		return jen.Qual("time", "Duration")
	case model.Object:
		return jen.Any()
	}
	g.fail(fmt.Errorf("go: unknown primitive %q", p))
	return jen.Any()
}

// results is the result list of an operation returning t.
func (g *Codegen) results(t *ir.TypeRef) *jen.Statement {
	if t.IsVoid() {
		return jen.Error()
	}
	return jen.Params(g.goType(t.Elem), jen.Error())
}

// typeSuffix names a source type inside constructor names: "int64" ->
// "Int64", "Project" -> "Project".
func typeSuffix(t *ir.TypeRef) string {
	if t.Kind == ir.Primitive {
		return naming.Pascal(t.Name)
	}
	return t.Name
}

// ── Enumeration → typed constants ───────────────────────────────────

func (g *Codegen) generateEnumeration(f *jen.File, e *ir.EnumDecl) {
	f.Line()
	writeDoc(f, e.Doc)
	f.Type().Id(e.Name).Add(g.primitive(model.Primitive(e.Backing)))

	values := e.Values()
	defs := make([]jen.Code, 0, len(e.Members))
	for i, m := range e.Members {
		for _, line := range docLines(m.Doc) {
			defs = append(defs, jen.Comment(line))
		}
		var v jen.Code = jen.Id(strconv.FormatInt(values[i], 10))
		if or, ok := m.Value.(*ir.Or); ok && len(or.Operands) > 0 {
			v = g.expr(nil, or)
		}
		defs = append(defs, jen.Id(e.Name+m.Name).Id(e.Name).Op("=").Add(v))
	}
	f.Line()
	f.Const().Defs(defs...)

	if e.StringSerialized {
		g.generateEnumText(f, e)
	}
}

// generateEnumText adds text marshaling by serialized member name.
func (g *Codegen) generateEnumText(f *jen.File, e *ir.EnumDecl) {
	table := naming.Unexport(e.Name) + "Names"
	var rows []jen.Code
	for _, m := range e.Members {
		if m.SerializedName == "" {
			continue
		}
		rows = append(rows, jen.Values(jen.Id(e.Name+m.Name), jen.Lit(m.SerializedName)))
	}
	f.Line()
	f.Var().Id(table).Op("=").Index(jen.Op("...")).Struct(
		jen.Id("value").Id(e.Name),
		jen.Id("name").String(),
	).Values(rows...)

	f.Line()
	f.Comment("MarshalText encodes the value as its serialized name.")
	f.Func().Params(jen.Id("v").Id(e.Name)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("e")).Op(":=").Range().Id(table)).Block(
			jen.If(jen.Id("e").Dot("value").Op("==").Id("v")).Block(
				jen.Return(jen.Index().Byte().Call(jen.Id("e").Dot("name")), jen.Nil()),
			),
		),
		jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+e.Name+" value %d"), jen.Id("v"))),
	)

	f.Line()
	f.Comment("UnmarshalText decodes a serialized name.")
	f.Func().Params(jen.Id("v").Op("*").Id(e.Name)).Id("UnmarshalText").Params(jen.Id("b").Index().Byte()).Error().Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("e")).Op(":=").Range().Id(table)).Block(
			jen.If(jen.Id("e").Dot("name").Op("==").String().Call(jen.Id("b"))).Block(
				jen.Op("*").Id("v").Op("=").Id("e").Dot("value"),
				jen.Return(jen.Nil()),
			),
		),
		jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+e.Name+" %q"), jen.Id("b"))),
	)
}

// ── Class → struct ──────────────────────────────────────────────────

func (g *Codegen) generateClass(f *jen.File, c *ir.ClassDecl) {
	taken := map[string]bool{}
	g.members[c.Name] = taken

	f.Line()
	if c.Abstract && c.Doc.IsZero() {
		f.Comment(c.Name + " is embedded by every entity and holds the client that fetched it.")
	}
	writeDoc(f, c.Doc)

	var fields []jen.Code
	if c.Base != "" {
		fields = append(fields, jen.Id(c.Base))
		taken[c.Base] = true
		if inherited, ok := g.members[c.Base]; ok {
			for name := range inherited {
				taken[name] = true
			}
		}
	}
	var client *ir.Property
	for _, p := range c.Properties {
		for _, line := range docLines(p.Doc) {
			fields = append(fields, jen.Comment(line))
		}
		name := naming.Export(p.Name)
		taken[name] = true
		fields = append(fields, jen.Id(name).Add(g.goType(p.Type)).Tag(tags(p.Serialization)))
		if p.Type.Kind == ir.Named && p.Type.Of == ir.NamedClient {
			client = p
		}
	}
	f.Type().Id(c.Name).Struct(fields...)

	if client != nil {
		taken["bindClient"] = true
		f.Line()
		f.Func().Params(jen.Id("o").Op("*").Id(c.Name)).Id("bindClient").Params(jen.Id("c").Op("*").Id(client.Type.Name)).Block(
			jen.Id("o").Dot(naming.Export(client.Name)).Op("=").Id("c"),
		)
	}
}

func tags(s ir.Serialization) map[string]string {
	if s.Ignore {
		return map[string]string{"json": "-"}
	}
	t := map[string]string{}
	if s.Name != "" {
		t["json"] = s.Name
	}
	if s.Converter != nil {
		t["clientgen"] = "converter=" + s.Converter.Name
	}
	return t
}

// ── Identifier wrapper → value struct ───────────────────────────────

func (g *Codegen) generateWrapper(f *jen.File, s *ir.StructDecl) {
	f.Line()
	writeDoc(f, s.Doc)
	value := naming.Export(s.Field.Name)
	f.Type().Id(s.Name).Struct(jen.Id(value).Add(g.goType(s.Field.Type)))

	if s.Reference {
		f.Line()
		f.Comment("MarshalJSON encodes the reference as its bare value.")
		f.Func().Params(jen.Id("r").Id(s.Name)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
			jen.Return(jen.Qual("encoding/json", "Marshal").Call(jen.Id("r").Dot(value))),
		)
		f.Line()
		f.Comment("UnmarshalJSON decodes a bare value.")
		f.Func().Params(jen.Id("r").Op("*").Id(s.Name)).Id("UnmarshalJSON").Params(jen.Id("b").Index().Byte()).Error().Block(
			jen.Return(jen.Qual("encoding/json", "Unmarshal").Call(jen.Id("b"), jen.Op("&").Id("r").Dot(value))),
		)
	}

	ctors := make(map[string]ctorInfo, len(s.Ctors))
	for _, c := range s.Ctors {
		info := g.generateCtor(f, s, c)
		ctors[typeSuffix(c.Param.Type)] = info
	}
	for _, c := range s.Conversions {
		g.generateConversion(f, s, c, ctors)
	}
}

type ctorInfo struct {
	name     string
	fallible bool
}

func ctorName(wrapper string, src *ir.TypeRef) string {
	return "New" + wrapper + "From" + typeSuffix(src)
}

func conversionName(wrapper string, src *ir.TypeRef) string {
	return wrapper + "From" + typeSuffix(src)
}

// generateCtor renders a constructor function. Constructors that guard
// against nil report runtime.ErrNilValue instead of panicking.
func (g *Codegen) generateCtor(f *jen.File, s *ir.StructDecl, c *ir.Ctor) ctorInfo {
	info := ctorInfo{name: ctorName(s.Name, c.Param.Type), fallible: hasNilGuard(c.Body)}
	sc := &scope{this: "r"}

	body := []jen.Code{jen.Var().Id("r").Id(s.Name)}
	body = append(body, g.stmts(sc, c.Body)...)
	result := jen.Id(s.Name)
	if info.fallible {
		body = append(body, jen.Return(jen.Id("r"), jen.Nil()))
		result = jen.Params(jen.Id(s.Name), jen.Error())
	} else {
		body = append(body, jen.Return(jen.Id("r")))
	}

	f.Line()
	f.Comment(fmt.Sprintf("%s builds a %s from a %s.", info.name, s.Name, typeSuffix(c.Param.Type)))
	f.Func().Id(info.name).Params(jen.Id(goIdent(c.Param.Name)).Add(g.goType(c.Param.Type))).Add(result).Block(body...)
	return info
}

// generateConversion renders the infallible counterpart used where the
// model converts implicitly. It panics on nil.
func (g *Codegen) generateConversion(f *jen.File, s *ir.StructDecl, c *ir.Conversion, ctors map[string]ctorInfo) {
	name := conversionName(s.Name, c.Param.Type)
	sc := &scope{conversion: true, src: typeSuffix(c.Param.Type), ctors: ctors}

	f.Line()
	if hasNilGuard(c.Body) {
		f.Comment(fmt.Sprintf("%s is like %s but panics on nil.", name, ctorName(s.Name, c.Param.Type)))
	} else {
		f.Comment(fmt.Sprintf("%s converts a %s.", name, typeSuffix(c.Param.Type)))
	}
	f.Func().Id(name).Params(jen.Id(goIdent(c.Param.Name)).Add(g.goType(c.Param.Type))).Id(s.Name).Block(
		g.stmts(sc, c.Body)...,
	)
}

func hasNilGuard(stmts []ir.Stmt) bool {
	for _, s := range stmts {
		if _, ok := s.(*ir.ThrowIfNull); ok {
			return true
		}
	}
	return false
}
