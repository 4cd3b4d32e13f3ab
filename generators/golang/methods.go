// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/albertocavalcante/clientgen/internal/naming"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

const (
	ctxParam     = "ctx"
	transportVar = "transport"
	binderType   = "clientBinder"
)

// transportFuncs maps transport primitives to runtime helpers.
var transportFuncs = map[string]string{
	ir.TransportGet:           "Get",
	ir.TransportGetCollection: "GetCollection",
	ir.TransportGetPaged:      "GetPaged",
	ir.TransportPut:           "PutJSON",
	ir.TransportPost:          "PostJSON",
	ir.TransportDelete:        "Delete",
}

// scope is the rendering context of one function body.
type scope struct {
	// this is the receiver or constructed value.
	this string

	// transport reaches the client's transport.
	transport *jen.Statement

	// cancel holds cancellation parameters, replaced by ctx.
	cancel map[string]bool

	// optional holds the types of optional parameters.
	optional map[string]*ir.TypeRef

	// conversion marks a wrapper conversion from src, which delegates to
	// one of ctors.
	conversion bool
	src        string
	ctors      map[string]ctorInfo
}

// ── Client ──────────────────────────────────────────────────────────

func (g *Codegen) generateClient(f *jen.File, c *ir.ClientDecl) {
	rt := g.config.RuntimePath

	f.Line()
	if c.Doc.IsZero() {
		f.Comment(c.Name + " sends API operations through a runtime.Transport.")
	}
	writeDoc(f, c.Doc)
	f.Type().Id(c.Name).Struct(jen.Id(transportVar).Qual(rt, "Transport"))

	f.Line()
	f.Type().Id(binderType).Interface(jen.Id("bindClient").Params(jen.Op("*").Id(c.Name)))

	ctor := "New" + c.Name
	f.Line()
	f.Comment(ctor + " returns a client that binds itself to every entity it decodes.")
	f.Func().Id(ctor).Params(jen.Id("t").Qual(rt, "Transport")).Op("*").Id(c.Name).Block(
		jen.Id("c").Op(":=").Op("&").Id(c.Name).Values(),
		jen.Id("c").Dot(transportVar).Op("=").Qual(rt, "WithDecodeHook").Call(
			jen.Id("t"),
			jen.Func().Params(jen.Id("v").Any()).Block(
				jen.If(jen.List(jen.Id("b"), jen.Id("ok")).Op(":=").Id("v").Assert(jen.Id(binderType)), jen.Id("ok")).Block(
					jen.Id("b").Dot("bindClient").Call(jen.Id("c")),
				),
			),
		),
		jen.Return(jen.Id("c")),
	)

	for _, m := range c.Methods {
		recv := receiverName("c", m)
		sc := &scope{this: recv, transport: jen.Id(recv).Dot(transportVar)}
		g.generateMethod(f, recv, c.Name, m.Name, m, sc, "")
	}
}

// generateExtensions renders the operations attached to an entity. Names
// that collide with a field or an earlier method get the bound parameter
// appended ("Get" -> "GetByID").
func (g *Codegen) generateExtensions(f *jen.File, c *ir.ClassDecl) {
	taken := g.members[c.Name]
	for _, m := range c.Methods {
		name := m.Name
		if taken[name] && m.Extension != nil {
			name += "By" + naming.Pascal(m.Extension.Bound)
		}
		for i := 2; taken[name]; i++ {
			name = m.Name + strconv.Itoa(i)
		}
		taken[name] = true

		recv := receiverName(strings.ToLower(c.Name[:1]), m)
		var fallback string
		if m.Extension != nil {
			fallback = fmt.Sprintf("%s calls %s with the receiver as %s.", name, m.Extension.Base, m.Extension.Bound)
		}
		g.generateMethod(f, recv, c.Name, name, m, &scope{this: recv}, fallback)
	}
}

func (g *Codegen) generateMethod(f *jen.File, recv, recvType, name string, m *ir.MethodDecl, sc *scope, fallbackDoc string) {
	f.Line()
	if m.Doc.IsZero() && fallbackDoc != "" {
		f.Comment(fallbackDoc)
	}
	writeDoc(f, m.Doc)

	sc.cancel = map[string]bool{}
	sc.optional = map[string]*ir.TypeRef{}
	params := []jen.Code{jen.Id(ctxParam).Qual("context", "Context")}
	for _, p := range m.Params {
		if p.Type.Kind == ir.Cancellation {
			sc.cancel[p.Name] = true
			continue
		}
		if p.Optional {
			sc.optional[p.Name] = p.Type
		}
		params = append(params, jen.Id(goIdent(p.Name)).Add(g.goType(p.Type)))
	}

	f.Func().Params(jen.Id(recv).Op("*").Id(recvType)).Id(name).Params(params...).Add(g.results(m.Return)).Block(
		g.stmts(sc, m.Body)...,
	)
}

// receiverName returns want unless a parameter or a local of m already
// uses it.
func receiverName(want string, m *ir.MethodDecl) string {
	taken := slices.ContainsFunc(m.Params, func(p *ir.Param) bool { return goIdent(p.Name) == want })
	ir.Inspect(m.Body, func(n any) bool {
		switch n := n.(type) {
		case *ir.Ident:
			taken = taken || goIdent(n.Name) == want
		case *ir.VarDecl:
			taken = taken || goIdent(n.Name) == want
		}
		return !taken
	})
	if taken {
		return "recv"
	}
	return want
}

// ── Statements ──────────────────────────────────────────────────────

func (g *Codegen) stmts(sc *scope, stmts []ir.Stmt) []jen.Code {
	var out []jen.Code
	for _, s := range stmts {
		out = append(out, g.stmt(sc, s)...)
	}
	return out
}

func (g *Codegen) stmt(sc *scope, s ir.Stmt) []jen.Code {
	switch s := s.(type) {
	case *ir.VarDecl:
		return []jen.Code{jen.Id(goIdent(s.Name)).Op(":=").Add(g.expr(sc, s.Value))}
	case *ir.ExprStmt:
		if arg, t := sc.optionalURLValue(s.X); t != nil {
			return []jen.Code{jen.If(g.present(jen.Id(goIdent(arg)), t)).Block(g.expr(sc, s.X))}
		}
		return []jen.Code{g.expr(sc, s.X)}
	case *ir.If:
		return []jen.Code{jen.If(g.expr(sc, s.Cond)).Block(g.stmts(sc, s.Then)...)}
	case *ir.Return:
		return g.ret(sc, s)
	case *ir.Assign:
		return []jen.Code{g.expr(sc, s.Target).Op("=").Add(g.expr(sc, s.Value))}
	case *ir.ThrowIfNull:
		if sc.conversion {
			// The fallible constructor performs the check.
			return nil
		}
		return []jen.Code{jen.If(jen.Id(goIdent(s.Name)).Op("==").Nil()).Block(
			jen.Return(jen.Id(sc.this), jen.Qual(g.config.RuntimePath, "ErrNilValue")),
		)}
	case *ir.SetEntry:
		return []jen.Code{g.expr(sc, s.Map).Index(jen.Lit(s.Key)).Op("=").Add(g.expr(sc, s.Value))}
	}
	g.fail(fmt.Errorf("go: unsupported statement %T", s))
	return nil
}

// optionalURLValue reports the optional argument x appends to the URL
// builder when that argument is not a pointer. Its zero value stands for
// "not set" and must not reach the query string.
func (sc *scope) optionalURLValue(x ir.Expr) (string, *ir.TypeRef) {
	call, ok := x.(*ir.MethodCall)
	if !ok || call.Name != ir.URLBuilderWithValue || len(call.Args) != 2 {
		return "", nil
	}
	id, ok := call.Args[1].(*ir.Ident)
	if !ok {
		return "", nil
	}
	t := sc.optional[id.Name]
	if t == nil || t.Nullable {
		return "", nil
	}
	switch t.Kind {
	case ir.Primitive, ir.ReadOnlySeq, ir.IterableSeq:
		return id.Name, t
	}
	return "", nil
}

func (g *Codegen) ret(sc *scope, r *ir.Return) []jen.Code {
	call, ok := r.X.(*ir.TransportCall)
	if !ok {
		if r.X == nil {
			return []jen.Code{jen.Return()}
		}
		return []jen.Code{jen.Return(g.expr(sc, r.X))}
	}

	rt := g.config.RuntimePath
	fn := transportFuncs[call.Primitive]
	args := []jen.Code{jen.Id(ctxParam), sc.transport.Clone(), g.expr(sc, call.URL)}

	switch call.Primitive {
	case ir.TransportDelete:
		var out []jen.Code
		if _, null := call.Body.(*ir.Null); call.Body != nil && !null {
			out = append(out, jen.Id("_").Op("=").Add(g.expr(sc, call.Body)))
		}
		return append(out, jen.Return(jen.Qual(rt, fn).Call(args...)))

	case ir.TransportPut, ir.TransportPost:
		args = append(args, g.expr(sc, call.Body))
		if call.Result == nil {
			return []jen.Code{
				jen.List(jen.Id("_"), jen.Err()).Op(":=").Qual(rt, fn).Types(jen.Any()).Call(args...),
				jen.Return(jen.Err()),
			}
		}
	}
	return []jen.Code{jen.Return(jen.Qual(rt, fn).Types(g.goType(call.Result)).Call(args...))}
}

// ── Expressions ─────────────────────────────────────────────────────

func (g *Codegen) expr(sc *scope, e ir.Expr) *jen.Statement {
	switch e := e.(type) {
	case *ir.Ident:
		return jen.Id(goIdent(e.Name))
	case *ir.StringLit:
		return jen.Lit(e.Value)
	case *ir.IntLit:
		return jen.Lit(int(e.Value))
	case *ir.Null:
		return jen.Nil()
	case *ir.This:
		return jen.Id(sc.this)
	case *ir.Member:
		return g.expr(sc, e.X).Dot(naming.Export(e.Name))
	case *ir.Unwrap:
		return g.expr(sc, e.X).Dot("Value")
	case *ir.Present:
		return g.present(g.expr(sc, e.X), e.Type)
	case *ir.NonEmpty:
		return g.expr(sc, e.X).Op("!=").Lit("")
	case *ir.Greater:
		return g.expr(sc, e.X).Op(">").Add(g.expr(sc, e.Y))
	case *ir.Or:
		out := g.expr(sc, e.Operands[0])
		for _, o := range e.Operands[1:] {
			out = out.Op("|").Add(g.expr(sc, o))
		}
		return out
	case *ir.EnumMemberRef:
		return jen.Id(e.Enum + e.Member)
	case *ir.NewURLBuilder:
		return jen.Qual(g.config.RuntimePath, "NewURLBuilder").Call(jen.Lit(e.Template))
	case *ir.NewBodyMap:
		return jen.Map(jen.String()).Any().Values()
	case *ir.NewValue:
		return g.newValue(sc, e)
	case *ir.Convert:
		return g.convert(sc, e)
	case *ir.MethodCall:
		return g.expr(sc, e.Recv).Dot(e.Name).Call(g.exprs(sc, e.Args)...)
	case *ir.OperationCall:
		args := []jen.Code{jen.Id(ctxParam)}
		for _, a := range e.Args {
			if id, ok := a.(*ir.Ident); ok && sc.cancel[id.Name] {
				continue
			}
			args = append(args, g.expr(sc, a))
		}
		return g.expr(sc, e.Recv).Dot(e.Name).Call(args...)
	}
	g.fail(fmt.Errorf("go: unsupported expression %T", e))
	return jen.Null()
}

func (g *Codegen) exprs(sc *scope, es []ir.Expr) []jen.Code {
	out := make([]jen.Code, len(es))
	for i, e := range es {
		out[i] = g.expr(sc, e)
	}
	return out
}

// present tests that x, of type t, holds a value worth sending.
func (g *Codegen) present(x *jen.Statement, t *ir.TypeRef) *jen.Statement {
	if t == nil || t.Nullable {
		return x.Op("!=").Nil()
	}
	switch t.Kind {
	case ir.ReadOnlySeq, ir.IterableSeq:
		return jen.Len(x).Op(">").Lit(0)
	case ir.Primitive:
		switch model.Primitive(t.Name) {
		case model.String:
			return x.Op("!=").Lit("")
		case model.Bool:
			return x
		case model.DateTime, model.Date:
			return jen.Op("!").Add(x.Dot("IsZero").Call())
		case model.Object:
			return x.Op("!=").Nil()
		}
		return x.Op("!=").Lit(0)
	case ir.Named:
		switch t.Of {
		case ir.NamedEnum:
			return x.Op("!=").Lit(0)
		case ir.NamedWrapper:
			return x.Op("!=").Parens(jen.Id(t.Name).Values())
		}
	}
	return x.Op("!=").Nil()
}

// newValue constructs a wrapper. Inside a conversion it calls the matching
// constructor, through runtime.Must when that constructor can fail.
func (g *Codegen) newValue(sc *scope, e *ir.NewValue) *jen.Statement {
	if sc.conversion {
		if info, ok := sc.ctors[sc.src]; ok {
			call := jen.Id(info.name).Call(g.exprs(sc, e.Args)...)
			if info.fallible {
				return jen.Qual(g.config.RuntimePath, "Must").Call(call)
			}
			return call
		}
	}
	if len(e.Args) != 1 {
		g.fail(fmt.Errorf("go: cannot construct %s from %d values", e.Type.Name, len(e.Args)))
		return jen.Null()
	}
	return jen.Id(e.Type.Name).Values(jen.Dict{jen.Id("Value"): g.expr(sc, e.Args[0])})
}

// convert spells an implicit wrapper conversion as a call to the generated
// conversion function.
func (g *Codegen) convert(sc *scope, e *ir.Convert) *jen.Statement {
	x := g.expr(sc, e.X)
	if e.To.Kind != ir.Named || e.To.Of != ir.NamedWrapper {
		return x
	}
	call := jen.Id(conversionName(e.To.Name, e.From)).Call(x)
	if e.To.Nullable {
		return jen.Qual(g.config.RuntimePath, "Ptr").Call(call)
	}
	return call
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// goIdent keeps identifiers clear of Go keywords.
func goIdent(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}
