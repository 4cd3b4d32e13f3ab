// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/ir"
)

const indent = "    "

// Printer implements [ir.Printer] for C#.
type Printer struct {
	// RuntimeNamespace is imported whenever runtime types are referenced.
	RuntimeNamespace string

	// AsyncSuffix appends "Async" to every operation name.
	AsyncSuffix bool
}

var _ ir.Printer = (*Printer)(nil)

// Print renders u as one compilation unit.
func (pr *Printer) Print(u *ir.Unit) ([]byte, error) {
	p := &printer{
		runtime: pr.RuntimeNamespace,
		async:   pr.AsyncSuffix,
		usings:  make(map[string]bool),
		depth:   1,
	}
	if p.runtime == "" {
		p.runtime = DefaultRuntimeNamespace
	}

	for i, d := range u.Decls {
		if i > 0 {
			p.blank()
		}
		switch d := d.(type) {
		case *ir.EnumDecl:
			p.enum(d)
		case *ir.ClassDecl:
			p.class(d)
		case *ir.StructDecl:
			p.wrapper(d)
		case *ir.ClientDecl:
			p.client(d)
		default:
			return nil, errors.Newf("csharp: unsupported declaration %T", d)
		}
		if p.err != nil {
			return nil, errors.Wrapf(p.err, "print %s", d.DeclName())
		}
	}

	var out bytes.Buffer
	out.WriteString(fileHeader(u.Source))
	out.WriteString("\n")
	usings := p.sortedUsings()
	for _, ns := range usings {
		fmt.Fprintf(&out, "using %s;\n", ns)
	}
	if len(usings) > 0 {
		out.WriteString("\n")
	}
	fmt.Fprintf(&out, "namespace %s\n{\n", u.Namespace)
	out.Write(p.buf.Bytes())
	out.WriteString("}\n")
	return out.Bytes(), nil
}

// printer is the state of one Print call.
type printer struct {
	runtime string
	async   bool

	buf    bytes.Buffer
	depth  int
	usings map[string]bool
	err    error
}

func (p *printer) use(ns string) {
	if ns != "" {
		p.usings[ns] = true
	}
}

func (p *printer) useRuntime() {
	p.use(p.runtime)
}

// sortedUsings lists System namespaces first, then the rest, each group
// sorted.
func (p *printer) sortedUsings() []string {
	ns := slices.Sorted(maps.Keys(p.usings))
	slices.SortStableFunc(ns, func(a, b string) int {
		return systemRank(a) - systemRank(b)
	})
	return ns
}

func systemRank(ns string) int {
	if ns == "System" || strings.HasPrefix(ns, "System.") {
		return 0
	}
	return 1
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// ── Output helpers ──────────────────────────────────────────────────

func (p *printer) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat(indent, p.depth))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) blank() {
	p.buf.WriteByte('\n')
}

func (p *printer) open() {
	p.line("{")
	p.depth++
}

func (p *printer) close() {
	p.depth--
	p.line("}")
}

func (p *printer) doc(d *ir.Doc, params []*ir.Param) {
	if d != nil && d.Summary != "" {
		p.xmlBlock("summary", d.Summary)
	}
	if d != nil && d.Remark != "" {
		p.xmlBlock("remarks", d.Remark)
	}
	for _, prm := range params {
		if prm.Doc != "" {
			p.line("/// <param name=\"%s\">%s</param>", prm.Name, xmlEscape(prm.Doc))
		}
	}
	if d != nil && d.Returns != "" {
		p.line("/// <returns>%s</returns>", xmlEscape(d.Returns))
	}
}

func (p *printer) xmlBlock(tag, text string) {
	p.line("/// <%s>", tag)
	for l := range strings.SplitSeq(text, "\n") {
		if l == "" {
			p.line("///")
			continue
		}
		p.line("/// %s", xmlEscape(l))
	}
	p.line("/// </%s>", tag)
}

// ── Declarations ────────────────────────────────────────────────────

func (p *printer) enum(e *ir.EnumDecl) {
	p.doc(e.Doc, nil)
	if e.Flags {
		p.use(nsSystem)
		p.line("[Flags]")
	}
	if e.StringSerialized {
		p.use(nsJSON)
		p.use(nsJSONConverter)
		p.line("[JsonConverter(typeof(StringEnumConverter))]")
	}
	p.line("public enum %s%s", e.Name, enumBase(e.Backing))
	p.open()
	for _, m := range e.Members {
		p.doc(m.Doc, nil)
		if m.SerializedName != "" {
			p.use(nsSerialization)
			p.line("[EnumMember(Value = %s)]", quote(m.SerializedName))
		}
		if m.Value == nil {
			p.line("%s,", m.Name)
			continue
		}
		p.line("%s = %s,", m.Name, p.expr(m.Value))
	}
	p.close()
}

func (p *printer) class(c *ir.ClassDecl) {
	p.doc(c.Doc, nil)
	head := "public partial class " + c.Name
	if c.Abstract {
		head = "public abstract partial class " + c.Name
	}
	if c.Base != "" {
		head += " : " + c.Base
	}
	p.line("%s", head)
	p.open()

	sep := p.separator()
	if len(c.Fields) > 0 {
		sep()
		for _, f := range c.Fields {
			p.line("private %s %s;", p.typeName(f.Type), f.Name)
		}
	}
	for _, prop := range c.Properties {
		sep()
		p.property(prop)
	}
	for _, m := range c.Methods {
		sep()
		p.method(m)
	}
	p.close()
}

func (p *printer) property(prop *ir.Property) {
	p.doc(prop.Doc, nil)
	s := prop.Serialization
	switch {
	case s.Ignore:
		p.use(nsJSON)
		p.line("[JsonIgnore]")
	case s.Name != "":
		p.use(nsJSON)
		p.line("[JsonProperty(%s)]", quote(s.Name))
	}
	if s.Converter != nil {
		p.use(nsJSON)
		p.line("[JsonConverter(typeof(%s))]", p.typeName(s.Converter))
	}
	if s.SkipDateValidation {
		p.useRuntime()
		p.line("[SkipUtcDateValidation(%s)]", quote(s.SkipReason))
	}

	typ := p.typeName(prop.Type)
	switch {
	case prop.Field == "" && prop.ReadOnly:
		p.line("public %s %s { get; }", typ, prop.Name)
	case prop.Field == "" && prop.PrivateSetter:
		p.line("public %s %s { get; private set; }", typ, prop.Name)
	case prop.Field == "":
		// The client binds itself to deserialized entities.
		p.line("public %s %s { get; internal set; }", typ, prop.Name)
	case prop.ReadOnly:
		p.line("public %s %s => %s;", typ, prop.Name, prop.Field)
	default:
		p.line("public %s %s", typ, prop.Name)
		p.open()
		p.line("get => %s;", prop.Field)
		setter := "set"
		if prop.PrivateSetter {
			setter = "private set"
		}
		p.line("%s => %s = value;", setter, prop.Field)
		p.close()
	}
}

func (p *printer) wrapper(s *ir.StructDecl) {
	p.doc(s.Doc, nil)
	head := "public readonly partial struct " + s.Name
	if s.Reference {
		p.use(nsJSON)
		p.useRuntime()
		p.line("[JsonConverter(typeof(ReferenceJsonConverter))]")
		head += " : IReference"
	}
	p.line("%s", head)
	p.open()

	p.line("private readonly %s %s;", p.typeName(s.Field.Type), s.Field.Name)
	p.blank()
	p.property(s.Value)

	for _, c := range s.Ctors {
		p.blank()
		p.line("public %s(%s %s)", s.Name, p.typeName(c.Param.Type), ident(c.Param.Name))
		p.block(c.Body)
	}
	for _, c := range s.Conversions {
		p.blank()
		p.line("public static implicit operator %s(%s %s)", s.Name, p.typeName(c.Param.Type), ident(c.Param.Name))
		p.block(c.Body)
	}
	p.close()
}

func (p *printer) client(c *ir.ClientDecl) {
	p.doc(c.Doc, nil)
	p.line("public partial class %s", c.Name)
	p.open()
	sep := p.separator()
	for _, m := range c.Methods {
		sep()
		p.method(m)
	}
	p.close()
}

func (p *printer) method(m *ir.MethodDecl) {
	p.doc(m.Doc, m.Params)
	params := make([]string, 0, len(m.Params))
	for _, prm := range m.Params {
		s := p.typeName(prm.Type) + " " + ident(prm.Name)
		if prm.Optional {
			s += " = default"
		}
		params = append(params, s)
	}
	p.line("public %s %s(%s)", p.typeName(m.Return), p.methodName(m.Name), strings.Join(params, ", "))
	p.block(m.Body)
}

func (p *printer) methodName(name string) string {
	if p.async {
		return name + "Async"
	}
	return name
}

// separator returns a func that writes a blank line before every member
// but the first.
func (p *printer) separator() func() {
	first := true
	return func() {
		if !first {
			p.blank()
		}
		first = false
	}
}

// ── Statements ──────────────────────────────────────────────────────

func (p *printer) block(stmts []ir.Stmt) {
	p.open()
	for _, s := range stmts {
		p.stmt(s)
	}
	p.close()
}

func (p *printer) stmt(s ir.Stmt) {
	switch s := s.(type) {
	case *ir.VarDecl:
		p.line("var %s = %s;", ident(s.Name), p.expr(s.Value))
	case *ir.ExprStmt:
		p.line("%s;", p.expr(s.X))
	case *ir.If:
		p.line("if (%s)", p.expr(s.Cond))
		p.block(s.Then)
	case *ir.Return:
		if s.X == nil {
			p.line("return;")
			return
		}
		p.line("return %s;", p.expr(s.X))
	case *ir.Assign:
		p.line("%s = %s;", p.expr(s.Target), p.expr(s.Value))
	case *ir.ThrowIfNull:
		p.use(nsSystem)
		name := ident(s.Name)
		p.line("if (%s is null)", name)
		p.depth++
		p.line("throw new ArgumentNullException(nameof(%s));", name)
		p.depth--
		p.blank()
	case *ir.SetEntry:
		p.line("%s.Add(%s, %s);", p.expr(s.Map), quote(s.Key), p.expr(s.Value))
	default:
		p.fail(errors.Newf("csharp: unsupported statement %T", s))
	}
}

// ── Expressions ─────────────────────────────────────────────────────

func (p *printer) expr(e ir.Expr) string {
	switch e := e.(type) {
	case *ir.Ident:
		return ident(e.Name)
	case *ir.StringLit:
		return quote(e.Value)
	case *ir.IntLit:
		return strconv.FormatInt(e.Value, 10)
	case *ir.Null:
		return "null"
	case *ir.This:
		return "this"
	case *ir.Member:
		return p.expr(e.X) + "." + e.Name
	case *ir.Unwrap:
		if e.Nullable {
			return p.expr(e.X) + ".Value.Value"
		}
		return p.expr(e.X) + ".Value"
	case *ir.Present:
		return p.expr(e.X) + " != null"
	case *ir.NonEmpty:
		return "!string.IsNullOrEmpty(" + p.expr(e.X) + ")"
	case *ir.Greater:
		return p.expr(e.X) + " > " + p.expr(e.Y)
	case *ir.Or:
		parts := make([]string, len(e.Operands))
		for i, o := range e.Operands {
			parts[i] = p.expr(o)
		}
		return strings.Join(parts, " | ")
	case *ir.EnumMemberRef:
		return e.Enum + "." + e.Member
	case *ir.NewURLBuilder:
		p.useRuntime()
		return "UrlBuilder.Get(" + quote(e.Template) + ")"
	case *ir.NewBodyMap:
		p.use(nsSystem)
		p.use(nsCollections)
		return "new Dictionary<string, object>(StringComparer.Ordinal)"
	case *ir.NewValue:
		return "new " + p.typeName(e.Type) + "(" + p.exprList(e.Args) + ")"
	case *ir.Convert:
		// Identifier references convert implicitly.
		return p.expr(e.X)
	case *ir.MethodCall:
		return p.expr(e.Recv) + "." + e.Name + "(" + p.exprList(e.Args) + ")"
	case *ir.TransportCall:
		return p.transport(e)
	case *ir.OperationCall:
		return p.expr(e.Recv) + "." + p.methodName(e.Name) + "(" + p.exprList(e.Args) + ")"
	}
	p.fail(errors.Newf("csharp: unsupported expression %T", e))
	return ""
}

func (p *printer) exprList(es []ir.Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = p.expr(e)
	}
	return strings.Join(parts, ", ")
}

// transport renders a call to one of the client's request helpers.
func (p *printer) transport(t *ir.TransportCall) string {
	name := t.Primitive + "Async"
	if t.Result != nil {
		name += "<" + p.typeName(t.Result) + ">"
	}
	args := []ir.Expr{t.URL}
	if t.Primitive == ir.TransportPut || t.Primitive == ir.TransportPost {
		args = append(args, t.Body)
	}
	args = append(args, t.Cancel)
	return name + "(" + p.exprList(args) + ")"
}

// ── Helpers ─────────────────────────────────────────────────────────

func fileHeader(source string) string {
	lines := []string{"// Code generated by clientgen. DO NOT EDIT."}
	if source != "" {
		lines = append(lines, fmt.Sprintf("// Source: %s", source))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

var xmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

var keywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true, "default": true,
	"delegate": true, "do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true, "finally": true,
	"fixed": true, "float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true, "out": true,
	"override": true, "params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}

// ident escapes C# keywords used as identifiers.
func ident(name string) string {
	if keywords[name] {
		return "@" + name
	}
	return name
}
