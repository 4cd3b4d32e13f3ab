// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// DefaultRuntimeNamespace holds UrlBuilder, PageOptions, PagedResponse and
// the reference converters the generated code relies on.
const DefaultRuntimeNamespace = "ClientGen.Runtime"

const (
	nsSystem        = "System"
	nsCollections   = "System.Collections.Generic"
	nsSerialization = "System.Runtime.Serialization"
	nsThreading     = "System.Threading"
	nsTasks         = "System.Threading.Tasks"
	nsJSON          = "Newtonsoft.Json"
	nsJSONConverter = "Newtonsoft.Json.Converters"
)

type primitiveType struct {
	name      string
	namespace string
}

var primitives = map[model.Primitive]primitiveType{
	model.String:   {name: "string"},
	model.Bool:     {name: "bool"},
	model.Int32:    {name: "int"},
	model.Int64:    {name: "long"},
	model.Double:   {name: "double"},
	model.DateTime: {name: "DateTime", namespace: nsSystem},
	model.Date:     {name: "DateTime", namespace: nsSystem},
	model.Duration: {name: "TimeSpan", namespace: nsSystem},
	model.Object:   {name: "object"},
}

// typeName spells t in C#, recording the namespaces it needs.
func (p *printer) typeName(t *ir.TypeRef) string {
	var s string
	switch t.Kind {
	case ir.Primitive:
		prim, ok := primitives[model.Primitive(t.Name)]
		if !ok {
			s = t.Name
			break
		}
		p.use(prim.namespace)
		s = prim.name
	case ir.Named:
		s = t.Name
	case ir.ReadOnlySeq:
		p.use(nsCollections)
		s = "IReadOnlyList<" + p.typeName(t.Elem) + ">"
	case ir.IterableSeq:
		p.use(nsCollections)
		s = "IEnumerable<" + p.typeName(t.Elem) + ">"
	case ir.Awaitable:
		p.use(nsTasks)
		if t.Elem == nil {
			return "Task"
		}
		s = "Task<" + p.typeName(t.Elem) + ">"
	case ir.Paged:
		p.useRuntime()
		s = "PagedResponse<" + p.typeName(t.Elem) + ">"
	case ir.BodyMap:
		p.use(nsCollections)
		s = "Dictionary<string, object>"
	case ir.PageOptions:
		p.useRuntime()
		s = "PageOptions"
	case ir.Cancellation:
		p.use(nsThreading)
		s = "CancellationToken"
	case ir.URLBuilder:
		p.useRuntime()
		s = "UrlBuilder"
	}
	if t.Nullable {
		s += "?"
	}
	return s
}

// enumBase is the underlying type clause of an enumeration, empty for the
// default int.
func enumBase(backing string) string {
	if backing == "" || model.Primitive(backing) == model.Int32 {
		return ""
	}
	if prim, ok := primitives[model.Primitive(backing)]; ok {
		return " : " + prim.name
	}
	return " : " + backing
}
