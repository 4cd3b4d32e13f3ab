// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"slices"

	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/internal/naming"
	"github.com/albertocavalcante/clientgen/ir"
	"github.com/albertocavalcante/clientgen/model"
)

// Names of locals and synthesized parameters in generated operations.
const (
	urlBuilderVar = "urlBuilder"
	urlVar        = "url"
	bodyVar       = "body"
	pageOptions   = "pageOptions"
	cancelParam   = "cancellationToken"
)

// Documentation of synthesized parameters.
const (
	pageOptionsDoc = "The page index and page size"
	cancelDoc      = "A cancellation token that can be used by other objects or threads to receive notice of cancellation."
)

// Query keys appended for paged operations.
const (
	pageKey    = "page"
	perPageKey = "per_page"
	orderByKey = "order_by"
	sortKey    = "sort"
)

// ArgumentName returns the generated argument name of a parameter.
func ArgumentName(p *model.MethodParameter) string {
	if p.OverrideArgumentName != "" {
		return p.OverrideArgumentName
	}
	return naming.Camel(p.Name)
}

// SynthesizeMethod produces the signature and body of one base operation.
func SynthesizeMethod(m *model.Method) (*ir.MethodDecl, error) {
	ret, dispatch, err := returnShape(m)
	if err != nil {
		return nil, err
	}

	var urlParams, bodyParams []*model.MethodParameter
	for _, p := range m.Parameters {
		loc, err := ResolveLocation(m, p)
		if err != nil {
			return nil, err
		}
		if loc == model.LocationURL {
			urlParams = append(urlParams, p)
		} else {
			bodyParams = append(bodyParams, p)
		}
	}

	decl := &ir.MethodDecl{
		Name:   m.Name,
		Doc:    docOf(m.Documentation),
		Params: signature(m),
		Return: ret,
	}

	// URL construction.
	builder := &ir.Ident{Name: urlBuilderVar}
	decl.Body = append(decl.Body, &ir.VarDecl{Name: urlBuilderVar, Value: &ir.NewURLBuilder{Template: m.URLTemplate}})
	for _, p := range urlParams {
		arg := &ir.Ident{Name: ArgumentName(p)}
		if p.Type.Kind() != model.RefIdentifier {
			decl.Body = append(decl.Body, withValue(builder, p.Name, arg))
			continue
		}
		t := argumentType(p)
		unwrapped := &ir.Unwrap{X: arg, Nullable: t.Nullable}
		if !t.Nullable {
			decl.Body = append(decl.Body, withValue(builder, p.Name, unwrapped))
			continue
		}
		decl.Body = append(decl.Body, &ir.If{
			Cond: &ir.Present{X: arg, Type: t},
			Then: []ir.Stmt{withValue(builder, p.Name, unwrapped)},
		})
	}
	if m.MethodType == model.GetPaged {
		decl.Body = append(decl.Body, pagingBlock(builder))
	}
	decl.Body = append(decl.Body, &ir.VarDecl{
		Name:  urlVar,
		Value: &ir.MethodCall{Recv: builder, Name: ir.URLBuilderBuild},
	})

	// Body construction.
	var payload ir.Expr = &ir.Null{}
	if len(bodyParams) > 0 {
		body := &ir.Ident{Name: bodyVar}
		payload = body
		decl.Body = append(decl.Body, &ir.VarDecl{Name: bodyVar, Value: &ir.NewBodyMap{}})
		for _, p := range bodyParams {
			arg := &ir.Ident{Name: ArgumentName(p)}
			set := &ir.SetEntry{Map: body, Key: p.Name, Value: arg}
			if !p.IsOptional {
				decl.Body = append(decl.Body, set)
				continue
			}
			decl.Body = append(decl.Body, &ir.If{
				Cond: &ir.Present{X: arg, Type: argumentType(p)},
				Then: []ir.Stmt{set},
			})
		}
	}

	dispatch.URL = &ir.Ident{Name: urlVar}
	dispatch.Body = payload
	dispatch.Cancel = &ir.Ident{Name: cancelParam}
	decl.Body = append(decl.Body, &ir.Return{X: dispatch})
	return decl, nil
}

// signature orders required parameters before optional ones, keeping
// declaration order within each group, then appends the paging options and
// the cancellation signal.
func signature(m *model.Method) []*ir.Param {
	ordered := slices.Clone(m.Parameters)
	slices.SortStableFunc(ordered, func(a, b *model.MethodParameter) int {
		switch {
		case a.IsOptional == b.IsOptional:
			return 0
		case a.IsOptional:
			return 1
		}
		return -1
	})

	params := make([]*ir.Param, 0, len(ordered)+2)
	for _, p := range ordered {
		params = append(params, &ir.Param{
			Name:     ArgumentName(p),
			Type:     argumentType(p),
			Optional: p.IsOptional,
			Doc:      summaryOf(p.Documentation),
			Wire:     p.Name,
		})
	}
	if m.MethodType == model.GetPaged {
		params = append(params, &ir.Param{
			Name:     pageOptions,
			Type:     ir.Builtin(ir.PageOptions),
			Optional: true,
			Doc:      pageOptionsDoc,
		})
	}
	params = append(params, &ir.Param{
		Name:     cancelParam,
		Type:     ir.Builtin(ir.Cancellation),
		Optional: true,
		Doc:      cancelDoc,
	})
	return params
}

// returnShape selects the awaitable result type and the transport primitive.
// argumentType is the declared type of p in a signature. Optional value
// types become nullable so that an omitted argument differs from a zero
// value such as false or 0.
func argumentType(p *model.MethodParameter) *ir.TypeRef {
	t := TypeOf(p.Type, ArgumentUsage)
	if p.IsOptional && t.Value {
		t.Nullable = true
	}
	return t
}

func returnShape(m *model.Method) (*ir.TypeRef, *ir.TransportCall, error) {
	switch m.MethodType {
	case model.Get:
		if m.ReturnType == nil {
			return nil, nil, missingReturn(m)
		}
		if m.ReturnType.IsCollection() {
			elem := TypeOf(m.ReturnType, PropertyUsage).Elem
			return ir.Await(&ir.TypeRef{Kind: ir.ReadOnlySeq, Elem: elem}),
				&ir.TransportCall{Primitive: ir.TransportGetCollection, Result: elem}, nil
		}
		t := TypeOf(m.ReturnType, PropertyUsage)
		return ir.Await(t), &ir.TransportCall{Primitive: ir.TransportGet, Result: t}, nil

	case model.GetPaged:
		if m.ReturnType == nil {
			return nil, nil, missingReturn(m)
		}
		elem := TypeOf(m.ReturnType, PropertyUsage)
		if elem.IsSeq() {
			elem = elem.Elem
		}
		return ir.Await(&ir.TypeRef{Kind: ir.Paged, Elem: elem}),
			&ir.TransportCall{Primitive: ir.TransportGetPaged, Result: elem}, nil

	case model.Put, model.Post:
		primitive := ir.TransportPut
		if m.MethodType == model.Post {
			primitive = ir.TransportPost
		}
		if m.ReturnType == nil {
			return ir.Void(), &ir.TransportCall{Primitive: primitive}, nil
		}
		t := TypeOf(m.ReturnType, PropertyUsage)
		return ir.Await(t), &ir.TransportCall{Primitive: primitive, Result: t}, nil

	case model.Delete:
		return ir.Void(), &ir.TransportCall{Primitive: ir.TransportDelete}, nil
	}
	return nil, nil, unsupported(m)
}

func missingReturn(m *model.Method) error {
	return errors.Mark(
		errors.Newf("method %s: %s operation without a return type", m.Name, m.MethodType),
		errors.ErrModelDefect)
}

func withValue(builder ir.Expr, key string, value ir.Expr) ir.Stmt {
	return &ir.ExprStmt{X: &ir.MethodCall{
		Recv: builder,
		Name: ir.URLBuilderWithValue,
		Args: []ir.Expr{&ir.StringLit{Value: key}, value},
	}}
}

// pagingBlock appends page, per_page and the order_by/sort pair, each
// independently, when paging options were supplied.
func pagingBlock(builder ir.Expr) ir.Stmt {
	opts := &ir.Ident{Name: pageOptions}
	index := &ir.Member{X: opts, Name: "PageIndex"}
	size := &ir.Member{X: opts, Name: "PageSize"}
	orderBy := &ir.Member{X: opts, Name: "OrderBy"}
	orderName := &ir.Member{X: orderBy, Name: "Name"}
	orderDir := &ir.Member{X: orderBy, Name: "Direction"}
	zero := &ir.IntLit{Value: 0}

	return &ir.If{
		Cond: &ir.Present{X: opts, Type: ir.Builtin(ir.PageOptions)},
		Then: []ir.Stmt{
			&ir.If{
				Cond: &ir.Greater{X: index, Y: zero},
				Then: []ir.Stmt{withValue(builder, pageKey, index)},
			},
			&ir.If{
				Cond: &ir.Greater{X: size, Y: zero},
				Then: []ir.Stmt{withValue(builder, perPageKey, size)},
			},
			&ir.If{
				Cond: &ir.NonEmpty{X: orderName},
				Then: []ir.Stmt{
					withValue(builder, orderByKey, orderName),
					withValue(builder, sortKey, orderDir),
				},
			},
		},
	}
}

func docOf(d *model.Documentation) *ir.Doc {
	if d == nil {
		return nil
	}
	doc := &ir.Doc{Summary: d.Summary, Remark: d.Remark, Returns: d.Returns}
	if doc.IsZero() {
		return nil
	}
	return doc
}

func summaryOf(d *model.Documentation) string {
	if d == nil {
		return ""
	}
	return d.Summary
}
