// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package runtime

import (
	"net/http"
	"strconv"
)

// SortDirection orders paged results.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// OrderBy names the ordering field. An empty Name means server order.
type OrderBy struct {
	Name      string
	Direction SortDirection
}

// PageOptions controls a paged fetch. Zero fields are not sent.
type PageOptions struct {
	PageIndex int
	PageSize  int
	OrderBy   OrderBy
}

// PagedResponse is one page of results with the pagination headers the
// server returned. Missing headers leave fields at zero.
type PagedResponse[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	NextPage   int
	PrevPage   int
}

// HasNext reports whether the server announced a following page.
func (p *PagedResponse[T]) HasNext() bool {
	return p.NextPage > 0
}

// Pagination headers.
const (
	HeaderPage       = "X-Page"
	HeaderPerPage    = "X-Per-Page"
	HeaderTotal      = "X-Total"
	HeaderTotalPages = "X-Total-Pages"
	HeaderNextPage   = "X-Next-Page"
	HeaderPrevPage   = "X-Prev-Page"
)

func newPagedResponse[T any](items []T, h http.Header) *PagedResponse[T] {
	atoi := func(key string) int {
		n, _ := strconv.Atoi(h.Get(key))
		return n
	}
	return &PagedResponse[T]{
		Items:      items,
		Page:       atoi(HeaderPage),
		PerPage:    atoi(HeaderPerPage),
		TotalItems: atoi(HeaderTotal),
		TotalPages: atoi(HeaderTotalPages),
		NextPage:   atoi(HeaderNextPage),
		PrevPage:   atoi(HeaderPrevPage),
	}
}
