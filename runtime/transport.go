// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package runtime

import (
	"context"
	"net/http"
)

// Response carries the parts of an HTTP response the primitives need after
// decoding.
type Response struct {
	StatusCode int
	Header     http.Header
}

// Transport performs one request. body is nil or a value marshalled as
// JSON; out is nil or a pointer the response body is decoded into.
type Transport interface {
	Do(ctx context.Context, method, url string, body, out any) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, method, url string, body, out any) (*Response, error)

// Do calls f.
func (f TransportFunc) Do(ctx context.Context, method, url string, body, out any) (*Response, error) {
	return f(ctx, method, url, body, out)
}

// Get fetches a single item.
func Get[T any](ctx context.Context, t Transport, url string) (T, error) {
	var out T
	_, err := t.Do(ctx, http.MethodGet, url, nil, &out)
	return out, err
}

// GetCollection fetches a list of items.
func GetCollection[T any](ctx context.Context, t Transport, url string) ([]T, error) {
	var out []T
	if _, err := t.Do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPaged fetches one page of items and its pagination headers.
func GetPaged[T any](ctx context.Context, t Transport, url string) (*PagedResponse[T], error) {
	var out []T
	resp, err := t.Do(ctx, http.MethodGet, url, nil, &out)
	if err != nil {
		return nil, err
	}
	var h http.Header
	if resp != nil {
		h = resp.Header
	}
	return newPagedResponse(out, h), nil
}

// PutJSON submits body with PUT. A nil body sends no payload.
func PutJSON[T any](ctx context.Context, t Transport, url string, body map[string]any) (T, error) {
	return submit[T](ctx, t, http.MethodPut, url, body)
}

// PostJSON submits body with POST. A nil body sends no payload.
func PostJSON[T any](ctx context.Context, t Transport, url string, body map[string]any) (T, error) {
	return submit[T](ctx, t, http.MethodPost, url, body)
}

func submit[T any](ctx context.Context, t Transport, method, url string, body map[string]any) (T, error) {
	var out T
	var payload any
	if body != nil {
		payload = body
	}
	_, err := t.Do(ctx, method, url, payload, &out)
	return out, err
}

// Delete removes a resource.
func Delete(ctx context.Context, t Transport, url string) error {
	_, err := t.Do(ctx, http.MethodDelete, url, nil, nil)
	return err
}
