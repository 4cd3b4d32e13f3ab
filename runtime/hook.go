// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package runtime

import (
	"context"
	"reflect"
)

// WithDecodeHook returns a transport that calls hook for every struct
// pointer decoded by t: the result itself and each element of a decoded
// list. Generated clients use it to bind themselves to returned entities.
func WithDecodeHook(t Transport, hook func(v any)) Transport {
	return TransportFunc(func(ctx context.Context, method, url string, body, out any) (*Response, error) {
		resp, err := t.Do(ctx, method, url, body, out)
		if err == nil && out != nil {
			visit(reflect.ValueOf(out), hook)
		}
		return resp, err
	})
}

func visit(v reflect.Value, hook func(any)) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		if v.Elem().Kind() == reflect.Struct {
			hook(v.Interface())
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return
	}
	for i := range v.Len() {
		elem := v.Index(i)
		if elem.Kind() == reflect.Struct && elem.CanAddr() {
			hook(elem.Addr().Interface())
			continue
		}
		visit(elem, hook)
	}
}
