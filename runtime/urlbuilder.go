// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package runtime is the support library imported by generated Go clients:
// URL building, paging options, the transport abstraction and the request
// primitives generated operations dispatch to.
package runtime

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// URLBuilder expands a ":name" template. Values whose key matches a
// placeholder replace it; the others become query parameters in insertion
// order. Absent values are skipped.
type URLBuilder struct {
	template string
	path     map[string]string
	query    []string
}

// NewURLBuilder seeds a builder from a template such as "/projects/:id".
func NewURLBuilder(template string) *URLBuilder {
	return &URLBuilder{template: template, path: make(map[string]string)}
}

// WithValue records a value. Nil values and nil pointers are ignored;
// slices are joined with commas.
func (b *URLBuilder) WithValue(key string, value any) *URLBuilder {
	s, ok := Format(value)
	if !ok {
		return b
	}
	if hasPlaceholder(b.template, key) {
		b.path[key] = s
		return b
	}
	b.query = append(b.query, url.QueryEscape(key)+"="+url.QueryEscape(s))
	return b
}

// Build returns the expanded path and query.
func (b *URLBuilder) Build() string {
	var sb strings.Builder
	t := b.template
	for i := 0; i < len(t); i++ {
		if t[i] != ':' {
			sb.WriteByte(t[i])
			continue
		}
		j := i + 1
		for j < len(t) && isNameByte(t[j]) {
			j++
		}
		if v, ok := b.path[t[i+1:j]]; ok && j > i+1 {
			sb.WriteString(url.PathEscape(v))
		} else {
			sb.WriteString(t[i:j])
		}
		i = j - 1
	}
	if len(b.query) > 0 {
		if strings.Contains(t, "?") {
			sb.WriteByte('&')
		} else {
			sb.WriteByte('?')
		}
		sb.WriteString(strings.Join(b.query, "&"))
	}
	return sb.String()
}

func hasPlaceholder(template, key string) bool {
	token := ":" + key
	for i := 0; ; {
		j := strings.Index(template[i:], token)
		if j < 0 {
			return false
		}
		end := i + j + len(token)
		if end == len(template) || !isNameByte(template[end]) {
			return true
		}
		i = end
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Format renders a URL value. It reports false for absent values.
func Format(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	// Dereference first: a nil *T would otherwise match T's value-receiver
	// methods below.
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return Format(rv.Elem().Interface())
	}
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return v.Format(time.RFC3339), true
	case Date:
		return v.String(), true
	case time.Duration:
		return strconv.FormatInt(int64(v.Seconds()), 10), true
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return "", false
		}
		return string(text), true
	case fmt.Stringer:
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return Format(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "", false
		}
		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			if s, ok := Format(rv.Index(i).Interface()); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return fmt.Sprint(value), true
}
