// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming converts catalog names (snake_case or kebab-case tokens)
// into the identifier forms the emitters need.
//
// All functions are pure and deterministic. Consecutive capitals collapse
// the way strcase does it ("ID" becomes "Id").
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// Pascal returns the PascalCase form used for types, properties and
// enumeration members: "merge_requests" -> "MergeRequests".
func Pascal(name string) string {
	return strcase.ToCamel(name)
}

// Camel returns the camelCase form used for arguments:
// "project_id" -> "projectId".
func Camel(name string) string {
	return strcase.ToLowerCamel(name)
}

// Field returns the private backing-field name for a property:
// "project_id" -> "_projectId".
func Field(name string) string {
	c := Camel(name)
	if c == "" {
		return ""
	}
	return "_" + c
}

// Export returns a Go-safe exported identifier. Names starting with "_"
// lose the underscore before being capitalized ("_value" -> "Value").
func Export(name string) string {
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// Unexport lowercases the first letter: "Project" -> "project".
func Unexport(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// RemoveFold removes every case-insensitive occurrence of sub from s:
// RemoveFold("GetProjectIssues", "project") -> "GetIssues".
func RemoveFold(s, sub string) string {
	if sub == "" {
		return s
	}
	lower := strings.ToLower(s)
	lowerSub := strings.ToLower(sub)
	if len(lower) != len(s) || len(lowerSub) != len(sub) {
		// Case mapping changed byte lengths; fall back to rune-wise matching.
		return removeFoldRunes(s, sub)
	}

	var b strings.Builder
	i := 0
	for {
		j := strings.Index(lower[i:], lowerSub)
		if j < 0 {
			b.WriteString(s[i:])
			return b.String()
		}
		b.WriteString(s[i : i+j])
		i += j + len(sub)
	}
}

func removeFoldRunes(s, sub string) string {
	rs, rsub := []rune(s), []rune(sub)
	var b strings.Builder
	for i := 0; i < len(rs); {
		if i+len(rsub) <= len(rs) && strings.EqualFold(string(rs[i:i+len(rsub)]), sub) {
			i += len(rsub)
			continue
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}
