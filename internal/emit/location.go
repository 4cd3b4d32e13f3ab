// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"strings"

	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/model"
)

// ResolveLocation decides whether a parameter travels in the URL or the
// body. An explicit location wins; a path placeholder wins over the
// method-type default.
func ResolveLocation(m *model.Method, p *model.MethodParameter) (model.Location, error) {
	if p.Location == model.LocationURL || p.Location == model.LocationBody {
		return p.Location, nil
	}
	if inTemplate(m.URLTemplate, p.Name) {
		return model.LocationURL, nil
	}
	switch m.MethodType {
	case model.Get, model.GetPaged:
		return model.LocationURL, nil
	case model.Put, model.Post, model.Delete:
		return model.LocationBody, nil
	}
	return "", unsupported(m)
}

// inTemplate is the substring placeholder rule: ":name/" anywhere or
// ":name" at the end.
func inTemplate(template, name string) bool {
	return strings.Contains(template, ":"+name+"/") || strings.HasSuffix(template, ":"+name)
}

// placeholders returns the ":name" tokens of a template in order. A name is
// a run of letters, digits and underscores.
func placeholders(template string) []string {
	var names []string
	for i := 0; i < len(template); i++ {
		if template[i] != ':' {
			continue
		}
		j := i + 1
		for j < len(template) && isNameByte(template[j]) {
			j++
		}
		if j > i+1 {
			names = append(names, template[i+1:j])
		}
		i = j - 1
	}
	return names
}

func isNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func unsupported(m *model.Method) error {
	err := errors.Mark(
		errors.Newf("method %s: unsupported method type %q", m.Name, m.MethodType),
		errors.ErrUnsupportedMethodType)
	return errors.WithHint(err, "use one of get, get_paged, put, post, delete")
}
