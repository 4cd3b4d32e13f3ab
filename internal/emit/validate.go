// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"fmt"
	"slices"

	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/model"
)

// Diagnostic codes.
const (
	CodeZeroRefs             = "zero-refs"
	CodeUnmatchedPlaceholder = "unmatched-placeholder"
	CodePlaceholderCollision = "placeholder-collision"
	CodeDeleteBody           = "delete-body"
	CodeEmptyExtensionName   = "empty-extension-name"
)

// Severity of a diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one finding about the model.
type Diagnostic struct {
	Code     string
	Subject  string
	Message  string
	Severity Severity
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", d.Severity, d.Subject, d.Message, d.Code)
}

// Report collects diagnostics in the order they were found.
type Report struct {
	Diagnostics []Diagnostic
}

func (r *Report) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Errors returns the fatal diagnostics.
func (r *Report) Errors() []Diagnostic {
	return r.filter(Error)
}

// Warnings returns the non-fatal diagnostics.
func (r *Report) Warnings() []Diagnostic {
	return r.filter(Warning)
}

func (r *Report) filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// Codes lists the code of every diagnostic in report order.
func (r *Report) Codes() []string {
	codes := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		codes[i] = d.Code
	}
	return codes
}

// Err returns an ErrModelDefect joining every fatal diagnostic, or nil.
func (r *Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	causes := make([]error, len(errs))
	for i, d := range errs {
		causes[i] = errors.Newf("%s: %s [%s]", d.Subject, d.Message, d.Code)
	}
	return errors.Mark(errors.Wrapf(errors.Join(causes...), "%d model defect(s)", len(errs)), errors.ErrModelDefect)
}

// Validate inspects the model for defects the emitters would otherwise
// accept silently. In strict mode wrappers without refs, unmatched URL
// placeholders and placeholder collisions are errors; otherwise everything
// is a warning. Methods with an unsupported type are skipped here and fail
// during synthesis.
func Validate(reg *model.Registry, strict bool) *Report {
	r := &Report{}
	fatal := Warning
	if strict {
		fatal = Error
	}

	for _, w := range reg.IdentifierWrappers() {
		if len(w.Refs) == 0 {
			r.add(Diagnostic{
				Code:     CodeZeroRefs,
				Subject:  w.Name,
				Message:  "identifier wrapper has no refs and cannot be constructed",
				Severity: fatal,
			})
		}
	}

	for _, m := range reg.Methods() {
		validateMethod(r, m, fatal)
	}
	return r
}

func validateMethod(r *Report, m *model.Method, fatal Severity) {
	tokens := placeholders(m.URLTemplate)

	var urlNames []string
	var bodyNames []string
	for _, p := range m.Parameters {
		loc, err := ResolveLocation(m, p)
		if err != nil {
			return
		}
		if loc == model.LocationURL {
			urlNames = append(urlNames, p.Name)
		} else {
			bodyNames = append(bodyNames, p.Name)
		}

		if p.Location != model.LocationDefault {
			continue
		}
		if inTemplate(m.URLTemplate, p.Name) != slices.Contains(tokens, p.Name) {
			r.add(Diagnostic{
				Code:     CodePlaceholderCollision,
				Subject:  m.Name,
				Message:  fmt.Sprintf("parameter %q: placeholder match in %q is ambiguous", p.Name, m.URLTemplate),
				Severity: fatal,
			})
		}
	}

	for _, tok := range tokens {
		if !slices.Contains(urlNames, tok) {
			r.add(Diagnostic{
				Code:     CodeUnmatchedPlaceholder,
				Subject:  m.Name,
				Message:  fmt.Sprintf("placeholder :%s has no url parameter", tok),
				Severity: fatal,
			})
		}
	}

	if m.MethodType == model.Delete && len(bodyNames) > 0 {
		r.add(Diagnostic{
			Code:     CodeDeleteBody,
			Subject:  m.Name,
			Message:  fmt.Sprintf("body parameters %v are never sent by a delete", bodyNames),
			Severity: Warning,
		})
	}
}
