// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package runtime

import (
	"encoding/json"
	"time"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

// ErrNilValue is returned when an identifier wrapper is built from an
// absent entity.
var ErrNilValue = errors.New("cannot build identifier from nil value")

// Must panics if err is non-nil. Generated implicit conversions use it.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// DateLayout is the wire format of date-only values.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or time zone.
type Date struct {
	time.Time
}

// NewDate returns the date of y-m-d.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date as 2006-01-02.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. Null leaves d unchanged.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "date")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return errors.Wrapf(err, "date %q", s)
	}
	d.Time = t
	return nil
}
