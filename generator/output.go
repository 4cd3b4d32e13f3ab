// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"bytes"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

// Output holds the printed files of one run, keyed by slash-separated
// path relative to the output directory.
type Output struct {
	Files map[string][]byte
}

func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Single returns an Output holding one file.
func Single(name string, content []byte) *Output {
	return &Output{Files: map[string][]byte{name: content}}
}

// Add sets the content of name, replacing any earlier content.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Names returns the file names in sorted order.
func (o *Output) Names() []string {
	return slices.Sorted(maps.Keys(o.Files))
}

// Write stores every file under dir, creating directories as needed, and
// returns the written paths in Names order.
func (o *Output) Write(dir string) ([]string, error) {
	var written []string
	for _, name := range o.Names() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, errors.Wrap(err, "create output directory")
		}
		if err := os.WriteFile(path, o.Files[name], 0o644); err != nil {
			return written, errors.Wrapf(err, "write %s", name)
		}
		written = append(written, path)
	}
	return written, nil
}

// Stale returns the files that are missing from dir or whose content
// differs from o. Files in dir that o does not produce are ignored.
func (o *Output) Stale(dir string) ([]string, error) {
	var stale []string
	for _, name := range o.Names() {
		onDisk, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, name)
		case err != nil:
			return nil, errors.Wrapf(err, "read %s", name)
		case !bytes.Equal(onDisk, o.Files[name]):
			stale = append(stale, name)
		}
	}
	return stale, nil
}
