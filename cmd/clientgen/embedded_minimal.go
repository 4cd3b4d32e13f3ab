// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build clientgen_minimal

package main

import (
	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/generators/csharp"
)

func init() {
	// Minimal build: only the C# backend, which needs no runtime package
	generator.Register(csharp.NewGenerator())
}
