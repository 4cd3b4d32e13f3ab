// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build !clientgen_minimal

package main

import (
	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/generators/csharp"
	"github.com/albertocavalcante/clientgen/generators/golang"
)

func init() {
	// Default build: every backend embedded
	generator.Register(csharp.NewGenerator())
	generator.Register(golang.NewGenerator())
}
