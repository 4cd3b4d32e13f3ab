// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end compile verification tests.
// These tests verify that generated code is valid and compilable.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// Tool installation instructions
var installInstructions = map[string]string{
	"go": "Go is required. Install from https://go.dev/dl/",
}

// requireTool fails the test if the tool is not available.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		instruction := installInstructions[name]
		if instruction == "" {
			instruction = fmt.Sprintf("Install %s and ensure it's in PATH", name)
		}
		t.Fatalf("%s not found in PATH.\n%s", name, instruction)
	}
}

// TestGoOutputCompiles verifies that the generated Go client builds against
// the runtime package and passes vet.
func TestGoOutputCompiles(t *testing.T) {
	requireTool(t, "go")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	moduleRoot, err := findModuleRoot()
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}

	tmpDir := t.TempDir()

	// Create an isolated module that depends on this one for the runtime.
	goModDir := filepath.Join(tmpDir, "gotest")
	if err := os.MkdirAll(goModDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	goModContent := fmt.Sprintf(`module clienttest

go 1.25

require github.com/albertocavalcante/clientgen v0.0.0

replace github.com/albertocavalcante/clientgen => %s
`, moduleRoot)
	if err := os.WriteFile(filepath.Join(goModDir, "go.mod"), []byte(goModContent), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}

	catalog := filepath.Join(moduleRoot, "examples", "gitlab", "catalog.yaml")
	outDir := filepath.Join(goModDir, "gitlab")
	r := run(t, tmpDir, nil, "generate", catalog,
		"--backend", "go",
		"--namespace", "Acme.GitLab",
		"--client", "GitLabClient",
		"-o", outDir,
	)
	if r.err != nil {
		t.Fatalf("clientgen generate: %v\n%s", r.err, r.stderr)
	}

	goCmd := func(t *testing.T, args ...string) {
		t.Helper()
		start := time.Now()
		cmd := exec.CommandContext(ctx, "go", args...)
		cmd.Dir = goModDir
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			t.Fatalf("go %v failed: %v\n%s", args, err, stderr.String())
		}
		t.Logf("go %v: %v", args, time.Since(start))
	}

	t.Run("go_mod_tidy", func(t *testing.T) { goCmd(t, "mod", "tidy") })
	t.Run("go_build", func(t *testing.T) { goCmd(t, "build", "./...") })
	t.Run("go_vet", func(t *testing.T) { goCmd(t, "vet", "./...") })
}

// TestCSharpOutputBalanced generates C# for the example catalog and checks
// its block structure.
func TestCSharpOutputBalanced(t *testing.T) {
	moduleRoot, err := findModuleRoot()
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}

	tmpDir := t.TempDir()
	catalog := filepath.Join(moduleRoot, "examples", "gitlab", "catalog.yaml")
	out := filepath.Join(tmpDir, "GitLabClient.cs")
	r := run(t, tmpDir, nil, "generate", catalog, "--namespace", "Acme.GitLab", "--client", "GitLabClient", "-o", out)
	if r.err != nil {
		t.Fatalf("clientgen generate: %v\n%s", r.err, r.stderr)
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if open, closed := bytes.Count(src, []byte("{")), bytes.Count(src, []byte("}")); open != closed {
		t.Errorf("unbalanced braces: %d open, %d closed", open, closed)
	}
}
