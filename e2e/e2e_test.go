// SPDX-License-Identifier: MIT

// Package e2e provides end-to-end tests for the clientgen CLI.
package e2e

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/albertocavalcante/clientgen/internal/testutil"
)

var (
	binary string                                              // path to built clientgen binary
	update = flag.Bool("update", false, "update golden files")
)

func TestMain(m *testing.M) {
	flag.Parse()

	// Build the clientgen binary to a temp location.
	tmpDir, err := os.MkdirTemp("", "clientgen-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binary = filepath.Join(tmpDir, "clientgen")
	if err := buildBinary(binary); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n", err)
		os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// buildBinary builds the clientgen binary to the specified path.
func buildBinary(outputPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "build", "-o", outputPath, "./cmd/clientgen")

	moduleRoot, err := findModuleRoot()
	if err != nil {
		return fmt.Errorf("find module root: %w", err)
	}
	cmd.Dir = moduleRoot

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w: %s", err, stderr.String())
	}

	return nil
}

// findModuleRoot finds the root of the Go module by looking for go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

// result is the outcome of one CLI invocation.
type result struct {
	stdout, stderr string
	err            error
}

// run executes the binary in dir with extra environment variables.
func run(t *testing.T, dir string, env []string, args ...string) result {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestE2E(t *testing.T) {
	cases := testutil.LoadTestCases(t, "testdata")

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			tmpDir := t.TempDir()
			inputPath := filepath.Join(tmpDir, testutil.InputFile)
			if err := os.WriteFile(inputPath, tc.Input, 0o644); err != nil {
				t.Fatalf("write %s: %v", testutil.InputFile, err)
			}

			args := append([]string{"generate", inputPath, "--dry-run"}, tc.Flags...)
			generate := func([]byte, []string) (map[string][]byte, error) {
				r := run(t, tmpDir, nil, args...)
				if r.err != nil {
					return nil, fmt.Errorf("%s %s: %w\n%s", binary, strings.Join(args, " "), r.err, r.stderr)
				}
				return map[string][]byte{"stdout": []byte(r.stdout)}, nil
			}

			if *update && len(tc.Want) > 0 {
				got, err := generate(nil, nil)
				if err != nil {
					t.Fatal(err)
				}
				content := testutil.FormatArchive(testutil.UpdateArchive(tc.Archive, got))
				if err := os.WriteFile(tc.Path, content, 0o644); err != nil {
					t.Fatalf("write updated file: %v", err)
				}
				t.Logf("updated %s", tc.Path)
				return
			}

			tc.Run(t, generate)
		})
	}
}

const catalog = `
entities:
  - name: Project
    properties:
      - name: id
        type: int64
identifier_wrappers:
  - name: ProjectIdRef
    final_type: int64
    refs:
      - type: Project
        path: [id]
methods:
  - name: GetProject
    type: get
    url: /projects/:id
    returns: Project
    parameters:
      - name: id
        type: ProjectIdRef
`

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "api.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestList(t *testing.T) {
	r := run(t, t.TempDir(), nil, "list")
	if r.err != nil {
		t.Fatalf("list: %v\n%s", r.err, r.stderr)
	}
	for _, want := range []string{"NAME", "csharp", "go", ".cs", ".go"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("list output missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestGenerateThenCheck(t *testing.T) {
	dir := t.TempDir()
	input := writeCatalog(t, dir, catalog)
	out := filepath.Join(dir, "gen")

	r := run(t, dir, nil, "generate", input, "--backend", "go", "--namespace", "Acme.GitLab", "-o", out)
	if r.err != nil {
		t.Fatalf("generate: %v\n%s", r.err, r.stderr)
	}
	for _, name := range []string{"types.go", "client.go"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Contains(data, []byte("package gitlab\n")) {
			t.Errorf("%s: missing package clause", name)
		}
	}

	r = run(t, dir, nil, "check", input, "--backend", "go", "--namespace", "Acme.GitLab", "-o", out)
	if r.err != nil {
		t.Fatalf("check after generate: %v\n%s", r.err, r.stderr)
	}
	if !strings.Contains(r.stdout, "2 file(s) up to date") {
		t.Errorf("check stdout = %q", r.stdout)
	}

	// Tamper with one file.
	if err := os.WriteFile(filepath.Join(out, "client.go"), []byte("package gitlab\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r = run(t, dir, nil, "check", input, "--backend", "go", "--namespace", "Acme.GitLab", "-o", out)
	if r.err == nil {
		t.Fatal("check succeeded on a stale file")
	}
	if !strings.Contains(r.stderr, "out of date: client.go") {
		t.Errorf("check stderr = %q", r.stderr)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, catalog)
	config := `
backend = "go"
catalog = "api.yaml"
namespace = "Acme.FromFile"
`
	if err := os.WriteFile(filepath.Join(dir, "clientgen.toml"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	r := run(t, dir, nil, "generate")
	if r.err != nil {
		t.Fatalf("generate: %v\n%s", r.err, r.stderr)
	}
	if !strings.Contains(r.stdout, "package fromfile\n") {
		t.Errorf("config file not applied:\n%s", r.stdout)
	}

	r = run(t, dir, []string{"CLIENTGEN_NAMESPACE=Acme.FromEnv"}, "generate")
	if r.err != nil {
		t.Fatalf("generate: %v\n%s", r.err, r.stderr)
	}
	if !strings.Contains(r.stdout, "package fromenv\n") {
		t.Errorf("environment not applied:\n%s", r.stdout)
	}

	r = run(t, dir, []string{"CLIENTGEN_NAMESPACE=Acme.FromEnv"}, "generate", "--namespace", "Acme.FromFlag")
	if r.err != nil {
		t.Fatalf("generate: %v\n%s", r.err, r.stderr)
	}
	if !strings.Contains(r.stdout, "package fromflag\n") {
		t.Errorf("flag not applied:\n%s", r.stdout)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeCatalog(t, dir, catalog)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "unknown backend",
			args: []string{"generate", input, "--backend", "cobol"},
			want: "hint: available: csharp, go",
		},
		{
			name: "no catalog",
			args: []string{"generate"},
			want: "no catalog source configured",
		},
		{
			name: "check without output",
			args: []string{"check", input},
			want: "check needs an output location",
		},
		{
			name: "missing file",
			args: []string{"generate", filepath.Join(dir, "missing.yaml")},
			want: "load catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, dir, nil, tt.args...)
			if r.err == nil {
				t.Fatalf("expected failure, stdout:\n%s", r.stdout)
			}
			if !strings.Contains(r.stderr, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", r.stderr, tt.want)
			}
		})
	}
}

func TestExampleCatalog(t *testing.T) {
	moduleRoot, err := findModuleRoot()
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	catalog := filepath.Join(moduleRoot, "examples", "gitlab", "catalog.yaml")

	tests := []struct {
		backend string
		want    []string
	}{
		{
			backend: "csharp",
			want: []string{
				"public partial class GitLabClient",
				"public Task<PagedResponse<Issue>> GetIssuesAsync(",
				"public Task<Issue> CreateAsync(",
				"public Task<User> GetAsync(CancellationToken cancellationToken = default)",
			},
		},
		{
			backend: "go",
			want: []string{
				"type GitLabClient struct {",
				"func (c *GitLabClient) GetIssues(ctx context.Context,",
				"func (i *Issue) Create(ctx context.Context,",
				"func (u *User) Get(ctx context.Context) (*User, error) {",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			r := run(t, t.TempDir(), nil, "generate", catalog,
				"--backend", tt.backend, "--namespace", "Acme.GitLab", "--client", "GitLabClient")
			if r.err != nil {
				t.Fatalf("generate: %v\n%s", r.err, r.stderr)
			}
			for _, want := range tt.want {
				if !strings.Contains(r.stdout, want) {
					t.Errorf("output missing %q", want)
				}
			}
		})
	}
}
