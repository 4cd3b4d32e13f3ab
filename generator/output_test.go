// SPDX-License-Identifier: MIT

package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutput(t *testing.T) {
	t.Run("NewOutput and Add", func(t *testing.T) {
		out := NewOutput()
		out.Add("file2.go", []byte("content2"))
		out.Add("file1.go", []byte("content1"))

		if len(out.Files) != 2 {
			t.Fatalf("got %d files, want 2", len(out.Files))
		}
		if diff := cmp.Diff([]string{"file1.go", "file2.go"}, out.Names()); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Single", func(t *testing.T) {
		out := Single("only.go", []byte("content"))

		if len(out.Files) != 1 {
			t.Fatalf("got %d files, want 1", len(out.Files))
		}
		if string(out.Files["only.go"]) != "content" {
			t.Error("content mismatch")
		}
	})
}

func TestOutput_WriteThenStale(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	out := NewOutput()
	out.Add("types.go", []byte("package a\n"))
	out.Add("api/client.go", []byte("package api\n"))

	written, err := out.Write(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "api", "client.go"), filepath.Join(dir, "types.go")}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}

	stale, err := out.Stale(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(stale) != 0 {
		t.Errorf("fresh output reported stale: %v", stale)
	}

	if err := os.WriteFile(filepath.Join(dir, "types.go"), []byte("package b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "unrelated.go"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	out.Add("extra.go", []byte("missing on disk"))

	stale, err = out.Stale(dir)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"extra.go", "types.go"}, stale); diff != "" {
		t.Errorf("Stale() mismatch (-want +got):\n%s", diff)
	}
}
