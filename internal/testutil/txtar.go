// SPDX-License-Identifier: MIT

// Package testutil provides txtar-driven test cases for clientgen backends.
package testutil

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// InputFile is the catalog entry of every archive.
const InputFile = "input.yaml"

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains any flags parsed from the "Flags: ..." line in the
	// description, split on whitespace.
	Flags []string

	// Input is the contents of "input.yaml".
	Input []byte

	// Want maps relative paths (e.g., "Client.cs") to exact expected
	// content.
	Want map[string][]byte

	// Contains maps relative paths to fragments whose non-blank lines must
	// appear in the output, in order.
	Contains map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input.yaml" file with the model catalog
//   - One or more "want/<filename>" or "contains/<filename>" files
//
// The description may contain a "Flags: --opt a=b -t X" line passed to the
// generate function.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
		Contains:    make(map[string][]byte),
	}

	c.parseFlags()

	for _, f := range ar.Files {
		switch {
		case f.Name == InputFile:
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		case strings.HasPrefix(f.Name, "contains/"):
			c.Contains[strings.TrimPrefix(f.Name, "contains/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected %s, want/* or contains/*)", f.Name, InputFile)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing %s in archive", InputFile)
	}

	if len(c.Want) == 0 && len(c.Contains) == 0 {
		return nil, fmt.Errorf("missing want/* or contains/* files in archive")
	}

	return c, nil
}

// parseFlags extracts flags from the "Flags: ..." line in the description.
func (c *Case) parseFlags() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "Flags:"); ok {
			c.Flags = strings.Fields(rest)
			break
		}
	}
}

// GenerateFunc generates output from an input catalog.
// It returns a map of filename to content.
type GenerateFunc func(input []byte, flags []string) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// Files under want/ must match exactly and must be the only files produced;
// files under contains/ are checked fragment by fragment.
func (c *Case) Run(t *testing.T, generate GenerateFunc) map[string][]byte {
	t.Helper()

	got, err := generate(c.Input, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if len(c.Want) > 0 {
		for wantFile := range c.Want {
			if _, ok := got[wantFile]; !ok {
				t.Errorf("missing output file: %q", wantFile)
			}
		}
		for gotFile := range got {
			if _, ok := c.Want[gotFile]; !ok {
				t.Errorf("unexpected output file: %q", gotFile)
			}
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}
		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}

	for file, fragment := range c.Contains {
		gotContent, ok := got[file]
		if !ok {
			t.Errorf("missing output file: %q", file)
			continue
		}
		if missing := MissingLines(gotContent, fragment); missing != "" {
			t.Errorf("file %q: line %q not found in order\n\ngot:\n%s", file, missing, gotContent)
		}
	}
	return got
}

var blanks = regexp.MustCompile(`\s+`)

// squash trims a line and collapses inner whitespace so fragments ignore
// indentation and column alignment.
func squash(line string) string {
	return blanks.ReplaceAllString(strings.TrimSpace(line), " ")
}

// MissingLines reports the first non-blank line of fragment that does not
// appear in content after the previously matched one. It returns "" when
// every line is found in order.
func MissingLines(content, fragment []byte) string {
	var lines []string
	for _, l := range strings.Split(string(content), "\n") {
		lines = append(lines, squash(l))
	}

	pos := 0
	for _, want := range strings.Split(string(fragment), "\n") {
		want = squash(want)
		if want == "" {
			continue
		}
		found := false
		for pos < len(lines) {
			pos++
			if lines[pos-1] == want {
				found = true
				break
			}
		}
		if !found {
			return want
		}
	}
	return ""
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive rewrites the want/* files of an archive with new generated
// content. Used for golden file updates with -update. contains/* fragments
// are hand-written and kept as they are.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	hasWant := false
	for _, f := range ar.Files {
		switch {
		case strings.HasPrefix(f.Name, "want/"):
			hasWant = true
		default:
			result.Files = append(result.Files, f)
		}
	}
	if !hasWant {
		return result
	}

	// Add want/* files in sorted order for determinism
	var names []string
	for name := range got {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory, sorted by
// name. Each case keeps its archive and path for -update.
func LoadTestCases(t *testing.T, dir string) []*Archive {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Archive
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, &Archive{Case: c, Path: file, Archive: ar})
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}

// Archive is a loaded case together with the archive it came from.
type Archive struct {
	*Case
	Path    string
	Archive *txtar.Archive
}

// StripHeader removes the leading comment block ("Code generated by
// clientgen", Source) from generated code.
func StripHeader(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		if !bytes.HasPrefix(line, []byte("//")) && len(bytes.TrimSpace(line)) > 0 {
			return bytes.Join(lines[i:], []byte("\n"))
		}
	}
	return nil
}
