// SPDX-License-Identifier: MIT

package csharp

import (
	"flag"
	"os"
	"testing"

	"github.com/albertocavalcante/clientgen/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files")

// TestCodegen runs txtar-based integration tests.
func TestCodegen(t *testing.T) {
	generate := testutil.Generate(NewGenerator())

	for _, tc := range testutil.LoadTestCases(t, "testdata") {
		t.Run(tc.Name, func(t *testing.T) {
			if *update && len(tc.Want) > 0 {
				got, err := generate(tc.Input, tc.Flags)
				if err != nil {
					t.Fatalf("generate: %v", err)
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
