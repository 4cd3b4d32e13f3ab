// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/clientgen/internal/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check [catalog]",
	Short: "Verify that generated files are up to date",
	Long: `Regenerate in memory and compare with the files under -o.

Exits non-zero and lists the stale files when anything differs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	addGenerateFlags(checkCmd.Flags())
}

func runCheck(cmd *cobra.Command, args []string) error {
	if loaded.Output == "" {
		return errors.WithHint(errors.New("check needs an output location"), "pass -o DIR or set output in clientgen.toml")
	}

	out, gcfg, err := generate(cmd.Context(), loaded, args)
	if err != nil {
		return err
	}

	stale, err := out.Stale(gcfg.OutputDir)
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		err := errors.Mark(errors.Newf("%d file(s) out of date: %s", len(stale), strings.Join(stale, ", ")), errors.ErrOutOfDate)
		return errors.WithHint(err, "run 'clientgen generate' with the same settings")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) up to date\n", len(out.Files))
	return nil
}
