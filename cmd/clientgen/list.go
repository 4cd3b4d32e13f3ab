// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/clientgen/generator"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available backends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tALIASES\tVERSION\tEXTENSIONS\tRUNTIME")
		for _, g := range generator.All() {
			m := g.Metadata()
			aliases := strings.Join(m.Aliases, ",")
			if aliases == "" {
				aliases = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Name, aliases, m.Version, strings.Join(m.FileExtensions, ","), m.Runtime)
		}
		return w.Flush()
	},
}
