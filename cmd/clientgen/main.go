// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command clientgen generates typed API client libraries from a declarative
// model catalog.
//
// Usage:
//
//	clientgen generate [catalog.yaml] [flags]
//	clientgen check [catalog.yaml] -o DIR [flags]
//	clientgen list
//
// Settings are read from clientgen.toml or clientgen.yaml (searched upward
// from the working directory), CLIENTGEN_* environment variables and flags,
// in increasing order of precedence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/clientgen/internal/config"
	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	configPath string

	// loaded is the configuration of the running command.
	loaded *config.File
)

var rootCmd = &cobra.Command{
	Use:   "clientgen",
	Short: "Generate typed API clients from a model catalog",
	Long: `clientgen - API client generator

Reads a catalog of entities, enumerations, identifier wrappers and HTTP
methods and prints a typed client library for the selected backend.

Examples:
  # Print a C# client to stdout
  clientgen generate api.yaml

  # Write a Go client to a directory
  clientgen generate api.yaml --backend go --namespace Acme.GitLab -o ./gitlab/

  # Generate a subset and everything it references
  clientgen generate api.yaml --types GetProject,ListProjectForks

  # Fail when checked-in output is stale
  clientgen check api.yaml -o ./gitlab/`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		if err := log.Initialize(log.Options{JSON: cfg.Log.JSON, Verbose: cfg.Log.Verbose}); err != nil {
			return errors.Wrap(err, "initialize logger")
		}
		loaded = cfg
		if cfg.Path != "" {
			log.Logger.Debugw("loaded config", "path", cfg.Path)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: clientgen.toml or clientgen.yaml, searched upward)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
