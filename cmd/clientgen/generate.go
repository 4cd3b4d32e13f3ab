// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/internal/config"
	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/internal/log"
	"github.com/albertocavalcante/clientgen/internal/source"
	"github.com/albertocavalcante/clientgen/model"
)

var dryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate [catalog]",
	Short: "Generate a client library",
	Long: `Generate a client library from a catalog.

The catalog is the positional argument, the "catalog" config key, or a
remote source given with --url, --repo or --repo-dir. Output goes to stdout
unless -o names a directory (one file per backend unit) or a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print to stdout without writing files")
}

// addGenerateFlags registers the flags shared by generate and check. Their
// values reach the commands through internal/config.
func addGenerateFlags(fs *pflag.FlagSet) {
	fs.StringP("backend", "b", "csharp", "Backend to generate (see 'clientgen list')")
	fs.StringP("output", "o", "", "Output directory or file (default: stdout)")
	fs.StringP("namespace", "n", "Client", "Namespace or package of the generated client")
	fs.String("client", "Client", "Name of the generated client type")
	fs.String("base", "ClientObject", "Common base type of entities")
	fs.StringSliceP("types", "t", nil, "Comma-separated types and methods to generate (default: all)")
	fs.Bool("resolve-deps", true, "Include transitive type dependencies")
	fs.Bool("strict", true, "Fail on model defects instead of warning")
	fs.StringToString("opt", nil, "Backend option as key=value (repeatable)")
	fs.String("url", "", "Catalog URL")
	fs.String("repo", "", "Git repository holding the catalog")
	fs.String("repo-dir", "", "Local checkout holding the catalog")
	fs.String("ref", source.DefaultRef, "Git reference for --repo")
	fs.String("path", source.DefaultCatalogPath, "Catalog path within the repository")
	fs.Int("timeout", int(source.DefaultTimeout/time.Second), "Network timeout in seconds")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out, gcfg, err := generate(cmd.Context(), loaded, args)
	if err != nil {
		return err
	}

	if dryRun || loaded.Output == "" {
		return printOutput(cmd, out)
	}
	return writeOutput(out, gcfg.OutputDir)
}

// generate loads the catalog and runs the configured backend.
func generate(ctx context.Context, cfg *config.File, args []string) (*generator.Output, generator.Config, error) {
	if len(args) == 1 {
		cfg.Catalog = args[0]
	}
	gcfg := cfg.Generator()

	gen, err := generator.Lookup(cfg.Backend)
	if err != nil {
		return nil, gcfg, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	src, err := source.Load(ctx, cfg.SourceOptions())
	if err != nil {
		return nil, gcfg, errors.Wrap(err, "load catalog")
	}
	log.Logger.Infow("loaded catalog", "source", src.Source, "ref", src.Ref, "commit", src.CommitHash)

	reg, err := model.Build(src.Registration)
	if err != nil {
		return nil, gcfg, errors.Wrap(err, "build model")
	}
	log.Logger.Debugw("built model",
		"enumerations", len(reg.Enumerations()),
		"entities", len(reg.Entities()),
		"wrappers", len(reg.IdentifierWrappers()),
		"methods", len(reg.Methods()))

	gcfg.Source = src.Source
	out, err := gen.Generate(ctx, reg, gcfg)
	if err != nil {
		return nil, gcfg, errors.Wrapf(err, "generate %s", cfg.Backend)
	}
	return out, gcfg, nil
}

func printOutput(cmd *cobra.Command, out *generator.Output) error {
	w := cmd.OutOrStdout()
	names := out.Names()
	for _, name := range names {
		if len(names) > 1 {
			if _, err := fmt.Fprintf(w, "// ── %s ──\n", name); err != nil {
				return err
			}
		}
		if _, err := w.Write(out.Files[name]); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(out *generator.Output, dir string) error {
	written, err := out.Write(dir)
	for _, path := range written {
		log.Logger.Infow("wrote file", "path", path)
	}
	return err
}
