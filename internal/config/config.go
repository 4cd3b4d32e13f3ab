// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config layers clientgen settings with viper.
//
// Precedence, lowest to highest: defaults, the project config file
// (clientgen.toml or clientgen.yaml, searched upward from the working
// directory unless given explicitly), CLIENTGEN_* environment variables, and
// command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/clientgen/generator"
	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/internal/source"
)

// EnvPrefix prefixes every environment variable, e.g. CLIENTGEN_BACKEND or
// CLIENTGEN_SOURCE_URL.
const EnvPrefix = "CLIENTGEN"

// FileNames are the project config files, in search order.
var FileNames = []string{"clientgen.toml", "clientgen.yaml", "clientgen.yml"}

// File is the unmarshaled configuration.
type File struct {
	Backend     string            `mapstructure:"backend"`
	Catalog     string            `mapstructure:"catalog"`
	Output      string            `mapstructure:"output"`
	Namespace   string            `mapstructure:"namespace"`
	Client      string            `mapstructure:"client"`
	Base        string            `mapstructure:"base"`
	Strict      bool              `mapstructure:"strict"`
	ResolveDeps bool              `mapstructure:"resolve_deps"`
	Types       []string          `mapstructure:"types"`
	Options     map[string]string `mapstructure:"options"`
	Source      SourceConfig      `mapstructure:"source"`
	Log         LogConfig         `mapstructure:"log"`

	// Path is the config file that was read, if any.
	Path string `mapstructure:"-"`
}

// SourceConfig locates a remote catalog when Catalog is empty.
type SourceConfig struct {
	URL            string `mapstructure:"url"`
	Repo           string `mapstructure:"repo"`
	RepoDir        string `mapstructure:"repo_dir"`
	Ref            string `mapstructure:"ref"`
	Path           string `mapstructure:"path"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LogConfig configures internal/log.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"backend":      "backend",
	"output":       "output",
	"namespace":    "namespace",
	"client":       "client",
	"base":         "base",
	"strict":       "strict",
	"resolve-deps": "resolve_deps",
	"types":        "types",
	"url":          "source.url",
	"repo":         "source.repo",
	"repo-dir":     "source.repo_dir",
	"ref":          "source.ref",
	"path":         "source.path",
	"timeout":      "source.timeout_seconds",
	"log-json":     "log.json",
	"verbose":      "log.verbose",
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("backend", "csharp")
	v.SetDefault("catalog", "")
	v.SetDefault("output", "")
	v.SetDefault("namespace", "Client")
	v.SetDefault("client", "Client")
	v.SetDefault("base", "ClientObject")
	v.SetDefault("strict", true)
	v.SetDefault("resolve_deps", true)
	v.SetDefault("types", []string{})
	v.SetDefault("options", map[string]string{})

	v.SetDefault("source.url", "")
	v.SetDefault("source.repo", "")
	v.SetDefault("source.repo_dir", "")
	v.SetDefault("source.ref", source.DefaultRef)
	v.SetDefault("source.path", source.DefaultCatalogPath)
	v.SetDefault("source.timeout_seconds", int(source.DefaultTimeout/time.Second))

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// New builds a viper instance with every source wired in. configPath may be
// empty, in which case the project config is searched from the working
// directory; flags may be nil.
func New(configPath string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		if wd, err := os.Getwd(); err == nil {
			configPath = FindProjectConfig(wd)
		}
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", configPath)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag --%s", name)
				}
			}
		}
	}
	return v, nil
}

// Load reads the configuration. Backend options given with --opt key=value
// are merged over the file's options table.
func Load(configPath string, flags *pflag.FlagSet) (*File, error) {
	v, err := New(configPath, flags)
	if err != nil {
		return nil, err
	}
	f, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	if flags != nil {
		if opt := flags.Lookup("opt"); opt != nil && opt.Changed {
			extra, err := flags.GetStringToString("opt")
			if err != nil {
				return nil, errors.Wrap(err, "read --opt")
			}
			if f.Options == nil {
				f.Options = make(map[string]string, len(extra))
			}
			for k, val := range extra {
				f.Options[k] = val
			}
		}
	}
	return f, nil
}

// LoadWithViper unmarshals configuration from a prepared viper instance.
func LoadWithViper(v *viper.Viper) (*File, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	f.Path = v.ConfigFileUsed()
	f.Types = splitTypes(f.Types)
	return &f, nil
}

// FindProjectConfig walks up from dir looking for a project config file.
// It returns "" when none is found.
func FindProjectConfig(dir string) string {
	for {
		for _, name := range FileNames {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// splitTypes accepts both list and comma-separated forms.
func splitTypes(in []string) []string {
	var out []string
	for _, s := range in {
		for _, t := range strings.Split(s, ",") {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// Generator returns the generator configuration.
func (f *File) Generator() generator.Config {
	cfg := generator.Config{
		Types:       f.Types,
		ResolveDeps: f.ResolveDeps,
		Namespace:   f.Namespace,
		ClientName:  f.Client,
		BaseType:    f.Base,
		Strict:      f.Strict,
		Options:     f.Options,
	}
	// A path with an extension is a single output file.
	if f.Output != "" && filepath.Ext(f.Output) != "" && !isDir(f.Output) {
		cfg.OutputDir = filepath.Dir(f.Output)
		cfg.OutputFile = filepath.Base(f.Output)
	} else {
		cfg.OutputDir = f.Output
	}
	return cfg
}

// SourceOptions returns where to load the catalog from.
func (f *File) SourceOptions() source.Options {
	return source.Options{
		LocalPath: f.Catalog,
		RepoDir:   f.Source.RepoDir,
		URL:       f.Source.URL,
		Repo:      f.Source.Repo,
		Ref:       f.Source.Ref,
		Path:      f.Source.Path,
		Timeout:   time.Duration(f.Source.TimeoutSeconds) * time.Second,
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
