// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package source locates and loads API model catalogs: a local file, an
// existing repository checkout, an HTTP URL, or a shallow git clone.
package source

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/albertocavalcante/clientgen/internal/errors"
	"github.com/albertocavalcante/clientgen/internal/log"
	"github.com/albertocavalcante/clientgen/model"
)

const (
	// DefaultRef is the git reference used when cloning without Ref.
	DefaultRef = "main"

	// DefaultCatalogPath is the catalog's path within a repository.
	DefaultCatalogPath = "clientgen.yaml"

	// DefaultTimeout bounds network operations.
	DefaultTimeout = 60 * time.Second
)

// ErrNoSource is returned when Options names no catalog location.
var ErrNoSource = errors.New("no catalog source configured")

// Options configures where the catalog is loaded from.
type Options struct {
	// LocalPath is a path to a catalog file.
	// If set, the file is read directly.
	LocalPath string

	// RepoDir is a path to an existing checkout containing the catalog.
	RepoDir string

	// URL is fetched over HTTP, with retries.
	URL string

	// Repo is a git remote cloned shallowly when nothing else is set.
	Repo string

	// Ref is the git reference (tag or branch) to use.
	// If empty, DefaultRef is used.
	Ref string

	// Path is the catalog's path within RepoDir or Repo.
	// If empty, DefaultCatalogPath is used.
	Path string

	// Timeout for network operations.
	Timeout time.Duration

	// HTTPClient overrides the client used for URL. Tests set it to skip
	// backoff.
	HTTPClient *retryablehttp.Client
}

// Result contains the loaded catalog and where it came from.
type Result struct {
	// Registration declares the catalog's contents.
	Registration model.Registration

	// Ref is the git reference that was used.
	Ref string

	// CommitHash is the git commit hash (if loaded from git).
	CommitHash string

	// Source describes where the catalog was loaded from. Generated files
	// carry it in their header.
	Source string
}

// Load retrieves and parses a catalog.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Path == "" {
		opts.Path = DefaultCatalogPath
	}

	// Priority: LocalPath > RepoDir > URL > Repo
	switch {
	case opts.LocalPath != "":
		return loadFromFile(opts.LocalPath)
	case opts.RepoDir != "":
		return loadFromRepo(opts.RepoDir, opts.Path, opts.Ref)
	case opts.URL != "":
		return loadFromURL(ctx, opts)
	case opts.Repo != "":
		return loadFromGit(ctx, opts)
	}
	return nil, errors.WithHint(ErrNoSource, "pass a catalog file or set source.url / source.repo")
}

func loadFromFile(p string) (*Result, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	reg, err := parse(data, p)
	if err != nil {
		return nil, err
	}

	return &Result{
		Registration: reg,
		Source:       filepath.ToSlash(p),
	}, nil
}

func loadFromRepo(repoDir, catalogPath, ref string) (*Result, error) {
	data, err := os.ReadFile(filepath.Join(repoDir, filepath.FromSlash(catalogPath)))
	if err != nil {
		return nil, errors.Wrap(err, "read from repo")
	}

	reg, err := parse(data, catalogPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		Registration: reg,
		Ref:          ref,
		CommitHash:   getGitHash(repoDir),
		Source:       "repo://" + filepath.ToSlash(filepath.Join(repoDir, catalogPath)),
	}, nil
}

func loadFromURL(ctx context.Context, opts Options) (*Result, error) {
	client := opts.HTTPClient
	if client == nil {
		client = retryablehttp.NewClient()
		client.RetryMax = 3
		client.Logger = log.Leveled{}
		client.HTTPClient.Timeout = opts.Timeout
	}

	data, err := fetch(ctx, client, opts.URL)
	if err != nil {
		return nil, err
	}

	reg, err := parse(data, opts.URL)
	if err != nil {
		return nil, err
	}

	return &Result{
		Registration: reg,
		Source:       opts.URL,
	}, nil
}

func fetch(ctx context.Context, client *retryablehttp.Client, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", url)
	}
	return data, nil
}

func loadFromGit(ctx context.Context, opts Options) (*Result, error) {
	ref := opts.Ref
	if ref == "" {
		ref = DefaultRef
	}

	tmpDir, err := os.MkdirTemp("", "clientgen-*")
	if err != nil {
		return nil, errors.Wrap(err, "create temp dir")
	}
	defer os.RemoveAll(tmpDir)

	cloneCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	log.Logger.Infow("cloning catalog repository", "repo", opts.Repo, "ref", ref)
	cmd := exec.CommandContext(cloneCtx, "git", "clone",
		"--quiet",
		"--depth=1",
		"--filter=blob:none",
		"--sparse",
		"--branch="+ref,
		"--single-branch",
		opts.Repo,
		tmpDir,
	)
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(err, "git clone")
	}

	// Root-level files are always part of a sparse checkout.
	if dir := path.Dir(opts.Path); dir != "." {
		cmd = exec.CommandContext(cloneCtx, "git", "-C", tmpDir, "sparse-checkout", "set", dir)
		if err := cmd.Run(); err != nil {
			return nil, errors.Wrap(err, "sparse checkout")
		}
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, filepath.FromSlash(opts.Path)))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", opts.Path)
	}

	reg, err := parse(data, opts.Path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Registration: reg,
		Ref:          ref,
		CommitHash:   getGitHash(tmpDir),
		Source:       opts.Repo + "@" + ref,
	}, nil
}

func parse(data []byte, name string) (model.Registration, error) {
	reg, err := model.LoadYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}
	return reg, nil
}

// getGitHash returns the current commit hash for a repository.
func getGitHash(repoDir string) string {
	data, err := os.ReadFile(filepath.Join(repoDir, ".git", "HEAD"))
	if err != nil {
		return ""
	}

	content := strings.TrimSpace(string(data))

	// Detached HEAD
	if len(content) == 40 && isHex(content) {
		return content
	}

	if ref, ok := strings.CutPrefix(content, "ref: "); ok {
		data, err := os.ReadFile(filepath.Join(repoDir, ".git", filepath.FromSlash(ref)))
		if err != nil {
			return ""
		}
		hash := strings.TrimSpace(string(data))
		if len(hash) >= 40 {
			return hash[:40]
		}
	}

	return ""
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
