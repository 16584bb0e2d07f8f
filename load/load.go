/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load assembles the layered token corpus from workspace
// configuration.
package load

import (
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/resolver"
	"bennypowers.dev/shomer/specifier"
	"bennypowers.dev/shomer/store"
)

// EnvPlatform is the environment variable consulted for the platform
// target when no explicit platform is given.
const EnvPlatform = "SHOMER_PLATFORM"

// Options configures how the token corpus is loaded.
type Options struct {
	// Root is the workspace directory searched for the config file and
	// for local token files. Defaults to the current directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Platform forces the preferred platform target.
	// Takes precedence over the environment and config file if set.
	Platform string

	// Overrides is the runtime override source handed to the resolver.
	// Nil means no runtime overrides.
	Overrides resolver.OverrideSource
}

// Corpus is a fully loaded workspace: its configuration, the layered
// token store, and a resolver bound to the detected platform target.
type Corpus struct {
	Config   *config.Config
	Store    *store.Store
	Resolver *resolver.Resolver

	// Root is the absolute workspace root the corpus was loaded from.
	Root string
}

// Load assembles the token corpus for a workspace.
//
// The loading process:
//  1. Loads config from .config/shomer.{yaml,yml,json} (defaults if missing)
//  2. Expands glob patterns and resolves npm: specifiers to concrete files
//  3. Parses each document and binds it to its tier as a store layer,
//     in config order (later files of a tier override earlier ones)
//  4. Detects the platform target (option, environment, config, web)
//  5. Returns the store wrapped in a resolver
//
// A workspace with no config file and no token files yields an empty
// corpus: every resolution falls back. Configured files that cannot be
// read or parsed are errors.
func Load(opts Options) (*Corpus, error) {
	// Set up filesystem
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	// Ensure root is absolute
	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	// Load config file (optional - not an error if missing)
	cfg := config.LoadOrDefault(filesystem, root)

	platform, err := choosePlatform(opts.Platform, cfg)
	if err != nil {
		return nil, err
	}

	s, err := loadLayers(cfg, filesystem, root)
	if err != nil {
		return nil, err
	}

	res := resolver.New(s, resolver.Options{
		Platform:  platform,
		Overrides: opts.Overrides,
	})

	return &Corpus{
		Config:   cfg,
		Store:    s,
		Resolver: res,
		Root:     root,
	}, nil
}

// Document reads and parses one token document.
func Document(filesystem fs.FileSystem, path string) (map[string]any, error) {
	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	root, err := store.ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return root, nil
}

// loadLayers resolves the configured file specs and parses each into a
// tier layer, preserving config order so within-tier overrides follow
// file order.
func loadLayers(cfg *config.Config, filesystem fs.FileSystem, root string) (*store.Store, error) {
	s := store.New()

	res := specifier.NewDefaultResolver(filesystem, root)
	specs, err := cfg.ResolveFiles(res, filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token files: %w", err)
	}

	for _, spec := range specs {
		doc, err := Document(filesystem, spec.Path)
		if err != nil {
			return nil, err
		}
		s.Add(store.NewLayer(spec.Tier, doc, spec.Path))
	}

	return s, nil
}

// choosePlatform picks the platform target. An explicit platform option
// must parse; otherwise detection falls through the environment, the
// config file, and finally the web default.
func choosePlatform(explicit string, cfg *config.Config) (resolver.Platform, error) {
	if explicit != "" {
		return resolver.ParsePlatform(explicit)
	}

	return resolver.DetectPlatform(resolver.DetectOptions{
		EnvOverride: os.Getenv(EnvPlatform),
		Override:    cfg.PlatformOverride(),
	}), nil
}
