/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/shomer/contract"
	shfs "bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/specifier"
	"bennypowers.dev/shomer/store"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "shomer"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// ResolvedSpec is one concrete token file with its assigned tier.
type ResolvedSpec struct {
	// Path is the resolved filesystem path.
	Path string

	// Specifier is the original entry from the config file.
	Specifier string

	// Tier is the store tier this file loads into.
	Tier store.Tier
}

// Load searches for .config/shomer.{yaml,yml,json} under rootDir.
// A found config has its unset fields backfilled with defaults.
// Returns nil if no config is found (not an error).
func Load(filesystem shfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}

		cfg.fillDefaults()
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns the workspace config or defaults if not found.
func LoadOrDefault(filesystem shfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ResolveFiles expands glob patterns and resolves package specifiers,
// yielding each concrete token file with its assigned tier in config
// order.
func (c *Config) ResolveFiles(r specifier.Resolver, filesystem shfs.FileSystem, rootDir string) ([]ResolvedSpec, error) {
	var result []ResolvedSpec

	for _, spec := range c.Files {
		expanded, err := expandFilePath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}

		for _, path := range expanded {
			resolved, err := r.Resolve(path)
			if err != nil {
				return nil, err
			}
			result = append(result, ResolvedSpec{
				Path:      resolved.Path,
				Specifier: spec.Path,
				Tier:      tierFor(spec, resolved.Path),
			})
		}
	}

	return result, nil
}

// TokensPath returns the contract token file resolved against rootDir.
func (c *Config) TokensPath(rootDir string) string {
	return joinUnderRoot(rootDir, c.Contract.Tokens)
}

// ContractOptionsAt maps the configuration onto checker options with
// every file reference resolved against rootDir. Glob patterns in the
// styles and manifests lists are expanded; a pattern with no matches
// contributes nothing.
func (c *Config) ContractOptionsAt(filesystem shfs.FileSystem, rootDir string) (contract.Options, error) {
	opts := c.ContractOptions()

	opts.Artifacts = joinAllUnderRoot(rootDir, opts.Artifacts)
	opts.PortConfigs = joinAllUnderRoot(rootDir, opts.PortConfigs)
	if opts.BundlerConfig != "" {
		opts.BundlerConfig = joinUnderRoot(rootDir, opts.BundlerConfig)
	}

	styles, err := expandAll(filesystem, rootDir, opts.Styles)
	if err != nil {
		return opts, err
	}
	opts.Styles = styles

	manifests, err := expandAll(filesystem, rootDir, opts.Manifests)
	if err != nil {
		return opts, err
	}
	opts.Manifests = manifests

	return opts, nil
}

// joinUnderRoot resolves a relative path against the workspace root.
func joinUnderRoot(rootDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

// joinAllUnderRoot resolves each map value against the workspace root.
func joinAllUnderRoot(rootDir string, paths map[string]string) map[string]string {
	out := make(map[string]string, len(paths))
	for key, path := range paths {
		out[key] = joinUnderRoot(rootDir, path)
	}
	return out
}

// expandAll expands each pattern against the filesystem, concatenating
// matches in pattern order.
func expandAll(filesystem shfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// expandFilePath expands a single file path which may contain globs.
// npm: paths are passed through unchanged for the specifier resolver.
func expandFilePath(filesystem shfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if strings.HasPrefix(pattern, "npm:") {
		return []string{pattern}, nil
	}

	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob; errors surface when the file is read
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem shfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		// doublestar handles both simple and ** globs
		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
