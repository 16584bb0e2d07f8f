/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides workspace configuration loading for shomer.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/shomer/contract"
	"bennypowers.dev/shomer/resolver"
	"bennypowers.dev/shomer/store"
)

// Config represents the shomer workspace configuration.
type Config struct {
	// Prefix is the namespace carried by generated CSS variables.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Scope is the npm scope workspace packages must live under.
	Scope string `yaml:"scope" json:"scope"`

	// Platform forces the preferred platform (web or mobile).
	Platform string `yaml:"platform" json:"platform"`

	// Files lists token documents to load (paths, globs, or specs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Contract configures the compliance checks.
	Contract ContractConfig `yaml:"contract" json:"contract"`
}

// FileSpec represents a token file specification.
// It can be specified as a simple string path or as an object with an
// explicit tier assignment.
type FileSpec struct {
	// Path is the file path (supports globs and the npm: protocol).
	Path string `yaml:"path" json:"path"`

	// Tier assigns the file to a store tier. Empty means guess from
	// the file name.
	Tier string `yaml:"tier" json:"tier"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// ContractConfig selects the files the compliance checker reads.
type ContractConfig struct {
	// Tokens is the canonical token file checked for compliance.
	Tokens string `yaml:"tokens" json:"tokens"`

	// Artifacts maps platform names to generated output files.
	Artifacts map[string]string `yaml:"artifacts" json:"artifacts"`

	// Ports maps platform names to assigned dev-server ports.
	Ports map[string]int `yaml:"ports" json:"ports"`

	// PortConfigs maps platform names to dev-server config files.
	PortConfigs map[string]string `yaml:"portConfigs" json:"portConfigs"`

	// Styles lists CSS and HTML sources scanned for prefix clashes.
	Styles []string `yaml:"styles" json:"styles"`

	// Bundler is the bundler config inspected for deduplication.
	Bundler string `yaml:"bundler" json:"bundler"`

	// BundlerFeatures overrides the default deduplication settings.
	BundlerFeatures []string `yaml:"bundlerFeatures" json:"bundlerFeatures"`

	// Manifests lists package manifests checked against Scope.
	Manifests []string `yaml:"manifests" json:"manifests"`
}

// Default returns a config with the workspace defaults.
func Default() *Config {
	return &Config{
		Prefix: "ds",
		Scope:  "@ds",
		Contract: ContractConfig{
			Tokens: "tokens/tokens.json",
			Artifacts: map[string]string{
				"web":     "dist/web/tokens.css",
				"mobile":  "dist/mobile/tokens.ts",
				"desktop": "dist/desktop/tokens.css",
			},
			Ports: map[string]int{
				"web":     6006,
				"mobile":  7007,
				"desktop": 6008,
			},
		},
	}
}

// fillDefaults backfills unset fields from Default. Maps given in the
// config are taken verbatim, never merged with defaults.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	if c.Scope == "" {
		c.Scope = d.Scope
	}
	if c.Contract.Tokens == "" {
		c.Contract.Tokens = d.Contract.Tokens
	}
	if c.Contract.Artifacts == nil {
		c.Contract.Artifacts = d.Contract.Artifacts
	}
	if c.Contract.Ports == nil {
		c.Contract.Ports = d.Contract.Ports
	}
}

// PlatformOverride returns the configured platform, or "" when unset
// or unparseable. The platform detection ladder treats "" as absent.
func (c *Config) PlatformOverride() resolver.Platform {
	if c.Platform == "" {
		return ""
	}
	p, err := resolver.ParsePlatform(c.Platform)
	if err != nil {
		return ""
	}
	return p
}

// ContractOptions maps the configuration onto checker options.
func (c *Config) ContractOptions() contract.Options {
	return contract.Options{
		Prefix:          c.Prefix,
		Scope:           c.Scope,
		Artifacts:       c.Contract.Artifacts,
		Ports:           c.Contract.Ports,
		PortConfigs:     c.Contract.PortConfigs,
		Styles:          c.Contract.Styles,
		BundlerConfig:   c.Contract.Bundler,
		BundlerFeatures: c.Contract.BundlerFeatures,
		Manifests:       c.Contract.Manifests,
	}
}

// tierFor picks the spec's declared tier, falling back to a guess from
// the expanded file name.
func tierFor(spec FileSpec, path string) store.Tier {
	if spec.Tier != "" {
		if tier, err := store.ParseTier(spec.Tier); err == nil {
			return tier
		}
	}
	tier, _ := store.GuessTier(path)
	return tier
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
