/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package contract

import (
	"bytes"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/guard"
	"bennypowers.dev/shomer/resolver"
	"bennypowers.dev/shomer/store"
	"bennypowers.dev/shomer/token"
)

// HexColorPattern matches the exact six-digit hex form required of
// source color values. Three- and eight-digit forms are rejected.
var HexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// unitSuffixPattern matches a numeric value with a trailing CSS unit.
var unitSuffixPattern = regexp.MustCompile(`^(-?(?:\d+|\d*\.\d+))(?:px|em|rem|%|vh|vw|pt|dp)$`)

// camelBoundaryPattern finds a lower-to-upper transition inside a segment.
var camelBoundaryPattern = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// nonKebabRunPattern matches character runs that cannot appear in a
// kebab-case segment.
var nonKebabRunPattern = regexp.MustCompile(`[^a-z0-9]+`)

// allowedAliasTargets maps each tier to the tiers its tokens may
// reference. Base stays self-contained, semantic builds on base, and
// component builds on semantic or base.
var allowedAliasTargets = map[string][]string{
	"base":      {"base"},
	"semantic":  {"base"},
	"component": {"semantic", "base"},
}

// Options configure which files the contract checks read. Empty fields
// disable the corresponding file-backed checks.
type Options struct {
	// Prefix is the namespace every consumer-facing CSS variable and
	// class selector must carry, without leading dashes.
	Prefix string

	// Scope is the npm scope every workspace package must live under,
	// e.g. "@ds".
	Scope string

	// Artifacts maps platform names to their generated output file.
	Artifacts map[string]string

	// Ports maps platform names to their assigned dev-server port.
	Ports map[string]int

	// PortConfigs maps platform names to the dev-server config file
	// scanned for bound ports.
	PortConfigs map[string]string

	// Styles lists CSS and HTML sources scanned by the clash guard.
	Styles []string

	// BundlerConfig is the bundler configuration inspected for
	// deduplication settings.
	BundlerConfig string

	// BundlerFeatures overrides guard.DefaultBundlerFeatures.
	BundlerFeatures []string

	// Manifests lists package manifests checked against Scope.
	Manifests []string
}

// Checker runs the publishing contract over a token file and its
// supporting build artifacts.
type Checker struct {
	fs   fs.FileSystem
	opts Options
}

// NewChecker creates a contract checker. A nil filesystem falls back to
// the operating system.
func NewChecker(filesystem fs.FileSystem, opts Options) *Checker {
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	return &Checker{fs: filesystem, opts: opts}
}

// Check runs every contract check against the token file and returns
// the aggregated report. It never fails outright: unreadable or
// malformed input is recorded as a structure violation and the
// remaining checks run on whatever could be loaded. Repeated runs over
// unchanged input produce identical reports.
func (c *Checker) Check(tokensFile string) *Report {
	report := NewReport()

	tokens := c.loadTokens(tokensFile, report)
	c.checkNaming(tokens, report)
	c.checkStructure(tokens, report)
	c.checkTypes(tokens, report)
	c.checkPrefix(tokens, report)
	c.checkPlatformOutput(report)
	c.checkPorts(report)
	c.checkBundler(report)

	return report
}

// loadTokens reads and flattens the token file. Read or parse failures
// become structure violations and yield no tokens.
func (c *Checker) loadTokens(path string, report *Report) []*token.Token {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		report.Add(Violation{
			Category: CategoryStructure,
			Message:  fmt.Sprintf("cannot read token file: %v", err),
			File:     path,
		})
		return nil
	}
	doc, err := store.ParseDocument(data)
	if err != nil {
		report.Add(Violation{
			Category: CategoryStructure,
			Message:  fmt.Sprintf("cannot parse token file: %v", err),
			File:     path,
		})
		return nil
	}
	return store.Flatten(doc, path)
}

// checkNaming verifies that every path segment is kebab-case. Each
// offending segment is reported once, at the shortest path that
// exhibits it, so a misnamed group does not repeat for every child.
func (c *Checker) checkNaming(tokens []*token.Token, report *Report) {
	seen := make(map[string]bool)
	for _, tok := range tokens {
		for i, segment := range tok.Path {
			if token.IsKebab(segment) {
				continue
			}
			offender := tok.Path[:i+1].String()
			if seen[offender] {
				continue
			}
			seen[offender] = true
			v := Violation{
				Category: CategoryNaming,
				Message:  fmt.Sprintf("segment %q is not kebab-case", segment),
				Path:     offender,
				File:     tok.FilePath,
			}
			if suggestion := kebabify(segment); suggestion != "" {
				v.Hint = fmt.Sprintf("rename to %q", suggestion)
			}
			report.Add(v)
		}
	}
}

// checkStructure verifies tier ordering between aliases, flags
// references to tokens that do not exist, and detects circular alias
// chains.
func (c *Checker) checkStructure(tokens []*token.Token, report *Report) {
	if len(tokens) == 0 {
		return
	}

	known := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		known[tok.DotPath()] = tok
	}

	for _, tok := range tokens {
		for _, ref := range token.ExtractRefs(tok.Value) {
			target, ok := known[ref]
			if !ok {
				report.Add(Violation{
					Category: CategoryStructure,
					Message:  fmt.Sprintf("alias target %q does not exist", ref),
					Path:     tok.DotPath(),
					File:     tok.FilePath,
				})
				continue
			}
			checkAliasTier(tok, target, report)
		}
	}

	graph := resolver.BuildDependencyGraph(tokens)
	if cycle := graph.FindCycle(); cycle != nil {
		v := Violation{
			Category: CategoryStructure,
			Message:  fmt.Sprintf("circular alias chain: %s", strings.Join(cycle, " -> ")),
			Path:     cycle[0],
		}
		if tok, ok := known[cycle[0]]; ok {
			v.File = tok.FilePath
		}
		report.Add(v)
	}
}

// checkAliasTier enforces the tier ordering rules between an aliasing
// token and its target. Tokens outside the named tiers are exempt.
func checkAliasTier(tok, target *token.Token, report *Report) {
	srcTier := tierOf(tok.Path)
	dstTier := tierOf(target.Path)
	if srcTier == "" || dstTier == "" {
		return
	}
	allowed := allowedAliasTargets[srcTier]
	if slices.Contains(allowed, dstTier) {
		return
	}
	report.Add(Violation{
		Category: CategoryStructure,
		Message:  fmt.Sprintf("%s token may not alias %s token %q", srcTier, dstTier, target.DotPath()),
		Path:     tok.DotPath(),
		File:     tok.FilePath,
		Hint:     fmt.Sprintf("%s tokens may alias only %s tokens", srcTier, strings.Join(allowed, " or ")),
	})
}

// tierOf returns the tier a token belongs to, judged by its first path
// segment. Unknown roots return "".
func tierOf(p token.Path) string {
	if len(p) == 0 {
		return ""
	}
	switch p[0] {
	case "base", "semantic", "component":
		return p[0]
	}
	return ""
}

// duplicatesPrefix reports whether a tier-relative segment would repeat
// the namespace prefix in the generated variable name.
func duplicatesPrefix(segment, prefix string) bool {
	return segment == prefix || strings.HasPrefix(segment, prefix+"-")
}

// checkTypes verifies value shapes: colors must be exactly six-digit
// hex, and dimension-like tokens must carry bare numbers. Aliases are
// exempt since they take their shape from their target.
func (c *Checker) checkTypes(tokens []*token.Token, report *Report) {
	for _, tok := range tokens {
		if tok.IsAlias() {
			continue
		}
		switch tok.Type {
		case "color":
			if HexColorPattern.MatchString(tok.Value) {
				continue
			}
			v := Violation{
				Category: CategoryType,
				Message:  fmt.Sprintf("color value %q is not 6-digit hex", tok.Value),
				Path:     tok.DotPath(),
				File:     tok.FilePath,
			}
			if parsed, err := csscolorparser.Parse(tok.Value); err == nil {
				r, g, b, _ := parsed.RGBA255()
				v.Hint = fmt.Sprintf("use \"#%02x%02x%02x\"", r, g, b)
			}
			report.Add(v)
		case "dimension", "spacing", "sizing":
			if isUnitlessNumber(tok.RawValue) {
				continue
			}
			v := Violation{
				Category: CategoryType,
				Message:  fmt.Sprintf("dimension value %q is not a unitless number", tok.Value),
				Path:     tok.DotPath(),
				File:     tok.FilePath,
			}
			if bare := stripUnit(tok.Value); bare != "" {
				v.Hint = fmt.Sprintf("use %s", bare)
			}
			report.Add(v)
		}
	}
}

// checkPrefix verifies the namespace end to end. The workspace must
// configure a prefix; consumer-facing (semantic and component tier)
// token paths must not repeat it, which would generate doubled names
// like --ds-ds-color-brand; and generated CSS artifacts and configured
// style sources must carry it on every custom property and class
// selector. Artifact findings are filed under the prefix category;
// style-source findings keep the guard's clash category. Missing
// artifacts are left to the platform-output check.
func (c *Checker) checkPrefix(tokens []*token.Token, report *Report) {
	if c.opts.Prefix == "" {
		report.Add(Violation{
			Category: CategoryPrefix,
			Message:  "no namespace prefix is configured; generated CSS variables would be unscoped",
			Hint:     "set prefix in the workspace config",
		})
		return
	}

	for _, tok := range tokens {
		switch tierOf(tok.Path) {
		case "semantic", "component":
		default:
			continue
		}
		if len(tok.Path) < 2 || !duplicatesPrefix(tok.Path[1], c.opts.Prefix) {
			continue
		}
		report.Add(Violation{
			Category: CategoryPrefix,
			Message: fmt.Sprintf("token path repeats the %q prefix; its variable would render as %q",
				c.opts.Prefix, "--"+c.opts.Prefix+"-"+strings.Join(tok.Path[1:], "-")),
			Path: tok.DotPath(),
			File: tok.FilePath,
			Hint: "drop the prefix segment; it is added when names are generated",
		})
	}

	for _, platform := range slices.Sorted(maps.Keys(c.opts.Artifacts)) {
		artifact := c.opts.Artifacts[platform]
		if !strings.HasSuffix(artifact, ".css") {
			continue
		}
		data, err := c.fs.ReadFile(artifact)
		if err != nil {
			continue
		}
		for _, f := range guard.ScanCSS(data, c.opts.Prefix, artifact) {
			report.Add(Violation{
				Category: CategoryPrefix,
				Message:  f.Message,
				File:     guardFile(f),
			})
		}
	}

	for _, style := range c.opts.Styles {
		data, err := c.fs.ReadFile(style)
		if err != nil {
			report.Add(Violation{
				Category: CategoryTokenClash,
				Message:  fmt.Sprintf("cannot read style source: %v", err),
				File:     style,
			})
			continue
		}
		scan := guard.ScanCSS
		if strings.HasSuffix(style, ".html") {
			scan = guard.ScanHTML
		}
		for _, f := range scan(data, c.opts.Prefix, style) {
			report.Add(Violation{
				Category: f.Category,
				Message:  f.Message,
				File:     guardFile(f),
			})
		}
	}
}

// checkPlatformOutput verifies that every platform's output artifact
// exists and is non-empty.
func (c *Checker) checkPlatformOutput(report *Report) {
	for _, platform := range slices.Sorted(maps.Keys(c.opts.Artifacts)) {
		artifact := c.opts.Artifacts[platform]
		data, err := c.fs.ReadFile(artifact)
		if err != nil {
			report.Add(Violation{
				Category: CategoryPlatformOutput,
				Message:  fmt.Sprintf("%s output artifact is missing", platform),
				File:     artifact,
				Hint:     "run the token build before checking",
			})
			continue
		}
		if len(bytes.TrimSpace(data)) == 0 {
			report.Add(Violation{
				Category: CategoryPlatformOutput,
				Message:  fmt.Sprintf("%s output artifact is empty", platform),
				File:     artifact,
			})
		}
	}
}

// checkPorts reads each platform's dev-server config and hands the
// blobs to the port-isolation guard. Unreadable configs are themselves
// violations.
func (c *Checker) checkPorts(report *Report) {
	if len(c.opts.Ports) == 0 {
		return
	}

	var configs []guard.PortConfig
	for _, platform := range slices.Sorted(maps.Keys(c.opts.PortConfigs)) {
		path := c.opts.PortConfigs[platform]
		data, err := c.fs.ReadFile(path)
		if err != nil {
			report.Add(Violation{
				Category: CategoryPorts,
				Message:  fmt.Sprintf("cannot read %s dev-server config: %v", platform, err),
				File:     path,
			})
			continue
		}
		configs = append(configs, guard.PortConfig{
			Platform: platform,
			FilePath: path,
			Content:  string(data),
		})
	}

	for _, f := range guard.CheckPorts(configs, c.opts.Ports) {
		report.Add(Violation{
			Category: f.Category,
			Message:  f.Message,
			File:     guardFile(f),
		})
	}
}

// checkBundler inspects the bundler config for deduplication settings
// and the workspace manifests for scope compliance. These findings are
// recorded but do not fail any of the six checks.
func (c *Checker) checkBundler(report *Report) {
	if c.opts.BundlerConfig != "" {
		data, err := c.fs.ReadFile(c.opts.BundlerConfig)
		if err != nil {
			report.Add(Violation{
				Category: CategoryMetroDuplication,
				Message:  fmt.Sprintf("cannot read bundler config: %v", err),
				File:     c.opts.BundlerConfig,
			})
		} else {
			for _, f := range guard.CheckBundler(data, c.opts.BundlerConfig, c.opts.BundlerFeatures) {
				report.Add(Violation{
					Category: f.Category,
					Message:  f.Message,
					File:     guardFile(f),
				})
			}
		}
	}

	if c.opts.Scope == "" || len(c.opts.Manifests) == 0 {
		return
	}
	var manifests []guard.Manifest
	for _, path := range c.opts.Manifests {
		data, err := c.fs.ReadFile(path)
		if err != nil {
			continue
		}
		manifests = append(manifests, guard.Manifest{FilePath: path, Content: data})
	}
	for _, f := range guard.CheckManifests(manifests, c.opts.Scope) {
		report.Add(Violation{
			Category: f.Category,
			Message:  f.Message,
			File:     guardFile(f),
		})
	}
}

// guardFile renders a guard finding's location as "file:line", or just
// the file when no line is known.
func guardFile(f guard.Finding) string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	return f.File
}

// isUnitlessNumber reports whether a raw $value is a bare number.
func isUnitlessNumber(raw any) bool {
	switch raw.(type) {
	case float64, int, int64:
		return true
	}
	return false
}

// stripUnit suggests the bare number behind a value that carries a CSS
// unit or is a numeric string. Returns "" when no suggestion applies.
func stripUnit(value string) string {
	if m := unitSuffixPattern.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return value
	}
	return ""
}

// kebabify suggests a kebab-case rendering of an offending segment.
func kebabify(segment string) string {
	s := camelBoundaryPattern.ReplaceAllString(segment, "$1-$2")
	s = strings.ToLower(s)
	s = nonKebabRunPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
