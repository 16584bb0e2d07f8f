/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package guard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	"github.com/tidwall/jsonc"
)

// DefaultBundlerFeatures are the config keys the deduplication guard
// requires: a dedupe list, a module-alias map, and a global-packages
// flag. Without all three, platform bundles can ship duplicate copies
// of shared packages.
var DefaultBundlerFeatures = []string{"dedupe", "alias", "globalPackages"}

// bundlerKeyQuery captures every object key in a JS config, in all
// three spellings: identifier, string, and shorthand.
const bundlerKeyQuery = `
(pair key: (property_identifier) @key)
(pair key: (string (string_fragment) @key))
(shorthand_property_identifier) @key
`

// CheckBundler inspects a bundler config for the required
// deduplication features. Passing nil features checks
// DefaultBundlerFeatures. Configs that do not parse cleanly fall back
// to a raw text search, so a truncated config yields partial findings
// instead of failing.
func CheckBundler(source []byte, filePath string, features []string) []Finding {
	if len(features) == 0 {
		features = DefaultBundlerFeatures
	}

	keys := make(map[string]bool)
	tree, err := parse(source, ts_javascript.Language())
	if err == nil {
		defer tree.Close()
		_ = eachCapture(tree, ts_javascript.Language(), bundlerKeyQuery, source, func(_ string, node ts.Node) {
			keys[node.Utf8Text(source)] = true
		})
		if tree.RootNode().HasError() {
			markRawFeatures(source, features, keys)
		}
	} else {
		markRawFeatures(source, features, keys)
	}

	findings := []Finding{}
	for _, feature := range features {
		if !keys[feature] {
			findings = append(findings, Finding{
				Category: CategoryMetroDuplication,
				File:     filePath,
				Message:  fmt.Sprintf("bundler config is missing the %q setting", feature),
			})
		}
	}
	return findings
}

func markRawFeatures(source []byte, features []string, keys map[string]bool) {
	for _, feature := range features {
		if bytes.Contains(source, []byte(feature)) {
			keys[feature] = true
		}
	}
}

// Manifest is one package manifest blob to scope-check.
type Manifest struct {
	// FilePath is where the manifest came from, for findings.
	FilePath string
	// Content is the raw manifest JSON.
	Content []byte
}

// CheckManifests verifies that every package manifest declares a name
// under the reserved scope. An unnamed manifest cannot publish under
// the scope and is flagged too; manifests that do not parse are
// skipped.
func CheckManifests(manifests []Manifest, scope string) []Finding {
	findings := []Finding{}
	if scope == "" {
		return findings
	}
	prefix := scope + "/"

	for _, manifest := range manifests {
		var meta struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(jsonc.ToJSON(manifest.Content), &meta); err != nil {
			continue
		}
		if meta.Name == "" {
			findings = append(findings, Finding{
				Category: CategoryMetroDuplication,
				File:     manifest.FilePath,
				Message:  fmt.Sprintf("package manifest declares no name; workspace packages publish under %s", scope),
			})
			continue
		}
		if strings.HasPrefix(meta.Name, prefix) {
			continue
		}
		findings = append(findings, Finding{
			Category: CategoryMetroDuplication,
			File:     manifest.FilePath,
			Message:  fmt.Sprintf("package %q is not scoped under %s", meta.Name, scope),
		})
	}
	return findings
}
