/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides in-memory fixture workspaces for shomer tests.
package testutil

import (
	"strings"
	"testing"

	"bennypowers.dev/shomer/internal/mapfs"
)

// CorpusConfig is the workspace configuration for the standard
// five-tier fixture corpus.
const CorpusConfig = `
prefix: ds
scope: "@ds"
files:
  - path: tokens/base.json
    tier: base
  - path: tokens/semantic.json
    tier: semantic
  - path: tokens/component.json
    tier: component
  - path: tokens/platform.web.json
    tier: web
  - path: tokens/platform.mobile.json
    tier: mobile
`

// corpusDocuments holds the standard fixture corpus, one document per
// tier. The semantic tier redefines color.primary.500 so precedence
// tests can tell the tiers apart.
var corpusDocuments = map[string]string{
	"tokens/base.json": `{
		"color": {
			"primary": { "500": { "$value": "#3b82f6", "$type": "color" } }
		},
		"spacing": {
			"md": { "$value": 16, "$type": "dimension" }
		}
	}`,
	"tokens/semantic.json": `{
		"color": {
			"primary": { "500": { "$value": "#2563eb", "$type": "color" } },
			"brand": { "$value": "{color.primary.500}", "$type": "color" }
		}
	}`,
	"tokens/component.json": `{
		"button": {
			"padding": { "$value": "{spacing.md}", "$type": "dimension" }
		}
	}`,
	"tokens/platform.web.json": `{
		"font": { "body": { "$value": "system-ui", "$type": "fontFamily" } }
	}`,
	"tokens/platform.mobile.json": `{
		"font": { "body": { "$value": "Roboto", "$type": "fontFamily" } }
	}`,
}

// WorkspaceFS returns an in-memory workspace rooted at root containing
// the standard five-tier corpus and its config file.
func WorkspaceFS(t *testing.T, root string) *mapfs.MapFileSystem {
	t.Helper()

	fsys := mapfs.New()
	fsys.AddFile(join(root, ".config/shomer.yaml"), CorpusConfig, 0o644)
	for path, document := range corpusDocuments {
		fsys.AddFile(join(root, path), document, 0o644)
	}
	return fsys
}

// contractConfig extends CorpusConfig with the contract file bindings
// the checker reads.
const contractConfig = `
contract:
  tokens: tokens/tokens.json
  ports: { web: 6006, mobile: 7007 }
  portConfigs:
    web: apps/web/package.json
    mobile: apps/mobile/package.json
  artifacts:
    web: dist/web/tokens.css
    mobile: dist/mobile/tokens.ts
    desktop: dist/desktop/tokens.css
  bundler: metro.config.js
  manifests:
    - packages/*/package.json
`

// contractTokens is the tier-rooted token file the contract checker
// reads, distinct from the per-tier resolver documents.
const contractTokens = `{
  "base": {
    "color": {
      "primary": {
        "500": {"$value": "#3b82f6", "$type": "color"}
      }
    },
    "spacing": {
      "md": {"$value": 16, "$type": "dimension"}
    }
  },
  "semantic": {
    "color": {
      "brand": {"$value": "{base.color.primary.500}", "$type": "color"}
    }
  },
  "component": {
    "button": {
      "background": {"$value": "{semantic.color.brand}", "$type": "color"}
    }
  }
}`

// ContractWorkspaceFS returns an in-memory workspace rooted at root
// that passes every contract check: the five-tier corpus plus the
// contract token file, platform artifacts, dev-server configs, bundler
// config, and a scoped package manifest.
func ContractWorkspaceFS(t *testing.T, root string) *mapfs.MapFileSystem {
	t.Helper()

	fsys := WorkspaceFS(t, root)
	fsys.AddFile(join(root, ".config/shomer.yaml"), CorpusConfig+contractConfig, 0o644)
	fsys.AddFile(join(root, "tokens/tokens.json"), contractTokens, 0o644)
	fsys.AddFile(join(root, "dist/web/tokens.css"),
		":root {\n  --ds-color-primary-500: #3b82f6;\n}\n", 0o644)
	fsys.AddFile(join(root, "dist/mobile/tokens.ts"),
		"export const tokens = {};\n", 0o644)
	fsys.AddFile(join(root, "dist/desktop/tokens.css"),
		":root {\n  --ds-color-brand: #3b82f6;\n}\n", 0o644)
	fsys.AddFile(join(root, "apps/web/package.json"),
		`{"scripts": {"dev": "storybook dev -p 6006"}}`, 0o644)
	fsys.AddFile(join(root, "apps/mobile/package.json"),
		`{"scripts": {"dev": "storybook dev -p 7007"}}`, 0o644)
	fsys.AddFile(join(root, "metro.config.js"), `module.exports = {
  resolver: {
    dedupe: ['react', 'react-native'],
    alias: { '@ds/tokens': '../../packages/tokens' },
    globalPackages: true,
  },
};
`, 0o644)
	fsys.AddFile(join(root, "packages/tokens/package.json"),
		`{"name": "@ds/tokens"}`, 0o644)
	return fsys
}

func join(root, path string) string {
	return strings.TrimSuffix(root, "/") + "/" + path
}
