/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier resolves token file specifiers: local paths and
// npm: package references such as npm:@ds/tokens/tokens.json.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
)

// Specifier represents a parsed token file specifier.
type Specifier struct {
	// Kind is the type of specifier (local or npm).
	Kind Kind

	// Package is the package name (e.g. "@ds/tokens" or "tokens").
	Package string

	// File is the file path within the package.
	File string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg.
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string into a Specifier struct.
// Strings that are not valid npm specifiers are treated as local paths.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, "npm:") {
		matches := npmPattern.FindStringSubmatch(spec)
		if len(matches) == 3 {
			return &Specifier{
				Kind:    KindNPM,
				Package: matches[1],
				File:    strings.TrimPrefix(matches[2], "/"),
				Raw:     spec,
			}
		}
	}

	return &Specifier{
		Kind: KindLocal,
		File: spec,
		Raw:  spec,
	}
}

// IsPackageSpecifier returns true if the string is a valid npm specifier.
// It uses the same validation as Parse to ensure consistency.
func IsPackageSpecifier(spec string) bool {
	return Parse(spec).Kind == KindNPM
}

// IsNPM returns true if this is an npm specifier.
func (s *Specifier) IsNPM() bool {
	return s.Kind == KindNPM
}

// IsLocal returns true if this is a local file path.
func (s *Specifier) IsLocal() bool {
	return s.Kind == KindLocal
}
