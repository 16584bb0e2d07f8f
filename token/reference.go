/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

var (
	// refPattern matches {token.path} references anywhere in a value.
	refPattern = regexp.MustCompile(`\{([^{}]+)\}`)

	// wholeRefPattern matches a value that is exactly one reference.
	wholeRefPattern = regexp.MustCompile(`^\{[^{}]+\}$`)
)

// IsRef reports whether the value is a single whole-string alias
// reference of the form {other.path}.
func IsRef(value string) bool {
	return wholeRefPattern.MatchString(value)
}

// ParseRef extracts the referenced path from a whole-string alias
// reference. Returns the path and true if valid, nil and false otherwise.
func ParseRef(value string) (Path, bool) {
	if !IsRef(value) {
		return nil, false
	}
	path, err := ParsePath(value[1 : len(value)-1])
	if err != nil {
		return nil, false
	}
	return path, true
}

// ExtractRefs extracts every referenced path string from a value.
// A value may embed references in a larger expression; each is returned
// in order of appearance.
func ExtractRefs(value string) []string {
	matches := refPattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}
