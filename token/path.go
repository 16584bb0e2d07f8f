/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"regexp"
	"strings"
)

// Path is a dotted token address split into segments,
// e.g. "color.primary.500" -> ["color", "primary", "500"].
type Path []string

// kebabPattern matches a single lowercase-kebab path segment.
var kebabPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ParsePath splits a dotted path into segments.
// Empty input and empty segments (leading, trailing, or doubled dots)
// are rejected with ErrInvalidPath.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, s)
		}
	}
	return Path(segments), nil
}

// String returns the dot-joined form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Valid reports whether the path has at least one segment and no empty segments.
func (p Path) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for _, seg := range p {
		if seg == "" {
			return false
		}
	}
	return true
}

// IsKebab reports whether a single segment is lowercase kebab-case:
// lowercase ASCII letters, digits, and interior hyphens only.
func IsKebab(segment string) bool {
	return kebabPattern.MatchString(segment)
}

// Kebab reports whether every segment is lowercase kebab-case.
func (p Path) Kebab() bool {
	for _, seg := range p {
		if !IsKebab(seg) {
			return false
		}
	}
	return len(p) > 0
}

// CSSVariable returns the CSS custom property name for this path.
// Every dot becomes a hyphen; an optional prefix is inserted after "--".
// e.g. "color.primary.500" -> "--color-primary-500"
// or "--ds-color-primary-500" with prefix "ds".
func (p Path) CSSVariable(prefix string) string {
	name := strings.Join(p, "-")
	if prefix != "" {
		return "--" + prefix + "-" + name
	}
	return "--" + name
}

// VarRef returns the CSS var() reference for this path.
func (p Path) VarRef(prefix string) string {
	return "var(" + p.CSSVariable(prefix) + ")"
}

// Child returns a new path with the given segment appended.
// The result does not share backing storage with the receiver.
func (p Path) Child(segment string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = segment
	return child
}
