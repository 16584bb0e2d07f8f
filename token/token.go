/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token vocabulary: dotted paths,
// token/group classification, and alias references.
package token

// Token represents a design token leaf collected from a token document.
type Token struct {
	// Path is the dotted address of this token within its document.
	Path Path `json:"path"`

	// Value is the stringified $value.
	Value string `json:"value"`

	// RawValue is the original $value before stringification.
	RawValue any `json:"-"`

	// Type is the declared or inherited $type (color, dimension, ...).
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g. "--color-primary-500" or "--ds-color-primary-500" with prefix "ds".
func (t *Token) CSSVariableName(prefix string) string {
	return t.Path.CSSVariable(prefix)
}

// VarRef returns the CSS var() reference for this token.
func (t *Token) VarRef(prefix string) string {
	return t.Path.VarRef(prefix)
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return t.Path.String()
}

// IsAlias reports whether the token's value is an alias reference.
func (t *Token) IsAlias() bool {
	return IsRef(t.Value)
}
