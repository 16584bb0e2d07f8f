/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"testing"

	"bennypowers.dev/shomer/token"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple path",
			input: "color.primary",
			want:  []string{"color", "primary"},
		},
		{
			name:  "single segment",
			input: "spacing",
			want:  []string{"spacing"},
		},
		{
			name:  "deep path",
			input: "color.brand.primary.500",
			want:  []string{"color", "brand", "primary", "500"},
		},
		{
			name:    "empty path",
			input:   "",
			wantErr: true,
		},
		{
			name:    "leading dot",
			input:   ".color.primary",
			wantErr: true,
		},
		{
			name:    "trailing dot",
			input:   "color.primary.",
			wantErr: true,
		},
		{
			name:    "doubled dot",
			input:   "color..primary",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := token.ParsePath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePath(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, token.ErrInvalidPath) {
					t.Errorf("ParsePath(%q) error = %v, want ErrInvalidPath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParsePath(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPath_String(t *testing.T) {
	p, err := token.ParsePath("color.primary.500")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := p.String(); got != "color.primary.500" {
		t.Errorf("Path.String() = %q, want %q", got, "color.primary.500")
	}
}

func TestPath_CSSVariable(t *testing.T) {
	tests := []struct {
		name     string
		path     token.Path
		prefix   string
		expected string
	}{
		{
			name:     "no prefix",
			path:     token.Path{"color", "primary", "500"},
			prefix:   "",
			expected: "--color-primary-500",
		},
		{
			name:     "with prefix",
			path:     token.Path{"color", "primary", "500"},
			prefix:   "ds",
			expected: "--ds-color-primary-500",
		},
		{
			name:     "single segment",
			path:     token.Path{"spacing"},
			prefix:   "",
			expected: "--spacing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.CSSVariable(tt.prefix); got != tt.expected {
				t.Errorf("Path.CSSVariable(%q) = %q, want %q", tt.prefix, got, tt.expected)
			}
		})
	}
}

func TestPath_VarRef(t *testing.T) {
	p := token.Path{"color", "primary"}
	if got := p.VarRef("ds"); got != "var(--ds-color-primary)" {
		t.Errorf("Path.VarRef(\"ds\") = %q, want %q", got, "var(--ds-color-primary)")
	}
	if got := p.VarRef(""); got != "var(--color-primary)" {
		t.Errorf("Path.VarRef(\"\") = %q, want %q", got, "var(--color-primary)")
	}
}

func TestPath_Kebab(t *testing.T) {
	tests := []struct {
		name     string
		path     token.Path
		expected bool
	}{
		{
			name:     "lowercase segments",
			path:     token.Path{"color", "primary", "500"},
			expected: true,
		},
		{
			name:     "hyphenated segment",
			path:     token.Path{"font-family", "sans"},
			expected: true,
		},
		{
			name:     "uppercase segment",
			path:     token.Path{"color", "Primary"},
			expected: false,
		},
		{
			name:     "camelCase segment",
			path:     token.Path{"fontFamily"},
			expected: false,
		},
		{
			name:     "space in segment",
			path:     token.Path{"color", "primary 500"},
			expected: false,
		},
		{
			name:     "underscore in segment",
			path:     token.Path{"color_primary"},
			expected: false,
		},
		{
			name:     "leading hyphen",
			path:     token.Path{"-color"},
			expected: false,
		},
		{
			name:     "trailing hyphen",
			path:     token.Path{"color-"},
			expected: false,
		},
		{
			name:     "empty path",
			path:     token.Path{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Kebab(); got != tt.expected {
				t.Errorf("Path.Kebab() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPath_Child(t *testing.T) {
	parent := token.Path{"color"}
	a := parent.Child("primary")
	b := parent.Child("secondary")

	if a.String() != "color.primary" {
		t.Errorf("Child() = %q, want %q", a.String(), "color.primary")
	}
	if b.String() != "color.secondary" {
		t.Errorf("Child() = %q, want %q", b.String(), "color.secondary")
	}
	if parent.String() != "color" {
		t.Errorf("parent modified by Child(): %q", parent.String())
	}
}
