/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/shomer/resolver"
	"bennypowers.dev/shomer/store"
	"bennypowers.dev/shomer/token"
)

func typedStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	s.Add(layer(t, store.TierBase, "base.json", `{
		"color": {
			"primary": {
				"500": { "$value": "#3b82f6", "$type": "color" }
			},
			"broken": { "$value": "not-a-color", "$type": "color" }
		},
		"spacing": {
			"md": { "$value": "16px", "$type": "dimension" },
			"half": { "$value": "0.5rem", "$type": "dimension" },
			"raw": { "$value": "16", "$type": "dimension" }
		},
		"component": {
			"button": {
				"padding": { "$value": "{spacing.md}", "$type": "dimension" }
			}
		}
	}`))
	return s
}

func TestResolveTyped_Color(t *testing.T) {
	r := resolver.New(typedStore(t), resolver.Options{})

	res, err := r.ResolveTyped("color.primary.500", resolver.ExpectColor, "")
	if err != nil {
		t.Fatalf("ResolveTyped() error: %v", err)
	}
	if res.Value != "#3b82f6" {
		t.Errorf("Value = %q, want #3b82f6", res.Value)
	}
	if res.Expectation != resolver.ExpectColor {
		t.Errorf("Expectation = %q, want color", res.Expectation)
	}
}

func TestResolveTyped_ColorMismatch(t *testing.T) {
	r := resolver.New(typedStore(t), resolver.Options{})

	_, err := r.ResolveTyped("color.broken", resolver.ExpectColor, "")
	if err == nil {
		t.Fatal("ResolveTyped() expected error for non-color value")
	}
	if !errors.Is(err, token.ErrExpectationMismatch) {
		t.Errorf("error = %v, want ErrExpectationMismatch", err)
	}
	for _, want := range []string{"color.broken", "color", "not-a-color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestResolveTyped_Spacing(t *testing.T) {
	r := resolver.New(typedStore(t), resolver.Options{})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "px", path: "spacing.md"},
		{name: "fractional rem", path: "spacing.half"},
		{name: "unitless rejected", path: "spacing.raw", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ResolveTyped(tt.path, resolver.ExpectSpacing, "")
			if tt.wantErr {
				if !errors.Is(err, token.ErrExpectationMismatch) {
					t.Errorf("error = %v, want ErrExpectationMismatch", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ResolveTyped(%q) error: %v", tt.path, err)
			}
		})
	}
}

func TestResolveTyped_AliasPassthrough(t *testing.T) {
	r := resolver.New(typedStore(t), resolver.Options{})

	for _, expectation := range []string{resolver.ExpectColor, resolver.ExpectSpacing} {
		t.Run(expectation, func(t *testing.T) {
			res, err := r.ResolveTyped("component.button.padding", expectation, "")
			if err != nil {
				t.Fatalf("ResolveTyped() error on alias value: %v", err)
			}
			if res.Value != "{spacing.md}" {
				t.Errorf("Value = %q, want literal {spacing.md}", res.Value)
			}
		})
	}
}

func TestResolveTyped_FallbackSkipsValidation(t *testing.T) {
	r := resolver.New(typedStore(t), resolver.Options{})

	res, err := r.ResolveTyped("does.not.exist", resolver.ExpectColor, "DEFAULT")
	if err != nil {
		t.Fatalf("ResolveTyped() error on fallback: %v", err)
	}
	if !res.IsFallback {
		t.Error("IsFallback = false, want true")
	}
	if res.Value != "DEFAULT" {
		t.Errorf("Value = %q, want DEFAULT", res.Value)
	}
}

func TestResolveTyped_UnknownExpectation(t *testing.T) {
	r := resolver.New(typedStore(t), resolver.Options{})

	_, err := r.ResolveTyped("color.primary.500", "elevation", "")
	if !errors.Is(err, resolver.ErrUnknownExpectation) {
		t.Errorf("error = %v, want ErrUnknownExpectation", err)
	}
}

func TestColorValuePattern(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "#fff", expected: true},
		{value: "#3b82f6", expected: true},
		{value: "#3b82f6ff", expected: true},
		{value: "rgb(59, 130, 246)", expected: true},
		{value: "rgba(59, 130, 246, 0.5)", expected: true},
		{value: "hsl(217, 91%, 60%)", expected: true},
		{value: "hsla(217, 91%, 60%, 0.5)", expected: true},
		{value: "blue", expected: false},
		{value: "#3b82f", expected: false},
		{value: "rgb(", expected: false},
		{value: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := resolver.ColorValuePattern.MatchString(tt.value); got != tt.expected {
				t.Errorf("ColorValuePattern.MatchString(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestSpacingValuePattern(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "16px", expected: true},
		{value: "1.5rem", expected: true},
		{value: ".5em", expected: true},
		{value: "-4px", expected: true},
		{value: "100%", expected: true},
		{value: "50vh", expected: true},
		{value: "12pt", expected: true},
		{value: "16dp", expected: true},
		{value: "16", expected: false},
		{value: "px", expected: false},
		{value: "16 px", expected: false},
		{value: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := resolver.SpacingValuePattern.MatchString(tt.value); got != tt.expected {
				t.Errorf("SpacingValuePattern.MatchString(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}
