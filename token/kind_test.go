/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/shomer/token"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		node     map[string]any
		expected token.Kind
	}{
		{
			name:     "node with $value is a token",
			node:     map[string]any{"$value": "#ffffff"},
			expected: token.KindToken,
		},
		{
			name: "node with $value and metadata is a token",
			node: map[string]any{
				"$value":       "#ffffff",
				"$type":        "color",
				"$description": "white",
			},
			expected: token.KindToken,
		},
		{
			name:     "empty object is a group",
			node:     map[string]any{},
			expected: token.KindGroup,
		},
		{
			name: "plain nesting is a group",
			node: map[string]any{
				"primary": map[string]any{"$value": "#000000"},
			},
			expected: token.KindGroup,
		},
		{
			name: "metadata with object child is a group",
			node: map[string]any{
				"$description": "group",
				"child":        map[string]any{"$value": "x"},
			},
			expected: token.KindGroup,
		},
		{
			name: "inherited type with object child is a group",
			node: map[string]any{
				"$type": "color",
				"500":   map[string]any{"$value": "#3b82f6"},
			},
			expected: token.KindGroup,
		},
		{
			name:     "type with no value and no children is invalid",
			node:     map[string]any{"$type": "color"},
			expected: token.KindInvalid,
		},
		{
			name:     "description with no value and no children is invalid",
			node:     map[string]any{"$description": "orphaned"},
			expected: token.KindInvalid,
		},
		{
			name: "metadata with only scalar children is invalid",
			node: map[string]any{
				"$type": "color",
				"note":  "not an object",
			},
			expected: token.KindInvalid,
		},
		{
			name:     "unknown reserved key is invalid",
			node:     map[string]any{"$extensions": map[string]any{}},
			expected: token.KindInvalid,
		},
		{
			name: "unknown reserved key with children is still invalid",
			node: map[string]any{
				"$weird": true,
				"child":  map[string]any{"$value": "x"},
			},
			expected: token.KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.Classify(tt.node); got != tt.expected {
				t.Errorf("Classify() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		expected string
	}{
		{token.KindToken, "token"},
		{token.KindGroup, "group"},
		{token.KindInvalid, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
