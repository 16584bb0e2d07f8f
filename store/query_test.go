/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store_test

import (
	"slices"
	"testing"

	"bennypowers.dev/shomer/store"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		path     string
		expected bool
	}{
		{name: "exact", pattern: "color.primary.500", path: "color.primary.500", expected: true},
		{name: "star matches one segment", pattern: "color.primary.*", path: "color.primary.500", expected: true},
		{name: "star excludes sibling group", pattern: "color.primary.*", path: "color.secondary.500", expected: false},
		{name: "star does not cross dots", pattern: "color.*", path: "color.primary.500", expected: false},
		{name: "star matches direct child", pattern: "color.*", path: "color.white", expected: true},
		{name: "bare star matches everything", pattern: "*", path: "deeply.nested.token.path", expected: true},
		{name: "mid-pattern star", pattern: "color.*.500", path: "color.primary.500", expected: true},
		{name: "mid-pattern star mismatch", pattern: "color.*.500", path: "color.primary.900", expected: false},
		{name: "shorter path", pattern: "color.primary.*", path: "color.primary", expected: false},
		{name: "malformed pattern", pattern: "color.[", path: "color.primary", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.MatchPattern(tt.pattern, tt.path); got != tt.expected {
				t.Errorf("MatchPattern(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.expected)
			}
		})
	}
}

func queryStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	s.Add(mustLayer(t, store.TierBase, "base.json", `{
		"color": {
			"primary": {
				"500": { "$value": "#3b82f6", "$type": "color" },
				"900": { "$value": "#1e3a8a", "$type": "color" }
			},
			"secondary": {
				"500": { "$value": "#8b5cf6", "$type": "color" }
			}
		},
		"spacing": {
			"md": { "$value": "16px", "$type": "dimension" }
		}
	}`))
	s.Add(mustLayer(t, store.TierSemantic, "semantic.json", `{
		"color": {
			"primary": {
				"500": { "$value": "{color.primary.900}", "$type": "color" }
			}
		}
	}`))
	s.Add(mustLayer(t, store.TierWeb, "platform.web.json", `{
		"touch": {
			"target": { "$value": "44px", "$type": "dimension" }
		}
	}`))
	s.Add(mustLayer(t, store.TierMobile, "platform.mobile.json", `{
		"touch": {
			"target": { "$value": "48", "$type": "dimension" }
		}
	}`))
	return s
}

func TestQuery_Pattern(t *testing.T) {
	s := queryStore(t)

	matches := s.Query("color.primary.*", store.TierWeb)

	var paths []string
	for _, m := range matches {
		paths = append(paths, m.Path)
	}
	expected := []string{"color.primary.500", "color.primary.900"}
	if !slices.Equal(paths, expected) {
		t.Fatalf("Query(color.primary.*) paths = %v, want %v", paths, expected)
	}
	for _, m := range matches {
		if m.Path == "color.primary.500" && m.Value != "{color.primary.900}" {
			t.Errorf("color.primary.500 = %q, want semantic override {color.primary.900}", m.Value)
		}
	}
}

func TestQuery_BareStarReturnsAll(t *testing.T) {
	s := queryStore(t)

	matches := s.Query("*", store.TierWeb)

	paths := make(map[string]bool)
	for _, m := range matches {
		paths[m.Path] = true
	}
	for _, want := range []string{
		"color.primary.500",
		"color.primary.900",
		"color.secondary.500",
		"spacing.md",
	} {
		if !paths[want] {
			t.Errorf("Query(*) missing %s", want)
		}
	}
}

func TestQuery_PlatformPreference(t *testing.T) {
	s := queryStore(t)

	tests := []struct {
		name      string
		preferred store.Tier
		expected  string
	}{
		{name: "web preferred", preferred: store.TierWeb, expected: "44px"},
		{name: "mobile preferred", preferred: store.TierMobile, expected: "48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := s.Query("touch.target", tt.preferred)
			if len(matches) != 1 {
				t.Fatalf("Query(touch.target) returned %d matches, want 1", len(matches))
			}
			if matches[0].Value != tt.expected {
				t.Errorf("touch.target = %q, want %q", matches[0].Value, tt.expected)
			}
			if matches[0].Tier != tt.preferred {
				t.Errorf("touch.target tier = %v, want %v", matches[0].Tier, tt.preferred)
			}
		})
	}
}

func TestQuery_SortedByPath(t *testing.T) {
	s := queryStore(t)

	matches := s.Query("*", store.TierWeb)
	var paths []string
	for _, m := range matches {
		paths = append(paths, m.Path)
	}
	if !slices.IsSorted(paths) {
		t.Errorf("Query(*) paths not sorted: %v", paths)
	}
}

func TestQuery_NoMatches(t *testing.T) {
	s := queryStore(t)

	if matches := s.Query("elevation.*", store.TierWeb); len(matches) != 0 {
		t.Errorf("Query(elevation.*) = %v, want empty", matches)
	}
	if matches := s.Query("color.[", store.TierWeb); len(matches) != 0 {
		t.Errorf("Query with malformed pattern = %v, want empty", matches)
	}
}
