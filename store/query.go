/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match is one bulk-query result.
type Match struct {
	// Path is the token's dotted address.
	Path string `json:"path"`

	// Value is the token's stringified value.
	Value string `json:"value"`

	// Type is the declared or inherited token type.
	Type string `json:"type,omitempty"`

	// Tier is the layer tier the winning value came from.
	Tier Tier `json:"-"`
}

// Query returns every token whose full dotted path matches the pattern.
//
// Pattern grammar: literal segments joined by dots; * matches within
// exactly one segment and never crosses a dot; the bare pattern "*"
// matches every token. Layers are traversed in ascending precedence —
// the non-preferred platform, the preferred platform, then base,
// semantic, component — with the last writer winning per path, so query
// results agree with single resolution. Results are sorted by path.
func (s *Store) Query(pattern string, preferred Tier) []Match {
	secondary := TierMobile
	if preferred == TierMobile {
		secondary = TierWeb
	}

	order := []Tier{secondary, preferred, TierBase, TierSemantic, TierComponent}

	byPath := make(map[string]Match)
	for _, tier := range order {
		for _, layer := range s.TierLayers(tier) {
			for _, tok := range layer.Tokens() {
				path := tok.DotPath()
				if !MatchPattern(pattern, path) {
					continue
				}
				byPath[path] = Match{
					Path:  path,
					Value: tok.Value,
					Type:  tok.Type,
					Tier:  tier,
				}
			}
		}
	}

	matches := make([]Match, 0, len(byPath))
	for _, m := range byPath {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Path < matches[j].Path
	})
	return matches
}

// MatchPattern tests a dotted path against a query pattern.
// Dots are mapped to path separators so the glob library's rule that *
// never crosses a separator enforces the one-segment scope. A malformed
// pattern matches nothing.
func MatchPattern(pattern, path string) bool {
	if pattern == "*" {
		return true
	}
	matched, err := doublestar.Match(
		strings.ReplaceAll(pattern, ".", "/"),
		strings.ReplaceAll(path, ".", "/"),
	)
	return err == nil && matched
}
