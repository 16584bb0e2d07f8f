/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import "bennypowers.dev/shomer/token"

// Layer is one loaded token document bound to a tier.
// It is immutable after construction; lookups are read-only and safe
// for concurrent use.
type Layer struct {
	tier     Tier
	root     map[string]any
	filePath string
}

// NewLayer wraps a parsed token tree as a layer of the given tier.
func NewLayer(tier Tier, root map[string]any, filePath string) *Layer {
	return &Layer{tier: tier, root: root, filePath: filePath}
}

// Tier returns the layer's tier.
func (l *Layer) Tier() Tier {
	return l.tier
}

// FilePath returns the file this layer was loaded from.
func (l *Layer) FilePath() string {
	return l.filePath
}

// Root returns the raw parsed tree.
func (l *Layer) Root() map[string]any {
	return l.root
}

// Lookup walks the path's segments through the tree and returns the
// stringified token value at the leaf. A hit requires a node bearing a
// $value key ("value" is accepted as a lenient spelling on lookup only).
// An intermediate group at the end of the path, a missing segment, or
// any malformed shape along the way is simply not found.
func (l *Layer) Lookup(path token.Path) (string, bool) {
	if l.root == nil || len(path) == 0 {
		return "", false
	}

	node := l.root
	for _, segment := range path {
		child, ok := node[segment].(map[string]any)
		if !ok {
			return "", false
		}
		node = child
	}

	if raw, ok := node["$value"]; ok {
		return Stringify(raw), true
	}
	if raw, ok := node["value"]; ok {
		return Stringify(raw), true
	}
	return "", false
}

// Tokens flattens the layer into its token leaves.
func (l *Layer) Tokens() []*token.Token {
	return Flatten(l.root, l.filePath)
}
