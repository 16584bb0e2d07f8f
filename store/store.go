/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package store provides the layered in-memory token corpus: tiers,
// parsed document layers, per-tier lookup, and glob pattern queries.
package store

import "bennypowers.dev/shomer/token"

// Store holds the loaded token layers. It is populated once at startup
// and read-only afterwards; layers are searched per tier on every lookup
// with no caching.
type Store struct {
	layers []*Layer
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a layer. Within a tier, later-added layers override
// earlier ones for the same path.
func (s *Store) Add(layer *Layer) {
	s.layers = append(s.layers, layer)
}

// Layers returns all layers in add order.
func (s *Store) Layers() []*Layer {
	return s.layers
}

// TierLayers returns the layers of one tier in add order.
func (s *Store) TierLayers(tier Tier) []*Layer {
	var result []*Layer
	for _, l := range s.layers {
		if l.tier == tier {
			result = append(result, l)
		}
	}
	return result
}

// Lookup searches one tier's layers for a path, later-added layers
// first so that within-tier overrides win.
func (s *Store) Lookup(tier Tier, path token.Path) (string, bool) {
	layers := s.TierLayers(tier)
	for i := len(layers) - 1; i >= 0; i-- {
		if value, ok := layers[i].Lookup(path); ok {
			return value, true
		}
	}
	return "", false
}

// Empty reports whether the store has no layers.
func (s *Store) Empty() bool {
	return len(s.layers) == 0
}
