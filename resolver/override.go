/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"sync"

	"bennypowers.dev/shomer/token"
)

// OverrideSource supplies runtime token overrides consulted before any
// stored layer. A live theme switcher is the canonical implementation;
// non-interactive hosts use NoOverrides.
type OverrideSource interface {
	// Override returns the override value for a path. Empty values are
	// ignored by the Resolver, so reporting ("", true) is equivalent to
	// reporting a miss.
	Override(path token.Path) (string, bool)
}

// NoOverrides is an OverrideSource that never matches.
type NoOverrides struct{}

// Override always reports a miss.
func (NoOverrides) Override(token.Path) (string, bool) {
	return "", false
}

// StaticOverrides is a mutable OverrideSource backed by a map of dotted
// paths. Safe for concurrent use.
type StaticOverrides struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStaticOverrides returns an empty StaticOverrides.
func NewStaticOverrides() *StaticOverrides {
	return &StaticOverrides{values: make(map[string]string)}
}

// Set records an override for a dotted path.
func (s *StaticOverrides) Set(path, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[path] = value
}

// Delete removes the override for a dotted path.
func (s *StaticOverrides) Delete(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, path)
}

// Len returns the number of recorded overrides.
func (s *StaticOverrides) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Override reports the recorded value for a path, if any.
func (s *StaticOverrides) Override(path token.Path) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[path.String()]
	return value, ok
}
