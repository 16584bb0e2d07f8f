/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Tier identifies an authoring layer of the token corpus.
// The three authoring tiers are ordered by ascending precedence;
// platform tiers sit outside that order and are consulted only after
// the authoring tiers (see resolver).
type Tier int

const (
	// TierBase holds primitive values.
	TierBase Tier = iota

	// TierSemantic holds aliases resolving to base.
	TierSemantic

	// TierComponent holds component-scoped shorthands.
	TierComponent

	// TierWeb holds web platform overrides.
	TierWeb

	// TierMobile holds mobile platform overrides.
	TierMobile
)

// ErrUnknownTier indicates a tier name could not be parsed.
var ErrUnknownTier = errors.New("unknown tier")

// String returns the tier's configuration name. Platform tiers use the
// prefixed form, which ParseTier round-trips.
func (t Tier) String() string {
	switch t {
	case TierBase:
		return "base"
	case TierSemantic:
		return "semantic"
	case TierComponent:
		return "component"
	case TierWeb:
		return "platform:web"
	case TierMobile:
		return "platform:mobile"
	default:
		return "unknown"
	}
}

// Platform reports whether this is a platform override tier.
func (t Tier) Platform() bool {
	return t == TierWeb || t == TierMobile
}

// ParseTier parses a configuration tier name.
// Platform tiers accept both bare and "platform:" prefixed forms.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base":
		return TierBase, nil
	case "semantic":
		return TierSemantic, nil
	case "component":
		return TierComponent, nil
	case "web", "platform:web":
		return TierWeb, nil
	case "mobile", "platform:mobile":
		return TierMobile, nil
	default:
		return TierBase, fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// GuessTier infers a tier from a token file's base name, for config
// entries that give a path without an explicit tier.
// e.g. "tokens/base.json" -> TierBase, "platform.web.json" -> TierWeb.
func GuessTier(path string) (Tier, bool) {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	switch {
	case strings.Contains(name, "mobile"):
		return TierMobile, true
	case strings.Contains(name, "web"):
		return TierWeb, true
	case strings.Contains(name, "component"):
		return TierComponent, true
	case strings.Contains(name, "semantic"):
		return TierSemantic, true
	case strings.Contains(name, "base"):
		return TierBase, true
	default:
		return TierBase, false
	}
}
