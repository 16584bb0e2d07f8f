/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver answers dotted-path lookups against a layered token
// store, with an injectable runtime override source and platform target.
package resolver

import (
	"strings"

	"bennypowers.dev/shomer/store"
	"bennypowers.dev/shomer/token"
)

// Source values reported on a Resolution when the value did not come
// from a stored tier layer.
const (
	SourceOverride = "override"
	SourceFallback = "fallback"
)

// Options configures a Resolver.
type Options struct {
	// Platform selects which platform tier is preferred once the
	// component, semantic, and base tiers have all missed. Defaults
	// to PlatformWeb.
	Platform Platform

	// Overrides is consulted before any stored layer. Nil disables
	// runtime overrides.
	Overrides OverrideSource
}

// Resolver resolves dotted token paths against an immutable Store.
// Safe for concurrent use: it performs pure reads over the store and
// delegates override mutability to the OverrideSource.
type Resolver struct {
	store     *store.Store
	platform  Platform
	overrides OverrideSource
}

// New returns a Resolver over the given store.
func New(s *store.Store, opts Options) *Resolver {
	platform := opts.Platform
	if platform != PlatformMobile {
		platform = PlatformWeb
	}
	overrides := opts.Overrides
	if overrides == nil {
		overrides = NoOverrides{}
	}
	return &Resolver{store: s, platform: platform, overrides: overrides}
}

// Platform returns the preferred platform target.
func (r *Resolver) Platform() Platform {
	return r.platform
}

// Resolution is the outcome of a single lookup. The CSS variable name
// and var() reference are derived from the path whether or not the
// lookup hit: every dot becomes a hyphen, prefixed with "--".
type Resolution struct {
	Path        string `json:"path"`
	Value       string `json:"value"`
	Expectation string `json:"expectation,omitempty"`
	CSSVariable string `json:"cssVariable"`
	VarRef      string `json:"varRef"`
	Source      string `json:"source"`
	IsFallback  bool   `json:"isFallback"`
}

// Resolve returns the value for a dotted path, or fallback when no
// override and no layer defines it. It never fails: malformed paths and
// malformed layers are treated as "not found".
//
// Precedence, first hit wins:
// 1. Runtime override (non-empty values only)
// 2. Tier layers, most specific first: component, semantic, base
// 3. Preferred platform layer, then the other platform layer
// 4. The caller-supplied fallback
func (r *Resolver) Resolve(path, fallback string) string {
	return r.lookup(path, fallback).Value
}

func (r *Resolver) lookup(rawPath, fallback string) Resolution {
	res := Resolution{
		Path:        rawPath,
		Value:       fallback,
		CSSVariable: "--" + strings.ReplaceAll(rawPath, ".", "-"),
		Source:      SourceFallback,
		IsFallback:  true,
	}
	res.VarRef = "var(" + res.CSSVariable + ")"

	path, err := token.ParsePath(rawPath)
	if err != nil || r.store == nil {
		return res
	}

	// Non-empty override wins immediately, bypassing every layer.
	if value, ok := r.overrides.Override(path); ok && value != "" {
		res.Value = value
		res.Source = SourceOverride
		res.IsFallback = false
		return res
	}

	order := []store.Tier{store.TierComponent, store.TierSemantic, store.TierBase,
		r.platform.Tier(), r.platform.Other().Tier()}
	for _, tier := range order {
		if value, ok := r.store.Lookup(tier, path); ok {
			res.Value = value
			res.Source = tier.String()
			res.IsFallback = false
			return res
		}
	}

	return res
}
