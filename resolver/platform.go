/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/shomer/store"
)

// Platform is a resolution target: it decides which platform tier is
// preferred once the base, semantic, and component tiers have missed.
type Platform string

// Supported platform targets.
const (
	PlatformWeb    Platform = "web"
	PlatformMobile Platform = "mobile"
)

// ParsePlatform parses a platform name, case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "web":
		return PlatformWeb, nil
	case "mobile":
		return PlatformMobile, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected web or mobile)", s)
	}
}

// Tier returns the store tier holding this platform's overrides.
func (p Platform) Tier() store.Tier {
	if p == PlatformMobile {
		return store.TierMobile
	}
	return store.TierWeb
}

// Other returns the non-preferred platform, consulted as a secondary
// fallback so either platform layer can supply a path the other lacks.
func (p Platform) Other() Platform {
	if p == PlatformMobile {
		return PlatformWeb
	}
	return PlatformMobile
}

// DetectOptions supplies the inputs consulted when choosing a platform
// target. All fields are optional; callers own reading process state
// (environment variables, runtime identity) so detection itself stays
// deterministic under test.
type DetectOptions struct {
	// EnvOverride is the value of the platform environment variable,
	// already read by the caller.
	EnvOverride string

	// Override is a configured platform target, consulted when no
	// environment override parses.
	Override Platform

	// Probe reports a runtime product identity string, consulted last.
	Probe func() string
}

// DetectPlatform chooses the platform target.
// Priority order:
// 1. Environment override (web or mobile, case-insensitive)
// 2. Configured override
// 3. Runtime identity probe (a ReactNative product string selects mobile)
// 4. Default to web
func DetectPlatform(opts DetectOptions) Platform {
	if p, err := ParsePlatform(opts.EnvOverride); err == nil {
		return p
	}
	if opts.Override == PlatformWeb || opts.Override == PlatformMobile {
		return opts.Override
	}
	if opts.Probe != nil && strings.Contains(opts.Probe(), "ReactNative") {
		return PlatformMobile
	}
	return PlatformWeb
}
