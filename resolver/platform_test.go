/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"testing"

	"bennypowers.dev/shomer/resolver"
	"bennypowers.dev/shomer/store"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected resolver.Platform
		wantErr  bool
	}{
		{name: "web", input: "web", expected: resolver.PlatformWeb},
		{name: "mobile", input: "mobile", expected: resolver.PlatformMobile},
		{name: "uppercase", input: "MOBILE", expected: resolver.PlatformMobile},
		{name: "padded", input: " web ", expected: resolver.PlatformWeb},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "desktop", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ParsePlatform(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePlatform(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlatform(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParsePlatform(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		opts     resolver.DetectOptions
		expected resolver.Platform
	}{
		{
			name:     "environment override wins",
			opts:     resolver.DetectOptions{EnvOverride: "MOBILE", Override: resolver.PlatformWeb},
			expected: resolver.PlatformMobile,
		},
		{
			name:     "configured override",
			opts:     resolver.DetectOptions{Override: resolver.PlatformMobile},
			expected: resolver.PlatformMobile,
		},
		{
			name: "runtime probe",
			opts: resolver.DetectOptions{
				Probe: func() string { return "ReactNative" },
			},
			expected: resolver.PlatformMobile,
		},
		{
			name: "probe with foreign product",
			opts: resolver.DetectOptions{
				Probe: func() string { return "Gecko" },
			},
			expected: resolver.PlatformWeb,
		},
		{
			name:     "default",
			opts:     resolver.DetectOptions{},
			expected: resolver.PlatformWeb,
		},
		{
			name:     "garbage environment value ignored",
			opts:     resolver.DetectOptions{EnvOverride: "toaster", Override: resolver.PlatformMobile},
			expected: resolver.PlatformMobile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolver.DetectPlatform(tt.opts); got != tt.expected {
				t.Errorf("DetectPlatform() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPlatformTiers(t *testing.T) {
	if got := resolver.PlatformWeb.Tier(); got != store.TierWeb {
		t.Errorf("PlatformWeb.Tier() = %v, want TierWeb", got)
	}
	if got := resolver.PlatformMobile.Tier(); got != store.TierMobile {
		t.Errorf("PlatformMobile.Tier() = %v, want TierMobile", got)
	}
	if got := resolver.PlatformWeb.Other(); got != resolver.PlatformMobile {
		t.Errorf("PlatformWeb.Other() = %v, want mobile", got)
	}
	if got := resolver.PlatformMobile.Other(); got != resolver.PlatformWeb {
		t.Errorf("PlatformMobile.Other() = %v, want web", got)
	}
}
