/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package guard provides collision-prevention scanners for generated
// artifacts: CSS custom-property and class-name prefix enforcement,
// dev-server port isolation, and bundler dedupe configuration.
//
// The scanners are pure text/structure analyzers. They tolerate
// malformed input, returning partial findings instead of failing.
package guard

// Finding categories.
const (
	CategoryTokenClash       = "token-clash"
	CategoryPorts            = "storybook-ports"
	CategoryMetroDuplication = "metro-duplication"
)

// Finding is one collision hazard located by a guard.
type Finding struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
}
