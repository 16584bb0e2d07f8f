/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"
	"regexp"

	"bennypowers.dev/shomer/token"
)

// Expectations accepted by ResolveTyped.
const (
	ExpectColor   = "color"
	ExpectSpacing = "spacing"
)

// ErrUnknownExpectation indicates an expectation outside the accepted set.
var ErrUnknownExpectation = errors.New("unknown expectation")

// ColorValuePattern matches the recognized color value notations:
// hex (3, 4, 6, or 8 digits), rgb(), rgba(), hsl(), and hsla().
var ColorValuePattern = regexp.MustCompile(`^(?:#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|rgba?\([^)]*\)|hsla?\([^)]*\))$`)

// SpacingValuePattern matches a numeric value followed by a recognized
// length unit.
var SpacingValuePattern = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:px|em|rem|%|vh|vw|pt|dp)$`)

// ResolveTyped resolves a path and, when the lookup actually hit,
// validates the value against an expected kind. An empty expectation
// skips validation. A value that is itself an alias reference passes
// through unvalidated: expanding it would take a second resolution pass
// that this call does not perform.
//
// A shape violation is a hard failure wrapping ErrExpectationMismatch,
// naming the path, the expectation, and the resolved value.
func (r *Resolver) ResolveTyped(rawPath, expectation, fallback string) (Resolution, error) {
	res := r.lookup(rawPath, fallback)
	if expectation == "" {
		return res, nil
	}

	res.Expectation = expectation
	if res.IsFallback || token.IsRef(res.Value) {
		return res, nil
	}

	switch expectation {
	case ExpectColor:
		if !ColorValuePattern.MatchString(res.Value) {
			return res, mismatch(rawPath, expectation, res.Value)
		}
	case ExpectSpacing:
		if !SpacingValuePattern.MatchString(res.Value) {
			return res, mismatch(rawPath, expectation, res.Value)
		}
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownExpectation, expectation)
	}

	return res, nil
}

func mismatch(path, expectation, value string) error {
	return fmt.Errorf("%w: token %q expected %s, got %q",
		token.ErrExpectationMismatch, path, expectation, value)
}
