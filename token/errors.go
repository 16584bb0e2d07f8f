/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for token operations.
var (
	// ErrInvalidPath indicates a dotted path could not be parsed.
	ErrInvalidPath = errors.New("invalid token path")

	// ErrExpectationMismatch indicates a resolved value did not match
	// the caller's declared expectation.
	ErrExpectationMismatch = errors.New("token expectation mismatch")

	// ErrCircularReference indicates a circular alias chain was detected.
	ErrCircularReference = errors.New("circular reference detected")
)
