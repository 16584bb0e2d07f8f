/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// Kind classifies a raw token-tree node.
type Kind int

const (
	// KindInvalid is a node with token properties but no $value, or with
	// reserved keys beyond the allowed group metadata.
	KindInvalid Kind = iota

	// KindToken is a leaf node carrying a $value.
	KindToken

	// KindGroup is an interior node whose children are tokens or groups.
	KindGroup
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindGroup:
		return "group"
	default:
		return "invalid"
	}
}

// groupMetadata lists the reserved keys a group may carry for inheritance.
var groupMetadata = map[string]bool{
	"$description": true,
	"$type":        true,
}

// Classify determines whether a raw tree node is a Token, a Group, or invalid.
//
// A node with a $value key is a Token. A node without $value is a Group
// when its reserved ($-prefixed) keys are limited to $description/$type
// and it either has no reserved keys at all or has at least one
// object-valued child. Anything else is invalid: reserved keys beyond the
// metadata set, or declared metadata with no $value and no children — the
// shape of a token that forgot its value.
func Classify(node map[string]any) Kind {
	if _, ok := node["$value"]; ok {
		return KindToken
	}

	reserved := 0
	for key := range node {
		if !strings.HasPrefix(key, "$") {
			continue
		}
		if !groupMetadata[key] {
			return KindInvalid
		}
		reserved++
	}

	if reserved == 0 {
		return KindGroup
	}

	for key, value := range node {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if _, ok := value.(map[string]any); ok {
			return KindGroup
		}
	}

	return KindInvalid
}
