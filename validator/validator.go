/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator provides structural validation for token trees.
//
// A single pass collects every problem in the tree: errors are fatal
// (the tree is not fit to publish), warnings flag missing metadata.
// Nothing here throws; malformed input degrades to a failed report.
package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/shomer/token"
)

// Finding locates one problem in a token tree.
type Finding struct {
	// FilePath is the path to the file containing the problem.
	FilePath string `json:"filePath,omitempty"`
	// Path is the dotted path to the problematic node.
	Path string `json:"path,omitempty"`
	// Message describes what's wrong.
	Message string `json:"message"`
	// Suggestion provides an actionable fix.
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (f *Finding) Error() string {
	var sb strings.Builder
	if f.FilePath != "" {
		sb.WriteString(f.FilePath)
		sb.WriteString(": ")
	}
	if f.Path != "" {
		sb.WriteString(f.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(f.Message)
	if f.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(f.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Report is the outcome of validating one token tree.
type Report struct {
	Valid    bool      `json:"isValid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Validate walks a token tree and reports every structural problem
// found. A non-object root is an immediate fatal error.
func Validate(tree any) Report {
	return ValidateWithPath(tree, "")
}

// ValidateWithPath validates a tree and includes the file path in
// every finding.
func ValidateWithPath(tree any, filePath string) Report {
	root, ok := tree.(map[string]any)
	if !ok {
		return Report{
			Valid: false,
			Errors: []Finding{{
				FilePath:   filePath,
				Message:    "tokens must be an object",
				Suggestion: "the document root must be a group of token definitions",
			}},
			Warnings: []Finding{},
		}
	}

	w := &walker{filePath: filePath, errors: []Finding{}, warnings: []Finding{}}
	w.group(root, nil)

	return Report{
		Valid:    len(w.errors) == 0,
		Errors:   w.errors,
		Warnings: w.warnings,
	}
}

type walker struct {
	filePath string
	errors   []Finding
	warnings []Finding
}

// group walks the non-$ children of a group node. Keys are visited in
// sorted order so repeated runs produce identical reports.
func (w *walker) group(group map[string]any, path []string) {
	for _, key := range slices.Sorted(maps.Keys(group)) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		currentPath := append(path[:len(path):len(path)], key)
		pathStr := strings.Join(currentPath, ".")

		child, ok := group[key].(map[string]any)
		if !ok {
			w.errors = append(w.errors, Finding{
				FilePath:   w.filePath,
				Path:       pathStr,
				Message:    fmt.Sprintf("value at %s is not a token or group object", pathStr),
				Suggestion: "wrap leaf values in an object carrying $value",
			})
			continue
		}

		w.node(child, currentPath, pathStr)
	}
}

func (w *walker) node(node map[string]any, path []string, pathStr string) {
	switch token.Classify(node) {
	case token.KindToken:
		if _, ok := node["$type"]; !ok {
			w.warnings = append(w.warnings, Finding{
				FilePath:   w.filePath,
				Path:       pathStr,
				Message:    "token is missing $type",
				Suggestion: "declare $type on the token or on an ancestor group",
			})
		}
		if _, ok := node["$description"]; !ok {
			w.warnings = append(w.warnings, Finding{
				FilePath:   w.filePath,
				Path:       pathStr,
				Message:    "token is missing $description",
				Suggestion: "describe the token's intended use",
			})
		}
	case token.KindGroup:
		w.group(node, path)
	default:
		w.errors = append(w.errors, Finding{
			FilePath:   w.filePath,
			Path:       pathStr,
			Message:    fmt.Sprintf("object at %s has token properties but missing $value", pathStr),
			Suggestion: "add $value, or keep only $type/$description metadata alongside nested groups",
		})
	}
}
