/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package contract checks a token corpus and its build artifacts
// against the publishing contract: prefix, naming, structure, type,
// platform-output, and port-isolation compliance. The checker collects
// violations instead of failing, so a single run reports every problem.
package contract

import (
	"strings"

	"bennypowers.dev/shomer/guard"
)

// Violation categories. Guard categories are aliased here so a report
// carries one closed vocabulary regardless of which analyzer produced
// the finding.
const (
	CategoryPrefix           = "prefix"
	CategoryNaming           = "naming"
	CategoryStructure        = "structure"
	CategoryType             = "type"
	CategoryPlatformOutput   = "platform-output"
	CategoryPorts            = guard.CategoryPorts
	CategoryTokenClash       = guard.CategoryTokenClash
	CategoryMetroDuplication = guard.CategoryMetroDuplication
)

// Categories lists every violation category in report order.
var Categories = []string{
	CategoryPrefix,
	CategoryNaming,
	CategoryStructure,
	CategoryType,
	CategoryPlatformOutput,
	CategoryPorts,
	CategoryTokenClash,
	CategoryMetroDuplication,
}

// Violation is a single contract finding with enough detail to locate
// the problem: the offending file, token path, or configuration key.
type Violation struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Path     string `json:"path,omitempty"`
	Hint     string `json:"hint,omitempty"`
}

// String formats the violation for console output.
func (v Violation) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(v.Category)
	b.WriteString("] ")
	if v.File != "" {
		b.WriteString(v.File)
		b.WriteString(": ")
	}
	if v.Path != "" {
		b.WriteString(v.Path)
		b.WriteString(": ")
	}
	b.WriteString(v.Message)
	if v.Hint != "" {
		b.WriteString(" (")
		b.WriteString(v.Hint)
		b.WriteString(")")
	}
	return b.String()
}

// Report aggregates the six compliance checks plus the itemized
// violation list. Compliant is the logical AND of the six booleans.
type Report struct {
	Compliant      bool `json:"compliant"`
	Prefix         bool `json:"prefix"`
	Naming         bool `json:"naming"`
	Structure      bool `json:"structure"`
	Types          bool `json:"types"`
	PlatformOutput bool `json:"platformOutput"`
	Ports          bool `json:"ports"`

	Violations []Violation `json:"violations"`
}

// NewReport returns a report with every check passing and an empty,
// non-nil violation list.
func NewReport() *Report {
	return &Report{
		Compliant:      true,
		Prefix:         true,
		Naming:         true,
		Structure:      true,
		Types:          true,
		PlatformOutput: true,
		Ports:          true,
		Violations:     []Violation{},
	}
}

// Add records a violation and fails the check for its category.
// Metro-duplication findings are recorded without failing any of the
// six checks; token-clash findings fail the prefix check.
func (r *Report) Add(v Violation) {
	r.Violations = append(r.Violations, v)
	switch v.Category {
	case CategoryPrefix, CategoryTokenClash:
		r.Prefix = false
	case CategoryNaming:
		r.Naming = false
	case CategoryStructure:
		r.Structure = false
	case CategoryType:
		r.Types = false
	case CategoryPlatformOutput:
		r.PlatformOutput = false
	case CategoryPorts:
		r.Ports = false
	}
	r.Compliant = r.Prefix && r.Naming && r.Structure &&
		r.Types && r.PlatformOutput && r.Ports
}

// ByCategory returns the violations recorded under the given category.
func (r *Report) ByCategory(category string) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}
