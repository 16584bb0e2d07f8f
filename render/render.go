/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/shomer/store"
)

// refPattern matches {token.path} references embedded in a value.
var refPattern = regexp.MustCompile(`\{[^}]+\}`)

// Row holds computed display values for a single token.
type Row struct {
	Path    string `json:"path"`           // dotted token path
	Name    string `json:"name"`           // CSS variable name with prefix
	Type    string `json:"type"`           // token type or "-"
	Value   string `json:"value"`          // display value
	Tier    string `json:"tier,omitempty"` // layer tier the value came from
	IsColor bool   `json:"-"`              // whether Value parses as a color
}

// ComputeRows transforms query matches into display rows.
func ComputeRows(matches []store.Match, prefix string) []Row {
	rows := make([]Row, 0, len(matches))
	for _, m := range matches {
		row := Row{
			Path:  m.Path,
			Name:  NameToCSSVar(m.Path, prefix),
			Type:  m.Type,
			Value: m.Value,
			Tier:  m.Tier.String(),
		}
		if row.Type == "" {
			row.Type = "-"
		}

		// Check if this is a parseable color
		if m.Type == "color" && !strings.HasPrefix(row.Value, "{") {
			if _, err := csscolorparser.Parse(row.Value); err == nil {
				row.IsColor = true
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// NameToCSSVar converts a dotted token path to a CSS variable name.
// e.g. "color.primary.500" with prefix "ds" → "--ds-color-primary-500"
func NameToCSSVar(path, prefix string) string {
	name := strings.ReplaceAll(path, ".", "-")
	if prefix != "" {
		return "--" + prefix + "-" + name
	}
	return "--" + name
}

// ConvertRefs rewrites {token.path} references as var() references so
// alias values render as consumable CSS.
func ConvertRefs(s, prefix string) string {
	if !strings.Contains(s, "{") {
		return s
	}
	return refPattern.ReplaceAllStringFunc(s, func(match string) string {
		path := strings.TrimSuffix(strings.TrimPrefix(match, "{"), "}")
		return "var(" + NameToCSSVar(path, prefix) + ")"
	})
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		if len(r.Name) > name {
			name = len(r.Name)
		}
		if len(r.Type) > typ {
			typ = len(r.Type)
		}
		if len(r.Value) > val {
			val = len(r.Value)
		}
	}
	return
}

// ColorSwatch returns a 24-bit ANSI swatch for the given color value,
// printing its hex form over the swatch in whichever of black or white
// reads against the background.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()

	fg := "0;0;0"
	if l, _, _ := (colorful.Color{R: c.R, G: c.G, B: c.B}).Lab(); l < 0.5 {
		fg = "255;255;255"
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[38;2;%sm %s \x1b[0m ", r, g, b, fg, c.HexString())
}

// Table renders rows as a table to stdout.
func Table(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		fmt.Printf("%-*s  %-*s  %s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value)
	}
	return nil
}

// JSON renders rows as indented JSON to stdout.
func JSON(rows []Row) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// CSS renders rows as CSS custom properties on :root. Alias values are
// rewritten as var() references.
func CSS(rows []Row, prefix string) error {
	fmt.Println(":root {")
	for _, r := range rows {
		fmt.Printf("  %s: %s;\n", r.Name, ConvertRefs(r.Value, prefix))
	}
	fmt.Println("}")
	return nil
}

// Names renders just the CSS variable names, one per line.
func Names(rows []Row) error {
	for _, r := range rows {
		fmt.Println(r.Name)
	}
	return nil
}
