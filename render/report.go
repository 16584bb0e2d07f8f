/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/shomer/contract"
)

// CategoryHeading formats a violation category as a report heading.
// e.g. "platform-output" → "Platform Output"
func CategoryHeading(category string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(category, "-", " "))
}

// Report renders a contract report as text: one status line per check,
// then violations grouped by category with remediation hints.
func Report(r *contract.Report) error {
	checks := []struct {
		category string
		ok       bool
	}{
		{contract.CategoryPrefix, r.Prefix},
		{contract.CategoryNaming, r.Naming},
		{contract.CategoryStructure, r.Structure},
		{contract.CategoryType, r.Types},
		{contract.CategoryPlatformOutput, r.PlatformOutput},
		{contract.CategoryPorts, r.Ports},
	}
	for _, c := range checks {
		status := "ok"
		if !c.ok {
			status = "FAIL"
		}
		fmt.Printf("%-16s %s\n", CategoryHeading(c.category), status)
	}

	for _, category := range contract.Categories {
		group := r.ByCategory(category)
		if len(group) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", CategoryHeading(category))
		for _, v := range group {
			var b strings.Builder
			b.WriteString("  ")
			if v.File != "" {
				b.WriteString(v.File)
				b.WriteString(": ")
			}
			if v.Path != "" {
				b.WriteString(v.Path)
				b.WriteString(": ")
			}
			b.WriteString(v.Message)
			fmt.Println(b.String())
			if v.Hint != "" {
				fmt.Printf("      hint: %s\n", v.Hint)
			}
		}
	}

	fmt.Println()
	if len(r.Violations) == 0 {
		fmt.Println("Contract compliant.")
	} else {
		fmt.Printf("%d violations\n", len(r.Violations))
	}
	return nil
}

// ReportJSON renders a contract report as indented JSON to stdout.
func ReportJSON(r *contract.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
