/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for shomer.
package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/load"
	"bennypowers.dev/shomer/specifier"
	"bennypowers.dev/shomer/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate the structure of token documents",
	Long: `Validate the structure of token documents.

Each document is walked once and every problem is reported: nodes mixing
token properties with a missing $value are errors, tokens missing $type
or $description are warnings. With no arguments the documents come from
the workspace configuration.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	strict, _ := cmd.Flags().GetBool("strict")
	root, _ := cmd.Flags().GetString("root")

	rootDir, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, rootDir)

	// Use config files if no args provided
	files := args
	if len(files) == 0 {
		res := specifier.NewDefaultResolver(filesystem, rootDir)
		specs, err := cfg.ResolveFiles(res, filesystem, rootDir)
		if err != nil {
			return fmt.Errorf("failed to resolve token files: %w", err)
		}
		for _, spec := range specs {
			files = append(files, spec.Path)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		doc, err := load.Document(filesystem, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			hasErrors = true
			continue
		}

		report := validator.ValidateWithPath(doc, file)
		for i := range report.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", report.Errors[i].Error())
		}
		// Strict mode promotes warnings to failures, so show them
		// even when quiet.
		if !quiet || strict {
			for i := range report.Warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", report.Warnings[i].Error())
			}
		}

		if !report.Valid || (strict && len(report.Warnings) > 0) {
			hasErrors = true
			continue
		}
		if !quiet {
			fmt.Printf("  %d warnings\n", len(report.Warnings))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All files valid.")
	}
	return nil
}
