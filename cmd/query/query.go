/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package query provides the query command for shomer.
package query

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/shomer/load"
	"bennypowers.dev/shomer/render"
	"bennypowers.dev/shomer/store"
)

// Cmd is the query cobra command.
var Cmd = &cobra.Command{
	Use:   "query <pattern>",
	Short: "List every token matching a pattern",
	Long: `List every token whose dotted path matches a glob pattern.

* matches within a single path segment; the bare pattern * matches all
tokens. Matches reflect resolution precedence, so a path defined in
several layers shows the value resolution would return.

Examples:
  shomer query '*'
  shomer query 'color.primary.*'
  shomer query 'color.*.500' --format css
  shomer query '*' --type color --format names`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, css, names")
	Cmd.Flags().StringP("type", "t", "", "Filter by token type")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	typeFilter, _ := cmd.Flags().GetString("type")
	root, _ := cmd.Flags().GetString("root")

	corpus, err := load.Load(load.Options{
		Root:     root,
		Platform: viper.GetString("platform"),
	})
	if err != nil {
		return err
	}

	matches := corpus.Store.Query(args[0], corpus.Resolver.Platform().Tier())
	if typeFilter != "" {
		filtered := make([]store.Match, 0, len(matches))
		for _, m := range matches {
			if m.Type == typeFilter {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = corpus.Config.Prefix
	}

	rows := render.ComputeRows(matches, prefix)
	switch format {
	case "json":
		return render.JSON(rows)
	case "css":
		return render.CSS(rows, prefix)
	case "names":
		return render.Names(rows)
	case "table":
		return render.Table(rows)
	default:
		return fmt.Errorf("unknown format %q (expected table, json, css, or names)", format)
	}
}
