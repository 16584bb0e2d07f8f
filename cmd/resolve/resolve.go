/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for shomer.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/shomer/load"
	"bennypowers.dev/shomer/resolver"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Resolve a token path to its value",
	Long: `Resolve a dotted token path against the layered corpus.

Precedence: runtime overrides first, then the component, semantic, and
base tiers, then the preferred platform layer, then the other platform
layer. A path no layer defines resolves to the fallback.

Examples:
  shomer resolve color.primary.500
  shomer resolve color.primary.500 --expect color
  shomer resolve spacing.md --fallback 16px
  shomer resolve font.body --platform mobile
  shomer resolve color.primary.500 --override color.primary.500=#ff0000`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("fallback", "", "Value to return when no layer defines the path")
	Cmd.Flags().String("expect", "", "Expected value kind: color or spacing")
	Cmd.Flags().StringArray("override", nil, "Runtime override as path=value (repeatable)")
	Cmd.Flags().StringP("format", "f", "value", "Output format: value, json")
}

func run(cmd *cobra.Command, args []string) error {
	fallback, _ := cmd.Flags().GetString("fallback")
	expect, _ := cmd.Flags().GetString("expect")
	overrideFlags, _ := cmd.Flags().GetStringArray("override")
	format, _ := cmd.Flags().GetString("format")
	root, _ := cmd.Flags().GetString("root")

	overrides, err := parseOverrides(overrideFlags)
	if err != nil {
		return err
	}

	corpus, err := load.Load(load.Options{
		Root:      root,
		Platform:  viper.GetString("platform"),
		Overrides: overrides,
	})
	if err != nil {
		return err
	}

	res, err := corpus.Resolver.ResolveTyped(args[0], expect, fallback)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Println(res.Value)
	return nil
}

// parseOverrides builds an override source from repeated path=value flags.
func parseOverrides(pairs []string) (resolver.OverrideSource, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := resolver.NewStaticOverrides()
	for _, pair := range pairs {
		path, value, ok := strings.Cut(pair, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid override %q (expected path=value)", pair)
		}
		overrides.Set(path, value)
	}
	return overrides, nil
}
