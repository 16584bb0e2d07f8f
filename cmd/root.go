/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for shomer.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/shomer/cmd/check"
	"bennypowers.dev/shomer/cmd/mcp"
	"bennypowers.dev/shomer/cmd/query"
	"bennypowers.dev/shomer/cmd/resolve"
	"bennypowers.dev/shomer/cmd/validate"
	"bennypowers.dev/shomer/cmd/version"
	"bennypowers.dev/shomer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "shomer",
	Short: "Resolve design tokens and guard the publishing contract",
	Long: `shomer resolves dotted token paths against a layered design token
corpus and checks the corpus and its build artifacts against the
publishing contract before they ship.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetDebug(verbose)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "CSS variable prefix (overrides config)")
	rootCmd.PersistentFlags().String("platform", "", "Platform target: web or mobile (overrides detection)")
	rootCmd.PersistentFlags().StringP("root", "C", ".", "Workspace root directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))
	_ = viper.BindPFlag("platform", rootCmd.PersistentFlags().Lookup("platform"))

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(query.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
