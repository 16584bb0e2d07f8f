/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for shomer.
package mcp

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/shomer/internal/logger"
	mcpserver "bennypowers.dev/shomer/mcp"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve token operations over the Model Context Protocol",
	Long: `Serve the token operations over MCP on stdin/stdout.

The server exposes four tools mirroring the CLI: resolve_token,
query_tokens, validate_tokens, and check_contract. Each call reads the
workspace fresh, so token edits are visible without a restart.

Examples:
  shomer mcp
  shomer mcp --root path/to/workspace`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	// The transport owns stdout and clients treat stderr as noise, so
	// all logging is silenced for the lifetime of the server.
	logger.SetOutput(io.Discard)

	return mcpserver.NewServer(absRoot, nil).Run(cmd.Context())
}
