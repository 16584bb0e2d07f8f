/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp exposes the token operations over the Model Context
// Protocol: resolution, bulk query, structural validation, and the
// contract gate, mirroring the CLI semantics over a stdio transport.
package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/contract"
	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/internal/version"
	"bennypowers.dev/shomer/load"
	"bennypowers.dev/shomer/resolver"
	"bennypowers.dev/shomer/specifier"
	"bennypowers.dev/shomer/store"
	"bennypowers.dev/shomer/validator"
)

// Server exposes the token operations over MCP. Every tool call reads
// the workspace fresh, so a long-lived session sees token edits without
// restarting.
type Server struct {
	root string
	fs   fs.FileSystem
	mcp  *sdk.Server
}

// NewServer creates an MCP server bound to a workspace root. A nil
// filesystem falls back to the operating system.
func NewServer(root string, filesystem fs.FileSystem) *Server {
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	s := &Server{
		root: root,
		fs:   filesystem,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "shomer",
			Version: version.Get(),
		}, nil),
	}
	s.register()
	return s
}

// Run serves MCP over stdin/stdout until the client disconnects.
// Callers must silence the logger first; the transport owns stdout.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &sdk.StdioTransport{})
}

func (s *Server) register() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name: "resolve_token",
		Description: "Resolve a dotted token path against the layered corpus. " +
			"Tiers are searched most specific first (component, semantic, base), " +
			"then the platform layers; a path no layer defines resolves to the fallback. " +
			"An expectation of color or spacing fails the call when the resolved value has the wrong shape.",
	}, func(ctx context.Context, req *sdk.CallToolRequest, in ResolveInput) (*sdk.CallToolResult, resolver.Resolution, error) {
		out, err := s.ResolveToken(in)
		return nil, out, err
	})

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name: "query_tokens",
		Description: "List every token whose dotted path matches a glob pattern. " +
			"* matches within a single path segment; the bare pattern * matches all tokens.",
	}, func(ctx context.Context, req *sdk.CallToolRequest, in QueryInput) (*sdk.CallToolResult, QueryOutput, error) {
		out, err := s.QueryTokens(in)
		return nil, out, err
	})

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name: "validate_tokens",
		Description: "Validate the structure of token documents. Every problem is " +
			"reported in one pass: nodes with token properties but no $value are errors, " +
			"missing $type or $description are warnings. Files default to the configured corpus.",
	}, func(ctx context.Context, req *sdk.CallToolRequest, in ValidateInput) (*sdk.CallToolResult, ValidateOutput, error) {
		out, err := s.ValidateTokens(in)
		return nil, out, err
	})

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name: "check_contract",
		Description: "Run the publishing contract over the workspace: prefix, naming, " +
			"structure, type, platform-output, and port-isolation checks plus the bundler " +
			"guards, reporting every violation with remediation hints.",
	}, func(ctx context.Context, req *sdk.CallToolRequest, in CheckInput) (*sdk.CallToolResult, contract.Report, error) {
		out, err := s.CheckContract()
		return nil, out, err
	})
}

// ResolveInput names a token path to resolve.
type ResolveInput struct {
	Path        string `json:"path" jsonschema:"dotted token path, e.g. color.primary.500"`
	Fallback    string `json:"fallback,omitempty" jsonschema:"value to return when no layer defines the path"`
	Expectation string `json:"expectation,omitempty" jsonschema:"expected value kind: color or spacing"`
}

// QueryInput holds a bulk-query pattern.
type QueryInput struct {
	Pattern string `json:"pattern" jsonschema:"glob pattern over dotted paths; * matches one segment, bare * matches everything"`
	Type    string `json:"type,omitempty" jsonschema:"only return tokens of this declared type"`
}

// QueryOutput lists the matching tokens.
type QueryOutput struct {
	Matches []store.Match `json:"matches"`
	Count   int           `json:"count"`
}

// ValidateInput selects the documents to validate.
type ValidateInput struct {
	Files []string `json:"files,omitempty" jsonschema:"token documents to validate, relative to the workspace root; defaults to the configured corpus"`
}

// FileReport is the validation outcome for one document.
type FileReport struct {
	File     string              `json:"file"`
	Valid    bool                `json:"isValid"`
	Errors   []validator.Finding `json:"errors"`
	Warnings []validator.Finding `json:"warnings"`
}

// ValidateOutput aggregates per-file validation reports.
type ValidateOutput struct {
	Valid bool         `json:"valid"`
	Files []FileReport `json:"files"`
}

// CheckInput is empty: the contract always runs over the workspace the
// server was started in.
type CheckInput struct{}

// ResolveToken resolves one token path, enforcing the expectation when
// one was declared.
func (s *Server) ResolveToken(in ResolveInput) (resolver.Resolution, error) {
	if in.Path == "" {
		return resolver.Resolution{}, fmt.Errorf("path is required")
	}

	corpus, err := load.Load(load.Options{Root: s.root, FS: s.fs})
	if err != nil {
		return resolver.Resolution{}, err
	}

	return corpus.Resolver.ResolveTyped(in.Path, in.Expectation, in.Fallback)
}

// QueryTokens returns every token matching the pattern, optionally
// filtered by declared type.
func (s *Server) QueryTokens(in QueryInput) (QueryOutput, error) {
	if in.Pattern == "" {
		return QueryOutput{}, fmt.Errorf("pattern is required")
	}

	corpus, err := load.Load(load.Options{Root: s.root, FS: s.fs})
	if err != nil {
		return QueryOutput{}, err
	}

	matches := corpus.Store.Query(in.Pattern, corpus.Resolver.Platform().Tier())
	if in.Type != "" {
		filtered := make([]store.Match, 0, len(matches))
		for _, m := range matches {
			if m.Type == in.Type {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	return QueryOutput{Matches: matches, Count: len(matches)}, nil
}

// ValidateTokens validates each requested document, defaulting to the
// configured corpus. Unreadable documents are reported as failed files,
// not call errors, so one broken file does not hide the others.
func (s *Server) ValidateTokens(in ValidateInput) (ValidateOutput, error) {
	files := make([]string, 0, len(in.Files))
	for _, f := range in.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(s.root, f)
		}
		files = append(files, f)
	}

	cfg := config.LoadOrDefault(s.fs, s.root)
	if len(files) == 0 {
		res := specifier.NewDefaultResolver(s.fs, s.root)
		specs, err := cfg.ResolveFiles(res, s.fs, s.root)
		if err != nil {
			return ValidateOutput{}, fmt.Errorf("failed to resolve token files: %w", err)
		}
		for _, spec := range specs {
			files = append(files, spec.Path)
		}
	}

	if len(files) == 0 {
		return ValidateOutput{}, fmt.Errorf("no files requested and none configured")
	}

	out := ValidateOutput{Valid: true, Files: make([]FileReport, 0, len(files))}
	for _, file := range files {
		doc, err := load.Document(s.fs, file)
		if err != nil {
			out.Valid = false
			out.Files = append(out.Files, FileReport{
				File:  file,
				Valid: false,
				Errors: []validator.Finding{
					{FilePath: file, Message: err.Error()},
				},
				Warnings: []validator.Finding{},
			})
			continue
		}

		report := validator.ValidateWithPath(doc, file)
		if !report.Valid {
			out.Valid = false
		}
		out.Files = append(out.Files, FileReport{
			File:     file,
			Valid:    report.Valid,
			Errors:   report.Errors,
			Warnings: report.Warnings,
		})
	}

	return out, nil
}

// CheckContract runs the publishing contract over the workspace.
func (s *Server) CheckContract() (contract.Report, error) {
	cfg := config.LoadOrDefault(s.fs, s.root)

	opts, err := cfg.ContractOptionsAt(s.fs, s.root)
	if err != nil {
		return contract.Report{}, fmt.Errorf("failed to resolve contract files: %w", err)
	}

	report := contract.NewChecker(s.fs, opts).Check(cfg.TokensPath(s.root))
	return *report, nil
}
