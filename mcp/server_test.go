/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/shomer/contract"
	"bennypowers.dev/shomer/load"
	"bennypowers.dev/shomer/mcp"
	"bennypowers.dev/shomer/testutil"
	"bennypowers.dev/shomer/token"
)

func server(t *testing.T) *mcp.Server {
	t.Helper()
	t.Setenv(load.EnvPlatform, "")
	return mcp.NewServer("/workspace", testutil.WorkspaceFS(t, "/workspace"))
}

func TestResolveToken(t *testing.T) {
	srv := server(t)

	res, err := srv.ResolveToken(mcp.ResolveInput{Path: "color.primary.500"})
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if res.Value != "#2563eb" {
		t.Errorf("Value = %q, want semantic #2563eb", res.Value)
	}
	if res.Source != "semantic" {
		t.Errorf("Source = %q, want semantic", res.Source)
	}
	if res.CSSVariable != "--color-primary-500" {
		t.Errorf("CSSVariable = %q", res.CSSVariable)
	}
	if res.VarRef != "var(--color-primary-500)" {
		t.Errorf("VarRef = %q", res.VarRef)
	}
}

func TestResolveToken_AliasPassthrough(t *testing.T) {
	srv := server(t)

	res, err := srv.ResolveToken(mcp.ResolveInput{Path: "color.brand"})
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if res.Value != "{color.primary.500}" {
		t.Errorf("Value = %q, want raw alias", res.Value)
	}
}

func TestResolveToken_PlatformLayer(t *testing.T) {
	srv := server(t)

	res, err := srv.ResolveToken(mcp.ResolveInput{Path: "font.body"})
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if res.Value != "system-ui" {
		t.Errorf("Value = %q, want web system-ui", res.Value)
	}
	if res.Source != "web" {
		t.Errorf("Source = %q, want web", res.Source)
	}
}

func TestResolveToken_Fallback(t *testing.T) {
	srv := server(t)

	res, err := srv.ResolveToken(mcp.ResolveInput{Path: "does.not.exist", Fallback: "20px"})
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if !res.IsFallback {
		t.Error("expected fallback resolution")
	}
	if res.Value != "20px" {
		t.Errorf("Value = %q, want 20px", res.Value)
	}
}

func TestResolveToken_ExpectationMismatch(t *testing.T) {
	srv := server(t)

	_, err := srv.ResolveToken(mcp.ResolveInput{Path: "font.body", Expectation: "color"})
	if err == nil {
		t.Fatal("expected error for non-color value")
	}
	if !errors.Is(err, token.ErrExpectationMismatch) {
		t.Errorf("error = %v, want ErrExpectationMismatch", err)
	}
}

func TestResolveToken_PathRequired(t *testing.T) {
	srv := server(t)

	if _, err := srv.ResolveToken(mcp.ResolveInput{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestQueryTokens(t *testing.T) {
	srv := server(t)

	out, err := srv.QueryTokens(mcp.QueryInput{Pattern: "color.primary.*"})
	if err != nil {
		t.Fatalf("QueryTokens() error = %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1", out.Count)
	}
	if out.Matches[0].Path != "color.primary.500" {
		t.Errorf("Path = %q", out.Matches[0].Path)
	}
	// Query agrees with resolution: the semantic redefinition wins.
	if out.Matches[0].Value != "#2563eb" {
		t.Errorf("Value = %q, want #2563eb", out.Matches[0].Value)
	}
}

func TestQueryTokens_All(t *testing.T) {
	srv := server(t)

	out, err := srv.QueryTokens(mcp.QueryInput{Pattern: "*"})
	if err != nil {
		t.Fatalf("QueryTokens() error = %v", err)
	}

	want := []string{"button.padding", "color.brand", "color.primary.500", "font.body", "spacing.md"}
	if out.Count != len(want) {
		t.Fatalf("Count = %d, want %d", out.Count, len(want))
	}
	for i, path := range want {
		if out.Matches[i].Path != path {
			t.Errorf("Matches[%d].Path = %q, want %q", i, out.Matches[i].Path, path)
		}
	}
}

func TestQueryTokens_TypeFilter(t *testing.T) {
	srv := server(t)

	out, err := srv.QueryTokens(mcp.QueryInput{Pattern: "*", Type: "color"})
	if err != nil {
		t.Fatalf("QueryTokens() error = %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2 color tokens", out.Count)
	}
	for _, m := range out.Matches {
		if m.Type != "color" {
			t.Errorf("match %q has type %q", m.Path, m.Type)
		}
	}
}

func TestQueryTokens_PatternRequired(t *testing.T) {
	srv := server(t)

	if _, err := srv.QueryTokens(mcp.QueryInput{}); err == nil {
		t.Fatal("expected error for empty pattern")
	}
}

func TestValidateTokens_ConfiguredCorpus(t *testing.T) {
	srv := server(t)

	out, err := srv.ValidateTokens(mcp.ValidateInput{})
	if err != nil {
		t.Fatalf("ValidateTokens() error = %v", err)
	}
	if !out.Valid {
		t.Error("expected the fixture corpus to validate")
	}
	if len(out.Files) != 5 {
		t.Fatalf("got %d file reports, want 5", len(out.Files))
	}
	// The fixture tokens carry no $description, so warnings accumulate
	// without failing validation.
	if len(out.Files[0].Warnings) == 0 {
		t.Error("expected missing-description warnings")
	}
}

func TestValidateTokens_ExplicitFile(t *testing.T) {
	fsys := testutil.WorkspaceFS(t, "/workspace")
	fsys.AddFile("/workspace/tokens/broken.json", `{
		"color": {
			"bad": { "$type": "color" }
		}
	}`, 0o644)
	srv := mcp.NewServer("/workspace", fsys)

	out, err := srv.ValidateTokens(mcp.ValidateInput{Files: []string{"tokens/broken.json"}})
	if err != nil {
		t.Fatalf("ValidateTokens() error = %v", err)
	}
	if out.Valid {
		t.Error("expected validation failure for token without $value")
	}
	if len(out.Files) != 1 {
		t.Fatalf("got %d file reports, want 1", len(out.Files))
	}
	if len(out.Files[0].Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(out.Files[0].Errors))
	}
	if !strings.Contains(out.Files[0].Errors[0].Message, "$value") {
		t.Errorf("error = %q, want missing $value", out.Files[0].Errors[0].Message)
	}
}

func TestValidateTokens_UnreadableFile(t *testing.T) {
	srv := server(t)

	out, err := srv.ValidateTokens(mcp.ValidateInput{Files: []string{"tokens/missing.json"}})
	if err != nil {
		t.Fatalf("ValidateTokens() error = %v", err)
	}
	if out.Valid {
		t.Error("expected failure for unreadable file")
	}
	if len(out.Files) != 1 || out.Files[0].Valid {
		t.Fatal("expected one failed file report")
	}
	if !strings.Contains(out.Files[0].Errors[0].Message, "tokens/missing.json") {
		t.Errorf("error should name the file, got %q", out.Files[0].Errors[0].Message)
	}
}

func TestCheckContract_Compliant(t *testing.T) {
	t.Setenv(load.EnvPlatform, "")
	srv := mcp.NewServer("/workspace", testutil.ContractWorkspaceFS(t, "/workspace"))

	report, err := srv.CheckContract()
	if err != nil {
		t.Fatalf("CheckContract() error = %v", err)
	}
	if !report.Compliant {
		t.Fatalf("expected compliant workspace, got violations: %v", report.Violations)
	}
}

func TestCheckContract_MissingArtifact(t *testing.T) {
	t.Setenv(load.EnvPlatform, "")
	fsys := testutil.ContractWorkspaceFS(t, "/workspace")
	if err := fsys.Remove("/workspace/dist/web/tokens.css"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	srv := mcp.NewServer("/workspace", fsys)

	report, err := srv.CheckContract()
	if err != nil {
		t.Fatalf("CheckContract() error = %v", err)
	}
	if report.Compliant {
		t.Fatal("expected violation for missing artifact")
	}
	if report.PlatformOutput {
		t.Error("expected the platform-output check to fail")
	}

	violations := report.ByCategory(contract.CategoryPlatformOutput)
	if len(violations) != 1 {
		t.Fatalf("got %d platform-output violations, want 1", len(violations))
	}
	if !strings.Contains(violations[0].Message, "web") {
		t.Errorf("violation should name the platform, got %q", violations[0].Message)
	}
}

func TestCheckContract_SeesFreshEdits(t *testing.T) {
	t.Setenv(load.EnvPlatform, "")
	fsys := testutil.ContractWorkspaceFS(t, "/workspace")
	srv := mcp.NewServer("/workspace", fsys)

	report, err := srv.CheckContract()
	if err != nil {
		t.Fatalf("CheckContract() error = %v", err)
	}
	if !report.Compliant {
		t.Fatalf("expected compliant baseline, got: %v", report.Violations)
	}

	// The server re-reads the workspace per call, so an edit between
	// calls changes the outcome without a restart.
	fsys.AddFile("/workspace/tokens/tokens.json", `{
		"base": {
			"color": { "Primary": { "$value": "#3b82f6", "$type": "color" } }
		}
	}`, 0o644)

	report, err = srv.CheckContract()
	if err != nil {
		t.Fatalf("CheckContract() error = %v", err)
	}
	if report.Naming {
		t.Error("expected the naming check to fail after the edit")
	}
}
