/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for shomer.
package check

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/contract"
	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/internal/logger"
	"bennypowers.dev/shomer/render"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Run the publishing contract over the workspace",
	Long: `Run the publishing contract over the workspace.

Six checks gate publication: CSS variable prefixing, kebab-case naming,
alias tier ordering, value shapes, platform output artifacts, and
dev-server port isolation. The bundler deduplication and package scope
guards report alongside them. Exit status is nonzero unless the
workspace is fully compliant.`,
	Args: cobra.NoArgs,
	RunE: run,
}

// watchedExtensions are the file suffixes that trigger a re-check in
// watch mode.
var watchedExtensions = []string{
	".json", ".jsonc", ".yaml", ".yml",
	".css", ".html", ".js", ".ts",
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	Cmd.Flags().BoolP("watch", "w", false, "Re-run the checks on file changes")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	watch, _ := cmd.Flags().GetBool("watch")
	root, _ := cmd.Flags().GetString("root")

	rootDir, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	report, err := runChecks(rootDir, format)
	if err != nil {
		return err
	}

	if !watch {
		// The gate also fails on guard-only findings that leave the
		// six checks passing.
		if len(report.Violations) > 0 {
			return fmt.Errorf("contract check failed")
		}
		return nil
	}

	return watchChecks(rootDir, format)
}

// runChecks loads the workspace config, runs the contract checker, and
// renders the report in the requested format.
func runChecks(rootDir, format string) (*contract.Report, error) {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, rootDir)

	if prefix := viper.GetString("prefix"); prefix != "" {
		cfg.Prefix = prefix
	}

	opts, err := cfg.ContractOptionsAt(filesystem, rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contract files: %w", err)
	}

	checker := contract.NewChecker(filesystem, opts)
	report := checker.Check(cfg.TokensPath(rootDir))

	switch format {
	case "json":
		if err := render.ReportJSON(report); err != nil {
			return nil, err
		}
	case "text":
		if err := render.Report(report); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q (expected text or json)", format)
	}

	return report, nil
}

// watchChecks re-runs the contract whenever a workspace file changes.
// The process stays resident until interrupted; the exit status in
// watch mode reflects shutdown, not compliance.
func watchChecks(rootDir, format string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	err = filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			name := info.Name()
			if path != rootDir && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	logger.Info("watching %s for changes (press Ctrl+C to stop)", rootDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Debounce re-checks
	var lastRun time.Time
	const debounceInterval = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !watchRelevant(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if time.Since(lastRun) < debounceInterval {
				continue
			}
			lastRun = time.Now()

			logger.Debug("change detected: %s", event.Name)
			fmt.Println()
			if _, err := runChecks(rootDir, format); err != nil {
				logger.Warn("check failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-sigCh:
			logger.Info("stopping watch mode")
			return nil
		}
	}
}

// watchRelevant reports whether a changed path participates in the
// contract: token documents, generated artifacts, or tool configs.
func watchRelevant(path string) bool {
	for _, ext := range watchedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
