// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"flags-migrate/internal/config"
	"flags-migrate/internal/discovery"
	"flags-migrate/internal/logger"
	"flags-migrate/internal/rewrite"
	"flags-migrate/internal/rules"
	"flags-migrate/internal/runner"
)

// loadSetup assembles the pieces every command needs: the config, the
// resolved migration root, and the compiled rewriter. Flags override
// the config file.
func loadSetup(args []string) (config.Config, string, *rewrite.Rewriter) {
	cfg, err := config.LoadConfig()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if len(extensionsFlag) > 0 {
		cfg.Extensions = extensionsFlag
	}

	rootArg := ""
	if len(args) > 0 {
		rootArg = args[0]
	}
	rootDir, err := discovery.ResolveRoot(rootArg, cfg)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rulesFile := cfg.RulesFile
	if rulesFileFlag != "" {
		rulesFile = rulesFileFlag
	}
	if rulesFile != "" {
		if rulesFile, err = config.ResolvePath(rulesFile); err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	set, err := rules.Load(rulesFile)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading rename rules: %v\n", err)
		os.Exit(1)
	}

	return cfg, rootDir, rewrite.New(set)
}

// runBatch discovers the source files under the root and runs them all
// through the given mode, with a spinner while the batch is in flight.
// Results come back sorted by path so output is stable run to run.
func runBatch(args []string, mode runner.Mode, message string) []runner.FileResult {
	cfg, rootDir, rw := loadSetup(args)

	statusColor.Printf("%s (%s)\n", message, identifierColor.Sprint(rootDir))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Color("cyan")
	s.Suffix = " Discovering source files..."
	s.Start()

	files, err := discovery.FindSourceFiles(rootDir, cfg)
	if err != nil {
		s.Stop()
		errorColor.Fprintf(os.Stderr, "Error during discovery: %v\n", err)
		os.Exit(1)
	}

	s.Suffix = fmt.Sprintf(" Processing %d files...", len(files))

	var results []runner.FileResult
	for res := range runner.ProcessAll(context.Background(), files, rw, mode) {
		results = append(results, res)
	}
	s.Stop()

	sort.Slice(results, func(i, j int) bool {
		return results[i].File.Identifier() < results[j].File.Identifier()
	})

	logger.Info("Batch finished", "mode", mode.String(), "file_count", len(files))
	return results
}

// printRemaining lists every legacy API use left in the tree as
// "path:line text" and returns the count.
func printRemaining(results []runner.FileResult) int {
	var total int
	for _, res := range results {
		for _, use := range res.Remaining {
			total++
			fmt.Printf("%s:%d %s\n", identifierColor.Sprint(res.File.Identifier()), use.Line, strings.TrimRight(use.Text, "\r"))
		}
	}
	return total
}

// printFailures reports per-file errors to stderr and returns how many
// files failed. Failures never abort the rest of the batch, so this is
// the only place they surface.
func printFailures(results []runner.FileResult) int {
	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			errorColor.Fprintf(os.Stderr, "Error: %v\n", res.Err)
		}
	}
	return failed
}

// printDiff writes a unified diff with the conventional coloring.
func printDiff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			addedColor.Print(line)
		case strings.HasPrefix(line, "-"):
			removedColor.Print(line)
		case strings.HasPrefix(line, "@@"):
			hunkColor.Print(line)
		default:
			fmt.Print(line)
		}
	}
}
