// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"flags-migrate/internal/config"
	"flags-migrate/internal/runner"
	"flags-migrate/internal/util"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	warnColor       = color.New(color.FgYellow)
	identifierColor = color.New(color.FgBlue)
	addedColor      = color.New(color.FgGreen)
	removedColor    = color.New(color.FgRed)
	hunkColor       = color.New(color.FgCyan)
)

var (
	rulesFileFlag  string
	strictFlag     bool
	extensionsFlag []string
)

var rootCmd = &cobra.Command{
	Use:   "fm",
	Short: "gflags to absl.flags migration helper",
	Long: `A command-line helper for migrating a codebase from gflags to absl.flags.

Applies the symbol rename table as whole-token regex rewrites over the
source files under a root directory, and reports any remaining legacy
API uses. Rewriting is pattern-based and best effort: it has no
semantic model of the code, so the occasional false positive or missed
rename behind aliasing is expected and surfaced by 'fm scan'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		return nil
	},
}

func RunCLI() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesFileFlag, "rules", "", "YAML file with additional rename rules (overrides config rules_file)")
	rootCmd.PersistentFlags().StringSliceVar(&extensionsFlag, "ext", nil, "source file extensions to process (overrides config, default .py)")

	scanCmd.Flags().BoolVar(&strictFlag, "strict", false, "exit nonzero when legacy API uses remain")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(rulesCmd)
}

var scanCmd = &cobra.Command{
	Use:     "scan [root]",
	Short:   "Report remaining legacy gflags API uses without rewriting anything",
	Example: "  fm scan\n  fm scan ~/src/myproject",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		results := runBatch(args, runner.ModeCheck, "Scanning for legacy API uses...")

		remaining := printRemaining(results)
		failed := printFailures(results)

		if remaining == 0 && failed == 0 {
			successColor.Println("No legacy API uses found.")
		} else if remaining > 0 {
			fmt.Println()
			warnColor.Printf("%s of legacy APIs remain.\n", util.Pluralize(remaining, "use"))
		}

		if failed > 0 || (strictFlag && remaining > 0) {
			os.Exit(1)
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [root]",
	Short: "Rewrite legacy gflags API names in place",
	Long: `Rewrites every source file under the root, replacing legacy gflags
symbols with their absl.flags names, then reports anything the rename
table could not reach (aliased imports, dynamic attribute access,
legacy submodule imports). Files without matches are left untouched.`,
	Example: "  fm migrate\n  fm migrate ~/src/myproject",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		results := runBatch(args, runner.ModeWrite, "Migrating source files...")

		var changed, renames int
		for _, res := range results {
			if res.Err != nil || !res.Changed {
				continue
			}
			changed++
			renames += res.Replacements
			fmt.Printf("rewrote %s (%s)\n", identifierColor.Sprint(res.File.Identifier()), util.Pluralize(res.Replacements, "rename"))
		}

		if changed == 0 {
			statusColor.Println("Nothing to migrate.")
		} else {
			successColor.Printf("\nApplied %s across %s.\n", util.Pluralize(renames, "rename"), util.Pluralize(changed, "file"))
		}

		remaining := printRemaining(results)
		if remaining > 0 {
			fmt.Println()
			warnColor.Printf("%s of legacy APIs could not be rewritten automatically; fix these by hand.\n", util.Pluralize(remaining, "use"))
		}

		if printFailures(results) > 0 {
			os.Exit(1)
		}
	},
}

var diffCmd = &cobra.Command{
	Use:     "diff [root]",
	Short:   "Show what migrate would change, as unified diffs",
	Example: "  fm diff\n  fm diff ~/src/myproject",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		results := runBatch(args, runner.ModeDiff, "Computing diffs...")

		var changed int
		for _, res := range results {
			if res.Err != nil || !res.Changed {
				continue
			}
			changed++
			printDiff(res.Diff)
		}

		if changed == 0 {
			statusColor.Println("No changes.")
		}

		if printFailures(results) > 0 {
			os.Exit(1)
		}
	},
}
