// SPDX-License-Identifier: Apache-2.0

// Commands (tea.Cmd constructors) that perform the actual work off the
// update loop: discovering pending changes and applying rewrites.

package ui

import (
	"context"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"flags-migrate/internal/config"
	"flags-migrate/internal/discovery"
	"flags-migrate/internal/rewrite"
	"flags-migrate/internal/rules"
	"flags-migrate/internal/runner"
)

// loadChangesCmd discovers the source files under the configured root
// and dry-runs the rewrite, producing the list of files the migration
// would touch.
func loadChangesCmd() tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.LoadConfig()
		if err != nil {
			return loadErrorMsg{err}
		}

		rootDir, err := discovery.ResolveRoot("", cfg)
		if err != nil {
			return loadErrorMsg{err}
		}

		rulesFile := cfg.RulesFile
		if rulesFile != "" {
			if rulesFile, err = config.ResolvePath(rulesFile); err != nil {
				return loadErrorMsg{err}
			}
		}
		set, err := rules.Load(rulesFile)
		if err != nil {
			return loadErrorMsg{err}
		}
		rw := rewrite.New(set)

		files, err := discovery.FindSourceFiles(rootDir, cfg)
		if err != nil {
			return loadErrorMsg{err}
		}

		var changes []pendingChange
		for res := range runner.ProcessAll(context.Background(), files, rw, runner.ModeDiff) {
			if res.Err != nil || res.Changed {
				changes = append(changes, pendingChange{result: res})
			}
		}
		sort.Slice(changes, func(i, j int) bool {
			return changes[i].result.File.Identifier() < changes[j].result.File.Identifier()
		})

		return changesLoadedMsg{rootDir: rootDir, changes: changes, rewriter: rw}
	}
}

// applyFileCmd rewrites one reviewed file in place.
func applyFileCmd(index int, change pendingChange, rw *rewrite.Rewriter) tea.Cmd {
	return func() tea.Msg {
		res := runner.ProcessFile(change.result.File, rw, runner.ModeWrite)
		return fileAppliedMsg{index: index, err: res.Err}
	}
}

// applyAllCmd rewrites every pending (not applied, not skipped) file.
func applyAllCmd(changes []pendingChange, rw *rewrite.Rewriter) tea.Cmd {
	return func() tea.Msg {
		msg := allAppliedMsg{}
		for _, c := range changes {
			if c.applied || c.skipped || c.result.Err != nil {
				continue
			}
			res := runner.ProcessFile(c.result.File, rw, runner.ModeWrite)
			if res.Err != nil {
				msg.errs = append(msg.errs, res.Err)
				continue
			}
			msg.applied++
		}
		return msg
	}
}
