// SPDX-License-Identifier: Apache-2.0

// Package runner executes a migration over a set of source files. Each
// file is independent, so a batch is processed by a bounded pool of
// goroutines with results streamed back over a channel. A file either
// produces rewritten text or fails with a read/write error that is
// reported and skips that file; failures never abort the batch.
package runner

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/semaphore"

	"flags-migrate/internal/discovery"
	"flags-migrate/internal/logger"
	"flags-migrate/internal/rewrite"
)

// maxConcurrentFiles bounds the number of files rewritten at once to
// keep file descriptor usage sane on large trees.
const maxConcurrentFiles = 8

// Mode selects what a run does with the rewritten text.
type Mode int

const (
	// ModeCheck only scans for legacy API uses; nothing is rewritten.
	ModeCheck Mode = iota
	// ModeDiff rewrites in memory and produces a unified diff per
	// changed file; nothing is written.
	ModeDiff
	// ModeWrite rewrites changed files in place.
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeDiff:
		return "diff"
	case ModeWrite:
		return "write"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// FileResult is the outcome of processing one file.
type FileResult struct {
	File         discovery.SourceFile
	Changed      bool          // rewrite produced different text
	Replacements int           // number of renames applied
	Diff         string        // unified diff (ModeDiff only)
	Remaining    []rewrite.Use // legacy uses left after the rewrite
	Err          error         // read/write failure; other fields are zero
}

// ProcessFile runs one file through the migration pipeline: read,
// rewrite, write or diff depending on mode, then scan what is left.
// The scan runs over the post-rewrite text (over the original text in
// ModeCheck), matching what a subsequent scan of the tree would see.
func ProcessFile(file discovery.SourceFile, rw *rewrite.Rewriter, mode Mode) FileResult {
	result := FileResult{File: file}

	info, err := os.Stat(file.Path)
	if err != nil {
		result.Err = fmt.Errorf("failed to stat %s: %w", file.Path, err)
		return result
	}
	data, err := os.ReadFile(file.Path)
	if err != nil {
		result.Err = fmt.Errorf("failed to read %s: %w", file.Path, err)
		return result
	}
	content := string(data)

	scanned := content
	if mode != ModeCheck {
		rewritten, n := rw.Rewrite(content)
		result.Changed = rewritten != content
		result.Replacements = n
		scanned = rewritten

		if result.Changed {
			switch mode {
			case ModeDiff:
				diff, diffErr := unifiedDiff(file.Identifier(), content, rewritten)
				if diffErr != nil {
					result.Err = diffErr
					return result
				}
				result.Diff = diff
			case ModeWrite:
				// Preserve the original file mode on write-back.
				if err := os.WriteFile(file.Path, []byte(rewritten), info.Mode().Perm()); err != nil {
					result.Err = fmt.Errorf("failed to write %s: %w", file.Path, err)
					return result
				}
				logger.Info("Rewrote file", "path", file.Path, "replacements", n)
			}
		}
	}

	result.Remaining = rw.Scan(scanned)
	return result
}

// ProcessAll processes every file concurrently (bounded) and streams
// results over the returned channel, which is closed once all files
// are done. Result order is completion order, not input order.
func ProcessAll(ctx context.Context, files []discovery.SourceFile, rw *rewrite.Rewriter, mode Mode) <-chan FileResult {
	logger.Info("Starting migration run", "mode", mode.String(), "file_count", len(files))

	resultChan := make(chan FileResult, 10)
	sem := semaphore.NewWeighted(maxConcurrentFiles)
	var wg sync.WaitGroup
	wg.Add(len(files))

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for _, file := range files {
		go func(f discovery.SourceFile) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				resultChan <- FileResult{File: f, Err: fmt.Errorf("failed to acquire worker slot for %s: %w", f.Identifier(), err)}
				return
			}
			defer sem.Release(1)

			resultChan <- ProcessFile(f, rw, mode)
		}(file)
	}

	return resultChan
}

// unifiedDiff renders the change to one file in unified diff format
// with a/ b/ header paths, the way git presents it.
func unifiedDiff(rel, before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + rel,
		ToFile:   "b/" + rel,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", rel, err)
	}
	return diff, nil
}
