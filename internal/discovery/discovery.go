// SPDX-License-Identifier: Apache-2.0

// Package discovery finds the source files a migration run operates on.
// It resolves the root directory to scan and walks it, collecting files
// whose extension marks them as migratable source.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"flags-migrate/internal/config"
	"flags-migrate/internal/logger"
)

// SourceFile represents one candidate file under the migration root.
type SourceFile struct {
	Path string // full path to the file
	Rel  string // path relative to the migration root, for display
}

// Identifier returns the display form of the file (its root-relative path).
func (f SourceFile) Identifier() string {
	if f.Rel != "" {
		return f.Rel
	}
	return f.Path
}

// ResolveRoot determines the directory to migrate: the explicit
// argument if given, else the configured local_root, else the current
// working directory. A configured or explicit root that does not exist
// or is not a directory is an error; there is no silent fallback.
func ResolveRoot(arg string, cfg config.Config) (string, error) {
	logger.Debug("Resolving migration root", "arg", arg, "configured_root", cfg.LocalRoot)

	candidate := arg
	source := "argument"
	if candidate == "" && cfg.LocalRoot != "" {
		candidate = cfg.LocalRoot
		source = "config local_root"
	}
	if candidate == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get working directory: %w", err)
		}
		logger.Debug("No root given, using working directory", "path", cwd)
		return cwd, nil
	}

	resolved, err := config.ResolvePath(candidate)
	if err != nil {
		logger.Warn("Could not resolve root path", "path", candidate, "error", err)
		resolved = candidate // Use original path for the Stat check
	}

	info, statErr := os.Stat(resolved)
	if statErr != nil {
		return "", fmt.Errorf("%s '%s' is invalid: %w", source, candidate, statErr)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s '%s' is not a directory", source, candidate)
	}

	logger.Info("Using migration root", "path", resolved, "source", source)
	return resolved, nil
}

// walkFiles visits every file under rootDir whose extension is in the
// configured set, skipping hidden directories and any directory named
// in exclude_dirs, in walk order.
func walkFiles(rootDir string, cfg config.Config, visit func(SourceFile)) error {
	exts := cfg.SourceExtensions()

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == rootDir {
				return nil
			}
			if strings.HasPrefix(name, ".") || slices.Contains(cfg.ExcludeDirs, name) {
				logger.Debug("Skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !slices.Contains(exts, filepath.Ext(name)) {
			return nil
		}

		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			rel = path
		}
		visit(SourceFile{Path: path, Rel: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}
	return nil
}

// FindSourceFiles walks rootDir and returns every migratable source
// file under it.
func FindSourceFiles(rootDir string, cfg config.Config) ([]SourceFile, error) {
	var files []SourceFile
	err := walkFiles(rootDir, cfg, func(f SourceFile) {
		files = append(files, f)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Source discovery completed", "root_dir", rootDir, "file_count", len(files))
	return files, nil
}

// StreamSourceFiles is FindSourceFiles with results delivered over
// channels while the walk is still running, for callers that want to
// start work (or drive a spinner) before the walk finishes. Both
// channels are closed when the walk completes.
func StreamSourceFiles(rootDir string, cfg config.Config) (<-chan SourceFile, <-chan error) {
	fileChan := make(chan SourceFile, 10)
	errorChan := make(chan error, 1)

	go func() {
		defer close(fileChan)
		defer close(errorChan)

		if err := walkFiles(rootDir, cfg, func(f SourceFile) {
			fileChan <- f
		}); err != nil {
			errorChan <- err
		}
	}()

	return fileChan, errorChan
}
