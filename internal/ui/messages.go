// SPDX-License-Identifier: Apache-2.0

// Message types for the Bubble Tea Model-View-Update loop.

package ui

import (
	"flags-migrate/internal/rewrite"
	"flags-migrate/internal/runner"
)

// Pending-change discovery messages
type changesLoadedMsg struct {
	rootDir  string
	changes  []pendingChange
	rewriter *rewrite.Rewriter
}
type loadErrorMsg struct{ err error }

// Review action messages
type fileAppliedMsg struct {
	index int // index into model.changes
	err   error
}
type allAppliedMsg struct {
	applied int
	errs    []error
}

// pendingChange is one file the rewrite would modify, with the diff the
// user reviews before applying.
type pendingChange struct {
	result  runner.FileResult
	applied bool
	skipped bool
}
