// SPDX-License-Identifier: Apache-2.0

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateLoadingChanges state = iota
	stateFileList
	stateDiffView
	stateApplying
	stateError
)

const (
	headerHeight = 1 // Height reserved for the title line.
	footerHeight = 1 // Height reserved for the key help line.
)
