// SPDX-License-Identifier: Apache-2.0

// Package ui implements the interactive review TUI: a list of files the
// migration would change, a diff view for the selected file, and keys
// to apply or skip each rewrite.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"flags-migrate/internal/rewrite"
	"flags-migrate/internal/util"
)

type model struct {
	currentState state

	rootDir  string
	changes  []pendingChange
	rewriter *rewrite.Rewriter

	cursor   int
	status   string // one-line status shown above the footer
	err      error
	width    int
	height   int
	keys     KeyMap
	spin     spinner.Model
	diffView viewport.Model
}

// InitialModel builds the model in its loading state.
func InitialModel() model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	return model{
		currentState: stateLoadingChanges,
		keys:         DefaultKeyMap,
		spin:         sp,
		diffView:     viewport.New(0, 0),
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadChangesCmd())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeDiffView()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.currentState != stateLoadingChanges && m.currentState != stateApplying {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case changesLoadedMsg:
		m.rootDir = msg.rootDir
		m.changes = msg.changes
		m.rewriter = msg.rewriter
		m.cursor = 0
		m.currentState = stateFileList
		if len(m.changes) == 0 {
			m.status = "Nothing to migrate: no files under " + m.rootDir + " need rewriting."
		} else {
			m.status = fmt.Sprintf("%s pending under %s", util.Pluralize(len(m.changes), "change"), m.rootDir)
		}
		return m, nil

	case loadErrorMsg:
		m.err = msg.err
		m.currentState = stateError
		return m, nil

	case fileAppliedMsg:
		m.currentState = stateFileList
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Apply failed: %v", msg.err))
			return m, nil
		}
		m.changes[msg.index].applied = true
		m.status = successStyle.Render("Applied " + m.changes[msg.index].result.File.Identifier())
		return m, nil

	case allAppliedMsg:
		m.currentState = stateFileList
		for i := range m.changes {
			if !m.changes[i].skipped && m.changes[i].result.Err == nil {
				m.changes[i].applied = true
			}
		}
		if len(msg.errs) > 0 {
			m.status = errorStyle.Render(fmt.Sprintf("Applied %s, %s failed", util.Pluralize(msg.applied, "file"), util.Pluralize(len(msg.errs), "file")))
		} else {
			m.status = successStyle.Render(fmt.Sprintf("Applied %s", util.Pluralize(msg.applied, "file")))
		}
		return m, nil
	}

	if m.currentState == stateDiffView {
		var cmd tea.Cmd
		m.diffView, cmd = m.diffView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.currentState {
	case stateFileList:
		return m.handleFileListKeys(msg)

	case stateDiffView:
		switch {
		case key.Matches(msg, m.keys.Esc):
			m.currentState = stateFileList
			return m, nil
		case key.Matches(msg, m.keys.Apply):
			return m.applySelected()
		case key.Matches(msg, m.keys.Skip):
			m.skipSelected()
			m.currentState = stateFileList
			return m, nil
		}
		var cmd tea.Cmd
		m.diffView, cmd = m.diffView.Update(msg)
		return m, cmd

	case stateError:
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Reload) {
			m.err = nil
			m.currentState = stateLoadingChanges
			return m, tea.Batch(m.spin.Tick, loadChangesCmd())
		}
	}
	return m, nil
}

func (m *model) handleFileListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.changes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if sel := m.selected(); sel != nil && sel.result.Err == nil {
			m.diffView.SetContent(renderDiff(sel.result.Diff))
			m.diffView.GotoTop()
			m.resizeDiffView()
			m.currentState = stateDiffView
		}

	case key.Matches(msg, m.keys.Apply):
		return m.applySelected()

	case key.Matches(msg, m.keys.ApplyAll):
		if len(m.changes) > 0 {
			m.currentState = stateApplying
			m.status = "Applying all pending changes..."
			return m, tea.Batch(m.spin.Tick, applyAllCmd(m.changes, m.rewriter))
		}

	case key.Matches(msg, m.keys.Skip):
		m.skipSelected()

	case key.Matches(msg, m.keys.Reload):
		m.currentState = stateLoadingChanges
		m.status = ""
		return m, tea.Batch(m.spin.Tick, loadChangesCmd())
	}
	return m, nil
}

func (m *model) selected() *pendingChange {
	if m.cursor < 0 || m.cursor >= len(m.changes) {
		return nil
	}
	return &m.changes[m.cursor]
}

func (m *model) applySelected() (tea.Model, tea.Cmd) {
	sel := m.selected()
	if sel == nil || sel.applied || sel.result.Err != nil {
		return m, nil
	}
	m.currentState = stateApplying
	m.status = "Applying " + sel.result.File.Identifier() + "..."
	return m, tea.Batch(m.spin.Tick, applyFileCmd(m.cursor, *sel, m.rewriter))
}

func (m *model) skipSelected() {
	if sel := m.selected(); sel != nil && !sel.applied {
		sel.skipped = !sel.skipped
	}
}

func (m *model) resizeDiffView() {
	contentHeight := m.height - headerHeight - footerHeight - 2 // borders
	if contentHeight < 1 {
		contentHeight = 1
	}
	width := m.width - 2
	if width < 1 {
		width = 1
	}
	m.diffView.Width = width
	m.diffView.Height = contentHeight
}
