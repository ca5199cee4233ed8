// SPDX-License-Identifier: Apache-2.0

// View rendering for the review TUI.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flags-migrate/internal/util"
)

func (m *model) View() string {
	header := titleStyle.Render("flags-migrate — gflags → absl.flags review")

	var body string
	switch m.currentState {
	case stateLoadingChanges:
		body = fmt.Sprintf("%s Scanning for pending renames...", m.spin.View())

	case stateApplying:
		body = fmt.Sprintf("%s %s", m.spin.View(), m.status)

	case stateFileList:
		body = m.viewFileList()

	case stateDiffView:
		body = m.diffView.View()

	case stateError:
		body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.width > 2 {
		body = mainContentBorderStyle.Width(m.width - 2).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.viewFooter())
}

func (m *model) viewFileList() string {
	if len(m.changes) == 0 {
		return statusStyle.Render(m.status)
	}

	s := strings.Builder{}
	for i, change := range m.changes {
		cursor := " "
		if m.cursor == i {
			cursor = cursorStyle.Render(">")
		}

		var marker string
		switch {
		case change.result.Err != nil:
			marker = errorStyle.Render("[error]  ")
		case change.applied:
			marker = appliedStyle.Render("[applied]")
		case change.skipped:
			marker = skippedStyle.Render("[skipped]")
		default:
			marker = pendingStyle.Render("[pending]")
		}

		name := util.Truncate(change.result.File.Identifier(), maxNameWidth(m.width))
		line := fmt.Sprintf("%s %s %s", cursor, marker, identifierStyle.Render(name))
		if change.result.Err == nil {
			line += countStyle.Render(fmt.Sprintf("  %s", util.Pluralize(change.result.Replacements, "rename")))
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	if m.status != "" {
		s.WriteString("\n")
		s.WriteString(m.status)
	}
	return s.String()
}

func (m *model) viewFooter() string {
	type hint struct{ keys, desc string }
	var hints []hint

	switch m.currentState {
	case stateFileList:
		hints = []hint{
			{"↑/k ↓/j", "navigate"},
			{"enter", "diff"},
			{"a", "apply"},
			{"A", "apply all"},
			{"s", "skip"},
			{"r", "reload"},
			{"q", "quit"},
		}
	case stateDiffView:
		hints = []hint{
			{"↑/↓", "scroll"},
			{"a", "apply"},
			{"s", "skip"},
			{"esc", "back"},
			{"q", "quit"},
		}
	case stateError:
		hints = []hint{
			{"r", "retry"},
			{"q", "quit"},
		}
	default:
		hints = []hint{{"q", "quit"}}
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = footerKeyStyle.Render(h.keys) + footerStyle.Render(" "+h.desc)
	}
	return footerStyle.Render(strings.Join(parts, footerSeparatorStyle.Render(" | ")))
}

// renderDiff colors a unified diff for the viewport.
func renderDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = diffAddStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = diffDelStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = diffHunkStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// maxNameWidth leaves room for the cursor, marker, and rename count.
func maxNameWidth(width int) int {
	w := width - 30
	if w < 20 {
		w = 20
	}
	return w
}
