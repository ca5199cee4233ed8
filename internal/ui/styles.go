// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	appliedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skippedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	identifierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	countStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true)

	diffAddStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	diffDelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	diffHunkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	mainContentBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("238")) // Light grey border

	// Footer / status bar styles
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	footerKeyStyle = lipgloss.NewStyle().
			Inherit(footerStyle).
			Foreground(lipgloss.Color("39"))

	footerSeparatorStyle = lipgloss.NewStyle().
				Inherit(footerStyle).
				Foreground(lipgloss.Color("240"))
)
