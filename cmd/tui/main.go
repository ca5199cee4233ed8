// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"flags-migrate/internal/ui"
)

// RunTUI initializes and runs the Bubble Tea review application.
func RunTUI() {
	m := ui.InitialModel()
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
