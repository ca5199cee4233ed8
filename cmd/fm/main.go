// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"flags-migrate/cmd/cli"
	"flags-migrate/cmd/tui"
	"flags-migrate/internal/logger"
)

func main() {
	// If no arguments (or just the program name) are provided, run the
	// interactive review TUI. Otherwise, run the CLI.
	if len(os.Args) <= 1 {
		logger.InitLogger(true)
		tui.RunTUI()
	} else {
		logger.InitLogger(false)
		cli.RunCLI()
	}
}
