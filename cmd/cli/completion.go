// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"flags-migrate/internal/config"
	"flags-migrate/internal/rules"
)

// loadConfigQuiet loads the config ignoring errors; completion must
// never fail loudly.
func loadConfigQuiet() (config.Config, error) {
	return config.LoadConfig()
}

// ruleCompletionFunc completes legacy symbol names for 'fm rules'.
func ruleCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	rulesFile := rulesFileFlag
	if rulesFile == "" {
		if cfg, err := loadConfigQuiet(); err == nil {
			rulesFile = cfg.RulesFile
		}
	}
	set, err := rules.Load(rulesFile)
	if err != nil {
		// Fall back to the built-ins; a broken user rules file should
		// not break completion of the table entries.
		if set, err = rules.Builtin(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}

	var names []string
	seen := make(map[string]bool)
	for _, rule := range set.Rules() {
		if seen[rule.Old] || !strings.HasPrefix(rule.Old, toComplete) {
			continue
		}
		seen[rule.Old] = true
		names = append(names, rule.Old+"\t-> "+rule.New)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
