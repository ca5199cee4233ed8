// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"flags-migrate/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [old-name]",
	Short: "Print the rename table (or a single rule)",
	Long: `Prints the symbol rename table applied by migrate. With an argument,
prints only the rule for that legacy name. The table is authoritative:
no renames beyond it are ever inferred.`,
	Example:           "  fm rules\n  fm rules DEFINE_multistring",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: ruleCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		set := loadRuleSet()

		if len(args) == 1 {
			rule, ok := set.Find(args[0])
			if !ok {
				errorColor.Fprintf(os.Stderr, "Error: no rule for '%s'.\n", args[0])
				os.Exit(1)
			}
			printRule(rule)
			return
		}

		for _, rule := range set.Rules() {
			printRule(rule)
		}
	},
}

// loadRuleSet compiles the working rule set, honoring --rules and the
// configured rules_file the same way the batch commands do.
func loadRuleSet() *rules.Set {
	rulesFile := rulesFileFlag
	if rulesFile == "" {
		cfg, err := loadConfigQuiet()
		if err == nil {
			rulesFile = cfg.RulesFile
		}
	}

	set, err := rules.Load(rulesFile)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading rename rules: %v\n", err)
		os.Exit(1)
	}
	return set
}

func printRule(rule rules.Rule) {
	switch {
	case rule.Pattern != "":
		fmt.Printf("%-45s -> %s\n", rule.Pattern, rule.Replace)
	case len(rule.Receivers) > 0:
		old := fmt.Sprintf("{%s}%s", strings.Join(rule.Receivers, ","), rule.Old)
		fmt.Printf("%-45s -> %s\n", old, identifierColor.Sprint(rule.New))
	default:
		fmt.Printf("%-45s -> %s\n", rule.Old, identifierColor.Sprint(rule.New))
	}
}
