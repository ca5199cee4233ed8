// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk shape of a user rule file: a plain list of
// rules under a single key, so the file stays greppable.
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadFile reads additional rename rules from a YAML file. The
// returned rules are not compiled; append them to the built-ins and
// compile the combined table with NewSet.
func LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	for _, r := range rf.Rules {
		if r.Pattern == "" && (r.Old == "" || r.New == "") {
			return nil, fmt.Errorf("rules file %s: rule must set old and new", path)
		}
	}
	return rf.Rules, nil
}

// Load builds the working rule set: the built-in table, optionally
// extended by the rules file at path (empty path means built-ins only).
// User rules are appended after the built-ins so they cannot shadow
// table entries earlier in the pass.
func Load(path string) (*Set, error) {
	if path == "" {
		return Builtin()
	}
	extra, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	combined := make([]Rule, 0, len(builtinRules)+len(extra))
	combined = append(combined, builtinRules...)
	combined = append(combined, extra...)
	return NewSet(combined)
}
