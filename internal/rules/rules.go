// SPDX-License-Identifier: Apache-2.0

// Package rules defines the symbol rename table for the gflags to
// absl.flags migration and compiles it into the regular expressions
// applied by the rewriter.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule maps one legacy symbol name to its replacement. For dotted
// renames, Receivers lists the object or module tokens that must appear
// immediately before the symbol (including the trailing dot) for the
// rule to fire; a bare occurrence of Old is left alone.
//
// Pattern and Replace, when set, override the generated expression
// entirely. They exist for the handful of call rewrites that change
// more than a single token (e.g. UseGnuGetOpt keyword arguments).
type Rule struct {
	Old       string   `yaml:"old"`
	New       string   `yaml:"new"`
	Receivers []string `yaml:"receivers,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Replace   string   `yaml:"replace,omitempty"`
}

// compiledRule pairs a rule with its ready-to-apply expression.
type compiledRule struct {
	rule Rule
	re   *regexp.Regexp
	repl string
}

// Set is an ordered, read-only collection of rename rules. Rules are
// applied in table order, once per pass; order matters where one
// pattern is a prefix of another (the UseGnuGetOpt pair).
type Set struct {
	rules    []Rule
	compiled []compiledRule
	legacyRE *regexp.Regexp
}

// expr builds the whole-token expression for a rule. Receiver
// alternatives are captured so the replacement can carry the matched
// prefix through unchanged.
func (r Rule) expr() (pattern, replace string, err error) {
	if r.Pattern != "" {
		return r.Pattern, r.Replace, nil
	}
	if r.Old == "" || r.New == "" {
		return "", "", fmt.Errorf("rule must set old and new (got old=%q new=%q)", r.Old, r.New)
	}
	if len(r.Receivers) == 0 {
		return `\b` + regexp.QuoteMeta(r.Old) + `\b`, r.New, nil
	}
	quoted := make([]string, len(r.Receivers))
	for i, recv := range r.Receivers {
		if !strings.HasSuffix(recv, ".") {
			return "", "", fmt.Errorf("receiver %q for rule %q must end with '.'", recv, r.Old)
		}
		quoted[i] = regexp.QuoteMeta(recv)
	}
	pattern = `\b(` + strings.Join(quoted, "|") + `)` + regexp.QuoteMeta(r.Old) + `\b`
	replace = `${1}` + r.New
	return pattern, replace, nil
}

// NewSet compiles the given rules, rejecting duplicates within the same
// receiver scope.
func NewSet(rules []Rule) (*Set, error) {
	s := &Set{rules: rules}
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		pattern, replace, err := r.expr()
		if err != nil {
			return nil, err
		}
		if r.Pattern == "" {
			key := strings.Join(r.Receivers, ",") + "\x00" + r.Old
			if seen[key] {
				return nil, fmt.Errorf("duplicate rule for %q (receivers %v)", r.Old, r.Receivers)
			}
			seen[key] = true
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule for %q: %w", r.Old, err)
		}
		s.compiled = append(s.compiled, compiledRule{rule: r, re: re, repl: replace})
	}

	legacyRE, err := regexp.Compile(legacyExpr(rules))
	if err != nil {
		return nil, fmt.Errorf("failed to compile legacy scan expression: %w", err)
	}
	s.legacyRE = legacyRE
	return s, nil
}

// Rules returns the rules in table order.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Len reports the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Find returns the first rule whose Old name matches, or false.
func (s *Set) Find(old string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Old == old {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply runs every rule over src once, in table order, and returns the
// rewritten text. Non-matching text is preserved byte for byte.
func (s *Set) Apply(src string) string {
	out, _ := s.ApplyCount(src)
	return out
}

// ApplyCount is Apply plus the total number of replacements made.
func (s *Set) ApplyCount(src string) (string, int) {
	var n int
	for _, c := range s.compiled {
		matches := c.re.FindAllStringIndex(src, -1)
		if matches == nil {
			continue
		}
		n += len(matches)
		src = c.re.ReplaceAllString(src, c.repl)
	}
	return src, n
}

// LegacyPattern reports the compiled expression matching any remaining
// legacy API use, for scanning already-migrated (or unmigrated) text.
func (s *Set) LegacyPattern() *regexp.Regexp {
	return s.legacyRE
}

// legacySubmodules are the gflags submodules whose direct imports the
// scanner flags; absl.flags has no equivalents to import from.
var legacySubmodules = []string{
	"argument_parser",
	"exceptions",
	"flag",
	"flags_formatting_test",
	"flags_unicode_literals_test",
	"flagvalues",
	"validators",
}

// legacyExpr builds one alternation matching any receiver-qualified old
// name from the table plus direct gflags submodule imports. Pattern
// rules are excluded; their token half is already covered by a plain
// rule.
func legacyExpr(rules []Rule) string {
	var alts []string
	for _, r := range rules {
		if r.Pattern != "" {
			continue
		}
		var recv string
		if len(r.Receivers) > 0 {
			quoted := make([]string, len(r.Receivers))
			for i, rc := range r.Receivers {
				quoted[i] = regexp.QuoteMeta(rc)
			}
			recv = `(?:` + strings.Join(quoted, "|") + `)`
		}
		alts = append(alts, `(?:`+recv+regexp.QuoteMeta(r.Old)+`)`)
	}
	alts = append(alts, `(?:from gflags import (?:`+strings.Join(legacySubmodules, "|")+`))`)
	return `\b(?:` + strings.Join(alts, "|") + `)\b`
}
