// SPDX-License-Identifier: Apache-2.0

// Package rewrite applies a rename rule set to source text and scans
// text for remaining legacy API uses. It works on pattern text only:
// there is no semantic model of the code underneath, so false positives
// (an unrelated identifier sharing a mapped name) and false negatives
// (renames hidden behind aliasing or dynamic attribute access) are
// accepted behavior, not defects.
package rewrite

import (
	"strings"

	"flags-migrate/internal/rules"
)

// Rewriter rewrites source text according to a compiled rule set.
type Rewriter struct {
	set *rules.Set
}

// New returns a Rewriter over the given rule set.
func New(set *rules.Set) *Rewriter {
	return &Rewriter{set: set}
}

// Rules exposes the underlying rule set.
func (r *Rewriter) Rules() *rules.Set {
	return r.set
}

// Rewrite applies every rule once, in table order, and returns the
// rewritten text together with the number of replacements made.
// Rewriting already-migrated text is a no-op.
func (r *Rewriter) Rewrite(src string) (string, int) {
	return r.set.ApplyCount(src)
}

// Use records one line still referring to a legacy API.
type Use struct {
	Line int    // 1-based line number
	Text string // the full line, as found
}

// Scan reports every line of src that still contains a legacy API
// reference. An empty result means the text is fully migrated (as far
// as pattern matching can tell).
func (r *Rewriter) Scan(src string) []Use {
	legacy := r.set.LegacyPattern()

	var uses []Use
	for i, line := range strings.Split(src, "\n") {
		if legacy.MatchString(line) {
			uses = append(uses, Use{Line: i + 1, Text: line})
		}
	}
	return uses
}
