// SPDX-License-Identifier: Apache-2.0

package util

import "testing"

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "rename"); got != "1 rename" {
		t.Errorf("got %q", got)
	}
	if got := Pluralize(0, "file"); got != "0 files" {
		t.Errorf("got %q", got)
	}
	if got := Pluralize(3, "use"); got != "3 uses" {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("abcdefgh", 5); got != "abcd…" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("got %q", got)
	}
}
