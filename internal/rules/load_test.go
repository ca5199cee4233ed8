// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write rule file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeRuleFile(t, `rules:
  - old: OldHelper
    new: new_helper
    receivers: ["util."]
  - old: PlainName
    new: plain_name
`)

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(loaded))
	}
	if loaded[0].Receivers[0] != "util." {
		t.Errorf("expected receiver 'util.', got %q", loaded[0].Receivers[0])
	}
}

func TestLoadFile_MissingNames(t *testing.T) {
	path := writeRuleFile(t, "rules:\n  - old: Lonely\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for rule without new name")
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing rules file")
	}
}

func TestLoad_EmptyPathIsBuiltin(t *testing.T) {
	set, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	builtin, err := Builtin()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != builtin.Len() {
		t.Errorf("expected %d rules, got %d", builtin.Len(), set.Len())
	}
}

func TestLoad_AppendsUserRules(t *testing.T) {
	path := writeRuleFile(t, "rules:\n  - old: OldHelper\n    new: new_helper\n")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := set.Apply("OldHelper() and FLAGS.Reset()"); got != "new_helper() and FLAGS.unparse_flags()" {
		t.Errorf("user rule not applied alongside built-ins: %q", got)
	}
}
