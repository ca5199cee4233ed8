// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"flags-migrate/internal/config"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func rels(files []SourceFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Rel
	}
	return out
}

func TestFindSourceFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.py":          "",
		"README.md":        "",
		"pkg/util.py":      "",
		"pkg/data.txt":     "",
		".git/hooks.py":    "",
		"pkg/.cache/c.py":  "",
		"vendor/old.py":    "",
		"pkg/deep/leaf.py": "",
	})

	cfg := config.Config{ExcludeDirs: []string{"vendor"}}
	files, err := FindSourceFiles(root, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := rels(files)
	want := map[string]bool{
		"main.py":          true,
		"pkg/util.py":      true,
		"pkg/deep/leaf.py": true,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(got), got)
	}
	for _, rel := range got {
		if !want[rel] {
			t.Errorf("unexpected file %q", rel)
		}
	}
}

func TestFindSourceFiles_CustomExtensions(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":  "",
		"b.pyi": "",
		"c.txt": "",
	})

	cfg := config.Config{Extensions: []string{"py", ".pyi"}}
	files, err := FindSourceFiles(root, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", rels(files))
	}
}

func TestStreamSourceFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py": "",
		"b.py": "",
	})

	fileChan, errorChan := StreamSourceFiles(root, config.Config{})

	var count int
	for range fileChan {
		count++
	}
	if err := <-errorChan; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 files, got %d", count)
	}
}

func TestResolveRoot_ExplicitArg(t *testing.T) {
	root := t.TempDir()
	got, err := ResolveRoot(root, config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("expected %q, got %q", root, got)
	}
}

func TestResolveRoot_InvalidArg(t *testing.T) {
	_, err := ResolveRoot(filepath.Join(t.TempDir(), "missing"), config.Config{})
	if err == nil {
		t.Fatal("expected error for nonexistent root")
	}
}

func TestResolveRoot_FileNotDir(t *testing.T) {
	root := writeTree(t, map[string]string{"f.py": ""})
	_, err := ResolveRoot(filepath.Join(root, "f.py"), config.Config{})
	if err == nil {
		t.Fatal("expected error for root that is a file")
	}
}

func TestResolveRoot_ConfiguredRoot(t *testing.T) {
	root := t.TempDir()
	got, err := ResolveRoot("", config.Config{LocalRoot: root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("expected configured root %q, got %q", root, got)
	}
}

func TestResolveRoot_InvalidConfiguredRootIsError(t *testing.T) {
	cfg := config.Config{LocalRoot: filepath.Join(t.TempDir(), "missing")}
	if _, err := ResolveRoot("", cfg); err == nil {
		t.Fatal("expected error, not a fallback, for invalid configured root")
	}
}

func TestResolveRoot_DefaultsToWorkingDirectory(t *testing.T) {
	got, err := ResolveRoot("", config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if got != cwd {
		t.Errorf("expected %q, got %q", cwd, got)
	}
}
