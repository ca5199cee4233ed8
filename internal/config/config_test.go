// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSourceExtensions_Default(t *testing.T) {
	assert.Equal(t, []string{".py"}, Config{}.SourceExtensions())
}

func TestSourceExtensions_Normalized(t *testing.T) {
	cfg := Config{Extensions: []string{"py", ".pyi", "txt"}}
	assert.Equal(t, []string{".py", ".pyi", ".txt"}, cfg.SourceExtensions())
}

func TestLoadConfigFile_Missing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("local_root: [nope"), 0644))

	_, err := LoadConfigFile(path)
	require.Error(t, err)
}

func TestLoadConfigFile_RoundTrip(t *testing.T) {
	want := Config{
		LocalRoot:   "~/src/project",
		Extensions:  []string{".py"},
		ExcludeDirs: []string{"vendor", "third_party"},
		RulesFile:   "~/rules.yaml",
	}

	data, err := yaml.Marshal(want)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0640))

	got, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ResolvePath("~/src/project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "src", "project"), got)

	// Paths without the prefix pass through untouched.
	got, err = ResolvePath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
