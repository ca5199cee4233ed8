// SPDX-License-Identifier: Apache-2.0

// Package config handles application configuration: reading and writing
// the config file and resolving user-supplied paths. The loaded Config
// value is passed explicitly to whichever component needs it; there is
// no process-wide configuration singleton.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultExtensions are the file extensions migrated when the config
// does not override them.
var DefaultExtensions = []string{".py"}

// Config represents the top-level application configuration.
type Config struct {
	// LocalRoot is the default directory to migrate when no root
	// argument is given on the command line (optional)
	LocalRoot string `yaml:"local_root,omitempty"`

	// Extensions lists the file extensions considered source files
	// (defaults to .py when empty)
	Extensions []string `yaml:"extensions,omitempty"`

	// ExcludeDirs lists directory names skipped during discovery,
	// in addition to hidden directories
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`

	// RulesFile is the path to a YAML file with additional rename
	// rules appended to the built-in table (optional)
	RulesFile string `yaml:"rules_file,omitempty"`
}

// SourceExtensions returns the configured extension set, falling back
// to the defaults. Extensions are normalized to a leading dot.
func (c Config) SourceExtensions() []string {
	if len(c.Extensions) == 0 {
		return DefaultExtensions
	}
	exts := make([]string, len(c.Extensions))
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[i] = ext
	}
	return exts
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "flags-migrate", "config.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads a config file from an explicit path. A missing
// file is not an error: it yields the zero config.
func LoadConfigFile(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
