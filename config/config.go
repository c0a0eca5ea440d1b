// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// AppDirName is the directory created under the platform data directory.
const AppDirName = "idstore"

// Environment variables read by FromEnv.
const (
	EnvBaseDir  = "IDSTORE_BASE_DIR"
	EnvWorkers  = "IDSTORE_WORKERS"
	EnvLogLevel = "IDSTORE_LOG_LEVEL"
)

// Config holds the settings shared by every store opened with it.
type Config struct {
	// BaseDir is the parent of every store directory. Empty means
	// DefaultBaseDir.
	BaseDir string

	// Workers bounds how many read tasks a store runs at once.
	Workers int

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// DefaultConfig returns a Config with a resolved base directory, one
// worker per available CPU and "info" logging. BaseDir is left empty if
// the platform data directory cannot be resolved.
func DefaultConfig() Config {
	base, _ := DefaultBaseDir()
	return Config{
		BaseDir:  base,
		Workers:  runtime.GOMAXPROCS(0),
		LogLevel: "info",
	}
}

// DefaultBaseDir resolves the per-user application data root:
// $XDG_DATA_HOME/idstore when set, ~/.local/share/idstore on Unix, and
// the user config directory on darwin and windows.
func DefaultBaseDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}

	switch runtime.GOOS {
	case "darwin", "windows":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrBaseDirUnresolved, err)
		}
		return filepath.Join(dir, AppDirName), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrBaseDirUnresolved, err)
		}
		return filepath.Join(home, ".local", "share", AppDirName), nil
	}
}

// FromEnv returns DefaultConfig with any IDSTORE_* variables applied.
// The result is validated.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv(EnvBaseDir)); v != "" {
		cfg.BaseDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidWorkers, EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
