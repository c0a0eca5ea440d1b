// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyBaseDir indicates the base directory path is empty.
	ErrEmptyBaseDir = errors.New("config: base directory must not be empty")

	// ErrRelativeBaseDir indicates the base directory path is not absolute.
	ErrRelativeBaseDir = errors.New("config: base directory must be an absolute path")

	// ErrInvalidWorkers indicates the worker count is not a positive integer.
	ErrInvalidWorkers = errors.New("config: workers must be a positive integer")

	// ErrBaseDirUnresolved indicates the platform data directory could not be determined.
	ErrBaseDirUnresolved = errors.New("config: cannot resolve user data directory")
)
