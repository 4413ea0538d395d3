// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidServerConfigs is returned when the merged configuration has
	// no HTTP address or carries negative limits/timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs is returned when the log level cannot be parsed.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrUnsupportedConfigFile is returned for config files whose extension
	// is neither .json, .yaml nor .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
