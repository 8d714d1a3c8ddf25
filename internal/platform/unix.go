// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"os"
	"path/filepath"
)

// UnixPlatform implements Platform for Linux, macOS and other Unix-like systems
type UnixPlatform struct{}

// GetConfigDir returns $IMR_CONFIG_DIR, $XDG_CONFIG_HOME/imr-extract or
// ~/.imr-extract, in that order
func (u *UnixPlatform) GetConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, AppName)
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, "."+AppName)
}

// IsAbsolutePath checks if a path is absolute on Unix
func (u *UnixPlatform) IsAbsolutePath(path string) bool {
	return filepath.IsAbs(path)
}

// NormalizePath cleans a Unix path
func (u *UnixPlatform) NormalizePath(path string) string {
	return filepath.Clean(path)
}
