// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// WindowsPlatform implements Platform for Windows
type WindowsPlatform struct{}

// GetConfigDir returns %IMR_CONFIG_DIR%, %APPDATA%\imr-extract or
// %USERPROFILE%\.imr-extract, in that order
func (w *WindowsPlatform) GetConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, AppName)
	}

	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		return filepath.Join(userProfile, "."+AppName)
	}

	return "." + AppName
}

// IsAbsolutePath checks if a path is absolute on Windows
func (w *WindowsPlatform) IsAbsolutePath(path string) bool {
	return filepath.IsAbs(path)
}

// NormalizePath cleans a Windows path. Paths pasted from Explorer keep their
// UNC prefix (\\server\share).
func (w *WindowsPlatform) NormalizePath(path string) string {
	normalized := filepath.Clean(path)

	if strings.HasPrefix(path, `\\`) && !strings.HasPrefix(normalized, `\\`) {
		normalized = `\` + normalized
	}

	return normalized
}
