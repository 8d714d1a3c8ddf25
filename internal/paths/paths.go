// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"path/filepath"

	"imr-extract/internal/platform"
)

// GetConfigDir returns the imr-extract configuration directory
func GetConfigDir() string {
	return platform.GetPlatform().GetConfigDir()
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// NormalizePath normalizes a file path for the current platform
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	return platform.GetPlatform().NormalizePath(path)
}

// IsAbsolutePath checks if a path is absolute on the current platform
func IsAbsolutePath(path string) bool {
	return platform.GetPlatform().IsAbsolutePath(path)
}

// ValidatePath validates a path for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return nil
	}

	if platform.IsWindows() {
		return validateWindowsPath(path)
	}
	return validateUnixPath(path)
}

// validateWindowsPath rejects characters Windows does not allow in names
func validateWindowsPath(path string) error {
	invalidChars := []rune{'<', '>', ':', '"', '|', '?', '*'}
	for i, char := range path {
		for _, invalid := range invalidChars {
			if char != invalid {
				continue
			}
			// C:
			if char == ':' && i == 1 {
				continue
			}
			return &PathValidationError{
				Path:   path,
				Reason: "contains invalid character: " + string(char),
			}
		}
	}

	if len(path) > 32767 {
		return &PathValidationError{
			Path:   path,
			Reason: "path exceeds maximum length of 32,767 characters",
		}
	}
	return nil
}

// validateUnixPath rejects null bytes
func validateUnixPath(path string) error {
	for _, char := range path {
		if char == 0 {
			return &PathValidationError{
				Path:   path,
				Reason: "contains null byte",
			}
		}
	}
	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
