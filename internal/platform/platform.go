// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"runtime"
)

// AppName is used for configuration directory names
const AppName = "imr-extract"

// ConfigDirEnv overrides the configuration directory on every platform
const ConfigDirEnv = "IMR_CONFIG_DIR"

// Platform defines the platform-specific operations used by the tool
type Platform interface {
	GetConfigDir() string
	NormalizePath(path string) string
	IsAbsolutePath(path string) bool
}

// GetPlatform returns the appropriate platform implementation for the current OS
func GetPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return &WindowsPlatform{}
	default:
		return &UnixPlatform{}
	}
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return runtime.GOOS == "windows"
}
