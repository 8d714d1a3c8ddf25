// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"imr-extract/internal/paths"
	"imr-extract/internal/report"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Defaults struct {
		Debug   bool `yaml:"debug"`
		NoColor bool `yaml:"no_color"`
	} `yaml:"defaults"`

	// Report file settings
	Report struct {
		FilePrefix string `yaml:"file_prefix"`
		SheetName  string `yaml:"sheet_name"`
	} `yaml:"report"`

	// Template overrides the built-in field layout
	Template struct {
		File string `yaml:"file"`
	} `yaml:"template"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `yaml:"-"`
}

// configFileNames are checked in the working directory, in order
var configFileNames = []string{
	"imr.yaml",
	"imr.yml",
	".imr-extract.yaml",
	".imr-extract.yml",
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Report.FilePrefix = report.DefaultFilePrefix
	config.Report.SheetName = report.DefaultSheetName

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if len(doc.Content) > 0 {
		if root := doc.Content[0]; root.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("error parsing config file: line %d: top level must be a mapping", root.Line)
		}
		if err := doc.Decode(config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	config.Source = cleanPath

	// Relative template paths are resolved against the config file
	if config.Template.File != "" && !paths.IsAbsolutePath(config.Template.File) {
		config.Template.File = filepath.Join(filepath.Dir(cleanPath), config.Template.File)
	}
	config.Template.File = paths.NormalizePath(config.Template.File)

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in the working directory and
// then in the platform configuration directory
func FindConfigFile() string {
	for _, name := range configFileNames {
		if fileExists(name) {
			return name
		}
	}

	if standardConfig := paths.GetConfigFile(); fileExists(standardConfig) {
		return standardConfig
	}
	return ""
}

// ValidateConfig checks the report and template settings
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if strings.TrimSpace(config.Report.FilePrefix) == "" {
		return fmt.Errorf("report.file_prefix cannot be empty")
	}
	if strings.ContainsAny(config.Report.FilePrefix, `/\`) {
		return fmt.Errorf("report.file_prefix cannot contain path separators")
	}
	if err := paths.ValidatePath(config.Report.FilePrefix); err != nil {
		return fmt.Errorf("invalid report.file_prefix: %w", err)
	}

	// Excel limits sheet names to 31 characters
	if name := strings.TrimSpace(config.Report.SheetName); name == "" || len([]rune(name)) > 31 {
		return fmt.Errorf("report.sheet_name must be 1 to 31 characters")
	}

	if err := paths.ValidatePath(config.Template.File); err != nil {
		return fmt.Errorf("invalid template.file: %w", err)
	}
	return nil
}

// LoadConfigOrDefault loads configFile, or the first file found by
// FindConfigFile when configFile is empty. The error from a broken file is
// returned along with the default configuration so callers can warn and go on.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
		return cfg, err
	}
	return cfg, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
