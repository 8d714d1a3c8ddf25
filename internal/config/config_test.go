// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"imr-extract/internal/platform"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, "imr.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Report.FilePrefix != "IMR_PDFs_" {
		t.Errorf("expected default prefix IMR_PDFs_, got %q", cfg.Report.FilePrefix)
	}
	if cfg.Report.SheetName != "Sheet1" {
		t.Errorf("expected default sheet Sheet1, got %q", cfg.Report.SheetName)
	}
	if cfg.Defaults.Debug || cfg.Defaults.NoColor {
		t.Error("expected debug and no_color to be off by default")
	}
	if cfg.Template.File != "" {
		t.Errorf("expected built-in template by default, got %q", cfg.Template.File)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir, `
defaults:
  debug: true
report:
  sheet_name: IMR
template:
  file: layouts/imr-v2.yaml
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Defaults.Debug {
		t.Error("expected debug=true")
	}
	if cfg.Report.SheetName != "IMR" {
		t.Errorf("expected sheet_name=IMR, got %q", cfg.Report.SheetName)
	}
	if cfg.Report.FilePrefix != "IMR_PDFs_" {
		t.Errorf("expected prefix default to survive, got %q", cfg.Report.FilePrefix)
	}
	want := filepath.Join(dir, "layouts", "imr-v2.yaml")
	if cfg.Template.File != want {
		t.Errorf("expected template path %q, got %q", want, cfg.Template.File)
	}
	if cfg.Source != configPath {
		t.Errorf("expected source %q, got %q", configPath, cfg.Source)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"empty prefix":    "report:\n  file_prefix: \"  \"\n",
		"prefix with dir": "report:\n  file_prefix: out/IMR_\n",
		"long sheet name": "report:\n  sheet_name: this sheet name is far too long for excel\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, t.TempDir(), content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	cfg, err := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected the load error to be reported")
	}
	if cfg == nil || cfg.Report.FilePrefix != "IMR_PDFs_" {
		t.Fatal("expected default config as fallback")
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unclosed flow sequence", "report: [unclosed"},
		{"wrong value type", "defaults:\n  debug: notabool\n"},
		{"scalar document", "just a string\n"},
		{"sequence document", "- debug\n- no_color\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, t.TempDir(), tt.content)

			cfg, err := LoadConfigOrDefault(configPath)
			if err == nil {
				t.Error("expected parse error")
			}
			if cfg == nil || cfg.Report.FilePrefix != "IMR_PDFs_" {
				t.Fatal("expected default config as fallback")
			}
		})
	}
}

func TestLoadConfig_EmptyFileUsesDefaults(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Report.SheetName != "Sheet1" {
		t.Errorf("expected default sheet name, got %q", cfg.Report.SheetName)
	}
}

func TestLoadConfigOrDefault_FindsPlatformConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(platform.ConfigDirEnv, dir)
	chdir(t, t.TempDir())

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("defaults:\n  no_color: true\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfigOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Defaults.NoColor {
		t.Error("expected no_color from platform config file")
	}
}

func TestLoadConfigOrDefault_NoFileFound(t *testing.T) {
	t.Setenv(platform.ConfigDirEnv, t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadConfigOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("expected defaults, got config from %q", cfg.Source)
	}
}
