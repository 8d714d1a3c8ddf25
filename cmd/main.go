// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"imr-extract/internal/config"
	"imr-extract/internal/help"
	"imr-extract/internal/observability"
	"imr-extract/internal/template"
	"imr-extract/internal/version"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	debug := flag.Bool("debug", false, "Show per-document extraction steps and field values")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showTemplate := flag.Bool("show-template", false, "List the field rectangles and any that overlap, then exit")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg, err := config.LoadConfigOrDefault(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
	}

	if *noColor || cfg.Defaults.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	if *showHelp {
		help.NewSystem(os.Stdout).ShowGeneralHelp()
		return
	}

	tmpl, err := loadTemplate(cfg)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showTemplate {
		help.NewSystem(os.Stdout).ShowTemplate(tmpl)
		return
	}

	opts := runOptions{
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		template: tmpl,
		config:   cfg,
	}
	if *debug || cfg.Defaults.Debug {
		opts.observer = observability.NewDebugObserver(os.Stderr)
	}

	os.Exit(run(opts))
}

// loadTemplate returns the template file named in the configuration, or the
// built-in IMR layout
func loadTemplate(cfg *config.Config) (*template.Template, error) {
	if cfg.Template.File == "" {
		return template.IMR(), nil
	}
	tmpl, err := template.Load(cfg.Template.File)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", cfg.Template.File, err)
	}
	return tmpl, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
