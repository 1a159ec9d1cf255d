// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/transcript-wam/pkg/types"
)

// addDocumentFlags registers the flags shared by commands that read
// transcript documents.
func addDocumentFlags(fs *pflag.FlagSet) {
	fs.String("backend", "", "document backend: pdf, text, or pdftotext (default pdf)")
	fs.String("image", "", "container image for the pdftotext backend")
	fs.String("section-mode", "", "section scan: continuous or per-page (default continuous)")
}

// loadConfig layers defaults, the config file and environment (through
// viper), and explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("backend") {
		v, _ := fs.GetString("backend")
		cfg.Document.Backend = types.DocumentBackend(v)
	}
	if fs.Changed("image") {
		cfg.Document.Image, _ = fs.GetString("image")
	}
	if fs.Changed("section-mode") {
		v, _ := fs.GetString("section-mode")
		cfg.Section.Mode = types.SectionMode(v)
	}
	if fs.Changed("format") {
		v, _ := fs.GetString("format")
		cfg.Report.Format = types.OutputFormat(v)
	}
	if fs.Changed("data-dir") {
		cfg.History.DataDir, _ = fs.GetString("data-dir")
	}

	switch cfg.Section.Mode {
	case types.SectionContinuous, types.SectionPerPage:
	default:
		return cfg, fmt.Errorf("unknown section mode %q (want continuous or per-page)", cfg.Section.Mode)
	}
	return cfg, nil
}
