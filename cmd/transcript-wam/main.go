// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcript-wam CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/transcript-wam/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the persistent flags before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the transcript-wam CLI.
var rootCmd = &cobra.Command{
	Use:   "transcript-wam",
	Short: "Compute WAM and EIHWAM from academic transcripts",
	Long: `transcript-wam reads academic transcript documents, recovers the unit
results table (year, session, unit code, unit name, mark, grade, credit
points), and computes the credit-weighted average mark (WAM) and the
level-weighted average mark (EIHWAM).

Subcommands: calc computes both means, rows lists the recovered rows,
export writes an XLSX workbook, and history shows saved results.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transcript-wam.yaml or ~/.config/transcript-wam/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output, including every skipped line")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-wam")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcript-wam"))
		}
	}

	setDefaults(types.DefaultConfig())
	viper.SetEnvPrefix("TRANSCRIPT_WAM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key with viper so that environment
// variables such as TRANSCRIPT_WAM_DOCUMENT_BACKEND are seen by Unmarshal.
func setDefaults(cfg types.Config) {
	viper.SetDefault("document.backend", string(cfg.Document.Backend))
	viper.SetDefault("document.image", cfg.Document.Image)
	viper.SetDefault("section.mode", string(cfg.Section.Mode))
	viper.SetDefault("report.format", string(cfg.Report.Format))
	viper.SetDefault("history.data_dir", cfg.History.DataDir)
}

// newLogger builds the zap logger selected by --verbose and --log-format.
// Logs go to stderr so stdout carries only results.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log format %q (want console or json)", format)
	}

	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
