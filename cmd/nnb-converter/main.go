// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nnb-converter CLI, which turns
// Node.js notebooks (.nnb) into Markdown documents or plain scripts.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/josemreis/nnb-converter/internal/logging"
	"github.com/josemreis/nnb-converter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the loaded configuration before any command runs.
var logger = zap.NewNop()

// rootCmd is the base command for the nnb-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "nnb-converter",
	Short: "Convert Node.js notebooks to Markdown or JavaScript",
	Long: `nnb-converter converts a Node.js notebook (.nnb) into a Markdown document
or a plain JavaScript file written next to the notebook.

Markdown output keeps prose cells as-is and renders code cells as fenced
source blocks followed by their captured output. Script output keeps the
code and turns prose cells into block comments.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.LogLevel, os.Stderr)
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nnb-converter.yaml or ~/.config/nnb-converter/nnb-converter.yaml)")
	rootCmd.PersistentFlags().Int("spacing", types.DefaultSpacing, "number of newlines between rendered cells")
	rootCmd.PersistentFlags().String("log-level", types.DefaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	bindFlag("spacing", rootCmd.PersistentFlags().Lookup("spacing"))
	bindFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	defaults := types.DefaultConfig()
	viper.SetDefault("spacing", defaults.Spacing)
	viper.SetDefault("wrap_width", defaults.WrapWidth)
	viper.SetDefault("frontmatter", defaults.Frontmatter)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("preview.style", defaults.Preview.Style)
	viper.SetDefault("preview.width", defaults.Preview.Width)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nnb-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nnb-converter"))
		}
	}

	viper.SetEnvPrefix("NNB_CONVERTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlag ties a viper key to a flag so that the flag, when set, overrides
// the config file and environment.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// loadConfig resolves the effective configuration: defaults < config file <
// environment < flags.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		Spacing:     viper.GetInt("spacing"),
		WrapWidth:   viper.GetInt("wrap_width"),
		Frontmatter: viper.GetBool("frontmatter"),
		LogLevel:    viper.GetString("log_level"),
		Preview: types.PreviewConfig{
			Style: viper.GetString("preview.style"),
			Width: viper.GetInt("preview.width"),
		},
	}
	if viper.GetBool("verbose") {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
