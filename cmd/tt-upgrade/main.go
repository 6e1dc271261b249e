// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tt-upgrade CLI, which converts
// Tiny Tapeout info.yaml files from schema version 4 to version 6.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tinytapeout/tt-upgrade/internal/logging"
	"github.com/tinytapeout/tt-upgrade/internal/watch"
	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errReported marks a failure whose message has already been shown.
var errReported = errors.New("migration failed")

// rootCmd is the base command for the tt-upgrade CLI.
var rootCmd = &cobra.Command{
	Use:   "tt-upgrade",
	Short: "Upgrade Tiny Tapeout info.yaml files to yaml_version 6",
	Long: `tt-upgrade reads a Tiny Tapeout project's info.yaml in schema version 4 and
produces the equivalent version 6 document together with the project
datasheet (docs/info.md) built from the documentation fields.

Use migrate for a one-shot conversion and watch to re-run the conversion
every time the file is saved.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logging.SetLogger(l)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Logger().Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tt-upgrade.yaml or ~/.config/tt-upgrade/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, or error (default warn)")
	rootCmd.PersistentFlags().String("color", string(types.ColorAuto), "colour output: auto, always, or never")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output.color", rootCmd.PersistentFlags().Lookup("color"))

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.development", false)
	viper.SetDefault("output.color", string(types.ColorAuto))
	viper.SetDefault("watch.debounce", watch.DefaultDebounce)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tt-upgrade")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tt-upgrade"))
		}
	}

	viper.SetEnvPrefix("TT_UPGRADE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the typed configuration from flags, environment and
// config file.
func loadConfig() (types.UpgradeConfig, error) {
	cfg := types.UpgradeConfig{
		Log: types.LogConfig{
			Level:       viper.GetString("log.level"),
			Development: viper.GetBool("log.development"),
		},
		Output: types.OutputConfig{
			Color: types.ColorMode(strings.ToLower(viper.GetString("output.color"))),
		},
		Watch: types.WatchConfig{
			Debounce: viper.GetDuration("watch.debounce"),
		},
	}
	switch cfg.Output.Color {
	case types.ColorAuto, types.ColorAlways, types.ColorNever:
	default:
		return cfg, fmt.Errorf("invalid colour mode %q: expected auto, always, or never", cfg.Output.Color)
	}
	return cfg, nil
}

// useColor reports whether styled output should be written to w.
func useColor(mode types.ColorMode, w io.Writer) bool {
	switch mode {
	case types.ColorAlways:
		return true
	case types.ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return isTerminal(w)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
