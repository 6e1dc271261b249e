// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinytapeout/tt-upgrade/internal/shell"
	"github.com/tinytapeout/tt-upgrade/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run the migration every time an info.yaml is saved",
	Long: `Watch migrates the file once, then again whenever it changes on disk,
printing either the upgraded documents or the error that stopped the
migration. Stop it with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 0, "wait this long after the last change before migrating (default 100ms)")
	_ = viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	printer := shell.NewPrinter(stdout, useColor(cfg.Output.Color, stdout))

	w, err := watch.New(args[0], cfg.Watch, func(out shell.Output) {
		_ = printer.Print(out)
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return w.Run(ctx)
}
