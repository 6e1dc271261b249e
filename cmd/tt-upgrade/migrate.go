// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tinytapeout/tt-upgrade/internal/logging"
	"github.com/tinytapeout/tt-upgrade/internal/report"
	"github.com/tinytapeout/tt-upgrade/internal/shell"
	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

const stdinName = "<stdin>"

var migrateCmd = &cobra.Command{
	Use:   "migrate [file]",
	Short: "Convert an info.yaml from yaml_version 4 to 6",
	Long: `Migrate reads a version 4 info.yaml from file, or from stdin when no file
is given, and prints the version 6 document and the datasheet Markdown.
Use --out and --docs to write them to files instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().String("out", "", "write the version 6 info.yaml to this path")
	migrateCmd.Flags().String("docs", "", "write the datasheet Markdown to this path")
	migrateCmd.Flags().Bool("diff", false, "print a unified diff of the input against the upgraded document")
	migrateCmd.Flags().Bool("check", false, "only report whether the file can be migrated")

	rootCmd.AddCommand(migrateCmd)
}

// migrateOptions carries the migrate flags.
type migrateOptions struct {
	name    string
	outPath string
	docPath string
	diff    bool
	check   bool
	color   bool
}

func runMigrate(cmd *cobra.Command, args []string) error {
	opts := migrateOptions{name: stdinName}
	opts.outPath, _ = cmd.Flags().GetString("out")
	opts.docPath, _ = cmd.Flags().GetString("docs")
	opts.diff, _ = cmd.Flags().GetBool("diff")
	opts.check, _ = cmd.Flags().GetBool("check")

	stdout := cmd.OutOrStdout()
	opts.color = useColor(types.ColorMode(viper.GetString("output.color")), stdout)

	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		opts.name = args[0]
		data, err = os.ReadFile(opts.name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", opts.name, err)
		}
	} else {
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return errors.New("provide an info.yaml path or pipe one on stdin")
		}
		data, err = io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading %s: %w", stdinName, err)
		}
	}

	return migrate(stdout, string(data), opts)
}

// migrate runs the conversion of raw and writes the results as opts asks.
func migrate(w io.Writer, raw string, opts migrateOptions) error {
	log := logging.Logger().With(zap.String("input", opts.name))
	printer := shell.NewPrinter(w, opts.color)

	out := shell.Run(raw)
	if out.Failed {
		log.Info("migration failed")
		if err := printer.PrintError(out.Err); err != nil {
			return err
		}
		return errReported
	}
	if opts.check {
		return nil
	}

	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, []byte(out.YAML), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.outPath, err)
		}
		log.Info("wrote info.yaml", zap.String("path", opts.outPath))
	}
	if opts.docPath != "" {
		if err := os.WriteFile(opts.docPath, []byte(out.Markdown), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.docPath, err)
		}
		log.Info("wrote datasheet", zap.String("path", opts.docPath))
	}

	if opts.diff {
		text, err := report.UnifiedDiff(raw, out.YAML, opts.name, opts.name+" (yaml_version 6)")
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	}
	if opts.outPath != "" || opts.docPath != "" {
		return nil
	}
	return printer.Print(out)
}
