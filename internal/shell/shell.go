// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell is the boundary between the migrator and whatever shows its
// results. Run turns every outcome, including a panic inside the migrator,
// into an Output holding either both documents or one error message.
package shell

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/tinytapeout/tt-upgrade/internal/logging"
	"github.com/tinytapeout/tt-upgrade/internal/upgrade"
)

// Output is what a display shows after one migration attempt. Exactly one
// of {YAML and Markdown} or {Err} is set.
type Output struct {
	YAML     string
	Markdown string
	Err      string
	Failed   bool
}

// MigrateFunc converts raw info.yaml text.
type MigrateFunc func(raw string) (*upgrade.Result, error)

// Run migrates raw with upgrade.Migrate.
func Run(raw string) Output {
	return RunWith(upgrade.Migrate, raw)
}

// RunWith migrates raw with migrate. It never panics: a panic is reported
// as an internal error carrying its stack trace.
func RunWith(migrate MigrateFunc, raw string) (out Output) {
	log := logging.Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error("migration panicked", zap.Any("panic", r))
			out = Output{
				Failed: true,
				Err:    fmt.Sprintf("internal error: %v\n\n%s", r, debug.Stack()),
			}
		}
	}()

	res, err := migrate(raw)
	if err != nil {
		log.Debug("migration failed", zap.Error(err))
		return Output{Failed: true, Err: err.Error()}
	}
	if res == nil {
		return Output{Failed: true, Err: "internal error: migration returned no result"}
	}
	log.Debug("migration succeeded",
		zap.Int("yaml_bytes", len(res.YAML)),
		zap.Int("markdown_bytes", len(res.Markdown)))
	return Output{YAML: res.YAML, Markdown: res.Markdown}
}
