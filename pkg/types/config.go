package types

import "time"

// ColorMode selects when terminal output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// LogConfig holds logger settings shared by all commands.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn or error (default warn).
	Level string `json:"level" yaml:"level"`

	// Development switches to the human-friendly console encoder.
	Development bool `json:"development" yaml:"development"`
}

// OutputConfig holds settings for how results are presented.
type OutputConfig struct {
	// Color selects styled output: auto, always or never.
	Color ColorMode `json:"color" yaml:"color"`
}

// WatchConfig holds settings for the live-update loop.
type WatchConfig struct {
	// Debounce is how long to wait for further writes before re-running the
	// migration (default 100ms).
	Debounce time.Duration `json:"debounce" yaml:"debounce"`
}

// UpgradeConfig groups all configuration of the tt-upgrade CLI.
type UpgradeConfig struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Output OutputConfig `json:"output" yaml:"output"`
	Watch  WatchConfig  `json:"watch" yaml:"watch"`
}
