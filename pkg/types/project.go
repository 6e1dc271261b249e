// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines data structures shared by the tt-upgrade packages:
// the flattened project record that renderers consume, pin descriptions, and
// the CLI configuration.
package types

// PinCount is the number of pins in each direction of the pinout block.
const PinCount = 8

// PinKind tags the variant held by a PinEntry.
type PinKind int

const (
	// PinEmpty is an unused or undescribed pin.
	PinEmpty PinKind = iota
	// PinNamed is a single-key mapping entry such as {clk: "system clock"}.
	PinNamed
	// PinPlain is a free-text description.
	PinPlain
)

// PinEntry is one pin description from an inputs, outputs or bidirectional
// list. The variant is decided once when the entry is read.
type PinEntry struct {
	Kind        PinKind
	Name        string
	Description string
	Text        string
}

// EmptyPin returns an entry for an unused pin.
func EmptyPin() PinEntry { return PinEntry{Kind: PinEmpty} }

// NamedPin returns an entry for a {name: description} mapping.
func NamedPin(name, description string) PinEntry {
	return PinEntry{Kind: PinNamed, Name: name, Description: description}
}

// PlainPin returns an entry holding free text.
func PlainPin(text string) PinEntry { return PinEntry{Kind: PinPlain, Text: text} }

// String returns the text written into the pinout block for the pin.
func (p PinEntry) String() string {
	switch p.Kind {
	case PinNamed:
		return p.Name + ": " + p.Description
	case PinPlain:
		return p.Text
	default:
		return ""
	}
}

// Pinout holds the fixed eight pin slots of one direction.
type Pinout [PinCount]PinEntry

// ProjectInfo is the flattened record the v6 info.yaml and the datasheet are
// rendered from. Every field is already defaulted.
//
// Fields suffixed with Literal hold the value serialized as a YAML/JSON
// literal: strings are quoted, integers are bare decimal digits.
type ProjectInfo struct {
	// IsWokwi is true when the design comes from a Wokwi project instead of
	// HDL source files.
	IsWokwi bool

	// WokwiID is the decimal Wokwi project ID. Empty for HDL projects.
	WokwiID string

	TitleLiteral       string
	AuthorLiteral      string
	DiscordLiteral     string
	DescriptionLiteral string
	LanguageLiteral    string
	ClockHzLiteral     string
	TilesLiteral       string

	// TopModule is the effective top module name: tt_um_wokwi_<id> for
	// Wokwi projects, the declared name otherwise.
	TopModule string

	// SourceFileLiterals lists the HDL source files, one literal per file.
	SourceFileLiterals []string

	Inputs        Pinout
	Outputs       Pinout
	Bidirectional Pinout

	// HowItWorks and HowToTest are trimmed Markdown bodies for the datasheet.
	HowItWorks string
	HowToTest  string

	// ExternalHW is empty when the project needs no external hardware.
	ExternalHW string
}
