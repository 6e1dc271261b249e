// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package infoyaml

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

// unusedPin lists the descriptions, compared in lower case, that mark a pin
// as unused.
var unusedPin = map[string]bool{
	"none":     true,
	"unused":   true,
	"not used": true,
}

// Pin classifies one entry of a pin description list.
//
//   - empty entries (absent, null, "", 0, false) are unused pins
//   - a single-key mapping {name: desc} is a named pin "name: desc"
//   - "none", "unused" and "not used", in any case, are unused pins
//   - any other scalar is kept as written
func Pin(v Value) (types.PinEntry, error) {
	if !v.Truthy() {
		return types.EmptyPin(), nil
	}

	if v.IsMapping() {
		pairs := v.Pairs()
		if len(pairs) != 1 {
			return types.PinEntry{}, fmt.Errorf("expected a single {name: description} pair, found %d keys", len(pairs))
		}
		name, err := pairs[0][0].Text()
		if err != nil {
			return types.PinEntry{}, fmt.Errorf("pin name: %w", err)
		}
		desc, err := pairs[0][1].Text()
		if err != nil {
			return types.PinEntry{}, fmt.Errorf("pin %q: %w", name, err)
		}
		return types.NamedPin(name, desc), nil
	}

	text, err := v.Text()
	if err != nil {
		return types.PinEntry{}, err
	}
	// A Caser keeps state between calls, so each lookup gets its own.
	if unusedPin[cases.Lower(language.Und).String(text)] {
		return types.EmptyPin(), nil
	}
	return types.PlainPin(text), nil
}

// Pins reads a pin description list into the fixed eight slots of a
// pinout. Missing trailing entries stay empty and entries past the eighth
// are not read.
func Pins(v Value) (types.Pinout, error) {
	var out types.Pinout
	items, err := v.Items()
	if err != nil {
		return out, err
	}
	for i := 0; i < len(items) && i < types.PinCount; i++ {
		p, err := Pin(items[i])
		if err != nil {
			return out, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}
