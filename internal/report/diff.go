// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders comparisons between an input info.yaml and the
// document generated from it.
package report

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// NoChanges is returned by UnifiedDiff when both texts are identical.
const NoChanges = "No changes."

const contextLines = 3

// UnifiedDiff returns a unified diff from the text in from to the text in to,
// labelled with fromName and toName.
func UnifiedDiff(from, to, fromName, toName string) (string, error) {
	if from == to {
		return NoChanges, nil
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(from),
		B:        difflib.SplitLines(to),
		FromFile: fromName,
		ToFile:   toName,
		Context:  contextLines,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diffing %s and %s: %w", fromName, toName, err)
	}
	return text, nil
}
