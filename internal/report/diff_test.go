// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		got, err := UnifiedDiff("a\nb\n", "a\nb\n", "old", "new")
		require.NoError(t, err)
		assert.Equal(t, NoChanges, got)
	})

	t.Run("changed line", func(t *testing.T) {
		got, err := UnifiedDiff("a\nb\nc\n", "a\nB\nc\n", "info.yaml", "info.yaml (v6)")
		require.NoError(t, err)
		assert.Contains(t, got, "--- info.yaml\n")
		assert.Contains(t, got, "+++ info.yaml (v6)\n")
		assert.Contains(t, got, "-b\n")
		assert.Contains(t, got, "+B\n")
		assert.Contains(t, got, " a\n")
	})

	t.Run("version bump", func(t *testing.T) {
		got, err := UnifiedDiff("yaml_version: 4\n", "yaml_version: 6\n", "a", "b")
		require.NoError(t, err)
		assert.Contains(t, got, "-yaml_version: 4")
		assert.Contains(t, got, "+yaml_version: 6")
	})
}
