package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStrategies(t *testing.T) {
	strategies := DefaultStrategies()
	require.Len(t, strategies, 10)

	seen := make(map[string]bool, len(strategies))
	for _, s := range strategies {
		assert.NotEmpty(t, s.Name)
		assert.False(t, seen[s.Name], "duplicate strategy name %q", s.Name)
		seen[s.Name] = true

		assert.Greater(t, s.PriceAdjustmentFactor, 0.0, "%s", s.Name)
		assert.Greater(t, s.VolumeProjectionFactor, 0.0, "%s", s.Name)
		if s.TargetMargin != nil {
			assert.GreaterOrEqual(t, *s.TargetMargin, 0.0, "%s", s.Name)
			assert.Less(t, *s.TargetMargin, 100.0, "%s", s.Name)
		}
	}
}
