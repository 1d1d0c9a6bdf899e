package preset_test

import (
	"testing"

	"github.com/arturoeanton/svgo/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReturnsPluginsInDefaultOrder(t *testing.T) {
	reg := preset.NewRegistry()
	built, err := preset.Build(reg, nil)
	require.NoError(t, err)

	// removeUnknownsAndDefaults is opt-in, so the default build is one
	// shorter than the full DefaultOrder list.
	require.Len(t, built, len(preset.DefaultOrder)-1)

	var wantOrder []string
	for _, name := range preset.DefaultOrder {
		if name != "removeUnknownsAndDefaults" {
			wantOrder = append(wantOrder, name)
		}
	}
	for i, p := range built {
		assert.Equal(t, wantOrder[i], p.Name())
	}
}

func TestBuildAppliesOverrides(t *testing.T) {
	reg := preset.NewRegistry()
	built, err := preset.Build(reg, map[string]map[string]any{
		"cleanupNumericValues": {"floatPrecision": 1},
	})
	require.NoError(t, err)
	require.NotEmpty(t, built)
}
