package svgo_test

import (
	"context"
	"strings"
	"testing"

	svgo "github.com/arturoeanton/svgo"
	"github.com/arturoeanton/svgo/stringify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeRemovesCommentsByDefault(t *testing.T) {
	input := []byte(`<svg xmlns="http://www.w3.org/2000/svg">
  <!-- logo -->
  <rect x="1" y="2"/>
</svg>`)

	out, err := svgo.Optimize(context.Background(), input, svgo.Config{})
	require.NoError(t, err)

	assert.NotContains(t, string(out.Data), "logo")
	assert.Contains(t, string(out.Data), `<rect x="1" y="2"/>`)
	assert.Less(t, out.NewSize, out.OriginalSize)
}

func TestOptimizeMultipassFlattensNestedGroups(t *testing.T) {
	input := []byte(`<svg><g><g><rect/></g></g></svg>`)

	enabled := true
	out, err := svgo.Optimize(context.Background(), input, svgo.Config{
		Multipass: true,
		Plugins: []svgo.PluginSpec{
			{Name: "collapseGroups", Enabled: &enabled},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `<svg><rect/></svg>`, string(out.Data))
	assert.GreaterOrEqual(t, out.Passes, 2)
}

func TestOptimizeRejectsUnknownPluginName(t *testing.T) {
	input := []byte(`<svg/>`)
	_, err := svgo.Optimize(context.Background(), input, svgo.Config{
		Plugins: []svgo.PluginSpec{{Name: "removeComment"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "removeComment")
}

func TestOptimizeDataURIBase64(t *testing.T) {
	input := []byte(`<svg/>`)
	out, err := svgo.Optimize(context.Background(), input, svgo.Config{
		DataURI: svgo.DataURIBase64,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out.Data), "data:image/svg+xml;base64,"))
}

func TestParseAndStringifyRoundTrip(t *testing.T) {
	input := []byte(`<svg><rect x="1"/></svg>`)
	result, err := svgo.Parse(input)
	require.NoError(t, err)

	out := svgo.Stringify(result.Document, stringify.DefaultOptions())
	assert.Equal(t, `<svg><rect x="1"/></svg>`, string(out))
}

func TestDefaultRegistryHasPreset(t *testing.T) {
	reg := svgo.DefaultRegistry()
	assert.Contains(t, reg.Names(), "collapseGroups")
}
