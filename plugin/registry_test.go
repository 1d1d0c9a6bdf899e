package plugin_test

import (
	"testing"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopPlugin struct {
	plugin.Base
	configured map[string]any
}

func (*noopPlugin) Name() string          { return "noop" }
func (*noopPlugin) Description() string   { return "does nothing" }
func (*noopPlugin) DefaultEnabled() bool  { return false }
func (p *noopPlugin) Configure(params map[string]any) error {
	p.configured = params
	return nil
}
func (*noopPlugin) Apply(*ast.Document) error { return nil }

func TestRegistryNewConstructsFreshInstances(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("noop", func() plugin.Plugin { return &noopPlugin{} })

	a, err := reg.New("noop")
	require.NoError(t, err)
	b, err := reg.New("noop")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestRegistryNewUnknownNameSuggestsClosest(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("removeComments", func() plugin.Plugin { return &noopPlugin{} })

	_, err := reg.New("removeComment")
	require.Error(t, err)
	var cfgErr *plugin.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "removeComments")
}

func TestRegistryConfigureAppliesParams(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("noop", func() plugin.Plugin { return &noopPlugin{} })

	p, err := reg.Configure("noop", map[string]any{"x": 1})
	require.NoError(t, err)
	np := p.(*noopPlugin)
	assert.Equal(t, 1, np.configured["x"])
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("b", func() plugin.Plugin { return &noopPlugin{} })
	reg.Register("a", func() plugin.Plugin { return &noopPlugin{} })
	assert.Equal(t, []string{"a", "b"}, reg.Names())
}
