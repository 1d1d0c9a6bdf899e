// Package preset records the default plugin ordering as a stable
// compatibility surface, separate from the plugin.Registry that constructs
// instances and the plugins package that implements them.
package preset

import (
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/plugins"
)

// DefaultOrder is the default preset's plugin order. Changing this order
// changes observable output for every caller that uses the default preset,
// so it is recorded once, here.
var DefaultOrder = []string{
	"removeDoctype",
	"removeComments",
	"removeMetadata",
	"removeEditorsNSData",
	"removeEmptyAttrs",
	"removeHiddenElems",
	"removeEmptyText",
	"removeEmptyContainers",
	"convertColors",
	"removeUnknownsAndDefaults",
	"cleanupNumericValues",
	"collapseGroups",
	"mergePaths",
	"sortAttrs",
	"cleanupIds",
}

// NewRegistry returns a registry with every plugins package member
// registered.
func NewRegistry() *plugin.Registry {
	reg := plugin.NewRegistry()
	plugins.Register(reg)
	return reg
}

// Build constructs the default preset's plugin list, in DefaultOrder,
// skipping any plugin whose DefaultEnabled reports false. overrides maps a
// plugin name to its configuration parameters; a name absent from
// overrides is configured with no parameters.
func Build(reg *plugin.Registry, overrides map[string]map[string]any) ([]plugin.Plugin, error) {
	out := make([]plugin.Plugin, 0, len(DefaultOrder))
	for _, name := range DefaultOrder {
		p, err := reg.Configure(name, overrides[name])
		if err != nil {
			return nil, err
		}
		if p.DefaultEnabled() {
			out = append(out, p)
		}
	}
	return out, nil
}
