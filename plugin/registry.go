package plugin

import (
	"fmt"
	"sort"

	"github.com/arturoeanton/svgo/diagnostic"
)

// Factory constructs a fresh, unconfigured Plugin instance.
type Factory func() Plugin

// Registry maps a stable plugin name to its factory. It is populated once
// at startup (typically by plugins.Register) and treated as read-only for
// the lifetime of the process; optimization runs never mutate it.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds name to the registry. Registering the same name twice
// panics: this only ever happens at package init time, where it signals a
// programming error, not a runtime condition to recover from.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("plugin %q already registered", name))
	}
	r.factories[name] = f
}

// Names returns every registered plugin name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New constructs a fresh, unconfigured instance of the named plugin.
func (r *Registry) New(name string) (Plugin, error) {
	f, ok := r.factories[name]
	if !ok {
		msg := fmt.Sprintf("unknown plugin %q", name)
		if suggestion, ok := diagnostic.Suggest(name, r.Names(), 0.75); ok {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
		}
		return nil, newConfigError(name, msg)
	}
	return f(), nil
}

// Configure constructs the named plugin, validates params against its
// declared schema (if any), and applies them via Configure. A nil params
// map with a plugin that declares no schema is the common "use defaults"
// path.
func (r *Registry) Configure(name string, params map[string]any) (Plugin, error) {
	p, err := r.New(name)
	if err != nil {
		return nil, err
	}

	if schema := p.ParamSchema(); schema != nil && len(params) > 0 {
		resolved, err := schema.Resolve(nil)
		if err != nil {
			return nil, &ConfigError{PluginName: name, Diagnostic: &diagnostic.Diagnostic{
				Kind:     diagnostic.KindConfig,
				Message:  fmt.Sprintf("invalid parameter schema: %s", err),
				Severity: diagnostic.Error,
			}}
		}
		if err := resolved.Validate(params); err != nil {
			return nil, &ConfigError{PluginName: name, Diagnostic: &diagnostic.Diagnostic{
				Kind:     diagnostic.KindConfig,
				Message:  fmt.Sprintf("invalid parameters: %s", err),
				Severity: diagnostic.Error,
			}}
		}
	}

	if err := p.Configure(params); err != nil {
		return nil, &ConfigError{PluginName: name, Diagnostic: &diagnostic.Diagnostic{
			Kind:     diagnostic.KindConfig,
			Message:  err.Error(),
			Severity: diagnostic.Error,
		}}
	}
	return p, nil
}
