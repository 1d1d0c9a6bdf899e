package plugin

import (
	"fmt"

	"github.com/arturoeanton/svgo/diagnostic"
)

// ConfigError reports a failure to construct or configure a plugin:
// an unknown plugin name, a parameter map that fails schema validation, or
// a plugin-specific Configure rejection.
type ConfigError struct {
	PluginName string
	*diagnostic.Diagnostic
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("plugin %q: %s", e.PluginName, e.Diagnostic.Error())
}

func (e *ConfigError) Unwrap() error { return e.Diagnostic }

func newConfigError(name, message string) *ConfigError {
	return &ConfigError{
		PluginName: name,
		Diagnostic: &diagnostic.Diagnostic{
			Kind:     diagnostic.KindConfig,
			Message:  message,
			Severity: diagnostic.Error,
		},
	}
}
