// Package svgo is the top-level library API: parse an SVG document, run a
// configured plugin pipeline over it to a multipass fixed point, and
// serialize the result back to bytes. Parse and Stringify are exposed
// separately for callers that want to compose their own pipeline instead of
// going through Optimize.
package svgo

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"net/url"
	"time"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/diagnostic"
	"github.com/arturoeanton/svgo/optimizer"
	"github.com/arturoeanton/svgo/parser"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/preset"
	"github.com/arturoeanton/svgo/stringify"
)

// DataURIMode selects how Optimize wraps its final output.
type DataURIMode string

const (
	DataURINone      DataURIMode = ""
	DataURIBase64    DataURIMode = "base64"
	DataURIEscaped   DataURIMode = "enc"
	DataURIUnencoded DataURIMode = "unenc"
)

// PluginSpec names one pipeline member and its configuration. A PluginSpec
// list replaces the default preset entirely rather than extending it.
type PluginSpec struct {
	Name   string
	Params map[string]any
	// Enabled overrides the plugin's own DefaultEnabled when set.
	Enabled *bool
}

// ParallelOption enables and bounds subtree-parallel plugin dispatch. A nil
// *ParallelOption on Config disables parallel dispatch entirely.
type ParallelOption struct {
	SizeThreshold    int64
	ElementThreshold int
	NumThreads       int
}

// Config configures one Optimize call.
type Config struct {
	// Multipass enables fixed-point iteration (up to 10 passes unless
	// MaxPasses overrides that).
	Multipass bool
	MaxPasses int

	Pretty bool
	Indent string

	// FloatPrecision, when positive, is passed as cleanupNumericValues'
	// floatPrecision param unless Plugins already configures that plugin
	// with its own params.
	FloatPrecision int

	// Plugins overrides the default preset. Nil or empty uses the
	// default preset via preset.Build.
	Plugins []PluginSpec

	Parallel *ParallelOption

	DataURI DataURIMode

	// Logger receives Debug-level pass counts and per-plugin timings from
	// the optimizer driver. Nil disables logging.
	Logger *slog.Logger
}

// OptimizeOutput is the result of a successful Optimize call.
type OptimizeOutput struct {
	Data          []byte
	OriginalSize  int
	NewSize       int
	Passes        int
	PluginTimings map[string]time.Duration
	Diagnostics   []*diagnostic.Diagnostic
}

// DefaultRegistry returns a registry with every built-in plugin registered,
// for callers composing their own pipeline instead of using Optimize.
func DefaultRegistry() *plugin.Registry {
	return preset.NewRegistry()
}

// Parse parses data with the package defaults, dispatching to ParseStream
// automatically once the input crosses parser.StreamThreshold.
func Parse(data []byte) (*parser.Result, error) {
	if len(data) > parser.StreamThreshold {
		return parser.ParseStream(bytes.NewReader(data), parser.DefaultStreamOptions())
	}
	return parser.Parse(data, parser.DefaultOptions())
}

// Stringify serializes doc with opts.
func Stringify(doc *ast.Document, opts stringify.Options) []byte {
	return stringify.Stringify(doc, opts)
}

// Optimize parses input, runs the configured plugin pipeline over it, and
// serializes the result. Config errors (an unknown plugin name, an invalid
// parameter) are raised eagerly, before any document work begins; plugin
// errors abort the run and discard partial output; ctx cancellation is
// checked between passes and between plugins within a pass.
func Optimize(ctx context.Context, input []byte, cfg Config) (*OptimizeOutput, error) {
	reg := DefaultRegistry()

	var overrides map[string]map[string]any
	if cfg.FloatPrecision > 0 {
		overrides = map[string]map[string]any{
			"cleanupNumericValues": {"floatPrecision": cfg.FloatPrecision},
		}
	}
	plugins, err := resolvePlugins(reg, cfg.Plugins, overrides)
	if err != nil {
		return nil, err
	}

	result, err := Parse(input)
	if err != nil {
		return nil, err
	}

	optCfg := optimizer.Config{
		Multipass: cfg.Multipass,
		MaxPasses: cfg.MaxPasses,
		InputSize: int64(len(input)),
		Logger:    cfg.Logger,
	}
	if cfg.Parallel != nil {
		optCfg.Parallel = optimizer.ParallelConfig{
			SizeThreshold:    cfg.Parallel.SizeThreshold,
			ElementThreshold: cfg.Parallel.ElementThreshold,
			NumWorkers:       cfg.Parallel.NumThreads,
		}
	}

	optResult, err := optimizer.Run(ctx, result.Document, plugins, optCfg)
	if err != nil {
		return nil, err
	}

	sopts := stringify.DefaultOptions()
	sopts.Pretty = cfg.Pretty
	if cfg.Indent != "" {
		sopts.Indent = cfg.Indent
	}
	if cfg.FloatPrecision > 0 {
		sopts.FloatPrecision = cfg.FloatPrecision
	}

	data := applyDataURI(stringify.Stringify(result.Document, sopts), cfg.DataURI)

	return &OptimizeOutput{
		Data:          data,
		OriginalSize:  len(input),
		NewSize:       len(data),
		Passes:        optResult.Passes,
		PluginTimings: optResult.Timings,
		Diagnostics:   result.Diagnostics,
	}, nil
}

// resolvePlugins builds the ordered plugin list for a run: the default
// preset when specs is empty, or exactly the named plugins in specs order
// otherwise. overrides supplies default params (currently just
// FloatPrecision) for plugins that don't already have explicit params set
// in specs.
func resolvePlugins(reg *plugin.Registry, specs []PluginSpec, overrides map[string]map[string]any) ([]plugin.Plugin, error) {
	if len(specs) == 0 {
		return preset.Build(reg, overrides)
	}

	out := make([]plugin.Plugin, 0, len(specs))
	for _, spec := range specs {
		params := spec.Params
		if params == nil {
			params = overrides[spec.Name]
		}
		p, err := reg.Configure(spec.Name, params)
		if err != nil {
			return nil, err
		}
		enabled := p.DefaultEnabled()
		if spec.Enabled != nil {
			enabled = *spec.Enabled
		}
		if enabled {
			out = append(out, p)
		}
	}
	return out, nil
}

func applyDataURI(data []byte, mode DataURIMode) []byte {
	switch mode {
	case DataURIBase64:
		return []byte("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(data))
	case DataURIEscaped:
		return []byte("data:image/svg+xml," + url.QueryEscape(string(data)))
	case DataURIUnencoded:
		return []byte("data:image/svg+xml," + string(data))
	default:
		return data
	}
}
