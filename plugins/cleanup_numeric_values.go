package plugins

import (
	"strconv"
	"strings"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/stringify"
	"github.com/google/jsonschema-go/jsonschema"
)

var numericAttrs = map[string]bool{
	"x": true, "y": true, "width": true, "height": true, "cx": true,
	"cy": true, "r": true, "rx": true, "ry": true, "x1": true, "y1": true,
	"x2": true, "y2": true, "stroke-width": true, "opacity": true,
	"fill-opacity": true, "stroke-opacity": true,
}

// cleanupNumericValues rounds numeric attribute values to a configured
// decimal precision and strips redundant leading zeros/plus signs,
// deferring to stringify.FormatNumber so its output matches whatever the
// serializer would otherwise produce for the same number.
type cleanupNumericValues struct {
	plugin.Base
	precision int
}

func newCleanupNumericValues() plugin.Plugin {
	return &cleanupNumericValues{precision: 3}
}

func (*cleanupNumericValues) Name() string { return "cleanupNumericValues" }
func (*cleanupNumericValues) Description() string {
	return "rounds numeric attribute values to a fixed precision"
}
func (*cleanupNumericValues) DefaultEnabled() bool { return true }

func (*cleanupNumericValues) ParamSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"floatPrecision": {Type: "integer"},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

func (c *cleanupNumericValues) Configure(params map[string]any) error {
	if p, ok := params["floatPrecision"]; ok {
		switch v := p.(type) {
		case int:
			c.precision = v
		case float64:
			c.precision = int(v)
		}
	}
	return nil
}

func (c *cleanupNumericValues) Apply(doc *ast.Document) error {
	doc.WalkElements(func(e *ast.Element) {
		for name := range numericAttrs {
			v, ok := e.Attr(name)
			if !ok {
				continue
			}
			if nv, ok := roundNumeric(v, c.precision); ok && nv != v {
				e.Attrs.Set(name, nv)
			}
		}
	})
	return nil
}

func roundNumeric(v string, precision int) (string, bool) {
	trimmed := strings.TrimSpace(v)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return v, false
	}
	return stringify.FormatNumber(f, precision), true
}
