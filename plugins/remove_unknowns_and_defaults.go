package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

// knownElements is the narrow safe list this plugin keeps: elements outside
// it are removed together with their subtrees. The parser itself never
// rejects unknown elements or namespaces; this plugin is where they go.
var knownElements = map[string]bool{
	"svg": true, "g": true, "defs": true, "symbol": true, "use": true,
	"rect": true, "circle": true, "ellipse": true, "line": true,
	"polyline": true, "polygon": true, "path": true, "text": true,
	"tspan": true, "textPath": true, "tref": true, "altGlyph": true,
	"image": true, "clipPath": true, "mask": true, "pattern": true,
	"linearGradient": true, "radialGradient": true, "stop": true,
	"filter": true, "marker": true, "a": true, "switch": true,
	"title": true, "desc": true, "style": true, "script": true, "pre": true,
}

// defaultAttrValues lists attribute/value pairs equal to the SVG-spec
// initial value, safe to drop because omitting them has no rendering
// effect.
var defaultAttrValues = map[string]map[string]string{
	"rect":    {"rx": "0", "ry": "0"},
	"stop":    {"stop-opacity": "1"},
	"*":       {"fill-opacity": "1", "stroke-opacity": "1", "stroke-width": "1"},
}

// removeUnknownsAndDefaults prunes elements outside the known-safe SVG tag
// list and attributes set to their initial value.
type removeUnknownsAndDefaults struct {
	plugin.Base
}

func newRemoveUnknownsAndDefaults() plugin.Plugin { return &removeUnknownsAndDefaults{} }

func (*removeUnknownsAndDefaults) Name() string { return "removeUnknownsAndDefaults" }
func (*removeUnknownsAndDefaults) Description() string {
	return "removes unrecognized elements and attributes left at their default value"
}
// DefaultEnabled is false: knownElements only covers the common shape
// elements, not filter primitives (feGaussianBlur, feColorMatrix, ...),
// animation elements (animate, animateTransform, ...), or foreignObject/view.
// Running this by default against a document using any of those would
// silently delete valid content, so it is opt-in.
func (*removeUnknownsAndDefaults) DefaultEnabled() bool { return false }

func (*removeUnknownsAndDefaults) Apply(doc *ast.Document) error {
	visitor.Walk(doc, removeUnknownsVisitor{})
	return nil
}

type removeUnknownsVisitor struct {
	visitor.Base
}

func (removeUnknownsVisitor) EnterElement(e *ast.Element, ctx *visitor.Context) bool {
	return knownElements[e.Name]
}

func (removeUnknownsVisitor) ExitElement(e *ast.Element, ctx *visitor.Context) visitor.Action {
	if !knownElements[e.Name] {
		return visitor.Remove()
	}
	stripDefaults(e, defaultAttrValues["*"])
	stripDefaults(e, defaultAttrValues[e.Name])
	return visitor.Keep()
}

func stripDefaults(e *ast.Element, defaults map[string]string) {
	for attr, defVal := range defaults {
		if v, ok := e.Attr(attr); ok && v == defVal {
			e.Attrs.Remove(attr)
		}
	}
}
