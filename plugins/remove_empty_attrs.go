package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
)

// removeEmptyAttrs drops attributes whose value is the empty string; they
// carry no information the renderer acts on.
type removeEmptyAttrs struct {
	plugin.Base
}

func newRemoveEmptyAttrs() plugin.Plugin { return &removeEmptyAttrs{} }

func (*removeEmptyAttrs) Name() string         { return "removeEmptyAttrs" }
func (*removeEmptyAttrs) Description() string  { return "removes attributes with an empty value" }
func (*removeEmptyAttrs) DefaultEnabled() bool { return true }

func (*removeEmptyAttrs) Apply(doc *ast.Document) error {
	doc.WalkElements(func(e *ast.Element) {
		for _, name := range e.Attrs.Keys() {
			if v, _ := e.Attrs.Get(name); v == "" {
				e.Attrs.Remove(name)
			}
		}
	})
	return nil
}
