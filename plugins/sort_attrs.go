package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
)

// sortAttrs reorders every element's attributes alphabetically. Output
// stability is already guaranteed by insertion order; this plugin trades
// that for a canonical, diff-friendly order instead.
type sortAttrs struct {
	plugin.Base
}

func newSortAttrs() plugin.Plugin { return &sortAttrs{} }

func (*sortAttrs) Name() string         { return "sortAttrs" }
func (*sortAttrs) Description() string  { return "sorts attributes alphabetically" }
func (*sortAttrs) DefaultEnabled() bool { return true }

func (*sortAttrs) Apply(doc *ast.Document) error {
	doc.WalkElements(func(e *ast.Element) {
		e.Attrs.SortKeys(func(i, j string) bool { return i < j })
	})
	return nil
}
