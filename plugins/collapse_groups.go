package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

// collapseGroups inlines a <g> element that carries no attributes and
// exists only for nesting: its children move up to take its place. The walk
// resolves an element's children before its ExitElement fires, so a chain
// of nested wrapper groups flattens completely within one pass.
type collapseGroups struct {
	plugin.Base
}

func newCollapseGroups() plugin.Plugin { return &collapseGroups{} }

func (*collapseGroups) Name() string                     { return "collapseGroups" }
func (*collapseGroups) Description() string              { return "inlines groups that exist only for nesting" }
func (*collapseGroups) DefaultEnabled() bool              { return true }
func (*collapseGroups) Order() plugin.TraversalOrder      { return plugin.PostOrder }

func (*collapseGroups) Apply(doc *ast.Document) error {
	visitor.Walk(doc, collapseGroupsVisitor{})
	return nil
}

type collapseGroupsVisitor struct {
	visitor.Base
}

func (collapseGroupsVisitor) ExitElement(e *ast.Element, ctx *visitor.Context) visitor.Action {
	if e.Name == "g" && e.Attrs.Len() == 0 && ctx.Parent() != nil {
		return visitor.ReplaceChildren(e.Children)
	}
	return visitor.Keep()
}
