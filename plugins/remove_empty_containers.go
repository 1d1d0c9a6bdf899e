package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

var containerElements = map[string]bool{
	"g": true, "defs": true, "symbol": true, "switch": true, "a": true,
}

// removeEmptyContainers drops container elements with no children and no
// id (an id might be the target of a url(#...) reference even with nothing
// inside). Runs post-order: a container that becomes empty only after its
// own children were pruned this pass is still caught, because
// visitor.Walk's ExitElement fires after descendants have already been
// resolved.
type removeEmptyContainers struct {
	plugin.Base
}

func newRemoveEmptyContainers() plugin.Plugin { return &removeEmptyContainers{} }

func (*removeEmptyContainers) Name() string         { return "removeEmptyContainers" }
func (*removeEmptyContainers) Description() string  { return "removes empty container elements" }
func (*removeEmptyContainers) DefaultEnabled() bool { return true }
func (*removeEmptyContainers) Order() plugin.TraversalOrder { return plugin.PostOrder }

func (*removeEmptyContainers) Apply(doc *ast.Document) error {
	visitor.Walk(doc, removeEmptyContainersVisitor{})
	return nil
}

type removeEmptyContainersVisitor struct {
	visitor.Base
}

func (removeEmptyContainersVisitor) ExitElement(e *ast.Element, ctx *visitor.Context) visitor.Action {
	if containerElements[e.Name] && len(e.Children) == 0 && !e.Attrs.Has("id") {
		return visitor.Remove()
	}
	return visitor.Keep()
}
