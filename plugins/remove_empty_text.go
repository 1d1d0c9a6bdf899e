package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

// removeEmptyText drops Text nodes with no content. An empty string
// serializes to nothing regardless of its parent, so there is no
// whitespace-sensitive case to preserve it for.
type removeEmptyText struct {
	plugin.Base
}

func newRemoveEmptyText() plugin.Plugin { return &removeEmptyText{} }

func (*removeEmptyText) Name() string         { return "removeEmptyText" }
func (*removeEmptyText) Description() string  { return "removes empty text nodes" }
func (*removeEmptyText) DefaultEnabled() bool { return true }

func (*removeEmptyText) Apply(doc *ast.Document) error {
	visitor.Walk(doc, removeEmptyTextVisitor{})
	return nil
}

type removeEmptyTextVisitor struct {
	visitor.Base
}

func (removeEmptyTextVisitor) VisitText(t *ast.Text, ctx *visitor.Context) visitor.Action {
	if t.Content == "" {
		return visitor.Remove()
	}
	return visitor.Keep()
}
