package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

// removeComments drops every Comment node in the document, including ones
// in the prologue and epilogue.
type removeComments struct {
	plugin.Base
}

func newRemoveComments() plugin.Plugin { return &removeComments{} }

func (*removeComments) Name() string         { return "removeComments" }
func (*removeComments) Description() string  { return "removes comments" }
func (*removeComments) DefaultEnabled() bool { return true }

func (*removeComments) Apply(doc *ast.Document) error {
	doc.Prologue = filterOutComments(doc.Prologue)
	doc.Epilogue = filterOutComments(doc.Epilogue)
	visitor.Walk(doc, removeCommentsVisitor{})
	return nil
}

func filterOutComments(nodes []ast.Node) []ast.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if _, ok := n.(*ast.Comment); ok {
			continue
		}
		out = append(out, n)
	}
	return out
}

type removeCommentsVisitor struct {
	visitor.Base
}

func (removeCommentsVisitor) VisitComment(*ast.Comment, *visitor.Context) visitor.Action {
	return visitor.Remove()
}
