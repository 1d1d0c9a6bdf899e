package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
)

// removeDoctype drops any DocType node from the prologue and epilogue. The
// entity table already extracted from it during parsing is untouched —
// removing the declaration does not undo entity expansion already applied
// to the tree.
type removeDoctype struct {
	plugin.Base
}

func newRemoveDoctype() plugin.Plugin { return &removeDoctype{} }

func (*removeDoctype) Name() string         { return "removeDoctype" }
func (*removeDoctype) Description() string  { return "removes the DOCTYPE declaration" }
func (*removeDoctype) DefaultEnabled() bool { return true }

func (*removeDoctype) Apply(doc *ast.Document) error {
	doc.Prologue = filterOutDocType(doc.Prologue)
	doc.Epilogue = filterOutDocType(doc.Epilogue)
	return nil
}

func filterOutDocType(nodes []ast.Node) []ast.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if _, ok := n.(*ast.DocType); ok {
			continue
		}
		out = append(out, n)
	}
	return out
}
