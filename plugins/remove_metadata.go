package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

// removeMetadata drops <metadata> elements entirely, including their
// children — SVG metadata carries RDF/Dublin Core data with no rendering
// effect.
type removeMetadata struct {
	plugin.Base
}

func newRemoveMetadata() plugin.Plugin { return &removeMetadata{} }

func (*removeMetadata) Name() string         { return "removeMetadata" }
func (*removeMetadata) Description() string  { return "removes <metadata> elements" }
func (*removeMetadata) DefaultEnabled() bool { return true }

func (*removeMetadata) Apply(doc *ast.Document) error {
	visitor.Walk(doc, removeMetadataVisitor{})
	return nil
}

type removeMetadataVisitor struct {
	visitor.Base
}

func (removeMetadataVisitor) EnterElement(e *ast.Element, ctx *visitor.Context) bool {
	return e.Name != "metadata"
}

func (removeMetadataVisitor) ExitElement(e *ast.Element, ctx *visitor.Context) visitor.Action {
	if e.Name == "metadata" {
		return visitor.Remove()
	}
	return visitor.Keep()
}
