package plugins

import (
	"strings"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

// editorNamespacePrefixes lists the vendor namespace prefixes vector
// editors attach to a document that carry no rendering meaning.
var editorNamespacePrefixes = []string{"inkscape:", "sodipodi:", "xmlns:inkscape", "xmlns:sodipodi"}

func hasEditorPrefix(name string) bool {
	for _, p := range editorNamespacePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// removeEditorsNSData strips elements and attributes in vendor editor
// namespaces (Inkscape, Sodipodi) that never affect rendering.
type removeEditorsNSData struct {
	plugin.Base
}

func newRemoveEditorsNSData() plugin.Plugin { return &removeEditorsNSData{} }

func (*removeEditorsNSData) Name() string         { return "removeEditorsNSData" }
func (*removeEditorsNSData) Description() string  { return "removes editor namespace elements and attributes" }
func (*removeEditorsNSData) DefaultEnabled() bool { return true }

func (*removeEditorsNSData) Apply(doc *ast.Document) error {
	visitor.Walk(doc, removeEditorsNSDataVisitor{})
	return nil
}

type removeEditorsNSDataVisitor struct {
	visitor.Base
}

func (removeEditorsNSDataVisitor) EnterElement(e *ast.Element, ctx *visitor.Context) bool {
	return !hasEditorPrefix(e.Name)
}

func (removeEditorsNSDataVisitor) ExitElement(e *ast.Element, ctx *visitor.Context) visitor.Action {
	if hasEditorPrefix(e.Name) {
		return visitor.Remove()
	}
	for _, name := range e.Attrs.Keys() {
		if hasEditorPrefix(name) {
			e.Attrs.Remove(name)
		}
	}
	return visitor.Keep()
}
