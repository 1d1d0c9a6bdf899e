package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/refscan"
)

// cleanupIds removes id attributes nothing references. It is a two-pass
// plugin: the first pass builds an index of every id mentioned by a
// url(#id)/href="#id" attribute anywhere in the document, stashed in
// document.metadata; the second pass drops any id not found in that index.
// Because the index spans the whole tree, this plugin cannot be dispatched
// per independent subtree.
type cleanupIds struct {
	plugin.Base
}

func newCleanupIds() plugin.Plugin { return &cleanupIds{} }

func (*cleanupIds) Name() string                    { return "cleanupIds" }
func (*cleanupIds) Description() string              { return "removes unreferenced id attributes" }
func (*cleanupIds) DefaultEnabled() bool             { return true }
func (*cleanupIds) RequiresWholeDocument() bool       { return true }

func (*cleanupIds) Apply(doc *ast.Document) error {
	referenced := buildReferencedIDIndex(doc)
	doc.Metadata["cleanupIds.referenced"] = referenced

	doc.WalkElements(func(e *ast.Element) {
		id, ok := e.Attr("id")
		if !ok {
			return
		}
		if !referenced[id] {
			e.Attrs.Remove("id")
		}
	})
	return nil
}

func buildReferencedIDIndex(doc *ast.Document) map[string]bool {
	referenced := make(map[string]bool)
	doc.WalkElements(func(e *ast.Element) {
		e.Attrs.ForEach(func(name, value string) bool {
			if refscan.IsReferencingAttr(name) {
				for _, id := range refscan.FindReferences(value) {
					referenced[id] = true
				}
			}
			return true
		})
	})
	return referenced
}
