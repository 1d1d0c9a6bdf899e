package ast

// Document is the root container of a parsed tree. It owns the root
// element plus whatever sits before/after it in source order, the entity
// table extracted from a DOCTYPE internal subset, and a free-form metadata
// bag plugins use to communicate within one optimization run (a plugin that
// needs a first pass to build an index stashes it in document.metadata for
// its second pass to read back).
type Document struct {
	Root     *Element
	Prologue []Node
	Epilogue []Node
	Entities map[string]string
	Metadata map[string]any
}

// NewDocument returns a Document with an empty root element named rootName
// and all maps initialized.
func NewDocument(rootName string) *Document {
	return &Document{
		Root:     NewElement(rootName),
		Entities: make(map[string]string),
		Metadata: make(map[string]any),
	}
}

// WalkElements visits every Element in the tree, root first, depth-first
// pre-order. It is a read-only convenience for callers that don't need the
// full enter/exit traversal contract — plugins that mutate the tree should
// use the visitor package instead.
func (d *Document) WalkElements(fn func(*Element)) {
	if d.Root == nil {
		return
	}
	var walk func(*Element)
	walk = func(e *Element) {
		fn(e)
		for _, c := range e.ElementChildren() {
			walk(c)
		}
	}
	walk(d.Root)
}

// CountNodes returns the total number of nodes in the document, including
// the root, prologue, and epilogue. Used by the stringifier to pre-size its
// output buffer and by the optimizer driver to size its group lookup table.
func (d *Document) CountNodes() int {
	n := len(d.Prologue) + len(d.Epilogue)
	if d.Root == nil {
		return n
	}
	var count func(Node) int
	count = func(node Node) int {
		total := 1
		if el, ok := node.(*Element); ok {
			for _, c := range el.Children {
				total += count(c)
			}
		}
		return total
	}
	return n + count(d.Root)
}

// whitespaceSensitiveElements lists the elements whose text content is
// significant. Text nodes inside any of these elements (or their
// descendants) preserve whitespace byte-for-byte.
var whitespaceSensitiveElements = map[string]bool{
	"text":     true,
	"tspan":    true,
	"textPath": true,
	"tref":     true,
	"altGlyph": true,
	"pre":      true,
	"script":   true,
	"style":    true,
}

// IsWhitespaceSensitive reports whether name is one of the elements whose
// text content must be preserved verbatim.
func IsWhitespaceSensitive(name string) bool {
	return whitespaceSensitiveElements[name]
}
