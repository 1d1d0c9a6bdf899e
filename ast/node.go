// Package ast defines the in-memory document tree shared by the parser,
// the plugin pipeline, and the stringifier.
package ast

// Kind identifies which Node variant a value holds.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindComment
	KindCData
	KindProcessingInstruction
	KindDocType
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindCData:
		return "cdata"
	case KindProcessingInstruction:
		return "pi"
	case KindDocType:
		return "doctype"
	default:
		return "unknown"
	}
}

// Node is the tagged union of everything that can appear in a document
// tree. Every concrete variant below implements it; a type switch on
// Kind() (or a Go type switch directly) is the sanctioned way to inspect
// one.
type Node interface {
	Kind() Kind
	Parent() *Element
	setParent(*Element)
}

// Element is a tag with an ordered attribute map and ordered children.
// Using an ordinary Go string for Name (rather than a small-string/interned
// representation) keeps this idiomatic; Go's string header already shares
// backing storage on copy, which covers the common case of a small set of
// dominant tag names well enough.
type Element struct {
	Name     string
	Attrs    *Attributes
	Children []Node

	parent *Element
}

// NewElement creates an Element with an initialized attribute map and no
// children.
func NewElement(name string) *Element {
	return &Element{Name: name, Attrs: NewAttributes()}
}

func (e *Element) Kind() Kind          { return KindElement }
func (e *Element) Parent() *Element    { return e.parent }
func (e *Element) setParent(p *Element) { e.parent = p }

// AppendChild adds child as the last child of e, transferring ownership:
// child is detached from its previous parent first, so the move is atomic
// with respect to the invariant that every node has exactly one parent.
func (e *Element) AppendChild(child Node) {
	if prev := child.Parent(); prev != nil {
		prev.RemoveChild(child)
	}
	child.setParent(e)
	e.Children = append(e.Children, child)
}

// InsertChildAt inserts child at position idx, clamping to [0, len].
func (e *Element) InsertChildAt(idx int, child Node) {
	if prev := child.Parent(); prev != nil {
		prev.RemoveChild(child)
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(e.Children) {
		idx = len(e.Children)
	}
	child.setParent(e)
	e.Children = append(e.Children, nil)
	copy(e.Children[idx+1:], e.Children[idx:])
	e.Children[idx] = child
}

// RemoveChild detaches child from e's children. It is a no-op if child is
// not currently a child of e.
func (e *Element) RemoveChild(child Node) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.setParent(nil)
			return
		}
	}
}

// SetChildren replaces e's entire child list in one step, detaching the old
// children and taking ownership of the new ones. Traversal code that
// rebuilds a children slice wholesale (rather than one append/remove at a
// time) uses this instead of manipulating e.Children directly, so the
// single-parent invariant holds either way.
func (e *Element) SetChildren(children []Node) {
	for _, c := range e.Children {
		c.setParent(nil)
	}
	for _, c := range children {
		c.setParent(e)
	}
	e.Children = children
}

// ReplaceChild swaps oldChild for newChild in place, preserving position.
func (e *Element) ReplaceChild(oldChild, newChild Node) {
	for i, c := range e.Children {
		if c == oldChild {
			oldChild.setParent(nil)
			newChild.setParent(e)
			e.Children[i] = newChild
			return
		}
	}
}

// Attr is a convenience accessor over e.Attrs.Get.
func (e *Element) Attr(name string) (string, bool) {
	if e.Attrs == nil {
		return "", false
	}
	return e.Attrs.Get(name)
}

// ElementChildren returns only the Element children of e, in order.
func (e *Element) ElementChildren() []*Element {
	out := make([]*Element, 0, len(e.Children))
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Text holds character data. Whether leading/trailing whitespace survives
// parsing is governed by the parser's whitespace policy, not by this type.
type Text struct {
	Content string
	parent  *Element
}

func (t *Text) Kind() Kind           { return KindText }
func (t *Text) Parent() *Element     { return t.parent }
func (t *Text) setParent(p *Element) { t.parent = p }

// Comment holds comment content, excluding the delimiting "<!--"/"-->".
type Comment struct {
	Content string
	parent  *Element
}

func (c *Comment) Kind() Kind           { return KindComment }
func (c *Comment) Parent() *Element     { return c.parent }
func (c *Comment) setParent(p *Element) { c.parent = p }

// CData holds CDATA section content, excluding "<![CDATA[" / "]]>".
type CData struct {
	Content string
	parent  *Element
}

func (c *CData) Kind() Kind           { return KindCData }
func (c *CData) Parent() *Element     { return c.parent }
func (c *CData) setParent(p *Element) { c.parent = p }

// ProcessingInstruction holds a target/data pair, e.g. <?xml-stylesheet ...?>.
type ProcessingInstruction struct {
	Target string
	Data   string
	parent *Element
}

func (p *ProcessingInstruction) Kind() Kind           { return KindProcessingInstruction }
func (p *ProcessingInstruction) Parent() *Element     { return p.parent }
func (p *ProcessingInstruction) setParent(e *Element) { p.parent = e }

// DocType holds the raw DOCTYPE declaration content (the text between
// "<!DOCTYPE" and the closing ">", including any internal subset). The
// parser additionally extracts entity declarations from it into
// Document.Entities; this struct just preserves the original text for
// round-tripping.
type DocType struct {
	Content string
	parent  *Element
}

func (d *DocType) Kind() Kind           { return KindDocType }
func (d *DocType) Parent() *Element     { return d.parent }
func (d *DocType) setParent(p *Element) { d.parent = p }
