// Package visitor implements the generic enter/exit traversal over a
// document tree, with a controlled post-visit modification discipline so a
// plugin sees a consistent tree while it walks.
package visitor

import "github.com/arturoeanton/svgo/ast"

// Context is passed to every callback during a walk. Ancestors is only
// valid for the duration of the callback that received it; a visitor that
// needs to remember ancestry beyond one call must copy the slice.
type Context struct {
	Ancestors []*ast.Element
	Metadata  map[string]any
}

// Parent returns the nearest enclosing element, or nil at the root.
func (c *Context) Parent() *ast.Element {
	if len(c.Ancestors) == 0 {
		return nil
	}
	return c.Ancestors[len(c.Ancestors)-1]
}

type actionKind int

const (
	actionKeep actionKind = iota
	actionRemove
	actionReplace
	actionReplaceChildren
)

// Action is a visitor's post-visit intent for the node it was just given:
// keep it, remove it, replace it with another node, or splice its own
// children into the parent in its place.
type Action struct {
	kind     actionKind
	node     ast.Node
	children []ast.Node
}

// Keep leaves the node exactly where it is.
func Keep() Action { return Action{kind: actionKeep} }

// Remove drops the node from its parent.
func Remove() Action { return Action{kind: actionRemove} }

// ReplaceWith substitutes node for the visited node, one for one.
func ReplaceWith(node ast.Node) Action { return Action{kind: actionReplace, node: node} }

// ReplaceChildren splices nodes into the parent's child list in place of
// the visited node itself — the mechanism a plugin like collapseGroups uses
// to inline a wrapper element's children where the wrapper used to be.
func ReplaceChildren(nodes []ast.Node) Action {
	return Action{kind: actionReplaceChildren, children: nodes}
}

func (a Action) resolve(original ast.Node) []ast.Node {
	switch a.kind {
	case actionKeep:
		return []ast.Node{original}
	case actionRemove:
		return nil
	case actionReplace:
		return []ast.Node{a.node}
	case actionReplaceChildren:
		return a.children
	default:
		return []ast.Node{original}
	}
}

// Visitor is the callback surface a traversal drives. EnterElement fires
// before an element's children are walked and returns whether to descend
// into them. ExitElement fires after (post-order for that element) and its
// Action is what the driver applies. Each leaf kind gets a single callback.
type Visitor interface {
	EnterElement(e *ast.Element, ctx *Context) bool
	ExitElement(e *ast.Element, ctx *Context) Action
	VisitText(t *ast.Text, ctx *Context) Action
	VisitComment(c *ast.Comment, ctx *Context) Action
	VisitCData(c *ast.CData, ctx *Context) Action
	VisitProcessingInstruction(p *ast.ProcessingInstruction, ctx *Context) Action
	VisitDocType(d *ast.DocType, ctx *Context) Action
}

// Base implements Visitor with no-op defaults (descend everywhere, keep
// everything). Embed it in a concrete visitor and override only the
// callbacks that plugin actually cares about.
type Base struct{}

func (Base) EnterElement(*ast.Element, *Context) bool                        { return true }
func (Base) ExitElement(*ast.Element, *Context) Action                       { return Keep() }
func (Base) VisitText(*ast.Text, *Context) Action                            { return Keep() }
func (Base) VisitComment(*ast.Comment, *Context) Action                      { return Keep() }
func (Base) VisitCData(*ast.CData, *Context) Action                         { return Keep() }
func (Base) VisitProcessingInstruction(*ast.ProcessingInstruction, *Context) Action { return Keep() }
func (Base) VisitDocType(*ast.DocType, *Context) Action                     { return Keep() }
