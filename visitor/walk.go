package visitor

import "github.com/arturoeanton/svgo/ast"

// Walk drives v depth-first pre-order over doc: Document.Prologue, then
// Root and its descendants, then Document.Epilogue. Modifications a
// visitor requests via its Action return values are applied to each
// parent's child list only after that node's own walk (enter, children,
// exit) has completed, so a visitor always observes a tree consistent with
// everything processed so far.
func Walk(doc *ast.Document, v Visitor) {
	ctx := &Context{Metadata: doc.Metadata}
	doc.Prologue = walkList(doc.Prologue, v, ctx)
	if doc.Root != nil {
		replaced := walkNode(doc.Root, v, ctx)
		doc.Root = firstElement(replaced, doc.Root)
	}
	doc.Epilogue = walkList(doc.Epilogue, v, ctx)
}

// firstElement returns the first *ast.Element in replaced, or fallback if
// none of the resolved nodes is an element. The root slot can't hold a
// non-element, so a visitor that tries to remove or retype the root has no
// effect on it — only on descendants.
func firstElement(replaced []ast.Node, fallback *ast.Element) *ast.Element {
	for _, n := range replaced {
		if el, ok := n.(*ast.Element); ok {
			return el
		}
	}
	return fallback
}

func walkList(nodes []ast.Node, v Visitor, ctx *Context) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, walkNode(n, v, ctx)...)
	}
	return out
}

func walkNode(n ast.Node, v Visitor, ctx *Context) []ast.Node {
	switch t := n.(type) {
	case *ast.Element:
		descend := v.EnterElement(t, ctx)
		if descend {
			ctx.Ancestors = append(ctx.Ancestors, t)
			newChildren := walkList(t.Children, v, ctx)
			ctx.Ancestors = ctx.Ancestors[:len(ctx.Ancestors)-1]
			t.SetChildren(newChildren)
		}
		return v.ExitElement(t, ctx).resolve(t)
	case *ast.Text:
		return v.VisitText(t, ctx).resolve(t)
	case *ast.Comment:
		return v.VisitComment(t, ctx).resolve(t)
	case *ast.CData:
		return v.VisitCData(t, ctx).resolve(t)
	case *ast.ProcessingInstruction:
		return v.VisitProcessingInstruction(t, ctx).resolve(t)
	case *ast.DocType:
		return v.VisitDocType(t, ctx).resolve(t)
	default:
		return []ast.Node{n}
	}
}
