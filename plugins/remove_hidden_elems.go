package plugins

import (
	"strings"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/visitor"
)

// removeHiddenElems drops elements that can never render: display:none,
// visibility:hidden, or a width/height of exactly "0" on a rect, circle,
// ellipse, image, or pattern that carries no id (an element with an id may
// be the target of a reference and is kept).
type removeHiddenElems struct {
	plugin.Base
}

func newRemoveHiddenElems() plugin.Plugin { return &removeHiddenElems{} }

func (*removeHiddenElems) Name() string         { return "removeHiddenElems" }
func (*removeHiddenElems) Description() string  { return "removes elements that never render" }
func (*removeHiddenElems) DefaultEnabled() bool { return true }

var zeroSizeElements = map[string]bool{"rect": true, "circle": true, "ellipse": true, "image": true, "pattern": true}

func isHidden(e *ast.Element) bool {
	if style, ok := e.Attr("style"); ok {
		normalized := strings.ReplaceAll(style, " ", "")
		if strings.Contains(normalized, "display:none") || strings.Contains(normalized, "visibility:hidden") {
			return true
		}
	}
	if display, ok := e.Attr("display"); ok && display == "none" {
		return true
	}
	if visibility, ok := e.Attr("visibility"); ok && visibility == "hidden" {
		return true
	}
	if zeroSizeElements[e.Name] {
		if isZero(e, "width") || isZero(e, "height") {
			if !e.Attrs.Has("id") {
				return true
			}
		}
	}
	return false
}

func isZero(e *ast.Element, attr string) bool {
	v, ok := e.Attr(attr)
	if !ok {
		return false
	}
	return v == "0"
}

func (*removeHiddenElems) Apply(doc *ast.Document) error {
	visitor.Walk(doc, removeHiddenElemsVisitor{})
	return nil
}

type removeHiddenElemsVisitor struct {
	visitor.Base
}

func (removeHiddenElemsVisitor) EnterElement(e *ast.Element, ctx *visitor.Context) bool {
	return !isHidden(e)
}

func (removeHiddenElemsVisitor) ExitElement(e *ast.Element, ctx *visitor.Context) visitor.Action {
	if isHidden(e) {
		return visitor.Remove()
	}
	return visitor.Keep()
}
