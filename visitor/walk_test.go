package visitor_test

import (
	"testing"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/visitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type removeCommentsVisitor struct {
	visitor.Base
}

func (removeCommentsVisitor) VisitComment(*ast.Comment, *visitor.Context) visitor.Action {
	return visitor.Remove()
}

func TestWalkRemovesComments(t *testing.T) {
	doc := ast.NewDocument("svg")
	doc.Root.AppendChild(&ast.Comment{Content: " logo "})
	rect := ast.NewElement("rect")
	doc.Root.AppendChild(rect)

	visitor.Walk(doc, removeCommentsVisitor{})

	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, rect, doc.Root.Children[0])
}

type collapseSingleGroupVisitor struct {
	visitor.Base
}

func (collapseSingleGroupVisitor) ExitElement(e *ast.Element, ctx *visitor.Context) visitor.Action {
	if e.Name == "g" && len(e.Attrs.Keys()) == 0 && len(e.Children) == 1 {
		return visitor.ReplaceChildren(e.Children)
	}
	return visitor.Keep()
}

func TestWalkReplaceChildrenInlinesWrapper(t *testing.T) {
	doc := ast.NewDocument("svg")
	outer := ast.NewElement("g")
	inner := ast.NewElement("g")
	rect := ast.NewElement("rect")
	inner.AppendChild(rect)
	outer.AppendChild(inner)
	doc.Root.AppendChild(outer)

	visitor.Walk(doc, collapseSingleGroupVisitor{})
	visitor.Walk(doc, collapseSingleGroupVisitor{})

	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, rect, doc.Root.Children[0])
}

type ancestorRecordingVisitor struct {
	visitor.Base
	seenAncestors [][]string
}

func (v *ancestorRecordingVisitor) EnterElement(e *ast.Element, ctx *visitor.Context) bool {
	var names []string
	for _, a := range ctx.Ancestors {
		names = append(names, a.Name)
	}
	v.seenAncestors = append(v.seenAncestors, names)
	return true
}

func TestWalkTracksAncestorStack(t *testing.T) {
	doc := ast.NewDocument("svg")
	g := ast.NewElement("g")
	rect := ast.NewElement("rect")
	g.AppendChild(rect)
	doc.Root.AppendChild(g)

	v := &ancestorRecordingVisitor{}
	visitor.Walk(doc, v)

	require.Len(t, v.seenAncestors, 3)
	assert.Empty(t, v.seenAncestors[0])
	assert.Equal(t, []string{"svg"}, v.seenAncestors[1])
	assert.Equal(t, []string{"svg", "g"}, v.seenAncestors[2])
}

func TestWalkSkipsChildrenWhenEnterReturnsFalse(t *testing.T) {
	doc := ast.NewDocument("svg")
	style := ast.NewElement("style")
	style.AppendChild(&ast.Text{Content: ".a{}"})
	doc.Root.AppendChild(style)

	called := false
	v := &stubVisitor{
		enter: func(e *ast.Element, ctx *visitor.Context) bool {
			if e.Name == "style" {
				return false
			}
			return true
		},
		visitText: func(t *ast.Text, ctx *visitor.Context) visitor.Action {
			called = true
			return visitor.Keep()
		},
	}
	visitor.Walk(doc, v)
	assert.False(t, called)
}

type stubVisitor struct {
	visitor.Base
	enter     func(*ast.Element, *visitor.Context) bool
	visitText func(*ast.Text, *visitor.Context) visitor.Action
}

func (s *stubVisitor) EnterElement(e *ast.Element, ctx *visitor.Context) bool {
	if s.enter != nil {
		return s.enter(e, ctx)
	}
	return true
}

func (s *stubVisitor) VisitText(t *ast.Text, ctx *visitor.Context) visitor.Action {
	if s.visitText != nil {
		return s.visitText(t, ctx)
	}
	return visitor.Keep()
}
