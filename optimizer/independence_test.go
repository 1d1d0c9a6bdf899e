package optimizer

import (
	"testing"

	"github.com/arturoeanton/svgo/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionSeparatesUnrelatedSubtrees(t *testing.T) {
	doc := ast.NewDocument("svg")
	a := ast.NewElement("rect")
	b := ast.NewElement("rect")
	doc.Root.AppendChild(a)
	doc.Root.AppendChild(b)

	groups := partition(doc.Root)
	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.Len(t, g, 1)
	}
}

func TestPartitionMergesCrossReferencingSubtrees(t *testing.T) {
	doc := ast.NewDocument("svg")
	defs := ast.NewElement("defs")
	gradient := ast.NewElement("linearGradient")
	gradient.Attrs.Set("id", "grad1")
	defs.AppendChild(gradient)

	rect := ast.NewElement("rect")
	rect.Attrs.Set("fill", "url(#grad1)")

	unrelated := ast.NewElement("circle")

	doc.Root.AppendChild(defs)
	doc.Root.AppendChild(rect)
	doc.Root.AppendChild(unrelated)

	groups := partition(doc.Root)
	require.Len(t, groups, 2)

	var sizes []int
	for _, g := range groups {
		sizes = append(sizes, len(g))
	}
	assert.ElementsMatch(t, []int{2, 1}, sizes)
}

func TestPartitionFollowsHrefAndXlinkHref(t *testing.T) {
	doc := ast.NewDocument("svg")
	symbol := ast.NewElement("symbol")
	symbol.Attrs.Set("id", "icon")

	use := ast.NewElement("use")
	use.Attrs.Set("xlink:href", "#icon")

	doc.Root.AppendChild(symbol)
	doc.Root.AppendChild(use)

	groups := partition(doc.Root)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}
