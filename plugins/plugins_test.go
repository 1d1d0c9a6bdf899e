package plugins_test

import (
	"testing"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
	"github.com/arturoeanton/svgo/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *plugin.Registry {
	reg := plugin.NewRegistry()
	plugins.Register(reg)
	return reg
}

func apply(t *testing.T, name string, doc *ast.Document) {
	t.Helper()
	reg := newRegistry()
	p, err := reg.Configure(name, nil)
	require.NoError(t, err)
	require.NoError(t, p.Apply(doc))
}

func TestRegisterAddsAllDefaultPresetPlugins(t *testing.T) {
	reg := newRegistry()
	names := reg.Names()
	assert.Len(t, names, 15)
}

func TestRemoveCommentsDropsComments(t *testing.T) {
	doc := ast.NewDocument("svg")
	doc.Root.AppendChild(&ast.Comment{Content: "logo"})
	rect := ast.NewElement("rect")
	doc.Root.AppendChild(rect)

	apply(t, "removeComments", doc)

	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, rect, doc.Root.Children[0])
}

func TestRemoveMetadataDropsMetadataElement(t *testing.T) {
	doc := ast.NewDocument("svg")
	meta := ast.NewElement("metadata")
	meta.AppendChild(&ast.Text{Content: "rdf stuff"})
	doc.Root.AppendChild(meta)

	apply(t, "removeMetadata", doc)

	assert.Empty(t, doc.Root.Children)
}

func TestRemoveEmptyAttrsDropsBlankValues(t *testing.T) {
	doc := ast.NewDocument("svg")
	doc.Root.Attrs.Set("class", "")
	doc.Root.Attrs.Set("id", "keep")

	apply(t, "removeEmptyAttrs", doc)

	assert.False(t, doc.Root.Attrs.Has("class"))
	assert.True(t, doc.Root.Attrs.Has("id"))
}

func TestRemoveHiddenElemsDropsDisplayNone(t *testing.T) {
	doc := ast.NewDocument("svg")
	hidden := ast.NewElement("rect")
	hidden.Attrs.Set("display", "none")
	doc.Root.AppendChild(hidden)
	visible := ast.NewElement("rect")
	doc.Root.AppendChild(visible)

	apply(t, "removeHiddenElems", doc)

	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, visible, doc.Root.Children[0])
}

func TestConvertColorsShortensHex(t *testing.T) {
	doc := ast.NewDocument("svg")
	doc.Root.Attrs.Set("fill", "#FFAA00")

	apply(t, "convertColors", doc)

	v, _ := doc.Root.Attr("fill")
	assert.Equal(t, "#fa0", v)
}

func TestConvertColorsConvertsRGBFunction(t *testing.T) {
	doc := ast.NewDocument("svg")
	doc.Root.Attrs.Set("fill", "rgb(255, 0, 0)")

	apply(t, "convertColors", doc)

	v, _ := doc.Root.Attr("fill")
	assert.Equal(t, "#f00", v)
}

func TestCleanupNumericValuesRoundsToPrecision(t *testing.T) {
	doc := ast.NewDocument("svg")
	rect := ast.NewElement("rect")
	rect.Attrs.Set("x", "1.23456")
	doc.Root.AppendChild(rect)

	reg := newRegistry()
	p, err := reg.Configure("cleanupNumericValues", map[string]any{"floatPrecision": 2})
	require.NoError(t, err)
	require.NoError(t, p.Apply(doc))

	x, _ := rect.Attr("x")
	assert.Equal(t, "1.23", x)
}

func TestCollapseGroupsInlinesAttributelessGroup(t *testing.T) {
	doc := ast.NewDocument("svg")
	g := ast.NewElement("g")
	rect := ast.NewElement("rect")
	g.AppendChild(rect)
	doc.Root.AppendChild(g)

	apply(t, "collapseGroups", doc)

	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, rect, doc.Root.Children[0])
}

func TestCollapseGroupsLeavesGroupWithAttrsAlone(t *testing.T) {
	doc := ast.NewDocument("svg")
	g := ast.NewElement("g")
	g.Attrs.Set("transform", "translate(1,1)")
	rect := ast.NewElement("rect")
	g.AppendChild(rect)
	doc.Root.AppendChild(g)

	apply(t, "collapseGroups", doc)

	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, g, doc.Root.Children[0])
}

func TestMergePathsConcatenatesMatchingSiblings(t *testing.T) {
	doc := ast.NewDocument("svg")
	p1 := ast.NewElement("path")
	p1.Attrs.Set("d", "M0 0")
	p1.Attrs.Set("fill", "red")
	p2 := ast.NewElement("path")
	p2.Attrs.Set("d", "M1 1")
	p2.Attrs.Set("fill", "red")
	doc.Root.AppendChild(p1)
	doc.Root.AppendChild(p2)

	apply(t, "mergePaths", doc)

	require.Len(t, doc.Root.Children, 1)
	merged := doc.Root.Children[0].(*ast.Element)
	d, _ := merged.Attr("d")
	assert.Equal(t, "M0 0 M1 1", d)
}

func TestMergePathsLeavesDifferentStylesSeparate(t *testing.T) {
	doc := ast.NewDocument("svg")
	p1 := ast.NewElement("path")
	p1.Attrs.Set("d", "M0 0")
	p1.Attrs.Set("fill", "red")
	p2 := ast.NewElement("path")
	p2.Attrs.Set("d", "M1 1")
	p2.Attrs.Set("fill", "blue")
	doc.Root.AppendChild(p1)
	doc.Root.AppendChild(p2)

	apply(t, "mergePaths", doc)

	assert.Len(t, doc.Root.Children, 2)
}

func TestSortAttrsOrdersAlphabetically(t *testing.T) {
	doc := ast.NewDocument("svg")
	doc.Root.Attrs.Set("z", "1")
	doc.Root.Attrs.Set("a", "2")

	apply(t, "sortAttrs", doc)

	assert.Equal(t, []string{"a", "z"}, doc.Root.Attrs.Keys())
}

func TestCleanupIdsRemovesUnreferencedId(t *testing.T) {
	doc := ast.NewDocument("svg")
	rectUnused := ast.NewElement("rect")
	rectUnused.Attrs.Set("id", "unused")
	rectReferenced := ast.NewElement("rect")
	rectReferenced.Attrs.Set("id", "used")
	use := ast.NewElement("use")
	use.Attrs.Set("href", "#used")
	doc.Root.AppendChild(rectUnused)
	doc.Root.AppendChild(rectReferenced)
	doc.Root.AppendChild(use)

	apply(t, "cleanupIds", doc)

	assert.False(t, rectUnused.Attrs.Has("id"))
	assert.True(t, rectReferenced.Attrs.Has("id"))
}
