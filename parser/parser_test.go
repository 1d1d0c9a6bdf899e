package parser

import (
	"strings"
	"testing"

	"github.com/arturoeanton/svgo/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicElement(t *testing.T) {
	res, err := Parse([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect x="1" y="2"/></svg>`), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.Document.Root)
	assert.Equal(t, "svg", res.Document.Root.Name)
	require.Len(t, res.Document.Root.Children, 1)
	rect, ok := res.Document.Root.Children[0].(*ast.Element)
	require.True(t, ok)
	assert.Equal(t, "rect", rect.Name)
	x, ok := rect.Attr("x")
	assert.True(t, ok)
	assert.Equal(t, "1", x)
}

func TestParseEntityExpansion(t *testing.T) {
	input := `<!DOCTYPE svg [<!ENTITY c "red">]><svg><rect fill="&c;"/></svg>`
	res, err := Parse([]byte(input), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "red", res.Document.Entities["c"])
	rect := res.Document.Root.Children[0].(*ast.Element)
	fill, _ := rect.Attr("fill")
	assert.Equal(t, "red", fill)
}

func TestParseEntityCycleIsFatal(t *testing.T) {
	input := `<!DOCTYPE svg [<!ENTITY a "&b;"><!ENTITY b "&a;">]><svg><text>&a;</text></svg>`
	_, err := Parse([]byte(input), DefaultOptions())
	require.Error(t, err)
}

func TestParseWhitespaceSensitivePreservation(t *testing.T) {
	res, err := Parse([]byte(`<svg><text>  hi  </text></svg>`), DefaultOptions())
	require.NoError(t, err)
	textEl := res.Document.Root.Children[0].(*ast.Element)
	require.Len(t, textEl.Children, 1)
	txt := textEl.Children[0].(*ast.Text)
	assert.Equal(t, "  hi  ", txt.Content)
}

func TestParseDropsInsignificantWhitespace(t *testing.T) {
	res, err := Parse([]byte("<svg>\n  <rect/>\n</svg>"), DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Document.Root.Children, 1)
}

func TestParseDuplicateAttributeIsFatalByDefault(t *testing.T) {
	_, err := Parse([]byte(`<svg><rect x="1" x="2"/></svg>`), DefaultOptions())
	require.Error(t, err)
}

func TestParseDuplicateAttributeRecoverable(t *testing.T) {
	opts := DefaultOptions()
	opts.ErrorRecovery = true
	res, err := Parse([]byte(`<svg><rect x="1" x="2"/></svg>`), opts)
	require.NoError(t, err)
	rect := res.Document.Root.Children[0].(*ast.Element)
	x, _ := rect.Attr("x")
	assert.Equal(t, "1", x)
}

func TestParseUnclosedTagRecovers(t *testing.T) {
	opts := DefaultOptions()
	opts.ErrorRecovery = true
	res, err := Parse([]byte(`<svg><rect/>`), opts)
	require.NoError(t, err)
	assert.Equal(t, "svg", res.Document.Root.Name)
	assert.NotEmpty(t, res.Diagnostics)
}

func TestParseStreamMatchesParse(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg"><g><rect x="1"/></g></svg>`
	inMem, err := Parse([]byte(input), DefaultOptions())
	require.NoError(t, err)

	streamed, err := ParseStream(strings.NewReader(input), DefaultStreamOptions())
	require.NoError(t, err)

	assert.Equal(t, inMem.Document.Root.Name, streamed.Document.Root.Name)
	assert.Equal(t, inMem.Document.CountNodes(), streamed.Document.CountNodes())
}

func TestParseMaxDepthExceeded(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDepth = 2
	_, err := Parse([]byte(`<a><b><c/></b></a>`), opts)
	require.Error(t, err)
}
