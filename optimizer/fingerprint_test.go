package optimizer

import (
	"testing"

	"github.com/arturoeanton/svgo/ast"
	"github.com/stretchr/testify/assert"
)

func TestFingerprintStableAcrossIdenticalShape(t *testing.T) {
	build := func() *ast.Document {
		doc := ast.NewDocument("svg")
		rect := ast.NewElement("rect")
		rect.Attrs.Set("x", "1")
		doc.Root.AppendChild(rect)
		return doc
	}

	assert.Equal(t, fingerprint(build()), fingerprint(build()))
}

func TestFingerprintChangesWhenTreeShapeChanges(t *testing.T) {
	doc := ast.NewDocument("svg")
	rect := ast.NewElement("rect")
	doc.Root.AppendChild(rect)
	before := fingerprint(doc)

	doc.Root.AppendChild(ast.NewElement("circle"))
	after := fingerprint(doc)

	assert.NotEqual(t, before, after)
}
