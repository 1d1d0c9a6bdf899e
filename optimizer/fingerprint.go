package optimizer

import (
	"fmt"
	"strconv"

	"github.com/arturoeanton/svgo/ast"
	"github.com/cespare/xxhash/v2"
)

// fingerprint is a cheap per-pass summary used to detect a multipass fixed
// point without re-stringifying the whole document on every iteration: an
// xxhash over the prologue and epilogue lengths, each element's name,
// attribute count, and child count, and each text node's length, visited
// in document order. Two passes with the same
// fingerprint are treated as equivalent.
func fingerprint(doc *ast.Document) uint64 {
	var buf []byte
	buf = appendInt(buf, len(doc.Prologue))
	buf = appendInt(buf, len(doc.Epilogue))
	if doc.Root != nil {
		buf = appendElementShape(buf, doc.Root)
	}
	return xxhash.Sum64(buf)
}

func appendElementShape(buf []byte, e *ast.Element) []byte {
	buf = append(buf, e.Name...)
	buf = appendInt(buf, e.Attrs.Len())
	buf = appendInt(buf, len(e.Children))
	for _, c := range e.Children {
		switch v := c.(type) {
		case *ast.Element:
			buf = appendElementShape(buf, v)
		case *ast.Text:
			buf = appendInt(buf, len(v.Content))
		default:
			buf = append(buf, 'x')
		}
	}
	return buf
}

func appendInt(buf []byte, n int) []byte {
	return append(buf, []byte(fmt.Sprintf(":%s:", strconv.Itoa(n)))...)
}
