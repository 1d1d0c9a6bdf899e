package stringify

import (
	"bufio"
	"io"
	"strings"

	"github.com/arturoeanton/svgo/ast"
)

// sink is the subset of strings.Builder's API the writer needs, so the same
// traversal can target either an in-memory buffer (Stringify) or a buffered
// io.Writer (WriteTo) without duplicating the tree walk.
type sink interface {
	WriteString(string) (int, error)
	WriteByte(byte) error
}

// Stringify walks doc and returns its serialized bytes. It pre-sizes its
// output buffer from the document's node count rather than growing from
// zero.
func Stringify(doc *ast.Document, opts Options) []byte {
	o := opts.normalized()
	var b strings.Builder
	b.Grow(estimateSize(doc))

	w := &writer{b: &b, opts: o}
	w.writeNodes(doc.Prologue, 0)
	if doc.Root != nil {
		w.writeElement(doc.Root, 0)
	}
	w.writeNodes(doc.Epilogue, 0)

	if o.FinalNewline {
		b.WriteString(o.EOL)
	}
	return []byte(b.String())
}

// estimateSize guesses a starting buffer capacity from the node count, at
// roughly 32 bytes/node — a deliberately coarse heuristic; strings.Builder
// grows geometrically past this, so under-estimating costs one extra copy
// at worst.
func estimateSize(doc *ast.Document) int {
	if doc == nil {
		return 0
	}
	return doc.CountNodes() * 32
}

type writer struct {
	b       sink
	opts    Options
	started bool
}

func (w *writer) writeNodes(nodes []ast.Node, depth int) {
	for _, n := range nodes {
		w.writeNode(n, depth)
	}
}

func (w *writer) writeNode(n ast.Node, depth int) {
	switch v := n.(type) {
	case *ast.Element:
		w.writeElement(v, depth)
	case *ast.Text:
		// Text never indents, but it still counts as output already
		// written for the next sibling's writeIndent decision.
		escapeText(w.b, v.Content)
		w.started = true
	case *ast.Comment:
		w.writeIndent(depth)
		w.b.WriteString("<!--")
		w.b.WriteString(v.Content)
		w.b.WriteString("-->")
	case *ast.CData:
		w.writeIndent(depth)
		w.b.WriteString("<![CDATA[")
		w.b.WriteString(v.Content)
		w.b.WriteString("]]>")
	case *ast.ProcessingInstruction:
		w.writeIndent(depth)
		w.b.WriteString("<?")
		w.b.WriteString(v.Target)
		if v.Data != "" {
			w.b.WriteByte(' ')
			w.b.WriteString(v.Data)
		}
		w.b.WriteString("?>")
	case *ast.DocType:
		w.writeIndent(depth)
		w.b.WriteString("<!")
		w.b.WriteString(v.Content)
		w.b.WriteString(">")
	}
}

func (w *writer) writeIndent(depth int) {
	if !w.opts.Pretty {
		return
	}
	if w.started {
		w.b.WriteString(w.opts.EOL)
	}
	w.started = true
	for i := 0; i < depth; i++ {
		w.b.WriteString(w.opts.Indent)
	}
}

func (w *writer) writeElement(e *ast.Element, depth int) {
	w.writeIndent(depth)
	w.b.WriteByte('<')
	w.b.WriteString(e.Name)

	if e.Attrs != nil {
		quote := w.opts.QuoteChar
		e.Attrs.ForEach(func(name, value string) bool {
			w.b.WriteByte(' ')
			w.b.WriteString(name)
			w.b.WriteByte('=')
			w.b.WriteByte(quote)
			escapeAttr(w.b, value, quote)
			w.b.WriteByte(quote)
			return true
		})
	}

	if len(e.Children) == 0 && w.opts.SelfCloseVoid {
		w.b.WriteString("/>")
		return
	}

	w.b.WriteByte('>')
	for _, c := range e.Children {
		w.writeNode(c, depth+1)
	}
	if w.opts.Pretty && hasElementChild(e) {
		w.writeIndent(depth)
	}
	w.b.WriteString("</")
	w.b.WriteString(e.Name)
	w.b.WriteByte('>')
}

func hasElementChild(e *ast.Element) bool {
	for _, c := range e.Children {
		if _, ok := c.(*ast.Element); ok {
			return true
		}
	}
	return false
}

// countingWriter adapts a *bufio.Writer to sink while tracking the total
// bytes accepted, so WriteTo can report its return count without a second
// pass over the output.
type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countingWriter) WriteString(s string) (int, error) {
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	return n, err
}

func (c *countingWriter) WriteByte(b byte) error {
	err := c.w.WriteByte(b)
	if err == nil {
		c.n++
	}
	return err
}

// WriteTo streams doc directly to w through a bufio.Writer, flushing once
// its buffer fills rather than materializing the whole serialized document
// in memory first, so arbitrarily large documents cost only the buffer's
// fixed size plus whatever the tree walk itself holds on the stack.
func WriteTo(w io.Writer, doc *ast.Document, opts Options) (int64, error) {
	o := opts.normalized()
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	sw := &writer{b: cw, opts: o}
	sw.writeNodes(doc.Prologue, 0)
	if doc.Root != nil {
		sw.writeElement(doc.Root, 0)
	}
	sw.writeNodes(doc.Epilogue, 0)

	if o.FinalNewline {
		cw.WriteString(o.EOL)
	}

	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}
