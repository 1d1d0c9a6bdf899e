package parser

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/diagnostic"
)

// Result is the outcome of a successful parse: the Document plus any
// recoverable diagnostics accumulated along the way. Recoverable parse
// errors do not propagate as errors; they accumulate in this list instead.
type Result struct {
	Document    *ast.Document
	Diagnostics []*diagnostic.Diagnostic
}

// Parse performs an in-memory parse of data. Automatic size-threshold
// dispatch to ParseStream lives in the top-level svgo package, which both
// library entry points and callers composing their own pipeline go
// through; Parse itself always parses data in memory regardless of size.
func Parse(data []byte, opts Options) (*Result, error) {
	o := opts.normalized(false)
	tracker := newPosTracker(bytes.NewReader(data))
	return parseCore(tracker, data, o, false)
}

// ParseStream parses r incrementally, used automatically for inputs above
// the streaming threshold or when the caller opts in directly. Streaming
// mode enforces stricter entity/size limits and always recovers from
// faults.
func ParseStream(r io.Reader, opts Options) (*Result, error) {
	o := opts.normalized(true)
	limited := &capReader{r: bufio.NewReaderSize(r, o.StreamingBuffer), max: defaultStreamCap}
	tracker := newPosTracker(limited)
	res, err := parseCore(tracker, nil, o, true)
	if limited.exceeded {
		return nil, &diagnostic.Diagnostic{
			Kind:     diagnostic.KindIO,
			Message:  fmt.Sprintf("input exceeds streaming cap of %d bytes", defaultStreamCap),
			Severity: diagnostic.Error,
		}
	}
	return res, err
}

// capReader enforces streaming mode's hard size cap: inputs larger than a
// configured limit (default 1 GiB) are rejected rather than parsed.
type capReader struct {
	r        io.Reader
	max      int
	total    int
	exceeded bool
}

func (c *capReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.total += n
	if c.total > c.max {
		c.exceeded = true
		return n, io.EOF
	}
	return n, err
}

// frame tracks one open element during the decode walk.
type frame struct {
	el *ast.Element
}

func parseCore(tracker *posTracker, fullBuf []byte, opts Options, streaming bool) (*Result, error) {
	diags := &diagnostic.List{}
	dec := xml.NewDecoder(tracker)
	dec.Strict = false // tolerate custom (declared) entities; see entities.go

	doc := &ast.Document{Entities: make(map[string]string), Metadata: make(map[string]any)}
	var stack []frame
	var root *ast.Element
	rootClosed := false

	excerptAt := func(off int) string {
		if fullBuf != nil {
			return excerptFromBytes(fullBuf, off)
		}
		return tracker.excerpt()
	}

	recover := func(d *diagnostic.Diagnostic) error {
		if opts.ErrorRecovery {
			diags.Add(d)
			return nil
		}
		return d
	}

	appendNode := func(n ast.Node) {
		switch {
		case len(stack) > 0:
			stack[len(stack)-1].el.AppendChild(n)
		case !rootClosed && root == nil:
			doc.Prologue = append(doc.Prologue, n)
		default:
			doc.Epilogue = append(doc.Epilogue, n)
		}
	}

	expand := func(s string) (string, error) {
		if !opts.ExpandEntities || len(doc.Entities) == 0 {
			return s, nil
		}
		return expandEntities(s, doc.Entities)
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			pos := position{Offset: int(dec.InputOffset())}
			d := &diagnostic.Diagnostic{
				Kind:     diagnostic.KindSyntax,
				Message:  err.Error(),
				Severity: diagnostic.Error,
				Position: &diagnostic.Position{Offset: pos.Offset, Line: tracker.line, Column: tracker.column},
				Excerpt:  excerptAt(pos.Offset),
			}
			if rerr := recover(d); rerr != nil {
				return nil, rerr
			}
			// encoding/xml cannot resume after a token-level error; treat
			// remaining input as consumed and stop the walk here, with
			// whatever tree has been built so far.
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= opts.MaxDepth {
				d := &diagnostic.Diagnostic{
					Kind:     diagnostic.KindDepthExceeded,
					Message:  fmt.Sprintf("element nesting exceeds max depth %d", opts.MaxDepth),
					Severity: diagnostic.Error,
					Position: &diagnostic.Position{Line: tracker.line, Column: tracker.column},
				}
				if streaming {
					return nil, d
				}
				if rerr := recover(d); rerr != nil {
					return nil, rerr
				}
			}

			seen := make(map[string]bool, len(t.Attr))
			el := ast.NewElement(t.Name.Local)
			for _, a := range t.Attr {
				if seen[a.Name.Local] {
					d := &diagnostic.Diagnostic{
						Kind:     diagnostic.KindDuplicateAttribute,
						Message:  fmt.Sprintf("duplicate attribute %q on <%s>", a.Name.Local, t.Name.Local),
						Severity: diagnostic.Error,
						Position: &diagnostic.Position{Line: tracker.line, Column: tracker.column},
					}
					if rerr := recover(d); rerr != nil {
						return nil, rerr
					}
					continue
				}
				seen[a.Name.Local] = true
				val, eerr := expand(a.Value)
				if eerr != nil {
					if rerr := recover(eerr.(*diagnostic.Diagnostic)); rerr != nil {
						return nil, rerr
					}
					val = a.Value
				}
				el.Attrs.Set(a.Name.Local, val)
			}

			if len(stack) == 0 {
				if root != nil {
					d := &diagnostic.Diagnostic{
						Kind:     diagnostic.KindStructure,
						Message:  "multiple root elements",
						Severity: diagnostic.Error,
					}
					if rerr := recover(d); rerr != nil {
						return nil, rerr
					}
				} else {
					root = el
				}
			} else {
				stack[len(stack)-1].el.AppendChild(el)
			}
			stack = append(stack, frame{el: el})

		case xml.EndElement:
			if len(stack) == 0 {
				d := &diagnostic.Diagnostic{
					Kind:     diagnostic.KindStructure,
					Message:  fmt.Sprintf("unexpected closing tag </%s>", t.Name.Local),
					Severity: diagnostic.Error,
				}
				if rerr := recover(d); rerr != nil {
					return nil, rerr
				}
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			content := string(t)
			sensitive := ancestorSensitive(stack)
			if !sensitive {
				if isAllWhitespace(content) {
					if !opts.PreserveWhitespace {
						continue
					}
					content = " "
				}
			}
			if len(content) > opts.MaxTextNodeBytes {
				diags.Add(&diagnostic.Diagnostic{
					Kind:     diagnostic.KindTruncatedText,
					Message:  fmt.Sprintf("text node truncated from %d to %d bytes", len(content), opts.MaxTextNodeBytes),
					Severity: diagnostic.Info,
				})
				content = content[:opts.MaxTextNodeBytes]
			}
			expanded, eerr := expand(content)
			if eerr != nil {
				if rerr := recover(eerr.(*diagnostic.Diagnostic)); rerr != nil {
					return nil, rerr
				}
			} else {
				content = expanded
			}
			if len(stack) > 0 {
				appendNode(&ast.Text{Content: content})
			}
			// Text outside the root element is not meaningful XML; drop it
			// silently rather than modeling it.

		case xml.Comment:
			if opts.PreserveComments {
				appendNode(&ast.Comment{Content: string(t)})
			}

		case xml.ProcInst:
			appendNode(&ast.ProcessingInstruction{Target: t.Target, Data: string(t.Inst)})

		case xml.Directive:
			content := string(t)
			if isDoctypeDirective(content) {
				entities, eerr := extractEntities(content, opts.MaxEntities, diags)
				for k, v := range entities {
					doc.Entities[k] = v
				}
				if eerr != nil {
					if rerr := recover(eerr.(*diagnostic.Diagnostic)); rerr != nil {
						return nil, rerr
					}
				}
			}
			appendNode(&ast.DocType{Content: content})
		}
	}

	if len(stack) > 0 {
		// Unclosed tags at EOF: each still-open element is reported. With
		// error recovery on, the tree built so far is accepted; otherwise
		// the innermost unclosed element is a fatal error.
		for i := len(stack) - 1; i >= 0; i-- {
			diags.Add(&diagnostic.Diagnostic{
				Kind:     diagnostic.KindStructure,
				Message:  fmt.Sprintf("unclosed element <%s> at end of input", stack[i].el.Name),
				Severity: diagnostic.Warning,
			})
		}
		if !opts.ErrorRecovery {
			return nil, &diagnostic.Diagnostic{
				Kind:     diagnostic.KindStructure,
				Message:  fmt.Sprintf("unclosed element <%s> at end of input", stack[len(stack)-1].el.Name),
				Severity: diagnostic.Error,
			}
		}
	}

	if root == nil {
		return nil, &diagnostic.Diagnostic{
			Kind:     diagnostic.KindStructure,
			Message:  "no root element found",
			Severity: diagnostic.Error,
		}
	}

	doc.Root = root
	return &Result{Document: doc, Diagnostics: diags.Items()}, nil
}

func ancestorSensitive(stack []frame) bool {
	for _, f := range stack {
		if ast.IsWhitespaceSensitive(f.el.Name) {
			return true
		}
	}
	return false
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}
