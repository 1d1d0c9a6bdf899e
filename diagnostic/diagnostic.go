// Package diagnostic implements typed diagnostics with source position,
// severity, and an optional suggestion, plus a renderer that produces a
// human-readable block. It wraps encoding/xml's line-only errors in a
// richer taxonomy (parser, plugin, config, io) carrying a byte-offset plus
// line/column position.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Kind enumerates the parser, plugin, config, and io error kinds.
type Kind string

const (
	KindEncoding           Kind = "Encoding"
	KindSyntax             Kind = "Syntax"
	KindStructure          Kind = "Structure"
	KindDuplicateAttribute Kind = "DuplicateAttribute"
	KindEntityLimit        Kind = "EntityLimit"
	KindEntityCycle        Kind = "EntityCycle"
	KindMalformedEntity    Kind = "MalformedEntity"
	KindExternalEntity     Kind = "ExternalEntity"
	KindDepthExceeded      Kind = "DepthExceeded"
	KindTruncatedText      Kind = "TruncatedText"
	KindIO                 Kind = "Io"
	KindConfig             Kind = "Config"
	KindPlugin             Kind = "Plugin"
	KindCancelled          Kind = "Cancelled"
)

// Position locates a Diagnostic within the source text.
type Position struct {
	Offset int // 0-based byte offset
	Line   int // 1-based
	Column int // 1-based
}

// Diagnostic is a single typed error or informational note: a kind,
// message, optional position, optional suggestion, and a severity.
type Diagnostic struct {
	Kind       Kind
	Message    string
	Path       string // source file path, if known; empty for in-memory input
	Position   *Position
	Severity   Severity
	Suggestion string

	// Excerpt is the source line the Position falls on, used by Render to
	// draw the caret indicator. It is populated by the caller that has
	// access to the raw source (the parser), not by this package.
	Excerpt string
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString(string(d.Kind))
	b.WriteString(": ")
	b.WriteString(d.Message)
	if d.Position != nil {
		fmt.Fprintf(&b, " (line %d, column %d)", d.Position.Line, d.Position.Column)
	}
	return b.String()
}

// Render produces a multi-line human-readable block: a header line, a
// source excerpt with a caret column indicator, and a suggestion line when
// present.
func (d *Diagnostic) Render() string {
	var b strings.Builder

	header := fmt.Sprintf("%s: %s", d.Severity, d.Message)
	if d.Path != "" {
		header = fmt.Sprintf("%s: %s: %s", d.Path, d.Severity, d.Message)
	}
	b.WriteString(header)
	b.WriteByte('\n')

	if d.Position != nil {
		fmt.Fprintf(&b, "  --> line %d, column %d\n", d.Position.Line, d.Position.Column)
		if d.Excerpt != "" {
			b.WriteString("   | ")
			b.WriteString(d.Excerpt)
			b.WriteByte('\n')
			b.WriteString("   | ")
			col := d.Position.Column
			if col < 1 {
				col = 1
			}
			b.WriteString(strings.Repeat(" ", col-1))
			b.WriteString("^\n")
		}
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&b, "  = suggestion: %s\n", d.Suggestion)
	}

	return b.String()
}

// List is an accumulating diagnostic list, replacing exception-like control
// flow in the parser: recoverable faults append here and parsing continues;
// a fatal fault is still returned as an error separately by the caller.
type List struct {
	items []*Diagnostic
}

// Add appends d to the list.
func (l *List) Add(d *Diagnostic) {
	l.items = append(l.items, d)
}

// Items returns the accumulated diagnostics in the order they were added.
func (l *List) Items() []*Diagnostic {
	return l.items
}

// HasErrors reports whether any accumulated diagnostic is at Error severity.
func (l *List) HasErrors() bool {
	for _, d := range l.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (l *List) Len() int {
	return len(l.items)
}
