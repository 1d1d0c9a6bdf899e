// Package parser implements a tolerant XML-to-AST converter: entity
// expansion, whitespace policy, depth/size limits, streaming, and
// recoverable diagnostics. It is built on top of encoding/xml's tokenizer
// rather than a hand-rolled lexer, with a custom entity table and limits
// layered on top — encoding/xml gives SAX-style events and
// predefined-entity handling for free; everything beyond that is this
// package's own code.
package parser

// Options configures a single parse or parse-stream call.
type Options struct {
	// PreserveComments retains Comment nodes in the AST. Default true.
	PreserveComments bool
	// PreserveWhitespace retains whitespace-only text nodes outside
	// whitespace-sensitive elements, collapsed to a single space rather
	// than dropped. Default false.
	PreserveWhitespace bool
	// ExpandEntities replaces &name; with its declared DOCTYPE expansion.
	// Default true.
	ExpandEntities bool
	// MaxEntities caps the number of distinct declared entities. Default
	// 1000 for Parse, 50 for ParseStream.
	MaxEntities int
	// MaxDepth caps element nesting. Default 1000.
	MaxDepth int
	// StreamingBuffer is the read chunk size used by ParseStream. Default
	// 64 KiB. Unused by Parse.
	StreamingBuffer int
	// MaxTextNodeBytes truncates any single text node longer than this,
	// emitting an Info diagnostic. Default 1 MiB.
	MaxTextNodeBytes int
	// ErrorRecovery continues past a recoverable error, emitting a
	// diagnostic, instead of stopping at the first one. Default false for
	// Parse; always true for ParseStream regardless of this field.
	ErrorRecovery bool
}

const (
	defaultMaxEntitiesInMemory = 1000
	defaultMaxEntitiesStream   = 50
	defaultMaxDepth            = 1000
	defaultStreamingBuffer     = 64 * 1024
	defaultMaxTextNodeBytes    = 1 * 1024 * 1024
	defaultStreamCap           = 1 * 1024 * 1024 * 1024
)

// StreamThreshold is the input size (in bytes) above which callers should
// prefer ParseStream over Parse.
const StreamThreshold = 256 * 1024

// DefaultOptions returns the defaults for an in-memory Parse call.
func DefaultOptions() Options {
	return Options{
		PreserveComments:   true,
		PreserveWhitespace: false,
		ExpandEntities:     true,
		MaxEntities:        defaultMaxEntitiesInMemory,
		MaxDepth:           defaultMaxDepth,
		StreamingBuffer:    defaultStreamingBuffer,
		MaxTextNodeBytes:   defaultMaxTextNodeBytes,
		ErrorRecovery:      false,
	}
}

// DefaultStreamOptions returns the defaults for ParseStream: a lower
// entity cap and error recovery forced on.
func DefaultStreamOptions() Options {
	o := DefaultOptions()
	o.MaxEntities = defaultMaxEntitiesStream
	o.ErrorRecovery = true
	return o
}

func (o Options) normalized(streaming bool) Options {
	if o.MaxEntities == 0 {
		if streaming {
			o.MaxEntities = defaultMaxEntitiesStream
		} else {
			o.MaxEntities = defaultMaxEntitiesInMemory
		}
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = defaultMaxDepth
	}
	if o.StreamingBuffer == 0 {
		o.StreamingBuffer = defaultStreamingBuffer
	}
	if o.MaxTextNodeBytes == 0 {
		o.MaxTextNodeBytes = defaultMaxTextNodeBytes
	}
	if streaming {
		o.ErrorRecovery = true
	}
	return o
}
