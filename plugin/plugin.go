// Package plugin defines the contract every transformation pass implements
// and the factory/registry that constructs fresh instances per run.
package plugin

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/google/jsonschema-go/jsonschema"
)

// Plugin is a named, configurable transformation over a document. The
// registry constructs a fresh instance per optimization run, so a Plugin
// may hold per-run state in its own fields but must not leak it elsewhere.
type Plugin interface {
	// Name is the stable identifier used in configuration and the default
	// preset.
	Name() string

	// Description is a one-line human-readable summary.
	Description() string

	// DefaultEnabled reports whether this plugin is part of the default
	// preset.
	DefaultEnabled() bool

	// ParamSchema describes this plugin's configuration parameters. Nil
	// means the plugin takes no parameters.
	ParamSchema() *jsonschema.Schema

	// Configure applies a parameter map, validated against ParamSchema
	// before this is called. Unknown keys are rejected by the schema
	// itself (additionalProperties: false); Configure only needs to apply
	// values to its own fields.
	Configure(params map[string]any) error

	// Apply performs one transformation pass over doc.
	Apply(doc *ast.Document) error

	// RequiresWholeDocument reports whether this plugin reads or writes
	// document-scope state (an identifier table, cross-subtree moves) and
	// so must always run single-threaded over the whole tree rather than
	// being dispatched per independent subtree.
	RequiresWholeDocument() bool

	// Order reports whether this plugin's traversal should run pre-order
	// (the default) or post-order. Removers of now-empty containers need
	// post-order so a container emptied by its own children's removal is
	// itself removed in the same pass.
	Order() TraversalOrder
}

// TraversalOrder selects pre- or post-order traversal for a plugin's walk.
type TraversalOrder int

const (
	PreOrder TraversalOrder = iota
	PostOrder
)

// Base supplies the common no-params, pre-order, subtree-safe defaults.
// Concrete plugins embed it and override only what differs.
type Base struct{}

func (Base) ParamSchema() *jsonschema.Schema    { return nil }
func (Base) Configure(map[string]any) error     { return nil }
func (Base) RequiresWholeDocument() bool        { return false }
func (Base) Order() TraversalOrder              { return PreOrder }
