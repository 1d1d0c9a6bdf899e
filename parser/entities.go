package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arturoeanton/svgo/diagnostic"
)

// entityDeclRe matches a single <!ENTITY name "value"> or <!ENTITY name
// 'value'> declaration inside a DOCTYPE internal subset. External entity
// declarations (SYSTEM/PUBLIC) are matched separately so they can be
// rejected without being fed expansion text.
var entityDeclRe = regexp.MustCompile(`(?s)<!ENTITY\s+([A-Za-z_][\w.\-]*)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

var externalEntityDeclRe = regexp.MustCompile(`(?s)<!ENTITY\s+([A-Za-z_][\w.\-]*)\s+(?:SYSTEM|PUBLIC)\b[^>]*>`)

// extractEntities scans a DOCTYPE's raw content (the text between "<!" and
// the closing ">", as handed back in encoding/xml's xml.Directive token,
// internal subset included) for <!ENTITY ...> declarations and returns the expansion
// table, honoring maxEntities. External entity declarations are skipped and
// each produces a warning diagnostic; they are never fetched.
func extractEntities(doctype string, maxEntities int, diags *diagnostic.List) (map[string]string, error) {
	entities := make(map[string]string)

	for _, m := range externalEntityDeclRe.FindAllStringSubmatch(doctype, -1) {
		diags.Add(&diagnostic.Diagnostic{
			Kind:     diagnostic.KindExternalEntity,
			Message:  fmt.Sprintf("external entity %q ignored; external entities are never fetched", m[1]),
			Severity: diagnostic.Warning,
		})
	}

	for _, m := range entityDeclRe.FindAllStringSubmatch(doctype, -1) {
		name := m[1]
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		if len(entities) >= maxEntities {
			return entities, &diagnostic.Diagnostic{
				Kind:     diagnostic.KindEntityLimit,
				Message:  fmt.Sprintf("more than %d declared entities", maxEntities),
				Severity: diagnostic.Error,
			}
		}
		entities[name] = value
	}

	return entities, nil
}

// entityRefRe matches a bare &name; reference (not numeric, not one of the
// five predefined entities, which encoding/xml's tokenizer already resolves
// before this package ever sees the text).
var entityRefRe = regexp.MustCompile(`&([A-Za-z_][\w.\-]*);`)

const maxEntityExpansionDepth = 16

// expandEntities replaces every &name; reference in s with its declared
// expansion from table, recursively. It aborts with EntityCycle if
// expansion does not terminate within
// maxEntityExpansionDepth recursive substitutions along any single chain.
func expandEntities(s string, table map[string]string) (string, error) {
	if len(table) == 0 || !strings.ContainsRune(s, '&') {
		return s, nil
	}
	return expandEntitiesDepth(s, table, nil)
}

func expandEntitiesDepth(s string, table map[string]string, chain []string) (string, error) {
	if len(chain) > maxEntityExpansionDepth {
		return "", &diagnostic.Diagnostic{
			Kind:     diagnostic.KindEntityCycle,
			Message:  fmt.Sprintf("entity expansion exceeded depth %d (chain: %s)", maxEntityExpansionDepth, strings.Join(chain, " -> ")),
			Severity: diagnostic.Error,
		}
	}

	var expandErr error
	out := entityRefRe.ReplaceAllStringFunc(s, func(ref string) string {
		if expandErr != nil {
			return ref
		}
		name := ref[1 : len(ref)-1]
		value, ok := table[name]
		if !ok {
			// Not a declared entity: leave the reference as-is.
			return ref
		}
		for _, seen := range chain {
			if seen == name {
				expandErr = &diagnostic.Diagnostic{
					Kind:     diagnostic.KindEntityCycle,
					Message:  fmt.Sprintf("entity %q is part of an expansion cycle", name),
					Severity: diagnostic.Error,
				}
				return ref
			}
		}
		expanded, err := expandEntitiesDepth(value, table, append(chain, name))
		if err != nil {
			expandErr = err
			return ref
		}
		return expanded
	})
	if expandErr != nil {
		return "", expandErr
	}
	return out, nil
}

// doctypeNameRe matches the leading "DOCTYPE" keyword of an xml.Directive
// token's content (everything between "<!" and the matching ">").
var doctypeNameRe = regexp.MustCompile(`^DOCTYPE\b`)

// isDoctypeDirective reports whether a raw xml.Directive's content (without
// the enclosing "<!" / ">") is a DOCTYPE declaration.
func isDoctypeDirective(content string) bool {
	return doctypeNameRe.MatchString(strings.TrimSpace(content))
}
