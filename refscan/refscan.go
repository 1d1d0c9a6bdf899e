// Package refscan finds id references inside attribute values, the
// matching primitive both the independence analyzer and the cleanupIds
// plugin need: does this attribute value point at that id.
package refscan

import "regexp"

var urlRefRe = regexp.MustCompile(`url\(\s*['"]?#([^)'"\s]+)['"]?\s*\)`)

// FindReferences returns every id referenced by value, covering both
// url(#id) (fill, stroke, clip-path, mask, filter, style values) and a bare
// "#id" fragment (href, xlink:href values).
func FindReferences(value string) []string {
	var ids []string
	for _, m := range urlRefRe.FindAllStringSubmatch(value, -1) {
		ids = append(ids, m[1])
	}
	if len(value) > 1 && value[0] == '#' {
		ids = append(ids, value[1:])
	}
	return ids
}

// referencingAttrs lists attribute names worth scanning for id references.
// style is included because inline CSS can itself contain url(#id).
var referencingAttrs = map[string]bool{
	"href":        true,
	"xlink:href":  true,
	"fill":        true,
	"stroke":      true,
	"clip-path":   true,
	"mask":        true,
	"filter":      true,
	"style":       true,
	"marker-start": true,
	"marker-mid":  true,
	"marker-end":  true,
}

// IsReferencingAttr reports whether name is one of the attributes that can
// carry an id reference.
func IsReferencingAttr(name string) bool {
	return referencingAttrs[name]
}
