package plugins

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
)

// mergePaths concatenates the "d" data of consecutive sibling <path>
// elements that otherwise carry identical attributes into a single path,
// since rendering a run of such paths is equivalent to rendering their
// union in one element.
type mergePaths struct {
	plugin.Base
}

func newMergePaths() plugin.Plugin { return &mergePaths{} }

func (*mergePaths) Name() string         { return "mergePaths" }
func (*mergePaths) Description() string  { return "merges adjacent identically-styled paths" }
func (*mergePaths) DefaultEnabled() bool { return true }

func (*mergePaths) Apply(doc *ast.Document) error {
	doc.WalkElements(mergeConsecutivePaths)
	return nil
}

func mergeConsecutivePaths(e *ast.Element) {
	children := e.Children
	out := make([]ast.Node, 0, len(children))
	i := 0
	for i < len(children) {
		path, ok := asPathElement(children[i])
		if !ok {
			out = append(out, children[i])
			i++
			continue
		}
		j := i + 1
		for j < len(children) {
			next, ok := asPathElement(children[j])
			if !ok || !sameAttrsExceptD(path, next) {
				break
			}
			d1, _ := path.Attr("d")
			d2, _ := next.Attr("d")
			path.Attrs.Set("d", d1+" "+d2)
			j++
		}
		out = append(out, path)
		i = j
	}
	e.SetChildren(out)
}

func asPathElement(n ast.Node) (*ast.Element, bool) {
	el, ok := n.(*ast.Element)
	if !ok || el.Name != "path" {
		return nil, false
	}
	return el, true
}

func sameAttrsExceptD(a, b *ast.Element) bool {
	aKeys, bKeys := a.Attrs.Keys(), b.Attrs.Keys()
	if countNonD(aKeys) != countNonD(bKeys) {
		return false
	}
	for _, k := range aKeys {
		if k == "d" {
			continue
		}
		av, _ := a.Attr(k)
		bv, ok := b.Attr(k)
		if !ok || av != bv {
			return false
		}
	}
	return true
}

func countNonD(keys []string) int {
	n := 0
	for _, k := range keys {
		if k != "d" {
			n++
		}
	}
	return n
}
