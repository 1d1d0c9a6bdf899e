package optimizer

import (
	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/refscan"
)

// partition groups root's direct element children into sets that share no
// id reference with any other set, via url(#id), href="#id", or
// xlink:href="#id". Two top-level children land in the same group iff one
// references an id owned by the other (directly or by one of its
// descendants) — the independence condition the optimizer driver uses to
// decide what can run as separate work units.
func partition(root *ast.Element) [][]*ast.Element {
	subtrees := root.ElementChildren()
	if len(subtrees) == 0 {
		return nil
	}

	owner := make(map[string]int)
	for i, st := range subtrees {
		collectIDs(st, i, owner)
	}

	uf := newUnionFind(len(subtrees))
	for i, st := range subtrees {
		scanRefs(st, func(id string) {
			if j, ok := owner[id]; ok && j != i {
				uf.union(i, j)
			}
		})
	}

	groups := make(map[int][]*ast.Element)
	for i, st := range subtrees {
		root := uf.find(i)
		groups[root] = append(groups[root], st)
	}

	out := make([][]*ast.Element, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}

func collectIDs(e *ast.Element, owner int, ids map[string]int) {
	if id, ok := e.Attr("id"); ok {
		ids[id] = owner
	}
	for _, c := range e.ElementChildren() {
		collectIDs(c, owner, ids)
	}
}

func scanRefs(e *ast.Element, visit func(id string)) {
	e.Attrs.ForEach(func(name, value string) bool {
		if refscan.IsReferencingAttr(name) {
			for _, id := range refscan.FindReferences(value) {
				visit(id)
			}
		}
		return true
	})
	for _, c := range e.ElementChildren() {
		scanRefs(c, visit)
	}
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
