package importer

import (
	"sort"

	"github.com/alexanderramin/xerplan/internal/xer"
)

// OrderedWBS is one WBS node in creation order. Orphan is set when the node
// names a parent that cannot be created before it; it must then be stored as
// a root.
type OrderedWBS struct {
	xer.WBS
	Orphan bool
}

// OrderWBS returns nodes so that every parent precedes its children. Roots
// come first, siblings by seq_num and then source order. Nodes whose parent
// is missing from the file, or that sit on a cycle, are promoted to roots
// after the regular forest has been walked.
func OrderWBS(nodes []xer.WBS) []OrderedWBS {
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.WBSID] = true
	}

	// Children indexed by parent id; roots under "".
	children := make(map[string][]int)
	var rootIdx []int
	for i, n := range nodes {
		if n.ParentWBSID == nil || *n.ParentWBSID == "" {
			rootIdx = append(rootIdx, i)
			continue
		}
		children[*n.ParentWBSID] = append(children[*n.ParentWBSID], i)
	}

	bySeq := func(idx []int) {
		sort.SliceStable(idx, func(a, b int) bool {
			return nodes[idx[a]].SortOrder < nodes[idx[b]].SortOrder
		})
	}
	bySeq(rootIdx)
	for k := range children {
		bySeq(children[k])
	}

	out := make([]OrderedWBS, 0, len(nodes))
	visited := make([]bool, len(nodes))
	// Parent ids already expanded; duplicate ids share one child list.
	expanded := make(map[string]bool)

	var walk func(i int, orphan bool)
	walk = func(i int, orphan bool) {
		if visited[i] {
			return
		}
		visited[i] = true
		out = append(out, OrderedWBS{WBS: nodes[i], Orphan: orphan})

		id := nodes[i].WBSID
		if expanded[id] {
			return
		}
		expanded[id] = true
		for _, c := range children[id] {
			walk(c, false)
		}
	}

	for _, i := range rootIdx {
		walk(i, false)
	}

	// Missing parents first, in source order, then whatever is left on cycles.
	for i, n := range nodes {
		if !visited[i] && !known[*n.ParentWBSID] {
			walk(i, true)
		}
	}
	for i := range nodes {
		if !visited[i] {
			walk(i, true)
		}
	}
	return out
}
