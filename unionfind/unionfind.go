// Package unionfind implements a disjoint-set forest with union by size
// and path halving.
package unionfind

// Forest tracks disjoint groups over the indices [0, n). The zero value is
// not usable; create one with New. Indices outside [0, n) panic, as any
// out-of-range slice access does.
type Forest struct {
	parent []int
	size   []int
	count  int
}

// New creates a forest of n singleton groups.
func New(n int) *Forest {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &Forest{parent: parent, size: size, count: n}
}

// Find returns the canonical representative of x's group.
func (f *Forest) Find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}
	return x
}

// Union joins the groups of a and b and reports whether they were
// previously separate.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}

	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.count--
	return true
}

// Connected reports whether a and b belong to the same group.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Count returns the number of groups.
func (f *Forest) Count() int {
	return f.count
}

// Len returns the number of indices the forest was created with.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Groups returns the member indices of every group. Groups appear in order
// of their first-seen member; members appear in index order.
func (f *Forest) Groups() [][]int {
	byRoot := make(map[int]int, f.count)
	groups := make([][]int, 0, f.count)
	for i := range f.parent {
		root := f.Find(i)
		gi, seen := byRoot[root]
		if !seen {
			gi = len(groups)
			byRoot[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}
	return groups
}
