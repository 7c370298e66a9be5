package dynconn

// forest is one level of the spanning-forest hierarchy. It holds every
// tree edge of level >= its own level, each tree encoded as an Euler tour:
// one vertex occurrence per vertex plus two directed occurrences per tree
// edge. It also owns the adjacency sets of the non-tree edges whose level
// equals exactly its level.
type forest struct {
	level      int
	priorities PrioritySource

	// occurrence names every sequence node: (v, v) for vertex v, and both
	// (u, v) and (v, u) for each tree edge {u, v} present at this level.
	occurrence map[pairKey]*node

	// incident[v] is the set of neighbors w with {v, w} a non-tree edge of
	// level exactly this forest's level. Entries are removed when empty so
	// presence in the map implies a non-empty set.
	incident map[int]map[int]struct{}
}

func newForest(n, level int, priorities PrioritySource) *forest {
	f := &forest{
		level:      level,
		priorities: priorities,
		occurrence: make(map[pairKey]*node, n),
		incident:   make(map[int]map[int]struct{}),
	}
	for v := 0; v < n; v++ {
		f.occurrence[pairKey{v, v}] = newNode(pairKey{v, v}, -1, priorities.Uint64())
	}
	return f
}

// connected reports whether u and v are in the same tree of this forest.
func (f *forest) connected(u, v int) bool {
	return rootOf(f.occurrence[pairKey{u, u}]) == rootOf(f.occurrence[pairKey{v, v}])
}

// rerootAt rotates n's tour so that n becomes its first element, and
// returns the new root. The rotated tour is cyclically equivalent to the
// original.
func (f *forest) rerootAt(n *node) *node {
	root := rootOf(n)
	k := positionOf(n)
	if k == 0 {
		return root
	}
	prefix, rest := split(root, k)
	return merge(rest, prefix)
}

// link joins the trees of u and v with tree edge {u, v} of the given
// level. The endpoints must be in different trees. The canonically-directed
// occurrence carries the tree-edge flag iff the edge's level equals this
// forest's level.
func (f *forest) link(u, v, level int) {
	tu := f.rerootAt(f.occurrence[pairKey{u, u}])
	tv := f.rerootAt(f.occurrence[pairKey{v, v}])

	uv := newNode(pairKey{u, v}, level, f.priorities.Uint64())
	uv.treeEdgeAtLevel = level == f.level && u < v
	uv.refresh()
	vu := newNode(pairKey{v, u}, level, f.priorities.Uint64())
	vu.treeEdgeAtLevel = level == f.level && v < u
	vu.refresh()

	f.occurrence[pairKey{u, v}] = uv
	f.occurrence[pairKey{v, u}] = vu

	// New tour: [u-tour] (u,v) [v-tour] (v,u).
	merge(merge(merge(tu, uv), tv), vu)
}

// cut removes tree edge {u, v}, splitting its tree into the u-side and the
// v-side. Both directed occurrences are unregistered.
func (f *forest) cut(u, v int) {
	uv := f.occurrence[pairKey{u, v}]
	vu := f.occurrence[pairKey{v, u}]

	// Rotate (u,v) to the front; the tour is then
	// (u,v) [v-subtour] (v,u) [u-side suffix].
	root := f.rerootAt(uv)
	_, rest := split(root, 1)
	// The v-subtour splits off and stands alone as the v-component; the
	// suffix after (v,u) is the surviving u-component tour.
	_, rest = split(rest, positionOf(vu))
	split(rest, 1)

	delete(f.occurrence, pairKey{u, v})
	delete(f.occurrence, pairKey{v, u})
}

// addIncidence records non-tree edge {u, v} at this level, raising the
// incidence flag on either endpoint whose set was empty.
func (f *forest) addIncidence(u, v int) {
	f.addHalfIncidence(u, v)
	f.addHalfIncidence(v, u)
}

func (f *forest) addHalfIncidence(u, w int) {
	set := f.incident[u]
	if set == nil {
		set = make(map[int]struct{})
		f.incident[u] = set
	}
	set[w] = struct{}{}
	if len(set) == 1 {
		self := f.occurrence[pairKey{u, u}]
		self.nonTreeIncidence = true
		refreshUp(self)
	}
}

// removeIncidence erases non-tree edge {u, v} at this level, clearing the
// incidence flag on either endpoint whose set became empty.
func (f *forest) removeIncidence(u, v int) {
	f.removeHalfIncidence(u, v)
	f.removeHalfIncidence(v, u)
}

func (f *forest) removeHalfIncidence(u, w int) {
	set := f.incident[u]
	delete(set, w)
	if set != nil && len(set) == 0 {
		delete(f.incident, u)
		self := f.occurrence[pairKey{u, u}]
		self.nonTreeIncidence = false
		refreshUp(self)
	}
}
