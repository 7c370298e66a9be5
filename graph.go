package dynconn

import (
	"fmt"
	"sort"
)

// Config controls Graph construction. Start with [DefaultConfig] and
// override the fields you need.
type Config struct {
	// PrioritySource supplies the random priorities for the internal
	// balanced trees. Nil means a source seeded from the clock. Inject a
	// fixed-seed source for reproducible tree shapes.
	PrioritySource PrioritySource
}

// DefaultConfig returns the default Graph configuration.
func DefaultConfig() Config {
	return Config{}
}

// Graph is a fully-dynamic connectivity structure over a fixed vertex set
// [0, n). It supports edge insertion, edge deletion and connectivity
// queries, each in polylogarithmic amortized time.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	n          int
	components int
	maxLevel   int
	priorities PrioritySource

	// forests[l] holds the spanning forest of the edges with level >= l;
	// it grows on demand as edges are promoted.
	forests []*forest

	// Every present edge is recorded in exactly one of the two level maps,
	// keyed by its canonical direction.
	treeLevel    map[pairKey]int
	nonTreeLevel map[pairKey]int
}

// New creates an edgeless Graph with n vertices.
func New(n int) (*Graph, error) {
	return NewWithConfig(n, DefaultConfig())
}

// NewWithConfig creates an edgeless Graph with n vertices using the given
// configuration.
func NewWithConfig(n int, cfg Config) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("dynconn: number of vertices must be >= 0, got %d", n)
	}
	src := cfg.PrioritySource
	if src == nil {
		src = newClockSource()
	}
	g := &Graph{
		n:            n,
		components:   n,
		priorities:   src,
		treeLevel:    make(map[pairKey]int),
		nonTreeLevel: make(map[pairKey]int),
	}
	g.forests = append(g.forests, newForest(n, 0, src))
	return g, nil
}

// NumVertices returns the number of vertices fixed at construction.
func (g *Graph) NumVertices() int {
	return g.n
}

// NumEdges returns the number of edges currently present.
func (g *Graph) NumEdges() int {
	return len(g.treeLevel) + len(g.nonTreeLevel)
}

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int {
	return g.components
}

// MaxLevel returns the highest level any edge has been promoted to. It is
// bounded by floor(log2 n).
func (g *Graph) MaxLevel() int {
	return g.maxLevel
}

func (g *Graph) checkEndpoints(u, v int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: {%d, %d}", ErrSelfLoop, u, v)
	}
	return nil
}

// IsConnected reports whether u and v are in the same connected component.
// Unlike the edge operations, u == v is allowed and trivially true.
func (g *Graph) IsConnected(u, v int) (bool, error) {
	if u < 0 || u >= g.n {
		return false, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return false, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, g.n)
	}
	if u == v {
		return true, nil
	}
	return g.forests[0].connected(u, v), nil
}

// AddEdge inserts edge {u, v}. If the endpoints were already connected the
// edge joins as a non-tree edge at level 0, otherwise it links two trees
// of the top forest and the component count drops by one.
//
// Returns ErrEdgeExists if the edge is present, ErrSelfLoop if u == v, and
// ErrVertexOutOfRange if either endpoint is outside [0, n). The graph is
// unchanged on error.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	key := canonical(u, v)
	if _, ok := g.treeLevel[key]; ok {
		return fmt.Errorf("%w: {%d, %d}", ErrEdgeExists, u, v)
	}
	if _, ok := g.nonTreeLevel[key]; ok {
		return fmt.Errorf("%w: {%d, %d}", ErrEdgeExists, u, v)
	}

	if g.forests[0].connected(u, v) {
		g.nonTreeLevel[key] = 0
		g.forests[0].addIncidence(u, v)
		return nil
	}
	g.treeLevel[key] = 0
	g.forests[0].link(u, v, 0)
	g.components--
	return nil
}

// RemoveEdge deletes edge {u, v}. Deleting a non-tree edge never changes
// connectivity. Deleting a tree edge cuts it out of every forest it lives
// in and runs the replacement search; if no replacement edge reconnects
// the two halves, the component count grows by one.
//
// Returns ErrEdgeNotPresent if the edge is absent, ErrSelfLoop if u == v,
// and ErrVertexOutOfRange if either endpoint is outside [0, n). The graph
// is unchanged on error.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	key := canonical(u, v)

	if level, ok := g.nonTreeLevel[key]; ok {
		delete(g.nonTreeLevel, key)
		g.forests[level].removeIncidence(u, v)
		return nil
	}

	level, ok := g.treeLevel[key]
	if !ok {
		return fmt.Errorf("%w: {%d, %d}", ErrEdgeNotPresent, u, v)
	}
	delete(g.treeLevel, key)
	for l := level; l >= 0; l-- {
		g.forests[l].cut(u, v)
	}
	if !g.findReplacement(u, v, level) {
		g.components++
	}
	return nil
}

// growForests appends the next forest when level runs one past the end of
// the hierarchy.
func (g *Graph) growForests(level int) {
	if level == len(g.forests) {
		g.forests = append(g.forests, newForest(g.n, level, g.priorities))
	}
}

// findReplacement searches for a non-tree edge reconnecting the two halves
// left by cutting tree edge {u, v} of the given level, scanning levels
// downward. At each level the smaller half is searched: its level-l tree
// edges are promoted to level l+1 first, then its level-l non-tree
// incidences are scanned. Internal candidates are promoted; the first
// candidate crossing to the spared side becomes the replacement tree edge
// and is linked at every level it now belongs to.
//
// Reports whether a replacement was found.
func (g *Graph) findReplacement(u, v, level int) bool {
	for l := level; l >= 0; l-- {
		f := g.forests[l]
		searched := rootOf(f.occurrence[pairKey{u, u}])
		spared := rootOf(f.occurrence[pairKey{v, v}])
		if subtreeSize(spared) < subtreeSize(searched) {
			searched, spared = spared, searched
		}

		// Promoting every level-l tree edge of the searched side keeps the
		// component-size invariant that bounds the level hierarchy.
		g.promoteTreeEdges(searched, l)

		if x, w, ok := g.scanIncidences(searched, l); ok {
			g.treeLevel[canonical(x, w)] = l
			for k := l; k >= 0; k-- {
				g.forests[k].link(x, w, l)
			}
			return true
		}
	}
	return false
}

// promoteTreeEdges moves every tree edge flagged at level l in this
// subtree up to level l+1, descending only where the subtree aggregate
// says a flagged node exists.
func (g *Graph) promoteTreeEdges(n *node, l int) {
	if n == nil || !n.subtreeTreeEdge {
		return
	}
	if n.treeEdgeAtLevel {
		n.treeEdgeAtLevel = false
		next := l + 1
		g.growForests(next)
		if next > g.maxLevel {
			g.maxLevel = next
		}
		g.forests[next].link(n.key.u, n.key.v, next)
		g.treeLevel[canonical(n.key.u, n.key.v)] = next
	}
	g.promoteTreeEdges(n.left, l)
	g.promoteTreeEdges(n.right, l)
	refreshUp(n)
}

// scanIncidences walks the searched side's tour looking for a level-l
// non-tree edge whose far endpoint left the searched component. Candidates
// still internal to the searched side are promoted to level l+1 on the
// way. Returns the replacement edge's endpoints when found.
func (g *Graph) scanIncidences(n *node, l int) (int, int, bool) {
	if n == nil || !n.subtreeIncidence {
		return 0, 0, false
	}
	if x, w, ok := g.scanIncidences(n.left, l); ok {
		return x, w, true
	}
	if n.nonTreeIncidence {
		x := n.key.u
		f := g.forests[l]
		neighbors := make([]int, 0, len(f.incident[x]))
		for w := range f.incident[x] {
			neighbors = append(neighbors, w)
		}
		sort.Ints(neighbors)
		for _, w := range neighbors {
			if g.forests[0].connected(x, w) {
				// Still internal to the searched side: promote.
				next := l + 1
				g.growForests(next)
				if next > g.maxLevel {
					g.maxLevel = next
				}
				f.removeIncidence(x, w)
				g.forests[next].addIncidence(x, w)
				g.nonTreeLevel[canonical(x, w)] = next
				continue
			}
			// Crosses to the spared side: this is the replacement.
			f.removeIncidence(x, w)
			delete(g.nonTreeLevel, canonical(x, w))
			return x, w, true
		}
	}
	return g.scanIncidences(n.right, l)
}
