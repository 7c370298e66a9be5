// Package dynconn implements fully-dynamic connectivity for undirected
// simple graphs.
//
// A Graph over a fixed set of n vertices accepts an online sequence of edge
// insertions and deletions and answers "are u and v connected?" and "how
// many components are there?" after every update, in polylogarithmic
// amortized time per operation. It implements the Holm, de Lichtenberg and
// Thorup algorithm: a logarithmic hierarchy of spanning forests indexed by
// edge level, each forest encoded as Euler tours over balanced search trees
// that carry subtree aggregates for locating replacement edges after a
// tree-edge deletion.
//
// Basic usage:
//
//	g, err := dynconn.New(100)
//	g.AddEdge(3, 7)
//	g.AddEdge(7, 42)
//	ok, _ := g.IsConnected(3, 42) // true
//	g.RemoveEdge(3, 7)
//	// g.ComponentCount() reflects every update so far
//
// Edges are unweighted and undirected; self-loops and duplicate edges are
// rejected. A Graph is not safe for concurrent use; callers serialize
// access externally.
//
// # Determinism
//
// Tree shapes depend on random 64-bit priorities drawn from a
// [PrioritySource]. The default source is seeded from the clock; tests and
// reproducibility-sensitive callers can inject a fixed-seed source:
//
//	cfg := dynconn.DefaultConfig()
//	cfg.PrioritySource = rand.New(rand.NewSource(1))
//	g, err := dynconn.NewWithConfig(100, cfg)
//
// Query results never depend on the priorities; only the internal tree
// shapes and the amortized constants do.
package dynconn
