package dynconn

import (
	"math/rand"
	"testing"
)

func newTestForest(n int) *forest {
	return newForest(n, 0, rand.New(rand.NewSource(1)))
}

func tourOf(f *forest, v int) []pairKey {
	return sequenceKeys(rootOf(f.occurrence[pairKey{v, v}]))
}

func keysEqual(a, b []pairKey) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestForest_SingletonTours(t *testing.T) {
	f := newTestForest(3)
	for v := 0; v < 3; v++ {
		got := tourOf(f, v)
		if !keysEqual(got, []pairKey{{v, v}}) {
			t.Errorf("vertex %d tour = %v", v, got)
		}
	}
	if f.connected(0, 1) {
		t.Error("fresh vertices should be disconnected")
	}
}

func TestForest_LinkBuildsEulerTour(t *testing.T) {
	f := newTestForest(3)

	f.link(0, 1, 0)
	if !f.connected(0, 1) {
		t.Fatal("link(0, 1) did not connect")
	}
	want := []pairKey{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if got := tourOf(f, 0); !keysEqual(got, want) {
		t.Fatalf("tour after link(0, 1) = %v, want %v", got, want)
	}

	// Linking from vertex 1 reroots its tour to start at (1, 1) first.
	f.link(1, 2, 0)
	want = []pairKey{{1, 1}, {1, 0}, {0, 0}, {0, 1}, {1, 2}, {2, 2}, {2, 1}}
	if got := tourOf(f, 0); !keysEqual(got, want) {
		t.Fatalf("tour after link(1, 2) = %v, want %v", got, want)
	}
	if !f.connected(0, 2) {
		t.Error("0 and 2 should be connected through 1")
	}
}

func TestForest_LinkSetsTreeEdgeFlag(t *testing.T) {
	f := newTestForest(4)

	// Level matches the forest: flag sits on the canonical direction only.
	f.link(1, 0, 0)
	if !f.occurrence[pairKey{0, 1}].treeEdgeAtLevel {
		t.Error("canonical occurrence (0, 1) should carry the flag")
	}
	if f.occurrence[pairKey{1, 0}].treeEdgeAtLevel {
		t.Error("reverse occurrence (1, 0) should not carry the flag")
	}
	if !rootOf(f.occurrence[pairKey{0, 0}]).subtreeTreeEdge {
		t.Error("tree-edge aggregate should be raised at the root")
	}

	// Higher-level edge stored in this forest: no flag anywhere.
	f.link(2, 3, 1)
	if f.occurrence[pairKey{2, 3}].treeEdgeAtLevel || f.occurrence[pairKey{3, 2}].treeEdgeAtLevel {
		t.Error("edge of level 1 must not be flagged in the level-0 forest")
	}
}

func TestForest_CutSplitsTour(t *testing.T) {
	f := newTestForest(3)
	f.link(0, 1, 0)
	f.link(1, 2, 0)

	f.cut(0, 1)
	if f.connected(0, 1) {
		t.Fatal("cut(0, 1) left 0 and 1 connected")
	}
	if !f.connected(1, 2) {
		t.Fatal("cut(0, 1) disconnected 1 and 2")
	}
	if got := tourOf(f, 0); !keysEqual(got, []pairKey{{0, 0}}) {
		t.Errorf("0-side tour = %v, want [(0, 0)]", got)
	}
	want := []pairKey{{1, 2}, {2, 2}, {2, 1}, {1, 1}}
	if got := tourOf(f, 1); !keysEqual(got, want) {
		t.Errorf("1-side tour = %v, want %v", got, want)
	}
	if _, ok := f.occurrence[pairKey{0, 1}]; ok {
		t.Error("occurrence (0, 1) not unregistered")
	}
	if _, ok := f.occurrence[pairKey{1, 0}]; ok {
		t.Error("occurrence (1, 0) not unregistered")
	}
}

func TestForest_RelinkAfterCut(t *testing.T) {
	f := newTestForest(4)
	f.link(0, 1, 0)
	f.link(2, 3, 0)
	f.link(1, 2, 0)
	f.cut(1, 2)
	f.link(0, 3, 0)
	if !f.connected(1, 3) {
		t.Error("1 and 3 should reconnect through 0-3")
	}
	if got := len(tourOf(f, 0)); got != 10 {
		t.Errorf("tour size = %d, want 10", got)
	}
}

func TestForest_RerootRotatesTour(t *testing.T) {
	f := newTestForest(3)
	f.link(0, 1, 0)
	f.link(1, 2, 0)

	f.rerootAt(f.occurrence[pairKey{2, 2}])
	got := tourOf(f, 2)
	if got[0] != (pairKey{2, 2}) {
		t.Fatalf("tour after reroot starts at (%d, %d)", got[0].u, got[0].v)
	}
	if len(got) != 7 {
		t.Fatalf("reroot changed tour size to %d", len(got))
	}
	// Rotation preserves the cyclic order, so rotating back to the original
	// first element (1, 1) reproduces the pre-reroot sequence.
	f.rerootAt(f.occurrence[pairKey{1, 1}])
	want := []pairKey{{1, 1}, {1, 0}, {0, 0}, {0, 1}, {1, 2}, {2, 2}, {2, 1}}
	if got := tourOf(f, 1); !keysEqual(got, want) {
		t.Errorf("tour after reroot at 1 = %v, want %v", got, want)
	}
}

func TestForest_IncidenceFlags(t *testing.T) {
	f := newTestForest(4)
	self := func(v int) *node { return f.occurrence[pairKey{v, v}] }

	f.addIncidence(0, 2)
	if !self(0).nonTreeIncidence || !self(2).nonTreeIncidence {
		t.Fatal("incidence flags not raised on both endpoints")
	}
	if self(1).nonTreeIncidence {
		t.Error("vertex 1 should not be flagged")
	}

	// Second edge on vertex 0: flag stays, set grows.
	f.addIncidence(0, 3)
	f.removeIncidence(0, 2)
	if !self(0).nonTreeIncidence {
		t.Error("vertex 0 still has an incidence, flag must stay")
	}
	if self(2).nonTreeIncidence {
		t.Error("vertex 2 set is empty, flag must clear")
	}

	f.removeIncidence(0, 3)
	if self(0).nonTreeIncidence || self(3).nonTreeIncidence {
		t.Error("all incidences removed, flags must clear")
	}
	if len(f.incident) != 0 {
		t.Errorf("incident map retains %d entries", len(f.incident))
	}
}

func TestForest_IncidenceAggregateReachesRoot(t *testing.T) {
	f := newTestForest(5)
	f.link(0, 1, 0)
	f.link(1, 2, 0)
	f.link(2, 3, 0)
	f.link(3, 4, 0)

	f.addIncidence(4, 0)
	root := rootOf(f.occurrence[pairKey{2, 2}])
	if !root.subtreeIncidence {
		t.Fatal("incidence aggregate did not propagate to the tour root")
	}
	f.removeIncidence(4, 0)
	if root.subtreeIncidence {
		t.Fatal("incidence aggregate stuck after removal")
	}
}
