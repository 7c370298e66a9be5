package dynconn

import (
	"math/rand"
	"time"
)

// PrioritySource supplies the random 64-bit priorities that balance the
// internal search trees. *math/rand.Rand satisfies it, so a deterministic
// source is rand.New(rand.NewSource(seed)).
//
// Priorities must be uniformly distributed; collisions are tolerated (they
// are resolved consistently) but degrade balance if frequent.
type PrioritySource interface {
	Uint64() uint64
}

// newClockSource returns the default source, seeded from the wall clock.
func newClockSource() PrioritySource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
