package dynconn

import "errors"

// Sentinel errors returned by Graph operations. Callers match them with
// errors.Is; the returned error may wrap additional argument context.
var (
	// ErrEdgeNotPresent is returned by RemoveEdge when the named edge is
	// not in the graph.
	ErrEdgeNotPresent = errors.New("dynconn: edge not present")

	// ErrEdgeExists is returned by AddEdge when the named edge is already
	// in the graph.
	ErrEdgeExists = errors.New("dynconn: edge already present")

	// ErrVertexOutOfRange is returned when a vertex argument is outside
	// [0, n).
	ErrVertexOutOfRange = errors.New("dynconn: vertex out of range")

	// ErrSelfLoop is returned when both endpoints of an edge argument are
	// the same vertex.
	ErrSelfLoop = errors.New("dynconn: self-loop")
)
