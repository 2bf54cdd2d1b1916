package graph

// View is the read-only surface of a graph that traversals depend on.
//
// *Graph is the reference implementation. Consumers should accept a View so
// they cannot reach the builder side of the package.
type View interface {
	// NodeCount returns the number of declared nodes. Valid slots are
	// [0, NodeCount).
	NodeCount() int

	// Name returns the node name stored at slot.
	Name(slot int) Name

	// Slot returns the slot for a declared name.
	Slot(name Name) (int, bool)

	// Neighbors returns the insertion-ordered adjacency list of slot. The
	// returned slice belongs to the caller.
	Neighbors(slot int) []Neighbor
}

var _ View = (*Graph)(nil)
