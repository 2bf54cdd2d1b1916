package graph

import (
	"slices"
)

// Name identifies a node. It is a single printable, non-space character.
type Name rune

// String returns the name as a one-character string.
func (n Name) String() string {
	return string(n)
}

// Neighbor is one entry of an adjacency list: the slot an edge leads to and
// the weight of that edge.
type Neighbor struct {
	Slot   int
	Weight uint64
}

// Graph is a built, read-only weighted graph. Use a Builder to create one.
type Graph struct {
	// names maps slot -> name, in declaration order.
	names []Name
	// slots maps name -> slot; the inverse of names.
	slots map[Name]int
	// directed is fixed at construction.
	directed bool
	// adjacency holds one insertion-ordered list per slot.
	adjacency [][]Neighbor
	// edges counts declared edges, not stored directions.
	edges int
}

// NodeCount returns the number of declared nodes.
func (g *Graph) NodeCount() int {
	return len(g.names)
}

// EdgeCount returns the number of edges as declared, so an undirected edge
// counts once even though it is stored in both directions.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// Names returns a copy of the node names in slot order.
func (g *Graph) Names() []Name {
	return slices.Clone(g.names)
}

// Name returns the name stored at slot. It panics if slot is out of range,
// like a slice index would.
func (g *Graph) Name(slot int) Name {
	return g.names[slot]
}

// Slot returns the slot assigned to name, or false if the name was never
// declared.
func (g *Graph) Slot(name Name) (int, bool) {
	slot, ok := g.slots[name]
	return slot, ok
}

// Neighbors returns a copy of the adjacency list for slot, in the order the
// edges were added.
func (g *Graph) Neighbors(slot int) []Neighbor {
	return slices.Clone(g.adjacency[slot])
}
