package graph

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrNamesNotDeclared is returned when an edge is added before the node
	// names have been declared.
	ErrNamesNotDeclared = errors.New("node names must be declared before edges")
	// ErrNamesAlreadyDeclared is returned when DeclareNames is called twice.
	ErrNamesAlreadyDeclared = errors.New("node names already declared")
	// ErrUnknownName is returned when an edge references an undeclared node.
	ErrUnknownName = errors.New("undeclared node")
	// ErrDuplicateName is returned when the same name is declared twice.
	ErrDuplicateName = errors.New("duplicate node name")
	// ErrNameCount is returned when the number of declared names does not
	// match the node count the builder was sized for.
	ErrNameCount = errors.New("node name count mismatch")
	// ErrInvalidName is returned for names that are not printable or are
	// whitespace.
	ErrInvalidName = errors.New("invalid node name")
)

// Builder assembles a Graph. It is not safe for concurrent use.
type Builder struct {
	nodeCount int
	directed  bool
	declared  bool
	names     []Name
	slots     map[Name]int
	adjacency [][]Neighbor
	edges     int
}

// NewBuilder returns a builder for a graph of exactly nodeCount nodes. All
// slot-indexed storage is allocated here. A negative count is treated as zero.
func NewBuilder(nodeCount int, directed bool) *Builder {
	if nodeCount < 0 {
		nodeCount = 0
	}
	return &Builder{
		nodeCount: nodeCount,
		directed:  directed,
		slots:     make(map[Name]int, nodeCount),
		adjacency: make([][]Neighbor, nodeCount),
	}
}

// SetDirected changes the directedness. It must be called before any edge is
// added, since undirected edges are stored twice at insertion time.
func (b *Builder) SetDirected(directed bool) error {
	if b.edges > 0 {
		return errors.New("directedness cannot change after edges are added")
	}
	b.directed = directed
	return nil
}

// DeclareNames assigns slots to names in order. Exactly nodeCount unique,
// printable, non-space names are required.
func (b *Builder) DeclareNames(names []Name) error {
	if b.declared {
		return ErrNamesAlreadyDeclared
	}
	if len(names) != b.nodeCount {
		return fmt.Errorf("%w: declared %d, expected %d", ErrNameCount, len(names), b.nodeCount)
	}

	slots := make(map[Name]int, len(names))
	for slot, name := range names {
		if !unicode.IsPrint(rune(name)) || unicode.IsSpace(rune(name)) {
			return fmt.Errorf("%w: %q", ErrInvalidName, rune(name))
		}
		if prev, ok := slots[name]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateName, rune(name), prev+1, slot+1)
		}
		slots[name] = slot
	}

	b.names = append(make([]Name, 0, len(names)), names...)
	b.slots = slots
	b.declared = true
	return nil
}

// AddEdge appends an edge from -> to with the given weight. For undirected
// builders the reverse direction is appended to to's list as well.
func (b *Builder) AddEdge(from, to Name, weight uint64) error {
	if !b.declared {
		return ErrNamesNotDeclared
	}

	fromSlot, ok := b.slots[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, rune(from))
	}
	toSlot, ok := b.slots[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, rune(to))
	}

	b.adjacency[fromSlot] = append(b.adjacency[fromSlot], Neighbor{Slot: toSlot, Weight: weight})
	if !b.directed {
		b.adjacency[toSlot] = append(b.adjacency[toSlot], Neighbor{Slot: fromSlot, Weight: weight})
	}
	b.edges++
	return nil
}

// Build freezes the builder into a Graph. A graph with zero nodes needs no
// name declaration; any other graph does.
func (b *Builder) Build() (*Graph, error) {
	if !b.declared {
		if b.nodeCount != 0 {
			return nil, ErrNamesNotDeclared
		}
		b.names = []Name{}
	}

	g := &Graph{
		names:     b.names,
		slots:     b.slots,
		directed:  b.directed,
		adjacency: b.adjacency,
		edges:     b.edges,
	}

	// Hand ownership to the graph.
	*b = Builder{}
	return g, nil
}
