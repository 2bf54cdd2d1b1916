// Package graph holds the in-memory model of a weighted graph whose nodes are
// named by single characters.
//
// # Slots
//
// Every declared node name is assigned a slot: its zero-based position in the
// declared name sequence. All per-node storage (adjacency lists, visited sets
// in traversals) is indexed by slot. The name→slot mapping is an explicit
// lookup table built when names are declared, so names need not be contiguous
// letters or start at any particular character:
//
//	names:  Q  7  z
//	slots:  0  1  2
//
// # Lifecycle
//
//  1. **Sizing:** NewBuilder is given the node count up front, so all
//     slot-indexed storage is allocated once.
//  2. **Naming:** DeclareNames assigns slots. It must happen before any edge is
//     added; AddEdge fails with ErrNamesNotDeclared otherwise.
//  3. **Edges:** AddEdge appends to adjacency lists in call order. Undirected
//     builders store both directions with the same weight.
//  4. **Freeze:** Build returns the read-only Graph. The builder must not be
//     used afterwards.
//
// # Read-only access
//
// Graph never hands out its internal slices. Names and Neighbors return
// copies, so consumers such as the traversal package cannot mutate the
// adjacency lists they walk.
package graph
