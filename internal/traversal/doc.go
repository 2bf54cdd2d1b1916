// Package traversal runs breadth-first search over a graph.View and reports
// the visit order, the total weight of discovery edges, and the nodes the
// search never reached.
//
// The search starts at slot 0, the first declared name. The start node is
// marked visited when it is dequeued; every other node is marked the moment
// it is discovered, which is also when its name joins the path and the
// discovering edge's weight joins the total. Edges into nodes that are
// already visited contribute nothing.
//
// Each call owns its frontier and visited set, so traversals are reentrant
// and never touch the graph's adjacency lists.
package traversal
