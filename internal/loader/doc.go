// Package loader reads the line-oriented graph description format and turns
// it into a validated *graph.Graph.
//
// The format is three header lines followed by edge lines:
//
//	4              node count
//	A B C D        node names, whitespace optional
//	undirected     "directed" or "undirected"
//	A B 5          <from> <to> <weight>
//	B C 3
//
// Loading is all-or-nothing. Any violation aborts the load with a
// *FormatError, an unreadable source yields a *ResourceError, and a node count
// above the configured limit yields an *AllocationError. No partial graph is
// ever returned.
package loader
