package traversal

import (
	"github.com/specialistvlad/graphwalk/internal/graph"
)

// Report is the outcome of one traversal. It is built fresh for every call
// and not touched again afterwards.
type Report struct {
	// Path holds names in first-visit order.
	Path []graph.Name
	// TotalWeight is the sum of the weights of discovery edges.
	TotalWeight uint64
	// Unreachable holds never-visited names in ascending slot order.
	Unreachable []graph.Name
}

// Hooks observe a traversal. Nil hooks are skipped. Hooks cannot change the
// outcome.
type Hooks struct {
	// OnVisit is called once per node, in path order.
	OnVisit func(name graph.Name)
	// OnDiscover is called for every discovery edge, before OnVisit of its
	// destination.
	OnDiscover func(from, to graph.Name, weight uint64)
}

// Traverser runs breadth-first searches. The zero value is ready to use.
type Traverser struct {
	hooks Hooks
}

// New creates a traverser that reports to the given hooks.
func New(hooks Hooks) *Traverser {
	return &Traverser{hooks: hooks}
}

// BFS traverses g from its first declared node without hooks.
func BFS(g graph.View) Report {
	var t Traverser
	return t.Run(g)
}

// Run traverses g from its first declared node. A graph with no nodes yields
// an empty report.
func (t *Traverser) Run(g graph.View) Report {
	n := g.NodeCount()
	report := Report{
		Path:        make([]graph.Name, 0, n),
		Unreachable: []graph.Name{},
	}
	if n == 0 {
		return report
	}

	visited := make([]bool, n)
	// Every slot is enqueued at most once: the start slot up front, the rest
	// only when first marked visited.
	frontier := newQueue(n)
	frontier.push(0)

	for !frontier.empty() {
		u := frontier.pop()
		if !visited[u] {
			visited[u] = true
			t.visit(&report, g.Name(u))
		}

		for _, nb := range g.Neighbors(u) {
			if visited[nb.Slot] {
				continue
			}
			visited[nb.Slot] = true
			frontier.push(nb.Slot)
			report.TotalWeight += nb.Weight
			if t.hooks.OnDiscover != nil {
				t.hooks.OnDiscover(g.Name(u), g.Name(nb.Slot), nb.Weight)
			}
			t.visit(&report, g.Name(nb.Slot))
		}
	}

	for slot, seen := range visited {
		if !seen {
			report.Unreachable = append(report.Unreachable, g.Name(slot))
		}
	}
	return report
}

func (t *Traverser) visit(report *Report, name graph.Name) {
	report.Path = append(report.Path, name)
	if t.hooks.OnVisit != nil {
		t.hooks.OnVisit(name)
	}
}
