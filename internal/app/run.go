package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/graphwalk/internal/ctxlog"
	"github.com/specialistvlad/graphwalk/internal/graph"
	"github.com/specialistvlad/graphwalk/internal/report"
	"github.com/specialistvlad/graphwalk/internal/traversal"
)

// Run loads the configured graph, traverses it and writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "graph_path", a.config.GraphPath)

	g, err := a.loader.Load(ctx, a.config.GraphPath)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	a.logger.Info("Graph loaded.", "path", a.config.GraphPath, "nodes", g.NodeCount(), "edges", g.EdgeCount(), "directed", g.Directed())

	if g.NodeCount() == 0 {
		a.logger.Warn("Graph has no nodes, traversal will be empty.")
	}

	t := traversal.New(traversal.Hooks{
		OnDiscover: func(from, to graph.Name, weight uint64) {
			a.logger.Debug("Node discovered.", "from", from.String(), "to", to.String(), "weight", weight)
		},
	})
	result := t.Run(g)
	a.logger.Info("Traversal finished.", "visited", len(result.Path), "unreachable", len(result.Unreachable), "total_weight", result.TotalWeight)

	if err := report.Render(a.outW, result, a.config.OutputFormat); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
