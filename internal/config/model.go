package config

// Model is the unified, format-agnostic representation of a settings file.
type Model struct {
	Graph  GraphSettings
	Log    LogSettings
	Report ReportSettings
}

// GraphSettings describes where the graph comes from.
type GraphSettings struct {
	// Path of the graph description file.
	Path string
	// MaxNodes caps the node count a graph header may declare.
	MaxNodes int
}

// LogSettings configures the structured logger.
type LogSettings struct {
	Level  string
	Format string
}

// ReportSettings configures how the traversal report is written.
type ReportSettings struct {
	Format string
}
