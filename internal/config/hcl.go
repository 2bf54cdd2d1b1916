package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/graphwalk/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// HCLLoader is the HCL-specific implementation of the Loader interface.
//
// Settings files may interpolate environment variables through the `env`
// object, e.g. `path = "${env.GRAPH_DIR}/graph.txt"`.
type HCLLoader struct {
	// environ supplies KEY=VALUE pairs for the `env` object.
	environ func() []string
}

// NewHCLLoader creates a new HCL settings loader backed by the process
// environment.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{environ: os.Environ}
}

// fileRoot is a struct used to decode all top-level blocks of a settings file.
// Every block is optional and may appear at most once.
type fileRoot struct {
	Graph  *graphBlock  `hcl:"graph,block"`
	Log    *logBlock    `hcl:"log,block"`
	Report *reportBlock `hcl:"report,block"`
}

type graphBlock struct {
	Path     string `hcl:"path,optional"`
	MaxNodes int    `hcl:"max_nodes,optional"`
}

type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

type reportBlock struct {
	Format string `hcl:"format,optional"`
}

// Load parses and decodes the settings file at path.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	model := translate(&root)
	logger.Debug("HCL settings loading complete.", "path", path, "graph_path", model.Graph.Path, "log_level", model.Log.Level, "report_format", model.Report.Format)
	return model, nil
}

// evalContext exposes the environment as the `env` object.
func (l *HCLLoader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)

	env := make(map[string]cty.Value)
	if l.environ != nil {
		for _, kv := range l.environ() {
			key, value, ok := strings.Cut(kv, "=")
			if !ok || key == "" {
				continue
			}
			env[key] = cty.StringVal(value)
		}
	}

	vars["env"] = cty.ObjectVal(env)
	return &hcl.EvalContext{Variables: vars}
}

// translate converts the decoded HCL blocks into the format-agnostic model.
func translate(root *fileRoot) *Model {
	model := &Model{}
	if root.Graph != nil {
		model.Graph = GraphSettings{Path: root.Graph.Path, MaxNodes: root.Graph.MaxNodes}
	}
	if root.Log != nil {
		model.Log = LogSettings{Level: root.Log.Level, Format: root.Log.Format}
	}
	if root.Report != nil {
		model.Report = ReportSettings{Format: root.Report.Format}
	}
	return model
}

var _ Loader = (*HCLLoader)(nil)
