// Package report renders a traversal.Report for people (text) or for other
// programs (JSON, YAML).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/graphwalk/internal/graph"
	"github.com/specialistvlad/graphwalk/internal/traversal"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// none stands in for an empty list in text output.
const none = "None"

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q: must be 'text', 'json' or 'yaml'", s)
	}
}

// document is the machine-readable shape of a report.
type document struct {
	Path        []string `json:"path" yaml:"path"`
	TotalWeight uint64   `json:"total_weight" yaml:"total_weight"`
	Unreachable []string `json:"unreachable" yaml:"unreachable"`
}

// Render writes r to w in the given format.
func Render(w io.Writer, r traversal.Report, format Format) error {
	switch format {
	case FormatText, "":
		return renderText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDocument(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(r)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// renderText writes the three-line console report:
//
//	BFS Traversal Path: A -> B -> C
//	Total weight: 8
//	Unreachable Nodes: D
func renderText(w io.Writer, r traversal.Report) error {
	_, err := fmt.Fprintf(w, "BFS Traversal Path: %s\nTotal weight: %d\nUnreachable Nodes: %s\n",
		join(r.Path, " -> "), r.TotalWeight, join(r.Unreachable, ", "))
	return err
}

func join(names []graph.Name, sep string) string {
	if len(names) == 0 {
		return none
	}
	return strings.Join(toStrings(names), sep)
}

func toStrings(names []graph.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

func toDocument(r traversal.Report) document {
	return document{
		Path:        toStrings(r.Path),
		TotalWeight: r.TotalWeight,
		Unreachable: toStrings(r.Unreachable),
	}
}
