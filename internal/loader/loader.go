package loader

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/specialistvlad/graphwalk/internal/ctxlog"
	"github.com/specialistvlad/graphwalk/internal/graph"
)

const (
	// DefaultMaxNodes bounds the node count a header may declare.
	DefaultMaxNodes = 1 << 16

	// maxLineBytes is the longest line the scanner accepts.
	maxLineBytes = 1 << 20

	// weightBits bounds edge weights. A sum of fewer than 2^32 such weights
	// fits in uint64.
	weightBits = 32

	directedToken   = "directed"
	undirectedToken = "undirected"
)

// edgeRegex matches `<from> <to> <weight>` once the line has been trimmed.
// The two names may be written back to back; the weight must be separated.
var edgeRegex = regexp.MustCompile(`^(\S)\s*(\S)\s+(\S+)$`)

// Options configures a Loader.
type Options struct {
	// MaxNodes is the largest node count accepted. Zero means DefaultMaxNodes.
	MaxNodes int
}

// Loader parses graph descriptions. A Loader holds no per-load state and may
// be reused.
type Loader struct {
	maxNodes int
}

// New creates a new graph loader.
func New(opts Options) *Loader {
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = DefaultMaxNodes
	}
	return &Loader{maxNodes: opts.MaxNodes}
}

// Load opens the file at path and parses it. The file is closed before Load
// returns, whatever the outcome.
func (l *Loader) Load(ctx context.Context, path string) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Graph loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	g, err := l.parse(ctx, f, path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Graph loading complete.", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount(), "directed", g.Directed())
	return g, nil
}

// Parse reads a graph description from r. It does not close r.
func (l *Loader) Parse(ctx context.Context, r io.Reader) (*graph.Graph, error) {
	return l.parse(ctx, r, "<reader>")
}

// header stages, in the order the lines must appear.
const (
	stageCount = iota
	stageNames
	stageDirection
	stageEdges
)

var missingLine = map[int]string{
	stageCount:     "missing node count line",
	stageNames:     "missing node names line",
	stageDirection: "missing direction line",
}

func (l *Loader) parse(ctx context.Context, r io.Reader, source string) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		b      *graph.Builder
		stage  = stageCount
		lineNo = 0
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, &FormatError{Line: lineNo, Msg: "line is not valid UTF-8"}
		}

		switch stage {
		case stageCount:
			count, err := l.parseNodeCount(line, lineNo)
			if err != nil {
				return nil, err
			}
			// Directedness is not known yet; it is fixed before any edge.
			b = graph.NewBuilder(count, true)
			logger.Debug("Node count parsed.", "count", count)

		case stageNames:
			if err := b.DeclareNames(parseNames(line)); err != nil {
				return nil, &FormatError{Line: lineNo, Msg: "invalid node names", Err: err}
			}

		case stageDirection:
			directed, err := parseDirection(line, lineNo)
			if err != nil {
				return nil, err
			}
			if err := b.SetDirected(directed); err != nil {
				return nil, &FormatError{Line: lineNo, Msg: "invalid direction", Err: err}
			}
			logger.Debug("Graph header parsed.", "directed", directed)

		default:
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := addEdge(b, line, lineNo); err != nil {
				return nil, err
			}
		}

		if stage < stageEdges {
			stage++
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: lineNo + 1, Msg: "line too long", Err: err}
		}
		return nil, &ResourceError{Path: source, Err: err}
	}

	if stage < stageEdges {
		return nil, &FormatError{Line: lineNo + 1, Msg: "unexpected end of input: " + missingLine[stage]}
	}

	g, err := b.Build()
	if err != nil {
		return nil, &FormatError{Line: lineNo, Msg: "incomplete graph", Err: err}
	}
	return g, nil
}

func (l *Loader) parseNodeCount(line string, lineNo int) (int, error) {
	raw := strings.TrimSpace(line)
	count, err := strconv.ParseUint(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// ParseUint saturates at math.MaxUint64 on overflow.
		return 0, &AllocationError{Requested: count, Limit: l.maxNodes}
	}
	if err != nil {
		return 0, &FormatError{Line: lineNo, Msg: "node count must be a non-negative integer", Err: err}
	}
	if count > uint64(l.maxNodes) {
		return 0, &AllocationError{Requested: count, Limit: l.maxNodes}
	}
	return int(count), nil
}

// parseNames strips all whitespace and returns the remaining characters in
// order.
func parseNames(line string) []graph.Name {
	names := make([]graph.Name, 0, len(line))
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		names = append(names, graph.Name(r))
	}
	return names
}

func parseDirection(line string, lineNo int) (bool, error) {
	switch token := strings.TrimSpace(line); token {
	case directedToken:
		return true, nil
	case undirectedToken:
		return false, nil
	default:
		return false, &FormatError{Line: lineNo, Msg: "direction must be \"directed\" or \"undirected\", got " + strconv.Quote(token)}
	}
}

func addEdge(b *graph.Builder, line string, lineNo int) error {
	matches := edgeRegex.FindStringSubmatch(strings.TrimSpace(line))
	if matches == nil {
		return &FormatError{Line: lineNo, Msg: "edge must be \"<from> <to> <weight>\", got " + strconv.Quote(line)}
	}

	from := []rune(matches[1])[0]
	to := []rune(matches[2])[0]
	weight, err := strconv.ParseUint(matches[3], 10, weightBits)
	if err != nil {
		return &FormatError{Line: lineNo, Msg: "edge weight must be a non-negative 32-bit integer", Err: err}
	}

	if err := b.AddEdge(graph.Name(from), graph.Name(to), weight); err != nil {
		return &FormatError{Line: lineNo, Msg: "invalid edge", Err: err}
	}
	return nil
}
