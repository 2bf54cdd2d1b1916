package loader

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/specialistvlad/graphwalk/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse is a helper that runs a default loader over an in-memory document.
func parse(t *testing.T, doc string) (*graph.Graph, error) {
	t.Helper()
	return New(Options{}).Parse(context.Background(), strings.NewReader(doc))
}

// writeFile is a helper that stores content in a temp dir and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_UndirectedGraph(t *testing.T) {
	g, err := parse(t, "4\nA B C D\nundirected\nA B 5\nB C 3\n")
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, []graph.Name{'A', 'B', 'C', 'D'}, g.Names())
	assert.False(t, g.Directed())
	assert.Equal(t, 2, g.EdgeCount())

	assert.Equal(t, []graph.Neighbor{{Slot: 1, Weight: 5}}, g.Neighbors(0))
	assert.Equal(t, []graph.Neighbor{{Slot: 0, Weight: 5}, {Slot: 2, Weight: 3}}, g.Neighbors(1))
	assert.Equal(t, []graph.Neighbor{{Slot: 1, Weight: 3}}, g.Neighbors(2))
	assert.Empty(t, g.Neighbors(3))
}

func TestParse_UndirectedSymmetry(t *testing.T) {
	g, err := parse(t, "3\nXYZ\nundirected\nX Z 11\nZ Y 4\n")
	require.NoError(t, err)

	for slot := range g.NodeCount() {
		for _, nb := range g.Neighbors(slot) {
			back := g.Neighbors(nb.Slot)
			assert.Contains(t, back, graph.Neighbor{Slot: slot, Weight: nb.Weight},
				"edge %s-%s must be stored in both directions", g.Name(slot), g.Name(nb.Slot))
		}
	}
}

func TestParse_DirectedGraph(t *testing.T) {
	g, err := parse(t, "2\nAB\ndirected\nA B 2\nB A 2\n")
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, []graph.Neighbor{{Slot: 1, Weight: 2}}, g.Neighbors(0))
	assert.Equal(t, []graph.Neighbor{{Slot: 0, Weight: 2}}, g.Neighbors(1))
}

func TestParse_Whitespace(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "unseparated names", doc: "3\nABC\ndirected\nA B 1\n"},
		{name: "tabs and extra spaces", doc: " 3 \n\tA  B\tC \n directed \n  A\tB   1  \n"},
		{name: "names written back to back in edge", doc: "3\nA B C\ndirected\nAB 1\n"},
		{name: "crlf line endings", doc: "3\r\nA B C\r\ndirected\r\nA B 1\r\n"},
		{name: "trailing blank lines", doc: "3\nA B C\ndirected\nA B 1\n\n   \n"},
		{name: "no trailing newline", doc: "3\nA B C\ndirected\nA B 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := parse(t, tc.doc)
			require.NoError(t, err)
			assert.Equal(t, []graph.Name{'A', 'B', 'C'}, g.Names())
			assert.Equal(t, []graph.Neighbor{{Slot: 1, Weight: 1}}, g.Neighbors(0))
		})
	}
}

func TestParse_EmptyGraph(t *testing.T) {
	for _, direction := range []string{"directed", "undirected"} {
		t.Run(direction, func(t *testing.T) {
			g, err := parse(t, "0\n\n"+direction+"\n")
			require.NoError(t, err)
			assert.Equal(t, 0, g.NodeCount())
			assert.Empty(t, g.Names())
		})
	}
}

func TestParse_FormatErrors(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		wantLine int
		wantMsg  string
	}{
		{name: "node count not a number", doc: "abc\nA\ndirected\n", wantLine: 1, wantMsg: "node count"},
		{name: "negative node count", doc: "-1\n\ndirected\n", wantLine: 1, wantMsg: "node count"},
		{name: "empty node count", doc: "\nA\ndirected\n", wantLine: 1, wantMsg: "node count"},
		{name: "wrong case direction", doc: "1\nA\nDirected\n", wantLine: 3, wantMsg: "direction"},
		{name: "unknown direction", doc: "1\nA\nloop\n", wantLine: 3, wantMsg: "direction"},
		{name: "too few names", doc: "3\nA B\ndirected\n", wantLine: 2, wantMsg: "node names"},
		{name: "too many names", doc: "1\nA B\ndirected\n", wantLine: 2, wantMsg: "node names"},
		{name: "duplicate names", doc: "2\nA A\ndirected\n", wantLine: 2, wantMsg: "node names"},
		{name: "edge with two fields", doc: "2\nAB\ndirected\nA B\n", wantLine: 4, wantMsg: "edge must be"},
		{name: "edge with four fields", doc: "2\nAB\ndirected\nA B 1 2\n", wantLine: 4, wantMsg: "edge must be"},
		{name: "multi character name in edge", doc: "2\nAB\ndirected\nAA B 1\n", wantLine: 4, wantMsg: "edge must be"},
		{name: "negative weight", doc: "2\nAB\ndirected\nA B -1\n", wantLine: 4, wantMsg: "weight"},
		{name: "non numeric weight", doc: "2\nAB\ndirected\nA B x\n", wantLine: 4, wantMsg: "weight"},
		{name: "weight above 32 bits", doc: "2\nAB\ndirected\nA B 4294967296\n", wantLine: 4, wantMsg: "weight"},
		{name: "weight at uint64 max", doc: "3\nABC\ndirected\nA B 18446744073709551615\nA C 2\n", wantLine: 4, wantMsg: "weight"},
		{name: "invalid utf-8 in names", doc: "2\nA\xff\ndirected\n", wantLine: 2, wantMsg: "UTF-8"},
		{name: "invalid utf-8 in edge", doc: "2\nAB\ndirected\nA \xfe 4\n", wantLine: 4, wantMsg: "UTF-8"},
		{name: "invalid utf-8 in direction", doc: "1\nA\ndirected\xff\n", wantLine: 3, wantMsg: "UTF-8"},
		{name: "undeclared source", doc: "2\nAB\ndirected\nA B 1\nC A 1\n", wantLine: 5, wantMsg: "invalid edge"},
		{name: "undeclared destination", doc: "2\nAB\nundirected\nA Z 1\n", wantLine: 4, wantMsg: "invalid edge"},
		{name: "empty input", doc: "", wantLine: 1, wantMsg: "missing node count"},
		{name: "missing names line", doc: "2\n", wantLine: 2, wantMsg: "missing node names"},
		{name: "missing direction line", doc: "2\nAB\n", wantLine: 3, wantMsg: "missing direction"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := parse(t, tc.doc)
			require.Error(t, err)
			assert.Nil(t, g, "no partial graph may be returned")

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr), "expected *FormatError, got %T: %v", err, err)
			assert.Equal(t, tc.wantLine, formatErr.Line)
			assert.Contains(t, formatErr.Error(), tc.wantMsg)
		})
	}
}

func TestParse_UndeclaredNodeWrapsGraphError(t *testing.T) {
	_, err := parse(t, "2\nAB\ndirected\nA Q 1\n")
	assert.ErrorIs(t, err, graph.ErrUnknownName)
	assert.ErrorContains(t, err, "line 4")
}

func TestParse_AllocationLimit(t *testing.T) {
	l := New(Options{MaxNodes: 3})

	g, err := l.Parse(context.Background(), strings.NewReader("4\nABCD\ndirected\n"))
	require.Error(t, err)
	assert.Nil(t, g)

	var allocErr *AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, uint64(4), allocErr.Requested)
	assert.Equal(t, 3, allocErr.Limit)

	_, err = l.Parse(context.Background(), strings.NewReader("3\nABC\ndirected\n"))
	assert.NoError(t, err)
}

func TestParse_DefaultLimit(t *testing.T) {
	_, err := parse(t, "99999999999\n")
	var allocErr *AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, DefaultMaxNodes, allocErr.Limit)
}

func TestParse_MaxWeight(t *testing.T) {
	g, err := parse(t, "3\nABC\ndirected\nA B 4294967295\nA C 4294967295\n")
	require.NoError(t, err)
	assert.Equal(t, []graph.Neighbor{
		{Slot: 1, Weight: 4294967295},
		{Slot: 2, Weight: 4294967295},
	}, g.Neighbors(0))
}

func TestParse_NodeCountBeyondUint64(t *testing.T) {
	g, err := parse(t, "99999999999999999999\nA\ndirected\n")
	require.Error(t, err)
	assert.Nil(t, g)

	var allocErr *AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, uint64(math.MaxUint64), allocErr.Requested)
	assert.Equal(t, DefaultMaxNodes, allocErr.Limit)

	var formatErr *FormatError
	assert.False(t, errors.As(err, &formatErr))
}

func TestParse_ReadFailure(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader("2\nAB\ndirected\nA B 1\n"))
	// One byte per read, so the timeout hits right after the first byte.
	r = iotest.OneByteReader(r)

	g, err := New(Options{}).Parse(context.Background(), r)
	require.Error(t, err)
	assert.Nil(t, g)

	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestParse_LineTooLong(t *testing.T) {
	doc := "1\nA\ndirected\n" + strings.Repeat(" ", maxLineBytes+1) + "\n"
	_, err := parse(t, doc)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 4, formatErr.Line)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "4\nA B C D\nundirected\nA B 5\nB C 3\n")

	g, err := New(Options{}).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	g, err := New(Options{}).Load(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, g)

	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, path, resErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := New(Options{}).Load(context.Background(), dir)
	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, dir, resErr.Path)
}

func TestLoad_FormatErrorFromFile(t *testing.T) {
	path := writeFile(t, "2\nAB\nsideways\n")

	_, err := New(Options{}).Load(context.Background(), path)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "line 3: bad", (&FormatError{Line: 3, Msg: "bad"}).Error())
	assert.Equal(t, "line 1: bad: boom", (&FormatError{Line: 1, Msg: "bad", Err: errors.New("boom")}).Error())
	assert.Equal(t, "cannot read graph source g.txt: boom", (&ResourceError{Path: "g.txt", Err: errors.New("boom")}).Error())
	assert.Equal(t, "node count 10 exceeds the limit of 5", (&AllocationError{Requested: 10, Limit: 5}).Error())
}
