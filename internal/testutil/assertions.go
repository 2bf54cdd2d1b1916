package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertDiscovered checks the debug log of a HarnessResult for the discovery
// of to from from. It hides the log attribute layout from callers.
func AssertDiscovered(t *testing.T, result *HarnessResult, from, to string) {
	t.Helper()

	expected := fmt.Sprintf("from=%s to=%s", from, to)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected discovery %s -> %s was not found in logs", from, to,
	)
}

// AssertNotDiscovered is the inverse of AssertDiscovered.
func AssertNotDiscovered(t *testing.T, result *HarnessResult, from, to string) {
	t.Helper()

	unexpected := fmt.Sprintf("from=%s to=%s", from, to)
	require.False(t,
		strings.Contains(result.LogOutput, unexpected),
		"discovery %s -> %s should not have been logged", from, to,
	)
}
