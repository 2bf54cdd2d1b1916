package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/graphwalk/internal/app"
	"github.com/stretchr/testify/require"
)

// GraphFile is the name the harness gives the graph description inside the
// test's temporary directory.
const GraphFile = "graph.txt"

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunIntegrationTest writes graph to a temporary file and runs the full
// application against it with a default background context.
func RunIntegrationTest(t *testing.T, graph string, configure func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, map[string]string{GraphFile: graph}, configure)
}

// RunIntegrationTestWithContext writes files into a temporary directory and
// runs the application. The graph path defaults to GraphFile in that
// directory; configure may adjust any setting before validation.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, configure func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg := app.DefaultConfig()
	cfg.GraphPath = filepath.Join(tmpDir, GraphFile)
	cfg.LogLevel = "debug"
	if configure != nil {
		configure(&cfg)
	}
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err, "harness configuration must be valid")

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	runErr := app.NewApp(out, logBuffer, validated, nil).Run(ctx)

	if os.Getenv("GRAPHWALK_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
