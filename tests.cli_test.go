package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp returns an App wired to a nop logger and a catalog file in
// a temporary folder, bypassing the on-disk configuration files.
func newTestApp(t *testing.T) *App {
	t.Helper()
	config := &Config{
		Catalog: CatalogConfig{
			Capacity:     3,
			PriceEpsilon: DefaultPriceEpsilon,
			FilePath:     filepath.Join(t.TempDir(), "catalog.txt"),
		},
	}
	logger := zap.NewNop()
	storage := NewTextFileCatalogStorage(logger, &config.Catalog)
	return &App{
		logger:  logger,
		config:  config,
		catalog: NewCatalogService(logger, config, NewClock(false), storage),
	}
}

// runCommand executes one CLI invocation and returns its output.
func runCommand(t *testing.T, app *App, args ...string) string {
	t.Helper()
	root := NewRootCommand(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

// Ensure loading with no catalog file reports an empty catalog.
func TestCLI_LoadEmptyCatalog(t *testing.T) {
	app := newTestApp(t)
	out := runCommand(t, app, "load")
	assert.Equal(t, "loaded 0 records (capacity 3)\n", out)
}

// Ensure an added record is found again by a later invocation.
func TestCLI_AddThenFind(t *testing.T) {
	app := newTestApp(t)

	out := runCommand(t, app, "add", "111", "A", "X", "9.99")
	assert.Equal(t, "added at position 0\n", out)

	out = runCommand(t, app, "find", "111", "A", "X", "9.99")
	assert.Equal(t, "found at position 0\n", out)

	out = runCommand(t, app, "find", "999", "Z", "Z", "0.0")
	assert.Equal(t, "not found (sentinel position 1)\n", out)
}

// Ensure show prints the indexed display form of the saved catalog.
func TestCLI_Show(t *testing.T) {
	app := newTestApp(t)
	runCommand(t, app, "add", "111", "A", "X", "9.99")
	runCommand(t, app, "add", "222", "B", "Y", "19.99")

	out := runCommand(t, app, "show")
	assert.Contains(t, out, "    0:  \"111\", \"A\", \"X\", 9.99")
	assert.Contains(t, out, "    1:  \"222\", \"B\", \"Y\", 19.99")
}

// Ensure positional access through the CLI is bounds checked.
func TestCLI_At(t *testing.T) {
	app := newTestApp(t)
	runCommand(t, app, "add", "111", "A", "X", "9.99")

	out := runCommand(t, app, "at", "0")
	assert.Equal(t, "\"111\", \"A\", \"X\", 9.99\n", out)

	root := NewRootCommand(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"at", "5"})
	assert.ErrorIs(t, root.Execute(), ErrIndexOutOfRange)
}

// Ensure merge appends what fits and keeps the catalog at capacity.
func TestCLI_Merge(t *testing.T) {
	app := newTestApp(t)
	runCommand(t, app, "add", "111", "A", "X", "1.0")

	otherPath := filepath.Join(t.TempDir(), "other.txt")
	content := `"222", "B", "Y", 2.0
"333", "C", "Z", 3.0
"444", "D", "W", 4.0
`
	require.NoError(t, os.WriteFile(otherPath, []byte(content), 0o644))

	out := runCommand(t, app, "merge", otherPath)
	assert.Equal(t, "appended 2 records, the rest did not fit (capacity 3)\n", out)

	out = runCommand(t, app, "load")
	assert.Equal(t, "loaded 3 records (capacity 3)\n", out)
}

// Ensure a bad price argument is rejected before touching the catalog.
func TestCLI_AddInvalidPrice(t *testing.T) {
	app := newTestApp(t)
	root := NewRootCommand(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"add", "111", "A", "X", "cheap"})
	assert.Error(t, root.Execute())
	assert.Equal(t, 0, app.catalog.Size())
}
