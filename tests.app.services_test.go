package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestCatalogService returns a catalog service of the given capacity
// backed by a text file in a temporary folder.
func newTestCatalogService(t *testing.T, capacity int) (CatalogServiceProvider, *Config) {
	t.Helper()
	config := &Config{
		Catalog: CatalogConfig{
			Capacity:     capacity,
			PriceEpsilon: DefaultPriceEpsilon,
			FilePath:     filepath.Join(t.TempDir(), "catalog.txt"),
		},
	}
	storage := NewTextFileCatalogStorage(zap.NewNop(), &config.Catalog)
	return NewCatalogService(zap.NewNop(), config, NewClock(false), storage), config
}

// Ensure added books survive a save and reload.
func TestCatalogService_AddSaveLoad(t *testing.T) {
	service, _ := newTestCatalogService(t, 3)

	require.NoError(t, service.Add(context.TODO(), NewBook("111", "A", "X", 9.99)))
	require.NoError(t, service.Add(context.TODO(), NewBook("222", "B", "Y", 19.99)))
	require.NoError(t, service.Save(context.TODO()))

	n, err := service.Load(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	book, err := service.At(context.TODO(), 0)
	require.NoError(t, err)
	assert.Equal(t, "111", book.ISBN())
}

// Ensure find reports the position of a held record and the sentinel
// for an absent one. Mirrors the documented capacity-3 walkthrough.
func TestCatalogService_Find(t *testing.T) {
	service, _ := newTestCatalogService(t, 3)
	require.NoError(t, service.Add(context.TODO(), NewBook("111", "A", "X", 9.99)))
	require.NoError(t, service.Add(context.TODO(), NewBook("222", "B", "Y", 19.99)))
	assert.Equal(t, 2, service.Size())

	index, found := service.Find(context.TODO(), NewBook("222", "B", "Y", 19.99))
	assert.True(t, found)
	assert.Equal(t, 1, index)

	index, found = service.Find(context.TODO(), NewBook("999", "Z", "Z", 0.0))
	assert.False(t, found)
	assert.Equal(t, 2, index)
}

// Ensure a merge appends the other catalog records up to capacity and
// reports how many fit.
func TestCatalogService_Merge(t *testing.T) {
	service, _ := newTestCatalogService(t, 3)
	require.NoError(t, service.Add(context.TODO(), NewBook("111", "A", "X", 1.0)))

	otherPath := filepath.Join(t.TempDir(), "other.txt")
	content := `"222", "B", "Y", 2.0
"333", "C", "Z", 3.0
"444", "D", "W", 4.0
`
	require.NoError(t, os.WriteFile(otherPath, []byte(content), 0o644))

	appended, err := service.Merge(context.TODO(), otherPath)
	assert.ErrorIs(t, err, ErrCapacityReached)
	assert.Equal(t, 2, appended)
	assert.Equal(t, 3, service.Size())

	book, aerr := service.At(context.TODO(), 2)
	require.NoError(t, aerr)
	assert.Equal(t, "333", book.ISBN())
}

// Ensure merging a missing file changes nothing and says why.
func TestCatalogService_MergeMissingFile(t *testing.T) {
	service, _ := newTestCatalogService(t, 3)
	require.NoError(t, service.Add(context.TODO(), NewBook("111", "A", "X", 1.0)))

	appended, err := service.Merge(context.TODO(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
	assert.Equal(t, 0, appended)
	assert.Equal(t, 1, service.Size())
}

// Ensure the rendered catalog carries padded positions and records.
func TestCatalogService_Render(t *testing.T) {
	service, _ := newTestCatalogService(t, 3)
	require.NoError(t, service.Add(context.TODO(), NewBook("111", "A", "X", 9.99)))

	var sb strings.Builder
	require.NoError(t, service.Render(&sb))
	assert.Equal(t, "\n    0:  \"111\", \"A\", \"X\", 9.99", sb.String())
}
