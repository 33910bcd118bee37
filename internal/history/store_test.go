package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	launch := &Launch{
		ProjectName: "Sample",
		ProjectPath: "/projects/Sample",
		Args:        []string{"--verbose"},
		ExitCode:    0,
		Duration:    1500 * time.Millisecond,
	}
	require.NoError(t, store.RecordLaunch(ctx, launch))

	assert.NotEmpty(t, launch.ID, "RecordLaunch should assign an id")
	assert.False(t, launch.StartedAt.IsZero(), "RecordLaunch should stamp the start time")

	launches, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, launches, 1)

	got := launches[0]
	assert.Equal(t, launch.ID, got.ID)
	assert.Equal(t, "Sample", got.ProjectName)
	assert.Equal(t, "/projects/Sample", got.ProjectPath)
	assert.Equal(t, []string{"--verbose"}, got.Args)
	assert.Equal(t, 0, got.ExitCode)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
}

func TestRecentOrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"first", "second", "third"} {
		launch := &Launch{
			ProjectName: name,
			ProjectPath: "/projects/" + name,
			StartedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.RecordLaunch(ctx, launch))
	}

	launches, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, launches, 2)
	assert.Equal(t, "third", launches[0].ProjectName)
	assert.Equal(t, "second", launches[1].ProjectName)
}

func TestRecentEmptyArgs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordLaunch(ctx, &Launch{
		ProjectName: "quiet",
		ProjectPath: "/projects/quiet",
	}))

	launches, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, launches, 1)
	assert.Empty(t, launches[0].Args)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.RecordLaunch(ctx, &Launch{
			ProjectName: "p",
			ProjectPath: "/p",
		}))
	}

	deleted, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	launches, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, launches)
}

func TestExport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordLaunch(ctx, &Launch{
		ProjectName: "exported",
		ProjectPath: "/projects/exported",
		ExitCode:    2,
	}))

	path := filepath.Join(t.TempDir(), "history.json")
	count, err := store.Export(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var launches []Launch
	require.NoError(t, json.Unmarshal(data, &launches))
	require.Len(t, launches, 1)
	assert.Equal(t, "exported", launches[0].ProjectName)
	assert.Equal(t, 2, launches[0].ExitCode)
}

func TestExportEmpty(t *testing.T) {
	store := newTestStore(t)

	path := filepath.Join(t.TempDir(), "history.json")
	count, err := store.Export(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileBackedStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	store, err := NewStore(dbPath)
	require.NoError(t, err, "NewStore should create parent directories")
	defer store.Close()

	require.NoError(t, store.RecordLaunch(context.Background(), &Launch{
		ProjectName: "persisted",
		ProjectPath: "/p",
	}))

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}
