package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "quadro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "tasks")
	assert.ErrorIs(t, err, ErrStorageEmpty)
}

func TestSetReplacesValue(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, "tasks", "first"))
	require.NoError(t, s.Set(ctx, "tasks", "second"))

	got, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestSetStampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Set(ctx, "tasks", "[]"))

	var updatedAt string
	err := s.db.QueryRowContext(ctx, "SELECT updated_at FROM kv WHERE key = ?", "tasks").Scan(&updatedAt)
	require.NoError(t, err)
	assert.NotEmpty(t, updatedAt)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, "tasks", "[]"))
	require.NoError(t, s.Delete(ctx, "tasks"))
	require.NoError(t, s.Delete(ctx, "tasks"))

	_, err := s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, ErrStorageEmpty)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "quadro.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tasks", "kept"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestDefaultPathUsesXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quadro", "quadro.db"), got)
}
