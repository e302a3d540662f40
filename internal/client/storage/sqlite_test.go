package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, TokenKey, "t1"))

	v, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Equal(t, "t1", v)
}

func TestGet_NotExists_ReturnsEmpty(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, TokenKey, "old"))
	require.NoError(t, s.Set(ctx, TokenKey, "new"))

	v, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestDelete_RemovesKey(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, TokenKey, "t1"))
	require.NoError(t, s.Delete(ctx, TokenKey))

	v, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestDelete_MissingKeyIsNoError(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))
	require.NoError(t, s.Delete(context.Background(), "absent"))
}

func TestClear_RemovesEverything(t *testing.T) {
	s := NewSQLiteStorage(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))
	require.NoError(t, s.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		v, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.Empty(t, v)
	}
}

func TestOpen_MigratesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "store.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStorage(db)
	require.NoError(t, s.Set(ctx, TokenKey, "t1"))

	v, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", v)
}
