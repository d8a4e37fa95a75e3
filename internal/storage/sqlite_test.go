package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DVDHSN/EcoBudget/internal/common"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set(ctx, KeyStats, payload{Name: "hello", Count: 3}))

	var got payload
	require.NoError(t, store.Get(ctx, KeyStats, &got))
	assert.Equal(t, payload{Name: "hello", Count: 3}, got)

	// overwrite replaces the blob
	require.NoError(t, store.Set(ctx, KeyStats, payload{Name: "bye", Count: 9}))
	require.NoError(t, store.Get(ctx, KeyStats, &got))
	assert.Equal(t, payload{Name: "bye", Count: 9}, got)
}

func TestSQLiteStoreMissingKey(t *testing.T) {
	store := newTestStore(t)

	var dest map[string]any
	err := store.Get(context.Background(), "absent", &dest)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyCurrency, "EUR"))
	require.NoError(t, store.Delete(ctx, KeyCurrency))

	var dest string
	assert.ErrorIs(t, store.Get(ctx, KeyCurrency, &dest), common.ErrNotFound)

	// deleting an absent key is fine
	require.NoError(t, store.Delete(ctx, KeyCurrency))
}

func TestSQLiteStoreEmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyTranslucent, true))

	var got bool
	require.NoError(t, store.Get(ctx, KeyTranslucent, &got))
	assert.True(t, got)

	assert.ElementsMatch(t, []string{KeyTranslucent}, store.Keys())

	require.NoError(t, store.Delete(ctx, KeyTranslucent))
	assert.ErrorIs(t, store.Get(ctx, KeyTranslucent, &got), common.ErrNotFound)
}
