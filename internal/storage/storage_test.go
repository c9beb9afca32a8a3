package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]func() KV {
	t.Helper()
	return map[string]func() KV{
		DriverMemory: func() KV { return NewMemoryStore() },
		DriverFile: func() KV {
			kv, err := NewFileStore(filepath.Join(t.TempDir(), "kv"))
			require.NoError(t, err)
			return kv
		},
		DriverSQLite: func() KV {
			kv, err := NewSQLiteStore(filepath.Join(t.TempDir(), "db", "kv.db"))
			require.NoError(t, err)
			return kv
		},
	}
}

func TestKV_Contract(t *testing.T) {
	ctx := context.Background()

	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			kv := open()
			defer kv.Close()

			_, ok, err := kv.Get(ctx, KeyFavorites)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, KeyFavorites, "[1,2]"))
			v, ok, err := kv.Get(ctx, KeyFavorites)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[1,2]", v)

			require.NoError(t, kv.Set(ctx, KeyFavorites, "[]"))
			v, _, err = kv.Get(ctx, KeyFavorites)
			require.NoError(t, err)
			assert.Equal(t, "[]", v)

			assert.Error(t, kv.Set(ctx, "", "x"))
		})
	}
}

func TestKV_Concurrent(t *testing.T) {
	ctx := context.Background()

	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			kv := open()
			defer kv.Close()

			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					assert.NoError(t, kv.Set(ctx, KeyHistory, `["x"]`))
					_, _, err := kv.Get(ctx, KeyHistory)
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			v, ok, err := kv.Get(ctx, KeyHistory)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["x"]`, v)
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	a, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, a.Set(ctx, KeyReviews, `[{"id":"r1"}]`))

	b, err := NewFileStore(dir)
	require.NoError(t, err)
	v, ok, err := b.Get(ctx, KeyReviews)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"r1"}]`, v)
}

func TestSQLiteStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	a, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, a.Set(ctx, KeyFavorites, "[3]"))
	require.NoError(t, a.Close())

	b, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer b.Close()
	v, ok, err := b.Get(ctx, KeyFavorites)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[3]", v)
}

func TestOpen(t *testing.T) {
	kv, err := Open(DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)

	kv, err = Open(DriverFile, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, kv)

	_, err = Open("redis", "")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestGet_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewMemoryStore().Get(ctx, KeyFavorites)
	assert.ErrorIs(t, err, context.Canceled)
}
