package favorites

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/internal/storage"
)

func TestSet_AddRemoveToggle(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	s, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	changed, err := s.Add(ctx, 4)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.Add(ctx, 4)
	require.NoError(t, err)
	assert.False(t, changed)

	on, err := s.Toggle(ctx, 1)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []int{1, 4}, s.IDs())

	on, err = s.Toggle(ctx, 4)
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, s.Contains(4))

	changed, err = s.Remove(ctx, 99)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSet_Persists(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	s, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, 8)
	require.NoError(t, err)
	_, err = s.Add(ctx, 2)
	require.NoError(t, err)

	raw, ok, err := kv.Get(ctx, storage.KeyFavorites)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[2, 8]`, raw)

	reloaded, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8}, reloaded.IDs())
}

func TestLoad_CorruptStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storage.KeyFavorites, "{not json"))

	s, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []int{}, s.IDs())
}

func TestAdd_RejectsNegativeID(t *testing.T) {
	s, err := Load(context.Background(), storage.NewMemoryStore(), nil)
	require.NoError(t, err)

	_, err = s.Add(context.Background(), -1)
	assert.Error(t, err)
}

type unreadableKV struct{ storage.KV }

func (unreadableKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("read failure")
}

func TestLoad_ReadFailureStartsEmpty(t *testing.T) {
	kv := unreadableKV{storage.NewMemoryStore()}

	s, err := Load(context.Background(), kv, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	changed, err := s.Add(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, changed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, kv, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToggle_ConcurrentFlipsAlternate(t *testing.T) {
	ctx := context.Background()
	s, err := Load(ctx, storage.NewMemoryStore(), nil)
	require.NoError(t, err)

	const toggles = 16
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		on int
	)
	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			now, err := s.Toggle(ctx, 5)
			assert.NoError(t, err)
			if now {
				mu.Lock()
				on++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, toggles/2, on)
	assert.False(t, s.Contains(5))
}

type unwritableKV struct{ storage.KV }

func (unwritableKV) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestToggle_WriteFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, storage.KeyFavorites, "[2]"))

	s, err := Load(ctx, unwritableKV{mem}, nil)
	require.NoError(t, err)

	now, err := s.Toggle(ctx, 2)
	assert.Error(t, err)
	assert.True(t, now)
	assert.True(t, s.Contains(2))

	now, err = s.Toggle(ctx, 7)
	assert.Error(t, err)
	assert.False(t, now)
	assert.False(t, s.Contains(7))
}
