package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/okian/proinvestix/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, storage.KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, storage.KeyAccessToken, "a1"))
	require.NoError(t, s.Set(ctx, storage.KeyRefreshToken, "r1"))
	require.NoError(t, s.Set(ctx, storage.KeyAuthState, `{"isAuthenticated":true}`))
	assert.Equal(t, "a1", storage.GetString(ctx, s, storage.KeyAccessToken))

	require.NoError(t, storage.ClearTokens(ctx, s))
	_, ok, _ = s.Get(ctx, storage.KeyAccessToken)
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, storage.KeyRefreshToken)
	assert.False(t, ok)
	assert.Equal(t, `{"isAuthenticated":true}`, storage.GetString(ctx, s, storage.KeyAuthState))

	require.NoError(t, s.Delete(ctx, "missing"))
	assert.ErrorIs(t, s.Set(ctx, "", "x"), storage.ErrEmptyKey)
}

func TestMemoryStore(t *testing.T) {
	m := storage.NewMemory()
	exerciseStore(t, m)
	assert.Equal(t, 1, m.Len())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStore(t, storage.NewFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened := storage.NewFile(path)
	assert.Equal(t, `{"isAuthenticated":true}`, storage.GetString(context.Background(), reopened, storage.KeyAuthState))
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := storage.NewFile(path).Get(context.Background(), storage.KeyAccessToken)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

func TestFileStoreConcurrentWrites(t *testing.T) {
	s := storage.NewFile(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Set(ctx, filepath.Join("k", string(rune('a'+i))), "v"))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		assert.Equal(t, "v", storage.GetString(ctx, s, filepath.Join("k", string(rune('a'+i)))))
	}
}
