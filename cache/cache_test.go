package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	k := Key{Config: "R134A.FLD|1", Output: "D", K1: "T", V1: 273.15, K2: "Q", V2: 1}

	_, ok, err := s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	require.NoError(t, s.Put(ctx, k, 14.4))

	v, ok, err := s.Get(ctx, k)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 14.4, v)
}

func TestStore_CommutativeKey(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	fwd := Key{Config: "c", Output: "H", K1: "T", V1: 300, K2: "P", V2: 500}
	rev := Key{Config: "c", Output: "H", K1: "P", V1: 500, K2: "T", V2: 300}

	require.NoError(t, s.Put(ctx, fwd, 8400))

	v, ok, err := s.Get(ctx, rev)
	require.NoError(t, err)
	require.True(t, ok, "reversed pair order must hit the same row")
	assert.Equal(t, 8400.0, v)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_ConfigIsolation(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	a := Key{Config: "R134A.FLD|1", Output: "P", K1: "T", V1: 273.15, K2: "Q", V2: 0}
	b := a
	b.Config = "R32.FLD|1"

	require.NoError(t, s.Put(ctx, a, 292.8))

	_, ok, err := s.Get(ctx, b)
	require.NoError(t, err)
	assert.False(t, ok, "different configuration must not share results")
}

func TestStore_ReplaceAndPurge(t *testing.T) {
	s := open(t)
	ctx := context.Background()

	k := Key{Config: "c", Output: "S", K1: "T", V1: 300, K2: "D", V2: 0.2}
	require.NoError(t, s.Put(ctx, k, 1))
	require.NoError(t, s.Put(ctx, k, 2))

	v, ok, err := s.Get(ctx, k)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2.0, v, "second put must replace the first")

	require.NoError(t, s.Purge(ctx, "c"))
	_, ok, err = s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	k := Key{Config: "c", Output: "W", K1: "T", V1: 300, K2: "P", V2: 500}
	require.NoError(t, s.Put(ctx, k, 150))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, k)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 150.0, v)
}
