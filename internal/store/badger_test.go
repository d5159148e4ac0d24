package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
)

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewBadgerStore(dir, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "@users", "[]"))
	require.NoError(t, first.Close())

	second, err := NewBadgerStore(dir, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	value, found, err := second.Get(ctx, "@users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}

func TestBadgerStore_RunGC(t *testing.T) {
	ctx := context.Background()

	s, err := NewBadgerStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Set(ctx, "@users", "[]"))
	}

	_, err = s.RunGC(ctx)
	assert.NoError(t, err)
}

func TestBadgerStore_RunGCInMemory(t *testing.T) {
	s, err := NewInMemoryBadgerStore(logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	rewrites, err := s.RunGC(context.Background())
	require.NoError(t, err)
	assert.Zero(t, rewrites)
}

func TestBadgerStore_RunGCCancelled(t *testing.T) {
	s, err := NewBadgerStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.RunGC(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBadgerStore_EmptyDir(t *testing.T) {
	_, err := NewBadgerStore("", logger.Nop())
	assert.ErrorIs(t, err, ErrStorageFailure)
}
