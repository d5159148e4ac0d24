package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ClosedFails(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.Close())

	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Set(ctx, "k", "v"), ErrStorageFailure)
	assert.ErrorIs(t, m.Remove(ctx, "k"), ErrStorageFailure)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, "k", "v")
			_, _, _ = m.Get(ctx, "k")
			_ = m.Remove(ctx, "k")
		}()
	}
	wg.Wait()
}
