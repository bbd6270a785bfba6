package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, KeyCustomBooks)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, KeyCustomBooks, `[]`))
	v, ok, err := m.Get(ctx, KeyCustomBooks)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	// Last writer wins.
	require.NoError(t, m.Set(ctx, KeyCustomBooks, `[1]`))
	v, _, _ = m.Get(ctx, KeyCustomBooks)
	assert.Equal(t, `[1]`, v)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, KeyBookRequests, "[]")
			_, _, _ = m.Get(ctx, KeyBookRequests)
		}()
	}
	wg.Wait()

	_, ok, err := m.Get(ctx, KeyBookRequests)
	require.NoError(t, err)
	assert.True(t, ok)
}
