package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLocker(t *testing.T) {
	locker := NewNoopLocker()
	ctx := context.Background()

	// Always grants, even for the same key twice; the conditional stock
	// decrement carries correctness without mutual exclusion.
	token, acquired, err := locker.TryAcquire(ctx, "lock:product:a", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)

	_, acquired, err = locker.TryAcquire(ctx, "lock:product:a", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)

	assert.NoError(t, locker.Release(ctx, "lock:product:a", token))
}
