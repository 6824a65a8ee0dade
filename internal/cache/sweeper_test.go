package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/pulmocare/appointments/backend/internal/cache"
	"github.com/pulmocare/appointments/backend/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_RemovesExpiredEntries(t *testing.T) {
	store := newStore(t)

	store.Set("expired:1", "x", -time.Second)
	store.Set("expired:2", "x", -time.Second)
	store.SetForever("keep", "y")

	sweeper := cache.NewSweeper(store, 20*time.Millisecond, testhelper.NewTestLogger(false))
	sweeper.Start(context.Background())
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		return store.Len() == 1
	}, 500*time.Millisecond, 10*time.Millisecond, "sweeper should reclaim the expired entries")

	_, ok := store.Get("keep")
	assert.True(t, ok)
}

func TestSweeper_StopsOnContextCancel(t *testing.T) {
	store := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	sweeper := cache.NewSweeper(store, 10*time.Millisecond, testhelper.NewTestLogger(false))
	sweeper.Start(ctx)

	cancel()
	// Stop waits for the loop to exit; returning at all proves the loop
	// honored the cancellation.
	sweeper.Stop()

	store.Set("late", "x", -time.Second)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, store.Len(), "no sweeping after shutdown")
}

func TestSweeper_StopWithoutStart(t *testing.T) {
	sweeper := cache.NewSweeper(newStore(t), time.Second, testhelper.NewTestLogger(false))
	sweeper.Stop()
}
