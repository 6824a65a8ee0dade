package cache

import (
	"context"
	"time"
)

// Sweeper drives the periodic active sweep of a cache store.
//
// The store itself stays free of scheduling policy: the owning process creates
// a Sweeper next to the store, starts it once at boot and stops it during
// shutdown. Each tick is a single call to CleanupExpired, so the sweeper never
// holds the store's lock for longer than one scan.
type Sweeper struct {
	store    Service
	interval time.Duration
	logger   Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSweeper creates a sweeper for the given store. The interval must be
// positive; callers that want no active sweeping simply never construct one.
func NewSweeper(store Service, interval time.Duration, logger Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. It returns immediately; the loop runs until
// ctx is canceled or Stop is called. Start must be called at most once.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.logger.LogInfo("Cache sweeper started", map[string]interface{}{
		"interval": s.interval.String(),
	})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.store.CleanupExpired()
			}
		}
	}()
}

// Stop terminates the sweep loop and waits for it to exit. Calling Stop on a
// sweeper that was never started is a no-op.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.LogInfo("Cache sweeper stopped", nil)
}
