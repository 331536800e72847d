package httpapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterStore_SameKeySameLimiter(t *testing.T) {
	store := NewLimiterStore(1, 1, time.Minute)

	assert.Same(t, store.Get("a"), store.Get("a"))
	assert.NotSame(t, store.Get("a"), store.Get("b"))
	assert.Equal(t, 2, store.Len())
}

func TestLimiterStore_CleanupRemovesIdleKeys(t *testing.T) {
	store := NewLimiterStore(1, 1, time.Minute)
	store.Get("idle")

	store.Cleanup(time.Now())
	assert.Equal(t, 1, store.Len())

	store.Cleanup(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, store.Len())
}

func TestLimiterStore_RunStopsOnCancel(t *testing.T) {
	store := NewLimiterStore(1, 1, 4*time.Millisecond)
	store.Get("idle")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
