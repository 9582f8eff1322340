package store

import (
	"context"
	"testing"
	"time"

	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/simulation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(ttl time.Duration) (*ResultCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := NewResultCache(ttl)
	c.now = clock.now
	return c, clock
}

func TestResultCache_PutGet(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	res := simulation.New().Run(model.DefaultParams())

	id := c.Put(res)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	entry, ok := c.Get(id)
	require.True(t, ok)
	assert.Same(t, res, entry.Result)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, entry.CreatedAt.Add(time.Minute), entry.ExpiresAt)
}

func TestResultCache_UnknownAndMalformedIDs(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	_, ok := c.Get(uuid.NewString())
	assert.False(t, ok)
	_, ok = c.Get("not-a-uuid")
	assert.False(t, ok)
}

func TestResultCache_Expiry(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	id := c.Put(&simulation.Result{})
	keep := c.Put(&simulation.Result{})

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok := c.Get(id)
	assert.False(t, ok)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Prune())
	assert.Zero(t, c.Len())
	_, ok = c.Get(keep)
	assert.False(t, ok)
}

func TestResultCache_RunStopsOnCancel(t *testing.T) {
	c := NewResultCache(time.Millisecond)
	c.Put(&simulation.Result{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewResultCache_DefaultTTL(t *testing.T) {
	c := NewResultCache(0)
	assert.Equal(t, time.Hour, c.ttl)
}
