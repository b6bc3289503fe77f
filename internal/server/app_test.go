package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/config"
	"github.com/mdrrmo4516/mobile2026/internal/server/observability"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeTracker struct {
	*repomanager.InMemoryRepositoryManager
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = config.MemoryDSN
	c.HTTPAddr = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	return c
}

func TestApp_RunStopsOnCancelAndClosesStore(t *testing.T) {
	store := &closeTracker{InMemoryRepositoryManager: repomanager.NewInMemoryRepositoryManager()}
	app := newApp(testConfig(), logging.Nop(), store, observability.NewMetricsForTesting())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.True(t, store.closed)
}

func TestApp_RunStopsWhenListenFails(t *testing.T) {
	c := testConfig()
	c.HTTPAddr = "256.0.0.1:bad"
	store := &closeTracker{InMemoryRepositoryManager: repomanager.NewInMemoryRepositoryManager()}
	app := newApp(c, logging.Nop(), store, observability.NewMetricsForTesting())

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.True(t, store.closed)
}

func TestNewApp_StoreInitError(t *testing.T) {
	orig := newStore
	t.Cleanup(func() { newStore = orig })
	newStore = func(context.Context, *config.Config) (repomanager.RepositoryManager, error) {
		return nil, errors.New("connection refused")
	}

	_, err := NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}
