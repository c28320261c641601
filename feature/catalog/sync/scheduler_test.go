package sync

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_StartRejectsInvalidCron(t *testing.T) {
	cfg := Config{ProductsCron: "not a cron", CategoriesCron: "*/30 * * * *"}
	s := NewScheduler(nil, cfg, zap.NewNop())

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products cron")
}

func TestScheduler_StartAndStop(t *testing.T) {
	cfg := Config{ProductsCron: "0 0 1 1 *", CategoriesCron: "0 0 1 1 *", CycleTimeoutSeconds: 1}
	s := NewScheduler(nil, cfg, zap.NewNop())

	require.NoError(t, s.Start())
	s.Stop()
}

func TestScheduler_StopWithoutStartIsNoOp(t *testing.T) {
	s := NewScheduler(nil, Config{}, zap.NewNop())
	s.Stop()
}

func TestScheduler_OverlappingTriggersJoinTheRunningCycle(t *testing.T) {
	cfg := Config{CycleTimeoutSeconds: 5}
	s := NewScheduler(nil, cfg, zap.NewNop())

	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.run("products", func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	// Fires while the first cycle is still running; must join it instead of
	// starting a second one.
	var extra atomic.Int32
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.run("products", func(context.Context) error {
			extra.Add(1)
			return nil
		})
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.Equal(t, int32(0), extra.Load(), "only one cycle per catalog type may run at a time")
}

func TestScheduler_CatalogTypesDoNotBlockEachOther(t *testing.T) {
	cfg := Config{CycleTimeoutSeconds: 5}
	s := NewScheduler(nil, cfg, zap.NewNop())

	productEntered := make(chan struct{})
	productRelease := make(chan struct{})
	go s.run("products", func(context.Context) error {
		close(productEntered)
		<-productRelease
		return nil
	})
	<-productEntered

	done := make(chan struct{})
	go func() {
		s.run("categories", func(context.Context) error { return nil })
		close(done)
	}()
	<-done

	close(productRelease)
}

func TestScheduler_CycleErrorDoesNotPanic(t *testing.T) {
	s := NewScheduler(nil, Config{CycleTimeoutSeconds: 1}, zap.NewNop())
	s.run("products", func(context.Context) error { return assert.AnError })
}
