package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestScheduler_Tick_PurgesCancelled(t *testing.T) {
	purger := mocks.NewMockBookingPurger(t)

	var calls atomic.Int32
	purger.EXPECT().PurgeCancelled(mock.Anything).RunAndReturn(func(ctx context.Context) (int64, error) {
		calls.Add(1)
		return 3, nil
	})

	s := New(purger, 10*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Start(ctx)
	}()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	purger := mocks.NewMockBookingPurger(t)

	var calls atomic.Int32
	purger.EXPECT().PurgeCancelled(mock.Anything).RunAndReturn(func(ctx context.Context) (int64, error) {
		calls.Add(1)
		return 0, errors.New("db unavailable")
	})

	s := New(purger, 10*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Start(ctx)
	}()

	// errors must not stop the loop
	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	purger := mocks.NewMockBookingPurger(t)

	s := New(purger, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Start(ctx)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
