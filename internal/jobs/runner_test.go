package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRunner_RunsImmediatelyAndOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs int64
	r := New(ctx, zap.NewNop().Sugar())
	r.Every(20*time.Millisecond, "test-job", func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})

	time.Sleep(70 * time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt64(&runs), int64(2), "first run plus at least one tick")
}

func TestRunner_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var runs int64
	r := New(ctx, zap.NewNop().Sugar())
	r.Every(10*time.Millisecond, "cancel-job", func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})

	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := atomic.LoadInt64(&runs)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&runs), "no runs after cancel")
}

func TestRunner_ErrorDoesNotStopSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs int64
	r := New(ctx, zap.NewNop().Sugar())
	r.Every(15*time.Millisecond, "failing-job", func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return assert.AnError
	})

	time.Sleep(50 * time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt64(&runs), int64(2))
}
