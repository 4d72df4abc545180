package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/poll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) RunCycle(context.Context) (poll.Report, error) {
	r.calls.Add(1)
	return poll.Report{}, r.err
}

// blockingRunner - цикл, который висит до отмены контекста
type blockingRunner struct {
	started  chan struct{}
	finished atomic.Bool
	ctxErr   atomic.Value
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{started: make(chan struct{}, 1)}
}

func (r *blockingRunner) RunCycle(ctx context.Context) (poll.Report, error) {
	select {
	case r.started <- struct{}{}:
	default:
	}
	<-ctx.Done()
	// имитация завершения текущего запроса после отмены
	time.Sleep(50 * time.Millisecond)
	r.ctxErr.Store(ctx.Err())
	r.finished.Store(true)
	return poll.Report{}, ctx.Err()
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func schedCfg(spec string, runOnStart bool) config.SchedulerConfig {
	return config.SchedulerConfig{Enabled: true, Spec: spec, RunOnStart: runOnStart}
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler(&countingRunner{}, schedCfg("every ten minutes", true), quiet())
	require.Error(t, err)
}

func TestNewScheduler_Next(t *testing.T) {
	s, err := NewScheduler(&countingRunner{}, schedCfg("*/10 * * * *", false), quiet())
	require.NoError(t, err)

	from := time.Date(2024, 5, 1, 12, 3, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 10, 0, 0, time.UTC), s.Next(from))
}

func TestNewScheduler_Descriptor(t *testing.T) {
	_, err := NewScheduler(&countingRunner{}, schedCfg("@every 30s", false), quiet())
	require.NoError(t, err)
}

func TestStart_RunOnStart(t *testing.T) {
	r := &countingRunner{}
	s, err := NewScheduler(r, schedCfg("0 0 1 1 *", true), quiet())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}
}

// Start не возвращается, пока не завершился стартовый цикл
func TestStart_WaitsForStartupCycle(t *testing.T) {
	r := newBlockingRunner()
	s, err := NewScheduler(r, schedCfg("0 0 1 1 *", true), quiet())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-r.started:
	case <-time.After(time.Second):
		t.Fatal("startup cycle did not run")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.True(t, r.finished.Load(), "Start returned before the startup cycle finished")
}

func TestStart_Ticks(t *testing.T) {
	r := &countingRunner{err: poll.ErrCycleInProgress}
	s, err := NewScheduler(r, schedCfg("@every 1s", false), quiet())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

// Зависший цикл обрывается по таймауту, а не держит защиту от пересечения вечно
func TestRunOnce_CycleTimeout(t *testing.T) {
	r := newBlockingRunner()
	cfg := schedCfg("*/10 * * * *", false)
	cfg.CycleTimeout = 20 * time.Millisecond
	s, err := NewScheduler(r, cfg, quiet())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		s.runOnce(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cycle was not bounded by the timeout")
	}
	assert.ErrorIs(t, r.ctxErr.Load().(error), context.DeadlineExceeded)
}
