package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
	"github.com/stretchr/testify/assert"
)

func quietApp(timeout time.Duration) *App {
	cfg := config.Config{}
	cfg.Server.ShutdownTimeout = timeout
	return &App{cfg: cfg, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// хранилища не закрываются, пока идёт последний цикл опроса
func TestShutdown_WaitsForScheduler(t *testing.T) {
	a := quietApp(2 * time.Second)
	a.schedDone = make(chan struct{})

	var stoppedAt time.Time
	go func() {
		time.Sleep(100 * time.Millisecond)
		stoppedAt = time.Now()
		close(a.schedDone)
	}()

	assert.NoError(t, a.Shutdown(context.Background()))
	assert.False(t, stoppedAt.IsZero(), "Shutdown returned before the scheduler stopped")
}

func TestShutdown_SchedulerWaitBounded(t *testing.T) {
	a := quietApp(50 * time.Millisecond)
	a.schedDone = make(chan struct{})

	start := time.Now()
	assert.NoError(t, a.Shutdown(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}

func TestShutdown_NoScheduler(t *testing.T) {
	assert.NoError(t, quietApp(0).Shutdown(context.Background()))
}
