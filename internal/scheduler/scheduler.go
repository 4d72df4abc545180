package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/poll"
	"github.com/robfig/cron/v3"
)

// CycleRunner - один цикл опроса
type CycleRunner interface {
	RunCycle(ctx context.Context) (poll.Report, error)
}

type Scheduler struct {
	runner       CycleRunner
	spec         string
	schedule     cron.Schedule
	runOnStart   bool
	cycleTimeout time.Duration
	logger       *slog.Logger
}

var parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// NewScheduler - конструктор планировщика циклов опроса по cron-выражению
func NewScheduler(runner CycleRunner, cfg config.SchedulerConfig, logger *slog.Logger) (*Scheduler, error) {
	schedule, err := parser.Parse(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", cfg.Spec, err)
	}
	return &Scheduler{
		runner:       runner,
		spec:         cfg.Spec,
		schedule:     schedule,
		runOnStart:   cfg.RunOnStart,
		cycleTimeout: cfg.CycleTimeout,
		logger:       logger,
	}, nil
}

// Next - время следующего срабатывания после t
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Start - запускает циклы по расписанию до остановки контекста.
// Возвращается только после завершения всех запущенных циклов.
func (s *Scheduler) Start(ctx context.Context) {
	c := cron.New(cron.WithParser(parser))
	c.Schedule(s.schedule, cron.FuncJob(func() { s.runOnce(ctx) }))

	s.logger.Info("scheduler started",
		slog.String("schedule", s.spec),
		slog.Time("next", s.Next(time.Now())),
		slog.Duration("cycle_timeout", s.cycleTimeout),
	)
	c.Start()

	// первый запуск сразу
	var wg sync.WaitGroup
	if s.runOnStart {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runOnce(ctx)
		}()
	}

	<-ctx.Done()
	// ждём завершения уже запущенных заданий
	<-c.Stop().Done()
	wg.Wait()
	s.logger.Info("scheduler stopped")
}

// runOnce - одна итерация: цикл опроса. Пересечение с ещё идущим циклом - пропуск.
func (s *Scheduler) runOnce(ctx context.Context) {
	if s.cycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cycleTimeout)
		defer cancel()
	}

	s.logger.Debug("tick: running poll cycle")
	started := time.Now()
	report, err := s.runner.RunCycle(ctx)
	switch {
	case errors.Is(err, poll.ErrCycleInProgress):
		s.logger.Warn("poll cycle skipped: previous cycle still running")
	case errors.Is(err, context.DeadlineExceeded):
		s.logger.Error("tick: poll cycle timed out",
			slog.Duration("timeout", s.cycleTimeout),
			slog.Int("processed", len(report.Results)))
	case errors.Is(err, context.Canceled):
		s.logger.Info("tick: poll cycle cancelled")
	case err != nil:
		s.logger.Error("tick: poll cycle failed", slog.Any("err", err))
	default:
		s.logger.Debug("tick: completed",
			slog.Int("services", len(report.Results)),
			slog.Duration("duration", time.Since(started)))
	}
}
