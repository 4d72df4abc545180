package poll

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	"github.com/NastyaGoryachaya/slot-notifier/internal/pkg/metrics"
	"github.com/google/uuid"
)

//go:generate mockgen -source=poll_service.go -destination=mocks/mocks.go -package=mocks

// ErrCycleInProgress - предыдущий цикл ещё не завершён, новый не запускается
var ErrCycleInProgress = errors.New("poll cycle already in progress")

type Fetcher interface {
	FirstFreeTerm(ctx context.Context, entry domain.ServiceEntry) (string, error)
}

type Detector interface {
	Observe(ctx context.Context, key, term string) (bool, error)
}

type Directory interface {
	ListEligible(ctx context.Context, key string) ([]int64, error)
}

type Notifier interface {
	Notify(recipients []int64, entry domain.ServiceEntry, term string) int
}

type Outcome string

const (
	OutcomeFailed    Outcome = "failed"
	OutcomeNoTerm    Outcome = "no_term"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeChanged   Outcome = "changed"
)

type EntryResult struct {
	Key        string
	Outcome    Outcome
	Term       string
	Recipients int
	Sent       int
}

type Report struct {
	// ID - метка цикла в логах
	ID      string
	Results []EntryResult
}

// Changed - ключи сервисов, по которым была рассылка
func (r Report) Changed() []string {
	var keys []string
	for _, res := range r.Results {
		if res.Outcome == OutcomeChanged {
			keys = append(keys, res.Key)
		}
	}
	return keys
}

type Service struct {
	registry  []domain.ServiceEntry
	fetcher   Fetcher
	detector  Detector
	directory Directory
	notifier  Notifier
	logger    *slog.Logger

	running atomic.Bool
}

func NewService(registry []domain.ServiceEntry, fetcher Fetcher, detector Detector, directory Directory, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		registry:  registry,
		fetcher:   fetcher,
		detector:  detector,
		directory: directory,
		notifier:  notifier,
		logger:    logger,
	}
}

// RunCycle - один проход по реестру в его порядке.
// Ошибка одного сервиса не влияет на остальные. Одновременно выполняется не больше одного цикла.
func (s *Service) RunCycle(ctx context.Context) (Report, error) {
	if !s.running.CompareAndSwap(false, true) {
		metrics.PollCycles.WithLabelValues("skipped").Inc()
		return Report{}, ErrCycleInProgress
	}
	defer s.running.Store(false)

	started := time.Now()
	report := Report{ID: uuid.NewString(), Results: make([]EntryResult, 0, len(s.registry))}
	log := s.logger.With(slog.String("cycle_id", report.ID))

	for _, entry := range s.registry {
		if err := ctx.Err(); err != nil {
			metrics.PollCycles.WithLabelValues("cancelled").Inc()
			log.Warn("poll cycle cancelled", slog.Int("processed", len(report.Results)))
			return report, err
		}
		res := s.processEntry(ctx, log, entry)
		metrics.EntryOutcomes.WithLabelValues(res.Key, string(res.Outcome)).Inc()
		report.Results = append(report.Results, res)
	}

	metrics.PollCycles.WithLabelValues("completed").Inc()
	metrics.PollDuration.Observe(time.Since(started).Seconds())
	log.Info("poll cycle completed",
		slog.Int("services", len(report.Results)),
		slog.Any("changed", report.Changed()),
		slog.Duration("duration", time.Since(started)),
	)
	return report, nil
}

func (s *Service) processEntry(ctx context.Context, log *slog.Logger, entry domain.ServiceEntry) EntryResult {
	res := EntryResult{Key: entry.Key}

	term, err := s.fetcher.FirstFreeTerm(ctx, entry)
	if err != nil {
		// ошибка уже залогирована в fetch; сохранённое значение не трогаем
		res.Outcome = OutcomeFailed
		return res
	}
	res.Term = term

	changed, err := s.detector.Observe(ctx, entry.Key, term)
	if err != nil {
		log.Error("poll: detector failed", slog.String("service", entry.Key), slog.Any("err", err))
		res.Outcome = OutcomeFailed
		return res
	}

	switch {
	case term == "":
		res.Outcome = OutcomeNoTerm
		log.Debug("poll: no free term", slog.String("service", entry.Key))
		return res
	case !changed:
		res.Outcome = OutcomeUnchanged
		return res
	}

	log.Info("poll: new first free term",
		slog.String("service", entry.Key),
		slog.String("term", term),
	)

	recipients, err := s.directory.ListEligible(ctx, entry.Key)
	if err != nil {
		// новое значение уже записано, рассылки по нему не будет
		log.Error("poll: list subscribers failed", slog.String("service", entry.Key), slog.Any("err", err))
		res.Outcome = OutcomeFailed
		return res
	}

	res.Outcome = OutcomeChanged
	res.Recipients = len(recipients)
	res.Sent = s.notifier.Notify(recipients, entry, term)
	return res
}
