package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	errs "github.com/NastyaGoryachaya/slot-notifier/internal/errors"
	"github.com/NastyaGoryachaya/slot-notifier/internal/pkg/metrics"
)

//go:generate mockgen -source=fetch_service.go -destination=mocks/mocks.go -package=mocks

type Service interface {
	FirstFreeTerm(ctx context.Context, entry domain.ServiceEntry) (string, error)
}

// AvailabilityProvider - внешний API бронирования (Bookero)
type AvailabilityProvider interface {
	FirstFreeTerm(ctx context.Context, serviceID int) (string, error)
}

type fetchService struct {
	provider AvailabilityProvider
	logger   *slog.Logger
}

// NewService - конструктор сервиса получения ближайшей свободной даты.
func NewService(provider AvailabilityProvider, logger *slog.Logger) Service {
	return &fetchService{
		provider: provider,
		logger:   logger,
	}
}

// FirstFreeTerm - один запрос без повторов. Ошибка означает "нет информации",
// а не "нет свободных дат"; она логируется и оборачивается в ErrFetchFailed.
func (s *fetchService) FirstFreeTerm(ctx context.Context, entry domain.ServiceEntry) (string, error) {
	started := time.Now()
	term, err := s.provider.FirstFreeTerm(ctx, entry.ServiceID)
	metrics.RecordFetch(entry.Key, err == nil, time.Since(started))
	if err != nil {
		s.logger.Error("fetch first free term",
			slog.String("service", entry.Key),
			slog.Int("service_id", entry.ServiceID),
			slog.Any("err", err),
		)
		return "", fmt.Errorf("%w: %s: %v", errs.ErrFetchFailed, entry.Key, err)
	}

	s.logger.Debug("first free term fetched",
		slog.String("service", entry.Key),
		slog.String("term", term),
		slog.Duration("duration", time.Since(started)),
	)
	return term, nil
}
