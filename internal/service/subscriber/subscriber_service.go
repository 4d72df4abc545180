package subscriber

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	errs "github.com/NastyaGoryachaya/slot-notifier/internal/errors"
	"github.com/NastyaGoryachaya/slot-notifier/internal/repository"
)

//go:generate mockgen -source=subscriber_service.go -destination=mocks/mocks.go -package=mocks

// Repository - каталог подписчиков
type Repository interface {
	Get(ctx context.Context, chatID int64) (domain.Subscriber, error)
	Create(ctx context.Context, s domain.Subscriber) (bool, error)
	SetSubscription(ctx context.Context, chatID int64, key string) error
	Approve(ctx context.Context, chatID int64) (bool, error)
	ListEligible(ctx context.Context, key string) ([]domain.Subscriber, error)
}

// Registration - данные пользователя из команды /start
type Registration struct {
	ChatID    int64
	Username  string
	FirstName string
}

type Service struct {
	repo  Repository
	clock Clock
	log   *slog.Logger
}

func New(repo Repository, log *slog.Logger) *Service {
	return NewWithClock(repo, NewRealClock(), log)
}

// NewWithClock - конструктор для тестов с фиксированными "часами"
func NewWithClock(repo Repository, clock Clock, log *slog.Logger) *Service {
	return &Service{repo: repo, clock: clock, log: log}
}

// Register регистрирует пользователя при первом /start.
// Если запись уже есть, возвращает её без изменений и created=false.
func (s *Service) Register(ctx context.Context, in Registration) (domain.Subscriber, bool, error) {
	existing, err := s.repo.Get(ctx, in.ChatID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error("subscribers.register lookup failed",
			slog.Int64("chat_id", in.ChatID),
			slog.String("err", err.Error()))
		return domain.Subscriber{}, false, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}

	sub := domain.Subscriber{
		ChatID:       in.ChatID,
		Username:     orUnknown(in.Username),
		FirstName:    orUnknown(in.FirstName),
		RegisteredAt: s.clock.Now(),
	}
	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		s.log.Error("subscribers.register failed",
			slog.Int64("chat_id", in.ChatID),
			slog.String("err", err.Error()))
		return domain.Subscriber{}, false, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	if !created {
		// параллельный /start успел раньше
		existing, err := s.repo.Get(ctx, in.ChatID)
		if err != nil {
			return domain.Subscriber{}, false, fmt.Errorf("%w: %v", errs.ErrInternal, err)
		}
		return existing, false, nil
	}

	s.log.Info("subscribers.register ok",
		slog.Int64("chat_id", sub.ChatID),
		slog.String("username", sub.Username))
	return sub, true, nil
}

// Get возвращает подписчика или ErrSubscriberNotFound.
func (s *Service) Get(ctx context.Context, chatID int64) (domain.Subscriber, error) {
	sub, err := s.repo.Get(ctx, chatID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.Subscriber{}, errs.ErrSubscriberNotFound
	}
	if err != nil {
		s.log.Error("subscribers.get failed",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()))
		return domain.Subscriber{}, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	return sub, nil
}

// Subscribe меняет сервис, на который подписан пользователь.
func (s *Service) Subscribe(ctx context.Context, chatID int64, key string) (domain.ServiceEntry, error) {
	entry, ok := consts.Lookup(key)
	if !ok {
		s.log.Warn("subscribers.subscribe unknown service",
			slog.Int64("chat_id", chatID),
			slog.String("key", key))
		return domain.ServiceEntry{}, errs.ErrUnknownService
	}

	err := s.repo.SetSubscription(ctx, chatID, entry.Key)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ServiceEntry{}, errs.ErrSubscriberNotFound
	}
	if err != nil {
		s.log.Error("subscribers.subscribe failed",
			slog.Int64("chat_id", chatID),
			slog.String("key", entry.Key),
			slog.String("err", err.Error()))
		return domain.ServiceEntry{}, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	s.log.Info("subscribers.subscribe ok",
		slog.Int64("chat_id", chatID),
		slog.String("key", entry.Key))
	return entry, nil
}

// Approve одобряет доступ. Идемпотентна: отсутствующий или уже одобренный
// подписчик ничего не меняет и возвращает ErrSubscriberNotFound / ErrAlreadyApproved.
func (s *Service) Approve(ctx context.Context, chatID int64) (domain.Subscriber, error) {
	sub, err := s.Get(ctx, chatID)
	if errors.Is(err, errs.ErrSubscriberNotFound) {
		s.log.Warn("subscribers.approve target missing", slog.Int64("chat_id", chatID))
		return domain.Subscriber{}, err
	}
	if err != nil {
		return domain.Subscriber{}, err
	}
	if sub.Approved {
		s.log.Info("subscribers.approve already approved", slog.Int64("chat_id", chatID))
		return sub, errs.ErrAlreadyApproved
	}

	changed, err := s.repo.Approve(ctx, chatID)
	if err != nil {
		s.log.Error("subscribers.approve failed",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()))
		return domain.Subscriber{}, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}
	if !changed {
		// одобрили между чтением и записью
		s.log.Info("subscribers.approve already approved", slog.Int64("chat_id", chatID))
		sub.Approved = true
		return sub, errs.ErrAlreadyApproved
	}

	sub.Approved = true
	s.log.Info("subscribers.approve ok", slog.Int64("chat_id", chatID))
	return sub, nil
}

// ListEligible - получатели рассылки по сервису key (approved и подписаны на key).
func (s *Service) ListEligible(ctx context.Context, key string) ([]int64, error) {
	if !consts.IsKnown(key) {
		return nil, errs.ErrUnknownService
	}
	subs, err := s.repo.ListEligible(ctx, key)
	if err != nil {
		s.log.Error("subscribers.list_eligible failed",
			slog.String("key", key),
			slog.String("err", err.Error()))
		return nil, fmt.Errorf("%w: %v", errs.ErrInternal, err)
	}

	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		// хранилище уже фильтрует, но правило рассылки одно - в домене
		if !sub.EligibleFor(key) {
			s.log.Warn("subscribers.list_eligible skipped ineligible row",
				slog.Int64("chat_id", sub.ChatID),
				slog.String("key", key))
			continue
		}
		ids = append(ids, sub.ChatID)
	}
	return ids, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
