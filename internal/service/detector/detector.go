package detector

import (
	"context"
	"fmt"
	"log/slog"
)

// Store - последняя увиденная дата по ключу подписки. Реализации: память, Redis, Postgres.
type Store interface {
	Get(ctx context.Context, key string) (term string, ok bool, err error)
	Set(ctx context.Context, key, term string) error
	Delete(ctx context.Context, key string) error
}

type Options struct {
	// ResetOnNoTerm - при пропаже свободной даты забыть прошлое значение,
	// чтобы та же дата при повторном появлении снова дала уведомление.
	ResetOnNoTerm bool
}

type Detector struct {
	store  Store
	opts   Options
	logger *slog.Logger
}

func New(store Store, opts Options, logger *slog.Logger) *Detector {
	return &Detector{store: store, opts: opts, logger: logger}
}

// Observe - сравнивает term с последним значением для key.
// Изменение: term не пустой и (значения не было или оно другое). Сравнение строковое, без разбора дат.
// При изменении новое значение записывается до возврата true.
func (d *Detector) Observe(ctx context.Context, key, term string) (bool, error) {
	if term == "" {
		if d.opts.ResetOnNoTerm {
			if err := d.store.Delete(ctx, key); err != nil {
				return false, fmt.Errorf("reset last term %s: %w", key, err)
			}
			d.logger.Debug("detector: last term reset", slog.String("key", key))
		}
		return false, nil
	}

	prev, ok, err := d.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read last term %s: %w", key, err)
	}
	if ok && prev == term {
		return false, nil
	}

	if err := d.store.Set(ctx, key, term); err != nil {
		return false, fmt.Errorf("write last term %s: %w", key, err)
	}
	d.logger.Debug("detector: term changed",
		slog.String("key", key),
		slog.String("prev", prev),
		slog.String("term", term),
	)
	return true, nil
}

// Last - текущее сохранённое значение
func (d *Detector) Last(ctx context.Context, key string) (string, bool, error) {
	return d.store.Get(ctx, key)
}
