package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
	"github.com/redis/go-redis/v9"
)

// LastSeenStore - последняя увиденная дата по сервису в Redis, переживает рестарт процесса
type LastSeenStore struct {
	Db     *redis.Client
	prefix string
}

func NewLastSeenStore(ctx context.Context, cfg config.RedisConfig) (*LastSeenStore, error) {
	const op = "cache.NewLastSeenStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &LastSeenStore{Db: db, prefix: cfg.KeyPrefix}, nil
}

func (s *LastSeenStore) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "cache.Get"
	val, err := s.Db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

func (s *LastSeenStore) Set(ctx context.Context, key, term string) error {
	const op = "cache.Set"
	if err := s.Db.Set(ctx, s.prefix+key, term, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *LastSeenStore) Delete(ctx context.Context, key string) error {
	const op = "cache.Delete"
	if err := s.Db.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *LastSeenStore) Close() error {
	return s.Db.Close()
}
