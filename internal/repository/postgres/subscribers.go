package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	"github.com/NastyaGoryachaya/slot-notifier/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriberRepo - каталог подписчиков в таблице telegram_users.
type SubscriberRepo struct {
	db *pgxpool.Pool
}

func NewSubscriberRepository(db *pgxpool.Pool) *SubscriberRepo {
	return &SubscriberRepo{db: db}
}

// Get - подписчик по chat_id, repository.ErrNotFound если нет.
func (r *SubscriberRepo) Get(ctx context.Context, chatID int64) (domain.Subscriber, error) {
	query := `
	SELECT chat_id, username, first_name, registered_at, subscription, approved
	FROM telegram_users
	WHERE chat_id = $1`

	var (
		s   domain.Subscriber
		sub *string
	)
	err := r.db.QueryRow(ctx, query, chatID).
		Scan(&s.ChatID, &s.Username, &s.FirstName, &s.RegisteredAt, &sub, &s.Approved)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Subscriber{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.Subscriber{}, err
	}
	if sub != nil {
		s.Subscription = *sub
	}
	return s, nil
}

// Create - вставляет подписчика, если его ещё нет. created=false - запись уже была.
func (r *SubscriberRepo) Create(ctx context.Context, s domain.Subscriber) (bool, error) {
	query := `
	INSERT INTO telegram_users (chat_id, username, first_name, registered_at, subscription, approved)
	VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	ON CONFLICT (chat_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, query, s.ChatID, s.Username, s.FirstName, s.RegisteredAt, s.Subscription, s.Approved)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetSubscription - меняет выбранный сервис подписчика.
func (r *SubscriberRepo) SetSubscription(ctx context.Context, chatID int64, key string) error {
	query := `UPDATE telegram_users SET subscription = NULLIF($2, '') WHERE chat_id = $1`
	tag, err := r.db.Exec(ctx, query, chatID, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Approve - ставит approved только если он был false. changed=false - уже одобрен или записи нет.
func (r *SubscriberRepo) Approve(ctx context.Context, chatID int64) (bool, error) {
	query := `UPDATE telegram_users SET approved = TRUE WHERE chat_id = $1 AND approved = FALSE`
	tag, err := r.db.Exec(ctx, query, chatID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListEligible - одобренные подписчики сервиса key.
func (r *SubscriberRepo) ListEligible(ctx context.Context, key string) ([]domain.Subscriber, error) {
	query := `
	SELECT chat_id, username, first_name, registered_at, subscription, approved
	FROM telegram_users
	WHERE approved = TRUE
	  AND subscription = $1
	ORDER BY chat_id`
	rows, err := r.db.Query(ctx, query, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Subscriber
	for rows.Next() {
		var (
			s   domain.Subscriber
			sub *string
		)
		if err := rows.Scan(&s.ChatID, &s.Username, &s.FirstName, &s.RegisteredAt, &sub, &s.Approved); err != nil {
			return nil, err
		}
		if sub != nil {
			s.Subscription = *sub
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
