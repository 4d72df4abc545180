package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LastSeenRepo - последняя увиденная дата по сервису в таблице last_seen_terms.
type LastSeenRepo struct {
	db *pgxpool.Pool
}

func NewLastSeenRepository(db *pgxpool.Pool) *LastSeenRepo {
	return &LastSeenRepo{db: db}
}

func (r *LastSeenRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT first_free_term FROM last_seen_terms WHERE subscription = $1`
	var term string
	err := r.db.QueryRow(ctx, query, key).Scan(&term)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return term, true, nil
}

func (r *LastSeenRepo) Set(ctx context.Context, key, term string) error {
	query := `
	INSERT INTO last_seen_terms (subscription, first_free_term, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (subscription)
	DO UPDATE SET first_free_term = EXCLUDED.first_free_term,
	              updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, key, term)
	return err
}

func (r *LastSeenRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM last_seen_terms WHERE subscription = $1`, key)
	return err
}
