package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"leadfunnel/internal/core/domain"
)

// DB is the part of pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// AttemptRepository implements port.AttemptJournal on PostgreSQL.
type AttemptRepository struct {
	db DB
}

// NewAttemptRepository returns a repository backed by db, usually a
// *pgxpool.Pool.
func NewAttemptRepository(db DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// RecordAttempt stores a finished attempt. Recording the same attempt twice
// keeps the first row.
func (r *AttemptRepository) RecordAttempt(ctx context.Context, a domain.CheckoutAttempt) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO checkout_attempts
            (id, draft_id, draft_name, state, payment_due, used_gateway, campaign_id, error_message, started_at, finished_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (id) DO NOTHING`,
		a.ID, a.DraftID, a.DraftName, string(a.State), a.PaymentDue, a.UsedGateway,
		a.CampaignID, a.ErrorMessage, a.StartedAt, a.FinishedAt)
	if err != nil {
		return fmt.Errorf("insert checkout attempt: %w", err)
	}
	return nil
}

// ListAttempts returns up to limit attempts, most recently finished first.
func (r *AttemptRepository) ListAttempts(ctx context.Context, limit int) ([]domain.CheckoutAttempt, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id::text, draft_id, draft_name, state, payment_due, used_gateway,
               campaign_id, error_message, started_at, finished_at
        FROM checkout_attempts
        ORDER BY finished_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query checkout attempts: %w", err)
	}
	attempts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CheckoutAttempt, error) {
		var (
			a     domain.CheckoutAttempt
			state string
		)
		err := row.Scan(
			&a.ID,
			&a.DraftID,
			&a.DraftName,
			&state,
			&a.PaymentDue,
			&a.UsedGateway,
			&a.CampaignID,
			&a.ErrorMessage,
			&a.StartedAt,
			&a.FinishedAt,
		)
		a.State = domain.CheckoutState(state)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan checkout attempts: %w", err)
	}
	return attempts, nil
}
