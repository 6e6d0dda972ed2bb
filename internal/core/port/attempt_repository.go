package port

import (
	"context"

	"leadfunnel/internal/core/domain"
)

// AttemptJournal persists finished checkout attempts for diagnostics.
type AttemptJournal interface {
	RecordAttempt(ctx context.Context, a domain.CheckoutAttempt) error
	// ListAttempts returns the most recent attempts first.
	ListAttempts(ctx context.Context, limit int) ([]domain.CheckoutAttempt, error)
}
