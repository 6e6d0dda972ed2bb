package port

import (
	"context"

	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
)

// CatalogReader reads the objective and creative catalogs. Codes are
// validated by the implementation; unknown codes surface as errors.
type CatalogReader interface {
	Objectives(ctx context.Context) ([]domain.Objective, error)
	Creatives(ctx context.Context) ([]domain.CreativeSupport, error)
}

// WalletReader returns the current wallet snapshot.
type WalletReader interface {
	Wallet(ctx context.Context) (domain.Wallet, error)
}

// CampaignReader lists the advertiser's campaigns.
type CampaignReader interface {
	Campaigns(ctx context.Context) ([]domain.Campaign, error)
}

// FundingClient is the write side of the platform API. Both calls answer
// with a payment intent; see domain.PaymentIntent for its meaning.
type FundingClient interface {
	// InitiatePayment submits the complete draft. The platform creates the
	// campaign, debits the wallet and, when the wallet does not cover the
	// cost, issues a card payment intent for the remainder.
	InitiatePayment(ctx context.Context, draft domain.CampaignDraft) (domain.PaymentIntent, error)
	// RequestRecharge issues a card payment intent crediting the wallet.
	RequestRecharge(ctx context.Context, amount decimal.Decimal) (domain.PaymentIntent, error)
}

// PaymentGateway is the card payment processor.
type PaymentGateway interface {
	// Ready returns a *domain.GatewayInitializationError when the gateway
	// cannot take payments.
	Ready() error
	// Precheck validates card completeness before any intent is created.
	// Errors are *domain.GatewayError with a user facing message.
	Precheck(card domain.Card) error
	// ConfirmCardPayment confirms the intent identified by clientSecret.
	ConfirmCardPayment(ctx context.Context, clientSecret string, card domain.Card) error
}

// CacheInvalidator marks cached datasets stale so the next read refetches.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...domain.StaleKey) error
}

// TokenProvider holds the bearer token used for platform API calls.
type TokenProvider interface {
	Get() string
	Set(token string)
	Clear()
}
