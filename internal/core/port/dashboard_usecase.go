package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
)

// WizardUseCase drives the campaign creation wizard: draft edits for the
// first steps, then quote and checkout. This interface is the primary port
// used by the HTTP adapter.
type WizardUseCase interface {
	Objectives(ctx context.Context) ([]domain.Objective, error)
	Creatives(ctx context.Context) ([]domain.CreativeSupport, error)
	Campaigns(ctx context.Context) ([]domain.Campaign, error)

	// NewDraft opens an empty draft and returns its id.
	NewDraft() string
	Draft(id string) (domain.CampaignDraft, error)
	UpdateDraft(ctx context.Context, id string, upd DraftUpdate) (domain.CampaignDraft, error)
	// SelectObjective switches the objective and clears dependent fields.
	SelectObjective(ctx context.Context, id, objectiveID string) (domain.CampaignDraft, error)
	// SetBudget applies raw budget input and refreshes the lead estimate.
	// Unparsable input leaves the previous budget in place.
	SetBudget(ctx context.Context, id, raw string) (domain.CampaignDraft, error)
	SetCreatives(ctx context.Context, id string, codes []domain.CreativeCode) (domain.CampaignDraft, error)
	DiscardDraft(id string) error

	Quote(ctx context.Context, id string) (domain.FundingQuote, error)
	// Checkout runs one checkout attempt for the draft. On success the draft
	// is closed and the returned status carries the campaign id.
	Checkout(ctx context.Context, id string, card domain.Card) (domain.CheckoutStatus, error)
	CheckoutStatus(id string) (domain.CheckoutStatus, error)
	Attempts(ctx context.Context, limit int) ([]domain.CheckoutAttempt, error)
}

// WalletUseCase reads the wallet and recharges it by card.
type WalletUseCase interface {
	Wallet(ctx context.Context) (domain.Wallet, error)
	Recharge(ctx context.Context, amount decimal.Decimal, card domain.Card) error
}

// DraftUpdate carries the wizard fields that do not affect funding. Nil
// fields are left untouched.
type DraftUpdate struct {
	Name                 *string                 `json:"name,omitempty"`
	Description          *string                 `json:"description,omitempty"`
	Category             *string                 `json:"category,omitempty"`
	StartDate            *time.Time              `json:"start_date,omitempty"`
	EndDate              *time.Time              `json:"end_date,omitempty"`
	CommissionModel      *domain.CommissionModel `json:"commission_model,omitempty"`
	CommissionValue      *decimal.Decimal        `json:"commission_value,omitempty"`
	EstimatedLeads       *int                    `json:"estimated_leads,omitempty"`
	ValidationConditions []string                `json:"validation_condition_selected,omitempty"`
	Attachments          []domain.Attachment     `json:"attachments,omitempty"`
}
