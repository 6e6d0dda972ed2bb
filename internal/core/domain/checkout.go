package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutState is a state of the checkout state machine.
type CheckoutState string

const (
	CheckoutIdle             CheckoutState = "idle"
	CheckoutValidating       CheckoutState = "validating"
	CheckoutCreatingIntent   CheckoutState = "creating_intent"
	CheckoutAwaitingGateway  CheckoutState = "awaiting_gateway_confirmation"
	CheckoutConfirming       CheckoutState = "confirming"
	CheckoutSucceeded        CheckoutState = "succeeded"
	CheckoutValidationFailed CheckoutState = "validation_failed"
	CheckoutIntentFailed     CheckoutState = "intent_creation_failed"
	CheckoutGatewayRejected  CheckoutState = "gateway_rejected"
)

// InFlight reports whether a checkout attempt is running in this state.
func (s CheckoutState) InFlight() bool {
	switch s {
	case CheckoutValidating, CheckoutCreatingIntent, CheckoutAwaitingGateway, CheckoutConfirming:
		return true
	default:
		return false
	}
}

// Failed reports whether s is one of the recoverable failure states.
func (s CheckoutState) Failed() bool {
	switch s {
	case CheckoutValidationFailed, CheckoutIntentFailed, CheckoutGatewayRejected:
		return true
	default:
		return false
	}
}

// CanSubmit reports whether a new attempt may start from s. Failure states
// behave like idle.
func (s CheckoutState) CanSubmit() bool {
	return s == CheckoutIdle || s.Failed()
}

// CheckoutStatus is what the payment step shows the user.
type CheckoutStatus struct {
	State      CheckoutState `json:"state"`
	CanSubmit  bool          `json:"can_submit"`
	CampaignID string        `json:"campaign_id,omitempty"`
	Message    string        `json:"message,omitempty"`
	Fields     []FieldError  `json:"fields,omitempty"`
}

// CheckoutAttempt is the journal record of one finished checkout attempt.
type CheckoutAttempt struct {
	ID           string          `json:"id"`
	DraftID      string          `json:"draft_id"`
	DraftName    string          `json:"draft_name"`
	State        CheckoutState   `json:"state"`
	PaymentDue   decimal.Decimal `json:"payment_amount_due"`
	UsedGateway  bool            `json:"used_gateway"`
	CampaignID   string          `json:"campaign_id,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   time.Time       `json:"finished_at"`
}

// StaleKey names a cached dataset that must be re-read after a write.
type StaleKey string

const (
	StaleCampaigns StaleKey = "campaigns"
	StaleWallet    StaleKey = "wallet"
	StaleCatalog   StaleKey = "catalog"
)
