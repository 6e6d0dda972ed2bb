package domain

import "github.com/shopspring/decimal"

// FundingQuote is derived from a draft and a wallet snapshot; it is never
// persisted. PaymentDue is what the card gateway has to cover.
type FundingQuote struct {
	CreativeCost  decimal.Decimal   `json:"creative_cost_total"`
	Budget        decimal.Decimal   `json:"budget"`
	WalletBalance decimal.Decimal   `json:"wallet_balance"`
	PaymentDue    decimal.Decimal   `json:"payment_amount_due"`
	Creatives     []CreativeSupport `json:"creatives"`
}

// NeedsGateway reports whether part of the cost must be paid by card.
func (q FundingQuote) NeedsGateway() bool {
	return q.PaymentDue.IsPositive()
}

// PaymentIntent is the platform's answer to a funding request. An empty
// ClientSecret means no card payment is required.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret,omitempty"`
	CampaignID   string `json:"campaign_id,omitempty"`
}

// Card is the payment method entered in the payment step.
type Card struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	CVC      string `json:"cvc"`
	Holder   string `json:"holder,omitempty"`
}
