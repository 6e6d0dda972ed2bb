// Package funding computes lead estimates and how a campaign's cost splits
// between the wallet and the card gateway. Everything here is pure.
package funding

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
)

// EstimateLeads returns round(budget / pricePerLead). Without a positive
// lead price the previous estimate is returned unchanged.
func EstimateLeads(prev int, budget, pricePerLead decimal.Decimal) int {
	if !pricePerLead.IsPositive() {
		return prev
	}
	if !budget.IsPositive() {
		return 0
	}
	return int(budget.Div(pricePerLead).Round(0).IntPart())
}

// EstimateLeadsFor dispatches on the objective code. Qualification
// objectives are flat-priced, so their estimate is never derived from the
// budget. Codes outside the known set are rejected when the catalog is
// read; should one get here anyway the previous estimate is kept.
func EstimateLeadsFor(prev int, budget decimal.Decimal, o domain.Objective) int {
	switch o.Code {
	case domain.ObjectiveLeadGeneration, domain.ObjectiveAppointment, domain.ObjectiveSale:
		return EstimateLeads(prev, budget, o.PricePerLead)
	case domain.ObjectiveQualification:
		return prev
	default:
		return prev
	}
}

// CreativeCost sums the price of every catalog entry whose code is
// selected. Always-included entries are free and add nothing.
func CreativeCost(selected []domain.CreativeCode, catalog []domain.CreativeSupport) decimal.Decimal {
	total := decimal.Zero
	for _, c := range catalog {
		if c.AlwaysIncluded() || !slices.Contains(selected, c.Code) {
			continue
		}
		if c.Price.IsNegative() {
			continue
		}
		total = total.Add(c.Price)
	}
	return total
}

// IncludedCreatives returns the catalog entries that end up in the
// campaign: the selected ones plus the free ones.
func IncludedCreatives(selected []domain.CreativeCode, catalog []domain.CreativeSupport) []domain.CreativeSupport {
	var out []domain.CreativeSupport
	for _, c := range catalog {
		if c.AlwaysIncluded() || slices.Contains(selected, c.Code) {
			out = append(out, c)
		}
	}
	return out
}

// PaymentDue is the part of budget+creativeCost the wallet cannot cover.
// It saturates at zero.
func PaymentDue(budget, creativeCost, walletBalance decimal.Decimal) decimal.Decimal {
	due := budget.Add(creativeCost).Sub(walletBalance)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// Quote derives the funding split of draft against a wallet snapshot.
func Quote(draft domain.CampaignDraft, catalog []domain.CreativeSupport, wallet domain.Wallet) domain.FundingQuote {
	cost := CreativeCost(draft.SelectedCreatives, catalog)
	balance := wallet.Available()
	return domain.FundingQuote{
		CreativeCost:  cost,
		Budget:        draft.Budget,
		WalletBalance: balance,
		PaymentDue:    PaymentDue(draft.Budget, cost, balance),
		Creatives:     IncludedCreatives(draft.SelectedCreatives, catalog),
	}
}

// ParseBudget parses raw budget input. Anything that is not a finite,
// non-negative number keeps prev.
func ParseBudget(raw string, prev decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return prev
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return prev
	}
	return v
}
