package funding

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadfunnel/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEstimateLeads(t *testing.T) {
	tests := []struct {
		name   string
		prev   int
		budget string
		price  string
		want   int
	}{
		{name: "budget over price", prev: 0, budget: "1000", price: "50", want: 20},
		{name: "rounds half up", prev: 0, budget: "125", price: "50", want: 3},
		{name: "rounds down", prev: 0, budget: "120", price: "50", want: 2},
		{name: "zero budget", prev: 7, budget: "0", price: "50", want: 0},
		{name: "zero price keeps estimate", prev: 7, budget: "1000", price: "0", want: 7},
		{name: "fractional price", prev: 0, budget: "10", price: "0.3", want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateLeads(tt.prev, dec(tt.budget), dec(tt.price)))
		})
	}
}

func TestEstimateLeadsMatchesRoundedRatio(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		budget := decimal.NewFromInt(r.Int63n(1_000_000))
		price := decimal.NewFromInt(r.Int63n(10_000) + 1).Div(decimal.NewFromInt(100))
		want := budget.Div(price).Round(0).IntPart()
		require.Equal(t, int(want), EstimateLeads(-1, budget, price), "budget=%s price=%s", budget, price)
	}
}

func TestEstimateLeadsForQualificationKeepsEstimate(t *testing.T) {
	o := domain.Objective{Code: domain.ObjectiveQualification, PricePerLead: dec("40")}
	assert.Equal(t, 12, EstimateLeadsFor(12, dec("4000"), o))

	o.Code = domain.ObjectiveSale
	assert.Equal(t, 100, EstimateLeadsFor(12, dec("4000"), o))
}

func TestEstimateLeadsForUnknownCodeKeepsEstimate(t *testing.T) {
	for _, code := range []domain.ObjectiveCode{"", "BRAND_AWARENESS"} {
		o := domain.Objective{Code: code, PricePerLead: dec("40")}
		require.NotPanics(t, func() {
			assert.Equal(t, 7, EstimateLeadsFor(7, dec("4000"), o), "code=%q", code)
		})
	}
}

func TestCreativeCost(t *testing.T) {
	catalog := []domain.CreativeSupport{
		{Code: domain.CreativeBanner, Price: dec("30")},
		{Code: domain.CreativeVideo, Price: dec("120")},
		{Code: domain.CreativeLandingPage, Price: decimal.Zero},
	}

	got := CreativeCost([]domain.CreativeCode{domain.CreativeBanner}, catalog)
	assert.True(t, got.Equal(dec("30")), "got %s", got)

	got = CreativeCost([]domain.CreativeCode{domain.CreativeBanner, domain.CreativeVideo, domain.CreativeLandingPage}, catalog)
	assert.True(t, got.Equal(dec("150")), "got %s", got)

	assert.True(t, CreativeCost(nil, catalog).IsZero())

	included := IncludedCreatives([]domain.CreativeCode{domain.CreativeVideo}, catalog)
	require.Len(t, included, 2)
	assert.Equal(t, domain.CreativeVideo, included[0].Code)
	assert.Equal(t, domain.CreativeLandingPage, included[1].Code)
}

func TestCreativeCostMonotonic(t *testing.T) {
	catalog := []domain.CreativeSupport{
		{Code: domain.CreativeBanner, Price: dec("30")},
		{Code: domain.CreativeVideo, Price: dec("120")},
		{Code: domain.CreativeNative, Price: dec("0")},
		{Code: domain.CreativeEmail, Price: dec("15.50")},
		{Code: domain.CreativeSocialPost, Price: dec("9.99")},
	}
	var selected []domain.CreativeCode
	prev := CreativeCost(selected, catalog)
	for _, c := range catalog {
		selected = append(selected, c.Code)
		cur := CreativeCost(selected, catalog)
		assert.True(t, cur.GreaterThanOrEqual(prev), "adding %s lowered cost from %s to %s", c.Code, prev, cur)
		prev = cur
	}
	assert.True(t, prev.Equal(dec("175.49")), "got %s", prev)
}

func TestPaymentDue(t *testing.T) {
	assert.True(t, PaymentDue(dec("500"), dec("30"), dec("600")).IsZero())
	assert.True(t, PaymentDue(dec("500"), dec("30"), dec("100")).Equal(dec("430")))
	assert.True(t, PaymentDue(dec("500"), dec("30"), dec("530")).IsZero())
}

func TestPaymentDueNeverNegative(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		budget := decimal.NewFromInt(r.Int63n(100_000))
		cost := decimal.NewFromInt(r.Int63n(1_000))
		balance := decimal.NewFromInt(r.Int63n(200_000) - 50_000)
		due := PaymentDue(budget, cost, balance)
		require.False(t, due.IsNegative(), "budget=%s cost=%s balance=%s", budget, cost, balance)
		if balance.GreaterThanOrEqual(budget.Add(cost)) {
			require.True(t, due.IsZero())
		}
	}
}

func TestQuote(t *testing.T) {
	catalog := []domain.CreativeSupport{
		{Code: domain.CreativeBanner, Price: dec("30")},
		{Code: domain.CreativeVideo, Price: dec("120")},
	}
	draft := domain.CampaignDraft{Budget: dec("500"), SelectedCreatives: []domain.CreativeCode{domain.CreativeBanner}}

	q := Quote(draft, catalog, domain.Wallet{Balance: dec("100"), IsActive: true})
	assert.True(t, q.CreativeCost.Equal(dec("30")))
	assert.True(t, q.PaymentDue.Equal(dec("430")))
	assert.True(t, q.NeedsGateway())
	require.Len(t, q.Creatives, 1)
	assert.Equal(t, domain.CreativeBanner, q.Creatives[0].Code)

	q = Quote(draft, catalog, domain.Wallet{Balance: dec("600"), IsActive: true})
	assert.True(t, q.PaymentDue.IsZero())
	assert.False(t, q.NeedsGateway())

	q = Quote(draft, catalog, domain.Wallet{Balance: dec("600"), IsActive: false})
	assert.True(t, q.WalletBalance.IsZero())
	assert.True(t, q.PaymentDue.Equal(dec("530")))
}

func TestParseBudget(t *testing.T) {
	prev := dec("250")
	assert.True(t, ParseBudget("1000", prev).Equal(dec("1000")))
	assert.True(t, ParseBudget(" 12.5 ", prev).Equal(dec("12.5")))
	assert.True(t, ParseBudget("0", prev).IsZero())
	for _, raw := range []string{"", "abc", "NaN", "12,5", "-10", "Infinity"} {
		assert.True(t, ParseBudget(raw, prev).Equal(prev), "input %q", raw)
	}
}

func TestSelectObjectiveResetsDependentFields(t *testing.T) {
	d := domain.CampaignDraft{
		ObjectiveID:          "obj-1",
		CommissionModel:      domain.CommissionFixed,
		CommissionValue:      dec("5"),
		Budget:               dec("1000"),
		EstimatedLeads:       20,
		ValidationConditions: []string{"phone_verified"},
		Name:                 "Spring",
	}
	d.SelectObjective(domain.Objective{ID: "obj-2"})

	assert.Equal(t, "obj-2", d.ObjectiveID)
	assert.Empty(t, d.CommissionModel)
	assert.True(t, d.CommissionValue.IsZero())
	assert.True(t, d.Budget.IsZero())
	assert.Zero(t, d.EstimatedLeads)
	assert.Empty(t, d.ValidationConditions)
	assert.Equal(t, "Spring", d.Name)
}
