package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/port"
	"leadfunnel/internal/core/port/mocks"
)

type wizardFixture struct {
	wizard    *Wizard
	catalog   *mocks.MockCatalogReader
	wallet    *mocks.MockWalletReader
	campaigns *mocks.MockCampaignReader
	funding   *mocks.MockFundingClient
	gateway   *mocks.MockPaymentGateway
	cache     *mocks.MockCacheInvalidator
	journal   *mocks.MockAttemptJournal
}

func newWizardFixture(t *testing.T) *wizardFixture {
	f := &wizardFixture{
		catalog:   mocks.NewMockCatalogReader(t),
		wallet:    mocks.NewMockWalletReader(t),
		campaigns: mocks.NewMockCampaignReader(t),
		funding:   mocks.NewMockFundingClient(t),
		gateway:   mocks.NewMockPaymentGateway(t),
		cache:     mocks.NewMockCacheInvalidator(t),
		journal:   mocks.NewMockAttemptJournal(t),
	}
	f.catalog.EXPECT().Objectives(mock.Anything).
		Return([]domain.Objective{leadObjective(), qualificationObjective()}, nil).Maybe()
	f.catalog.EXPECT().Creatives(mock.Anything).Return(creativeCatalog(), nil).Maybe()
	f.journal.EXPECT().RecordAttempt(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.wizard = NewWizard(WizardDeps{
		Catalog:   f.catalog,
		Wallet:    f.wallet,
		Campaigns: f.campaigns,
		Funding:   f.funding,
		Gateway:   f.gateway,
		Cache:     f.cache,
		Journal:   f.journal,
	}, discardLogger())
	return f
}

// fillDraft walks a draft through the wizard steps.
func fillDraft(t *testing.T, w *Wizard) string {
	t.Helper()
	ctx := context.Background()
	id := w.NewDraft()
	d := validDraft()

	_, err := w.SelectObjective(ctx, id, "obj-lead")
	require.NoError(t, err)
	_, err = w.UpdateDraft(ctx, id, port.DraftUpdate{
		Name:                 &d.Name,
		Description:          &d.Description,
		Category:             &d.Category,
		StartDate:            &d.StartDate,
		EndDate:              &d.EndDate,
		CommissionModel:      &d.CommissionModel,
		CommissionValue:      &d.CommissionValue,
		ValidationConditions: d.ValidationConditions,
	})
	require.NoError(t, err)
	_, err = w.SetBudget(ctx, id, "500")
	require.NoError(t, err)
	_, err = w.SetCreatives(ctx, id, []domain.CreativeCode{domain.CreativeBanner})
	require.NoError(t, err)
	return id
}

func TestWizardSetBudgetEstimatesLeads(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizard.NewDraft()

	_, err := f.wizard.SelectObjective(ctx, id, "obj-lead")
	require.NoError(t, err)

	d, err := f.wizard.SetBudget(ctx, id, "1000")
	require.NoError(t, err)
	assert.True(t, d.Budget.Equal(dec("1000")))
	assert.Equal(t, 20, d.EstimatedLeads)

	d, err = f.wizard.SetBudget(ctx, id, "not a number")
	require.NoError(t, err)
	assert.True(t, d.Budget.Equal(dec("1000")))
	assert.Equal(t, 20, d.EstimatedLeads)

	d, err = f.wizard.SetBudget(ctx, id, "0")
	require.NoError(t, err)
	assert.Zero(t, d.EstimatedLeads)
}

func TestWizardQualificationKeepsManualEstimate(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizard.NewDraft()

	_, err := f.wizard.SelectObjective(ctx, id, "obj-qual")
	require.NoError(t, err)
	leads := 40
	_, err = f.wizard.UpdateDraft(ctx, id, port.DraftUpdate{EstimatedLeads: &leads})
	require.NoError(t, err)

	d, err := f.wizard.SetBudget(ctx, id, "900")
	require.NoError(t, err)
	assert.Equal(t, 40, d.EstimatedLeads)
}

func TestWizardSwitchingObjectiveResetsDraft(t *testing.T) {
	f := newWizardFixture(t)
	id := fillDraft(t, f.wizard)

	d, err := f.wizard.SelectObjective(context.Background(), id, "obj-qual")
	require.NoError(t, err)
	assert.Equal(t, "obj-qual", d.ObjectiveID)
	assert.True(t, d.Budget.IsZero())
	assert.Zero(t, d.EstimatedLeads)
	assert.Empty(t, d.CommissionModel)
	assert.Empty(t, d.ValidationConditions)
	assert.Equal(t, "Winter leads", d.Name)

	_, err = f.wizard.SelectObjective(context.Background(), id, "obj-missing")
	assert.ErrorIs(t, err, domain.ErrObjectiveNotFound)
}

func TestWizardRejectsUnofferedCreative(t *testing.T) {
	f := newWizardFixture(t)
	id := f.wizard.NewDraft()

	_, err := f.wizard.SetCreatives(context.Background(), id, []domain.CreativeCode{domain.CreativeEmail})
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)

	d, err := f.wizard.SetCreatives(context.Background(), id,
		[]domain.CreativeCode{domain.CreativeVideo, domain.CreativeBanner, domain.CreativeVideo})
	require.NoError(t, err)
	assert.Equal(t, []domain.CreativeCode{domain.CreativeBanner, domain.CreativeVideo}, d.SelectedCreatives)
}

func TestWizardRejectsUnknownCommissionModel(t *testing.T) {
	f := newWizardFixture(t)
	id := f.wizard.NewDraft()
	model := domain.CommissionModel("barter")

	_, err := f.wizard.UpdateDraft(context.Background(), id, port.DraftUpdate{CommissionModel: &model})
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestWizardQuote(t *testing.T) {
	f := newWizardFixture(t)
	id := fillDraft(t, f.wizard)
	f.wallet.EXPECT().Wallet(mock.Anything).Return(domain.Wallet{Balance: dec("100"), IsActive: true}, nil).Once()

	q, err := f.wizard.Quote(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, q.CreativeCost.Equal(dec("30")))
	assert.True(t, q.Budget.Equal(dec("500")))
	assert.True(t, q.PaymentDue.Equal(dec("430")))
}

func TestWizardCheckoutClosesDraftOnSuccess(t *testing.T) {
	f := newWizardFixture(t)
	id := fillDraft(t, f.wizard)

	f.wallet.EXPECT().Wallet(mock.Anything).Return(domain.Wallet{Balance: dec("600"), IsActive: true}, nil).Once()
	f.funding.EXPECT().InitiatePayment(mock.Anything, mock.MatchedBy(func(d domain.CampaignDraft) bool {
		return d.EstimatedLeads == 10 && d.HasCreative(domain.CreativeBanner)
	})).Return(domain.PaymentIntent{CampaignID: "cmp-10"}, nil).Once()
	f.cache.EXPECT().Invalidate(mock.Anything, domain.StaleCampaigns, domain.StaleWallet).Return(nil).Once()

	status, err := f.wizard.Checkout(context.Background(), id, domain.Card{})
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutSucceeded, status.State)
	assert.Equal(t, "cmp-10", status.CampaignID)

	_, err = f.wizard.Draft(id)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestWizardCheckoutFailureKeepsDraft(t *testing.T) {
	f := newWizardFixture(t)
	id := fillDraft(t, f.wizard)

	f.wallet.EXPECT().Wallet(mock.Anything).Return(domain.Wallet{Balance: dec("100"), IsActive: true}, nil).Once()
	f.gateway.EXPECT().Ready().Return(nil)
	f.gateway.EXPECT().Precheck(testCard()).Return(nil)
	f.funding.EXPECT().InitiatePayment(mock.Anything, mock.Anything).
		Return(domain.PaymentIntent{ClientSecret: "pi_7_secret_q", CampaignID: "cmp-7"}, nil).Once()
	f.gateway.EXPECT().ConfirmCardPayment(mock.Anything, "pi_7_secret_q", testCard()).
		Return(&domain.GatewayError{Message: "Insufficient funds."}).Once()
	f.cache.EXPECT().Invalidate(mock.Anything, domain.StaleCampaigns, domain.StaleWallet).Return(nil).Once()

	status, err := f.wizard.Checkout(context.Background(), id, testCard())
	require.Error(t, err)
	assert.Equal(t, domain.CheckoutGatewayRejected, status.State)
	assert.Equal(t, "Insufficient funds.", status.Message)

	d, err := f.wizard.Draft(id)
	require.NoError(t, err)
	assert.Equal(t, "Winter leads", d.Name)

	st, err := f.wizard.CheckoutStatus(id)
	require.NoError(t, err)
	assert.True(t, st.CanSubmit)

	name := "Winter leads 2"
	_, err = f.wizard.UpdateDraft(context.Background(), id, port.DraftUpdate{Name: &name})
	require.NoError(t, err)
	st, err = f.wizard.CheckoutStatus(id)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutIdle, st.State)
	assert.Empty(t, st.Message)
}

func TestWizardCheckoutWalletReadFailure(t *testing.T) {
	f := newWizardFixture(t)
	id := fillDraft(t, f.wizard)
	f.wallet.EXPECT().Wallet(mock.Anything).Return(domain.Wallet{}, errors.New("timeout")).Once()

	status, err := f.wizard.Checkout(context.Background(), id, testCard())
	var icErr *domain.IntentCreationError
	require.ErrorAs(t, err, &icErr)
	assert.Equal(t, domain.CheckoutIntentFailed, status.State)
	assert.True(t, status.CanSubmit)
	assert.Equal(t, "please verify your information and retry", status.Message)
	f.journal.AssertCalled(t, "RecordAttempt", mock.Anything, mock.MatchedBy(func(a domain.CheckoutAttempt) bool {
		return a.State == domain.CheckoutIntentFailed && a.DraftID == id
	}))
	f.funding.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything)

	st, err := f.wizard.CheckoutStatus(id)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutIntentFailed, st.State)
}

func TestWizardEditsBlockedOnceCheckoutStarts(t *testing.T) {
	f := newWizardFixture(t)
	id := fillDraft(t, f.wizard)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.wallet.EXPECT().Wallet(mock.Anything).
		RunAndReturn(func(context.Context) (domain.Wallet, error) {
			close(entered)
			<-release
			return domain.Wallet{Balance: dec("600"), IsActive: true}, nil
		}).Once()
	f.funding.EXPECT().InitiatePayment(mock.Anything, mock.MatchedBy(func(d domain.CampaignDraft) bool {
		return d.Name == "Winter leads" && d.Budget.Equal(dec("500"))
	})).Return(domain.PaymentIntent{CampaignID: "cmp-11"}, nil).Once()
	f.cache.EXPECT().Invalidate(mock.Anything, domain.StaleCampaigns, domain.StaleWallet).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var status domain.CheckoutStatus
	var checkoutErr error
	go func() {
		defer wg.Done()
		status, checkoutErr = f.wizard.Checkout(context.Background(), id, testCard())
	}()

	<-entered
	name := "Renamed"
	_, err := f.wizard.UpdateDraft(context.Background(), id, port.DraftUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDraftLocked)
	_, err = f.wizard.SetBudget(context.Background(), id, "900")
	assert.ErrorIs(t, err, domain.ErrDraftLocked)
	assert.ErrorIs(t, f.wizard.DiscardDraft(id), domain.ErrDraftLocked)
	_, err = f.wizard.Checkout(context.Background(), id, testCard())
	assert.ErrorIs(t, err, domain.ErrCheckoutInFlight)

	close(release)
	wg.Wait()
	require.NoError(t, checkoutErr)
	assert.Equal(t, domain.CheckoutSucceeded, status.State)
	assert.Equal(t, "cmp-11", status.CampaignID)
}

func TestWizardRejectsObjectiveWithoutCode(t *testing.T) {
	catalog := mocks.NewMockCatalogReader(t)
	catalog.EXPECT().Objectives(mock.Anything).
		Return([]domain.Objective{{ID: "obj-blank", Name: "Blank", PricePerLead: dec("50")}}, nil).Once()
	w := NewWizard(WizardDeps{Catalog: catalog}, discardLogger())
	id := w.NewDraft()

	_, err := w.SelectObjective(context.Background(), id, "obj-blank")
	assert.ErrorIs(t, err, domain.ErrUnknownObjectiveCode)
	d, err := w.Draft(id)
	require.NoError(t, err)
	assert.Empty(t, d.ObjectiveID)
}

func TestWizardUnknownDraft(t *testing.T) {
	f := newWizardFixture(t)

	_, err := f.wizard.Draft("nope")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	_, err = f.wizard.Checkout(context.Background(), "nope", testCard())
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	assert.ErrorIs(t, f.wizard.DiscardDraft("nope"), domain.ErrDraftNotFound)
}

func TestWizardDiscardDraft(t *testing.T) {
	f := newWizardFixture(t)
	id := f.wizard.NewDraft()

	require.NoError(t, f.wizard.DiscardDraft(id))
	_, err := f.wizard.Draft(id)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestWizardAttemptsClampsLimit(t *testing.T) {
	f := newWizardFixture(t)
	f.journal.EXPECT().ListAttempts(mock.Anything, 20).Return([]domain.CheckoutAttempt{{ID: "a1"}}, nil).Once()

	got, err := f.wizard.Attempts(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
