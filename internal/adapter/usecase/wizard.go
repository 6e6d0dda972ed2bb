package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/funding"
	"leadfunnel/internal/core/port"
)

// WizardDeps are the collaborators of a Wizard.
type WizardDeps struct {
	Catalog   port.CatalogReader
	Wallet    port.WalletReader
	Campaigns port.CampaignReader
	Funding   port.FundingClient
	Gateway   port.PaymentGateway
	Cache     port.CacheInvalidator
	Journal   port.AttemptJournal
}

type session struct {
	draft    domain.CampaignDraft
	checkout *Checkout
}

// Wizard implements port.WizardUseCase. It keeps one draft and one checkout
// state machine per open wizard session, in memory.
type Wizard struct {
	deps     WizardDeps
	validate *DraftValidator
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewWizard creates a wizard with no open drafts.
func NewWizard(deps WizardDeps, logger *slog.Logger) *Wizard {
	return &Wizard{
		deps:     deps,
		validate: NewDraftValidator(),
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// Objectives lists the campaign objectives the platform offers.
func (w *Wizard) Objectives(ctx context.Context) ([]domain.Objective, error) {
	return w.deps.Catalog.Objectives(ctx)
}

// Creatives lists the creative supports and their prices.
func (w *Wizard) Creatives(ctx context.Context) ([]domain.CreativeSupport, error) {
	return w.deps.Catalog.Creatives(ctx)
}

// Campaigns lists the affiliate's campaigns, funded or not.
func (w *Wizard) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	return w.deps.Campaigns.Campaigns(ctx)
}

// NewDraft opens an empty draft.
func (w *Wizard) NewDraft() string {
	id := uuid.NewString()
	s := &session{
		checkout: NewCheckout(w.deps.Funding, w.deps.Gateway, w.deps.Cache, w.deps.Journal, w.validate,
			w.logger.With(slog.String("draft_id", id))),
	}
	w.mu.Lock()
	w.sessions[id] = s
	w.mu.Unlock()
	return id
}

// Draft returns a copy of the draft.
func (w *Wizard) Draft(id string) (domain.CampaignDraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.sessions[id]
	if !ok {
		return domain.CampaignDraft{}, domain.ErrDraftNotFound
	}
	return s.draft.Clone(), nil
}

// UpdateDraft applies the non-funding fields of upd.
func (w *Wizard) UpdateDraft(_ context.Context, id string, upd port.DraftUpdate) (domain.CampaignDraft, error) {
	if upd.CommissionModel != nil {
		switch *upd.CommissionModel {
		case domain.CommissionFixed, domain.CommissionPercentage:
		default:
			return domain.CampaignDraft{}, &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "commission_model", Message: "must be one of: fixed percentage"},
			}}
		}
	}
	return w.edit(id, func(d *domain.CampaignDraft) {
		if upd.Name != nil {
			d.Name = *upd.Name
		}
		if upd.Description != nil {
			d.Description = *upd.Description
		}
		if upd.Category != nil {
			d.Category = *upd.Category
		}
		if upd.StartDate != nil {
			d.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			d.EndDate = *upd.EndDate
		}
		if upd.CommissionModel != nil {
			d.CommissionModel = *upd.CommissionModel
		}
		if upd.CommissionValue != nil {
			d.CommissionValue = *upd.CommissionValue
		}
		if upd.EstimatedLeads != nil {
			d.EstimatedLeads = *upd.EstimatedLeads
		}
		if upd.ValidationConditions != nil {
			d.ValidationConditions = slices.Clone(upd.ValidationConditions)
		}
		if upd.Attachments != nil {
			d.Attachments = slices.Clone(upd.Attachments)
		}
	})
}

// SelectObjective switches the draft's objective.
func (w *Wizard) SelectObjective(ctx context.Context, id, objectiveID string) (domain.CampaignDraft, error) {
	objectives, err := w.deps.Catalog.Objectives(ctx)
	if err != nil {
		return domain.CampaignDraft{}, fmt.Errorf("load objectives: %w", err)
	}
	obj := findObjective(objectives, objectiveID)
	if obj == nil {
		return domain.CampaignDraft{}, domain.ErrObjectiveNotFound
	}
	if _, err = domain.ParseObjectiveCode(string(obj.Code)); err != nil {
		w.logger.Warn("catalog objective has an unusable code",
			slog.String("objective_id", obj.ID), slog.Any("error", err))
		return domain.CampaignDraft{}, err
	}
	return w.edit(id, func(d *domain.CampaignDraft) {
		d.SelectObjective(*obj)
	})
}

// SetBudget applies raw budget input and refreshes the lead estimate.
func (w *Wizard) SetBudget(ctx context.Context, id, raw string) (domain.CampaignDraft, error) {
	objectives, err := w.deps.Catalog.Objectives(ctx)
	if err != nil {
		return domain.CampaignDraft{}, fmt.Errorf("load objectives: %w", err)
	}
	return w.edit(id, func(d *domain.CampaignDraft) {
		d.Budget = funding.ParseBudget(raw, d.Budget)
		obj := findObjective(objectives, d.ObjectiveID)
		if obj == nil {
			return
		}
		if _, err := domain.ParseObjectiveCode(string(obj.Code)); err != nil {
			w.logger.Warn("lead estimate kept, objective code unusable",
				slog.String("objective_id", obj.ID), slog.Any("error", err))
		}
		d.EstimatedLeads = funding.EstimateLeadsFor(d.EstimatedLeads, d.Budget, *obj)
	})
}

// SetCreatives replaces the creative selection. Every code must be offered
// by the catalog.
func (w *Wizard) SetCreatives(ctx context.Context, id string, codes []domain.CreativeCode) (domain.CampaignDraft, error) {
	catalog, err := w.deps.Catalog.Creatives(ctx)
	if err != nil {
		return domain.CampaignDraft{}, fmt.Errorf("load creatives: %w", err)
	}
	var fields []domain.FieldError
	for _, code := range codes {
		if !slices.ContainsFunc(catalog, func(c domain.CreativeSupport) bool { return c.Code == code }) {
			fields = append(fields, domain.FieldError{
				Field:   "selected_creative_codes",
				Message: fmt.Sprintf("creative %q is not offered", code),
			})
		}
	}
	if len(fields) > 0 {
		return domain.CampaignDraft{}, &domain.ValidationError{Fields: fields}
	}
	return w.edit(id, func(d *domain.CampaignDraft) {
		d.SetCreatives(codes)
	})
}

// DiscardDraft drops the draft. A draft being submitted cannot be dropped.
func (w *Wizard) DiscardDraft(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.sessions[id]
	if !ok {
		return domain.ErrDraftNotFound
	}
	if s.checkout.Status().State.InFlight() {
		return domain.ErrDraftLocked
	}
	delete(w.sessions, id)
	return nil
}

// Quote computes the funding split against the current wallet snapshot.
func (w *Wizard) Quote(ctx context.Context, id string) (domain.FundingQuote, error) {
	draft, err := w.Draft(id)
	if err != nil {
		return domain.FundingQuote{}, err
	}
	catalog, wallet, err := w.fundingInputs(ctx)
	if err != nil {
		return domain.FundingQuote{}, err
	}
	return funding.Quote(draft, catalog, wallet), nil
}

// Checkout submits the draft. The checkout is claimed before the draft is
// copied, so edits racing with the submission fail with ErrDraftLocked
// instead of being lost. A succeeded checkout closes the session: the
// wizard starts over from an empty form.
func (w *Wizard) Checkout(ctx context.Context, id string, card domain.Card) (domain.CheckoutStatus, error) {
	w.mu.Lock()
	s, ok := w.sessions[id]
	if !ok {
		w.mu.Unlock()
		return domain.CheckoutStatus{}, domain.ErrDraftNotFound
	}
	if err := s.checkout.Begin(); err != nil {
		w.mu.Unlock()
		return s.checkout.Status(), err
	}
	draft := s.draft.Clone()
	w.mu.Unlock()

	status, err := s.checkout.Execute(ctx, CheckoutRequest{DraftID: id, Draft: draft, Card: card}, w.loadCheckout)
	if status.State == domain.CheckoutSucceeded {
		w.mu.Lock()
		delete(w.sessions, id)
		w.mu.Unlock()
	}
	return status, err
}

// loadCheckout resolves the draft's objective and prices it against the
// current catalog and wallet.
func (w *Wizard) loadCheckout(ctx context.Context, req *CheckoutRequest) error {
	objectives, err := w.deps.Catalog.Objectives(ctx)
	if err != nil {
		return fmt.Errorf("load objectives: %w", err)
	}
	catalog, wallet, err := w.fundingInputs(ctx)
	if err != nil {
		return err
	}
	req.Objective = findObjective(objectives, req.Draft.ObjectiveID)
	req.Quote = funding.Quote(req.Draft, catalog, wallet)
	return nil
}

// CheckoutStatus returns the state of the draft's checkout.
func (w *Wizard) CheckoutStatus(id string) (domain.CheckoutStatus, error) {
	w.mu.Lock()
	s, ok := w.sessions[id]
	w.mu.Unlock()
	if !ok {
		return domain.CheckoutStatus{}, domain.ErrDraftNotFound
	}
	return s.checkout.Status(), nil
}

// Attempts lists recent checkout attempts, newest first.
func (w *Wizard) Attempts(ctx context.Context, limit int) ([]domain.CheckoutAttempt, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return w.deps.Journal.ListAttempts(ctx, limit)
}

// edit runs fn on the draft unless a checkout of it is in flight.
func (w *Wizard) edit(id string, fn func(d *domain.CampaignDraft)) (domain.CampaignDraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.sessions[id]
	if !ok {
		return domain.CampaignDraft{}, domain.ErrDraftNotFound
	}
	if s.checkout.Status().State.InFlight() {
		return domain.CampaignDraft{}, domain.ErrDraftLocked
	}
	draft := s.draft.Clone()
	fn(&draft)
	s.draft = draft
	// An edit after a failed attempt clears the stale failure message.
	if s.checkout.Status().State.Failed() {
		s.checkout.Reset()
	}
	return draft.Clone(), nil
}

func (w *Wizard) fundingInputs(ctx context.Context) ([]domain.CreativeSupport, domain.Wallet, error) {
	catalog, err := w.deps.Catalog.Creatives(ctx)
	if err != nil {
		return nil, domain.Wallet{}, fmt.Errorf("load creatives: %w", err)
	}
	wallet, err := w.deps.Wallet.Wallet(ctx)
	if err != nil {
		return nil, domain.Wallet{}, fmt.Errorf("load wallet: %w", err)
	}
	return catalog, wallet, nil
}

func findObjective(objectives []domain.Objective, id string) *domain.Objective {
	for i := range objectives {
		if objectives[i].ID == id {
			return &objectives[i]
		}
	}
	return nil
}
