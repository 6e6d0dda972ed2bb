package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/port"
)

// CheckoutRequest is everything one checkout attempt needs. Draft must be a
// snapshot the caller no longer mutates.
type CheckoutRequest struct {
	DraftID   string
	Draft     domain.CampaignDraft
	Objective *domain.Objective
	Quote     domain.FundingQuote
	Card      domain.Card
}

// Checkout is the checkout state machine of one draft. It moves the draft
// from validation through payment intent creation and card confirmation to
// a funded campaign. Failure states accept a new Submit; succeeded is final.
//
// The in-flight states double as the re-entrancy guard: a Submit arriving
// while an attempt runs is rejected before any network call.
type Checkout struct {
	funding  port.FundingClient
	gateway  port.PaymentGateway
	cache    port.CacheInvalidator
	journal  port.AttemptJournal
	validate *DraftValidator
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	status domain.CheckoutStatus
}

// NewCheckout returns a machine in the idle state.
func NewCheckout(
	funding port.FundingClient,
	gateway port.PaymentGateway,
	cache port.CacheInvalidator,
	journal port.AttemptJournal,
	validate *DraftValidator,
	logger *slog.Logger,
) *Checkout {
	return &Checkout{
		funding:  funding,
		gateway:  gateway,
		cache:    cache,
		journal:  journal,
		validate: validate,
		logger:   logger,
		now:      time.Now,
		status:   domain.CheckoutStatus{State: domain.CheckoutIdle, CanSubmit: true},
	}
}

// Status returns the current state and the message of the last failure.
func (c *Checkout) Status() domain.CheckoutStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Reset returns a finished or failed machine to idle. It is a no-op while
// an attempt is in flight.
func (c *Checkout) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.State.InFlight() {
		return
	}
	c.status = domain.CheckoutStatus{State: domain.CheckoutIdle, CanSubmit: true}
}

// Submit runs one checkout attempt. The returned status is the state the
// attempt ended in; the error is the typed cause of a failure state, or
// ErrCheckoutInFlight / ErrCheckoutCompleted when no attempt was started.
func (c *Checkout) Submit(ctx context.Context, req CheckoutRequest) (domain.CheckoutStatus, error) {
	if err := c.Begin(); err != nil {
		return c.Status(), err
	}
	return c.Execute(ctx, req, nil)
}

// Begin claims the machine for one attempt by moving it to validating. A
// caller that owns the draft takes its snapshot only after Begin succeeds,
// so no edit can slip in between the snapshot and the submission.
func (c *Checkout) Begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.status.State == domain.CheckoutSucceeded:
		return domain.ErrCheckoutCompleted
	case !c.status.State.CanSubmit():
		return domain.ErrCheckoutInFlight
	}
	c.status = domain.CheckoutStatus{State: domain.CheckoutValidating}
	return nil
}

// Execute runs an attempt claimed by Begin. When load is set it completes
// req (objective, quote) before validation; a load failure is a network
// failure of the attempt and ends it in intent_creation_failed.
func (c *Checkout) Execute(
	ctx context.Context,
	req CheckoutRequest,
	load func(ctx context.Context, req *CheckoutRequest) error,
) (domain.CheckoutStatus, error) {
	attempt := domain.CheckoutAttempt{
		ID:        uuid.NewString(),
		DraftID:   req.DraftID,
		DraftName: req.Draft.Name,
		StartedAt: c.now().UTC(),
	}

	var (
		campaignID  string
		usedGateway bool
		err         error
	)
	if load != nil {
		if loadErr := load(ctx, &req); loadErr != nil {
			err = &domain.IntentCreationError{Err: loadErr}
		}
	}
	if err == nil {
		attempt.PaymentDue = req.Quote.PaymentDue
		campaignID, usedGateway, err = c.run(ctx, req)
	}
	attempt.UsedGateway = usedGateway

	var status domain.CheckoutStatus
	if err != nil {
		status = c.fail(err)
		attempt.ErrorMessage = err.Error()
		// The platform debits the wallet when it issues a card intent, so
		// the cached balance is stale even though the attempt failed.
		if usedGateway {
			c.invalidate(ctx)
		}
	} else {
		status = c.succeed(ctx, campaignID)
		attempt.CampaignID = campaignID
	}
	attempt.State = status.State
	attempt.FinishedAt = c.now().UTC()
	c.record(ctx, attempt)
	return status, err
}

// run performs the transitions up to a terminal decision. It returns the
// created campaign id and whether the card gateway was involved.
func (c *Checkout) run(ctx context.Context, req CheckoutRequest) (string, bool, error) {
	if err := c.validate.Validate(req.Draft, req.Objective); err != nil {
		return "", false, err
	}
	prepared := false
	if req.Quote.NeedsGateway() {
		if err := c.prepareGateway(req.Card); err != nil {
			return "", false, err
		}
		prepared = true
	}

	c.transition(domain.CheckoutCreatingIntent)
	intent, err := c.funding.InitiatePayment(ctx, req.Draft)
	if err != nil {
		return "", false, &domain.IntentCreationError{Err: err}
	}
	switch {
	case intent.ClientSecret == "" && intent.CampaignID == "":
		c.logger.Error("funding response has neither client secret nor campaign id",
			slog.String("draft_id", req.DraftID))
		return "", false, &domain.IntentCreationError{Err: domain.ErrIntentInconsistent}
	case intent.ClientSecret == "":
		return intent.CampaignID, false, nil
	}

	c.transition(domain.CheckoutAwaitingGateway)
	// The wallet may have changed since the quote was computed.
	if !prepared {
		if err = c.prepareGateway(req.Card); err != nil {
			return "", true, err
		}
	}

	c.transition(domain.CheckoutConfirming)
	if err = c.gateway.ConfirmCardPayment(ctx, intent.ClientSecret, req.Card); err != nil {
		return "", true, &domain.GatewayRejectionError{Err: err}
	}
	return intent.CampaignID, true, nil
}

func (c *Checkout) prepareGateway(card domain.Card) error {
	if err := c.gateway.Ready(); err != nil {
		return err
	}
	if err := c.gateway.Precheck(card); err != nil {
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) {
			return &domain.ValidationError{
				Message: gwErr.Message,
				Fields:  []domain.FieldError{{Field: "card", Message: gwErr.Message}},
			}
		}
		return err
	}
	return nil
}

func (c *Checkout) transition(to domain.CheckoutState) {
	c.mu.Lock()
	from := c.status.State
	c.status.State = to
	c.mu.Unlock()
	c.logger.Debug("checkout transition", slog.String("from", string(from)), slog.String("to", string(to)))
}

func (c *Checkout) fail(err error) domain.CheckoutStatus {
	var (
		state  domain.CheckoutState
		valErr *domain.ValidationError
		icErr  *domain.IntentCreationError
		gwInit *domain.GatewayInitializationError
	)
	switch {
	case errors.As(err, &icErr):
		state = domain.CheckoutIntentFailed
	case errors.As(err, &valErr), errors.As(err, &gwInit):
		state = domain.CheckoutValidationFailed
	default:
		state = domain.CheckoutGatewayRejected
	}

	status := domain.CheckoutStatus{
		State:     state,
		CanSubmit: true,
		Message:   domain.UserMessage(err),
	}
	if valErr != nil {
		status.Fields = valErr.Fields
	}

	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
	c.logger.Warn("checkout failed", slog.String("state", string(state)), slog.Any("error", err))
	return status
}

func (c *Checkout) succeed(ctx context.Context, campaignID string) domain.CheckoutStatus {
	status := domain.CheckoutStatus{State: domain.CheckoutSucceeded, CampaignID: campaignID}
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()

	c.invalidate(ctx)
	c.logger.Info("campaign funded", slog.String("campaign_id", campaignID))
	return status
}

func (c *Checkout) invalidate(ctx context.Context) {
	if err := c.cache.Invalidate(context.WithoutCancel(ctx), domain.StaleCampaigns, domain.StaleWallet); err != nil {
		c.logger.Warn("cache invalidation failed", slog.Any("error", err))
	}
}

func (c *Checkout) record(ctx context.Context, a domain.CheckoutAttempt) {
	if c.journal == nil {
		return
	}
	if err := c.journal.RecordAttempt(context.WithoutCancel(ctx), a); err != nil {
		c.logger.Warn("record checkout attempt", slog.String("attempt_id", a.ID), slog.Any("error", err))
	}
}
