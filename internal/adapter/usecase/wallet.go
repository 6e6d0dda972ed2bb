package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/port"
)

// WalletService implements port.WalletUseCase.
type WalletService struct {
	wallet  port.WalletReader
	funding port.FundingClient
	gateway port.PaymentGateway
	cache   port.CacheInvalidator
	logger  *slog.Logger

	mu       sync.Mutex
	inFlight bool
}

// NewWalletService creates a wallet service.
func NewWalletService(wallet port.WalletReader, funding port.FundingClient, gateway port.PaymentGateway,
	cache port.CacheInvalidator, logger *slog.Logger) *WalletService {
	return &WalletService{wallet: wallet, funding: funding, gateway: gateway, cache: cache, logger: logger}
}

func (s *WalletService) Wallet(ctx context.Context) (domain.Wallet, error) {
	return s.wallet.Wallet(ctx)
}

// Recharge credits amount to the wallet through a card payment. Only one
// recharge runs at a time.
func (s *WalletService) Recharge(ctx context.Context, amount decimal.Decimal, card domain.Card) error {
	if !amount.IsPositive() {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "amount", Message: domain.ErrInvalidAmount.Error()}}}
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return domain.ErrRechargeInFlight
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if err := s.gateway.Ready(); err != nil {
		return err
	}
	if err := s.gateway.Precheck(card); err != nil {
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) {
			return &domain.ValidationError{
				Message: gwErr.Message,
				Fields:  []domain.FieldError{{Field: "card", Message: gwErr.Message}},
			}
		}
		return err
	}

	intent, err := s.funding.RequestRecharge(ctx, amount)
	if err != nil {
		return &domain.IntentCreationError{Err: err}
	}
	if intent.ClientSecret == "" {
		s.logger.Error("recharge response has no client secret")
		return &domain.IntentCreationError{Err: domain.ErrIntentInconsistent}
	}
	if err = s.gateway.ConfirmCardPayment(ctx, intent.ClientSecret, card); err != nil {
		return &domain.GatewayRejectionError{Err: err}
	}

	if err = s.cache.Invalidate(context.WithoutCancel(ctx), domain.StaleWallet); err != nil {
		s.logger.Warn("cache invalidation failed", slog.Any("error", err))
	}
	s.logger.Info("wallet recharged", slog.String("amount", amount.String()))
	return nil
}
