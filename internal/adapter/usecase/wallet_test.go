package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/port/mocks"
)

func TestRecharge(t *testing.T) {
	wallet := mocks.NewMockWalletReader(t)
	funding := mocks.NewMockFundingClient(t)
	gateway := mocks.NewMockPaymentGateway(t)
	cache := mocks.NewMockCacheInvalidator(t)
	svc := NewWalletService(wallet, funding, gateway, cache, discardLogger())

	gateway.EXPECT().Ready().Return(nil)
	gateway.EXPECT().Precheck(testCard()).Return(nil)
	funding.EXPECT().RequestRecharge(mock.Anything, mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(dec("250"))
	})).Return(domain.PaymentIntent{ClientSecret: "pi_r_secret_1"}, nil).Once()
	gateway.EXPECT().ConfirmCardPayment(mock.Anything, "pi_r_secret_1", testCard()).Return(nil).Once()
	cache.EXPECT().Invalidate(mock.Anything, domain.StaleWallet).Return(nil).Once()

	require.NoError(t, svc.Recharge(context.Background(), dec("250"), testCard()))
}

func TestRechargeRejectsNonPositiveAmount(t *testing.T) {
	svc := NewWalletService(mocks.NewMockWalletReader(t), mocks.NewMockFundingClient(t),
		mocks.NewMockPaymentGateway(t), mocks.NewMockCacheInvalidator(t), discardLogger())

	for _, amount := range []string{"0", "-10"} {
		err := svc.Recharge(context.Background(), dec(amount), testCard())
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr, "amount %s", amount)
	}
}

func TestRechargeDeclined(t *testing.T) {
	funding := mocks.NewMockFundingClient(t)
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewWalletService(mocks.NewMockWalletReader(t), funding, gateway, mocks.NewMockCacheInvalidator(t), discardLogger())

	gateway.EXPECT().Ready().Return(nil)
	gateway.EXPECT().Precheck(testCard()).Return(nil)
	funding.EXPECT().RequestRecharge(mock.Anything, mock.Anything).Return(domain.PaymentIntent{ClientSecret: "pi_r_secret_2"}, nil)
	gateway.EXPECT().ConfirmCardPayment(mock.Anything, "pi_r_secret_2", testCard()).
		Return(&domain.GatewayError{Code: "card_declined", Message: "Your card was declined."})

	err := svc.Recharge(context.Background(), dec("50"), testCard())
	var rej *domain.GatewayRejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "Your card was declined.", domain.UserMessage(err))
}

func TestRechargeWithoutSecret(t *testing.T) {
	funding := mocks.NewMockFundingClient(t)
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewWalletService(mocks.NewMockWalletReader(t), funding, gateway, mocks.NewMockCacheInvalidator(t), discardLogger())

	gateway.EXPECT().Ready().Return(nil)
	gateway.EXPECT().Precheck(testCard()).Return(nil)
	funding.EXPECT().RequestRecharge(mock.Anything, mock.Anything).Return(domain.PaymentIntent{}, nil)

	err := svc.Recharge(context.Background(), dec("50"), testCard())
	assert.ErrorIs(t, err, domain.ErrIntentInconsistent)
}

func TestRechargeGatewayNotReady(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewWalletService(mocks.NewMockWalletReader(t), mocks.NewMockFundingClient(t), gateway,
		mocks.NewMockCacheInvalidator(t), discardLogger())

	gateway.EXPECT().Ready().Return(&domain.GatewayInitializationError{Reason: "no key"})

	err := svc.Recharge(context.Background(), dec("50"), testCard())
	var initErr *domain.GatewayInitializationError
	assert.True(t, errors.As(err, &initErr))
}
