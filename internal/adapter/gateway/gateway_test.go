package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadfunnel/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validCard() domain.Card {
	return domain.Card{Number: "4242 4242 4242 4242", ExpMonth: 8, ExpYear: 2029, CVC: "314"}
}

func TestReady(t *testing.T) {
	var initErr *domain.GatewayInitializationError
	assert.ErrorAs(t, NewClient("https://pay.example", "", nil, testLogger()).Ready(), &initErr)
	assert.ErrorAs(t, NewClient("", "pk_test", nil, testLogger()).Ready(), &initErr)
	assert.NoError(t, NewClient("https://pay.example", "pk_test", nil, testLogger()).Ready())
}

func TestPrecheck(t *testing.T) {
	c := NewClient("https://pay.example", "pk_test", nil, testLogger())
	c.now = func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		mutate  func(*domain.Card)
		message string
	}{
		{"valid", func(*domain.Card) {}, ""},
		{"short number", func(c *domain.Card) { c.Number = "4242" }, "Your card number is incomplete."},
		{"bad checksum", func(c *domain.Card) { c.Number = "4242424242424241" }, "Your card number is invalid."},
		{"no month", func(c *domain.Card) { c.ExpMonth = 0 }, "Your card's expiration date is incomplete."},
		{"past year", func(c *domain.Card) { c.ExpYear = 2025 }, "Your card's expiration year is in the past."},
		{"past month", func(c *domain.Card) { c.ExpYear, c.ExpMonth = 2026, 9 }, "Your card's expiration date is in the past."},
		{"two digit year", func(c *domain.Card) { c.ExpYear = 27 }, ""},
		{"short cvc", func(c *domain.Card) { c.CVC = "31" }, "Your card's security code is incomplete."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(&card)
			err := c.Precheck(card)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			var gwErr *domain.GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tt.message, gwErr.Message)
		})
	}
}

func TestConfirmCardPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123/confirm", r.URL.Path)
		assert.Equal(t, "Bearer pk_test", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "pi_123_secret_abc", r.PostForm.Get("client_secret"))
		assert.Equal(t, "4242424242424242", r.PostForm.Get("payment_method_data[card][number]"))
		_, _ = io.WriteString(w, `{"id":"pi_123","status":"succeeded"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "pk_test", srv.Client(), testLogger())
	assert.NoError(t, c.ConfirmCardPayment(context.Background(), "pi_123_secret_abc", validCard()))
}

func TestConfirmCardPaymentDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = io.WriteString(w, `{"error":{"code":"card_declined","message":"Your card has insufficient funds."}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "pk_test", srv.Client(), testLogger())
	err := c.ConfirmCardPayment(context.Background(), "pi_9_secret_z", validCard())

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "card_declined", gwErr.Code)
	assert.Equal(t, "Your card has insufficient funds.", gwErr.Message)
}

func TestConfirmCardPaymentRequiresAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"pi_5","status":"requires_action"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "pk_test", srv.Client(), testLogger())
	var gwErr *domain.GatewayError
	require.ErrorAs(t, c.ConfirmCardPayment(context.Background(), "pi_5_secret_q", validCard()), &gwErr)
	assert.Equal(t, "authentication_required", gwErr.Code)
}

func TestConfirmCardPaymentMalformedSecret(t *testing.T) {
	c := NewClient("https://pay.example", "pk_test", nil, testLogger())
	var gwErr *domain.GatewayError
	assert.ErrorAs(t, c.ConfirmCardPayment(context.Background(), "garbage", validCard()), &gwErr)
}
