package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"leadfunnel/internal/core/domain"
)

// Client confirms card payments against a Stripe compatible payment intents
// API using a publishable key. It implements port.PaymentGateway.
type Client struct {
	baseURL        string
	publishableKey string
	http           *http.Client
	logger         *slog.Logger
	now            func() time.Time
}

// NewClient returns a gateway client. An empty key or base URL is accepted
// here and reported by Ready, so the dashboard still serves wallet funded
// checkouts without a gateway.
func NewClient(baseURL, publishableKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		publishableKey: publishableKey,
		http:           httpClient,
		logger:         logger,
		now:            time.Now,
	}
}

// Ready reports a *domain.GatewayInitializationError when the client lacks
// the key or URL needed to confirm payments.
func (c *Client) Ready() error {
	switch {
	case c.publishableKey == "":
		return &domain.GatewayInitializationError{Reason: "publishable key not configured"}
	case c.baseURL == "":
		return &domain.GatewayInitializationError{Reason: "gateway url not configured"}
	}
	return nil
}

// Precheck runs the checks the card form performs before submission.
func (c *Client) Precheck(card domain.Card) error {
	number := strings.ReplaceAll(card.Number, " ", "")
	switch {
	case len(number) < 12:
		return &domain.GatewayError{Code: "incomplete_number", Message: "Your card number is incomplete."}
	case len(number) > 19 || !luhn(number):
		return &domain.GatewayError{Code: "invalid_number", Message: "Your card number is invalid."}
	case card.ExpMonth < 1 || card.ExpMonth > 12 || card.ExpYear == 0:
		return &domain.GatewayError{Code: "incomplete_expiry", Message: "Your card's expiration date is incomplete."}
	}

	now := c.now()
	year := card.ExpYear
	if year < 100 {
		year += 2000
	}
	switch {
	case year < now.Year():
		return &domain.GatewayError{Code: "invalid_expiry_year_past", Message: "Your card's expiration year is in the past."}
	case year == now.Year() && card.ExpMonth < int(now.Month()):
		return &domain.GatewayError{Code: "invalid_expiry_month_past", Message: "Your card's expiration date is in the past."}
	}

	if l := len(card.CVC); l < 3 || l > 4 || !digits(card.CVC) {
		return &domain.GatewayError{Code: "incomplete_cvc", Message: "Your card's security code is incomplete."}
	}
	return nil
}

type intentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ConfirmCardPayment confirms the payment intent the client secret belongs
// to. Declines come back as *domain.GatewayError carrying the gateway's
// message.
func (c *Client) ConfirmCardPayment(ctx context.Context, clientSecret string, card domain.Card) error {
	if err := c.Ready(); err != nil {
		return err
	}
	intentID, _, ok := strings.Cut(clientSecret, "_secret_")
	if !ok || intentID == "" {
		return &domain.GatewayError{Code: "invalid_client_secret", Message: "The payment could not be processed. Please retry."}
	}

	form := url.Values{}
	form.Set("client_secret", clientSecret)
	form.Set("payment_method_data[type]", "card")
	form.Set("payment_method_data[card][number]", strings.ReplaceAll(card.Number, " ", ""))
	form.Set("payment_method_data[card][exp_month]", strconv.Itoa(card.ExpMonth))
	form.Set("payment_method_data[card][exp_year]", strconv.Itoa(card.ExpYear))
	form.Set("payment_method_data[card][cvc]", card.CVC)
	if card.Holder != "" {
		form.Set("payment_method_data[billing_details][name]", card.Holder)
	}

	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", c.baseURL, url.PathEscape(intentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build confirm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.publishableKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeGatewayError(resp)
	}

	var intent intentResponse
	if err = json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return fmt.Errorf("decode confirm response: %w", err)
	}
	switch intent.Status {
	case "succeeded", "processing":
		c.logger.Debug("card payment confirmed", slog.String("intent_id", intentID), slog.String("status", intent.Status))
		return nil
	case "requires_action":
		return &domain.GatewayError{Code: "authentication_required", Message: "Your card requires additional authentication."}
	default:
		return &domain.GatewayError{Code: intent.Status, Message: "Your payment could not be completed."}
	}
}

func decodeGatewayError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return &domain.GatewayError{Code: body.Error.Code, Message: body.Error.Message}
	}
	return &domain.GatewayError{Code: "api_error", Message: fmt.Sprintf("Payment gateway error (%s).", resp.Status)}
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func luhn(number string) bool {
	if !digits(number) {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
