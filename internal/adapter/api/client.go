package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/port"
)

const maxErrorBody = 64 << 10

// Client talks to the lead generation platform REST API. It implements
// port.CatalogReader, port.WalletReader, port.CampaignReader and
// port.FundingClient. Every request carries the bearer token held by the
// TokenProvider; a 401 answer clears it.
type Client struct {
	baseURL string
	tokens  port.TokenProvider
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, tokens port.TokenProvider, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    httpClient,
		logger:  logger,
	}
}

func (c *Client) Objectives(ctx context.Context) ([]domain.Objective, error) {
	var out []domain.Objective
	if err := c.do(ctx, http.MethodGet, "/objectives", nil, &out); err != nil {
		return nil, fmt.Errorf("list objectives: %w", err)
	}
	// A missing code never reaches UnmarshalJSON, so every entry is checked.
	for _, o := range out {
		if _, err := domain.ParseObjectiveCode(string(o.Code)); err != nil {
			return nil, fmt.Errorf("list objectives: objective %q: %w", o.ID, err)
		}
	}
	return out, nil
}

func (c *Client) Creatives(ctx context.Context) ([]domain.CreativeSupport, error) {
	var out []domain.CreativeSupport
	if err := c.do(ctx, http.MethodGet, "/creatives", nil, &out); err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}
	for i, cr := range out {
		if _, err := domain.ParseCreativeCode(string(cr.Code)); err != nil {
			return nil, fmt.Errorf("list creatives: entry %d: %w", i, err)
		}
	}
	return out, nil
}

func (c *Client) Wallet(ctx context.Context) (domain.Wallet, error) {
	var out domain.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallet", nil, &out); err != nil {
		return domain.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	return out, nil
}

func (c *Client) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns", nil, &out); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return out, nil
}

// InitiatePayment submits the complete draft for funding.
func (c *Client) InitiatePayment(ctx context.Context, draft domain.CampaignDraft) (domain.PaymentIntent, error) {
	var out domain.PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/campaigns/initiate-payment", draft, &out); err != nil {
		return domain.PaymentIntent{}, fmt.Errorf("initiate payment: %w", err)
	}
	return out, nil
}

type rechargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// RequestRecharge asks for a card payment intent crediting amount.
func (c *Client) RequestRecharge(ctx context.Context, amount decimal.Decimal) (domain.PaymentIntent, error) {
	var out domain.PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/wallet/recharge", rechargeRequest{Amount: amount}, &out); err != nil {
		return domain.PaymentIntent{}, fmt.Errorf("request recharge: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}
	if tok := c.tokens.Get(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		c.logger.Warn("platform api rejected token, cleared", slog.String("path", path))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &domain.APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Error != "":
			apiErr.Message = body.Error
		}
	} else if text := strings.TrimSpace(string(raw)); text != "" {
		apiErr.Message = text
	}
	return apiErr
}
