package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/pkg/errs"
)

var ErrGatewayUnavailable = errs.New("payment gateway request failed")

// CheckoutLineItem is one sellable unit inside a checkout session.
type CheckoutLineItem struct {
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type CheckoutSessionParams struct {
	LineItems     []CheckoutLineItem `json:"line_items"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	Currency      string             `json:"currency"`
	SuccessURL    string             `json:"success_url"`
	CancelURL     string             `json:"cancel_url"`
	// Metadata must round-trip unchanged onto the webhook event.
	Metadata map[string]string `json:"metadata"`
}

type CreatedSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type RefundParams struct {
	PaymentIntentID string `json:"payment_intent"`
	// AmountCents nil means a full refund.
	AmountCents *int64 `json:"amount,omitempty"`
}

type CreatedRefund struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount"`
	Status      string `json:"status"`
}

// Client is the thin capability-typed gateway client: one call to open a
// checkout session, one to create a refund. The request timeout is explicit
// so a hung gateway can never wedge a checkout worker.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CreatedSession, error) {
	var session CreatedSession
	if err := c.post(ctx, "/v1/checkout/sessions", params, &session); err != nil {
		return nil, err
	}
	if session.ID == "" || session.URL == "" {
		return nil, errs.Mark(errs.New("gateway returned incomplete session"), ErrGatewayUnavailable)
	}
	return &session, nil
}

func (c *Client) CreateRefund(ctx context.Context, params RefundParams) (*CreatedRefund, error) {
	var refund CreatedRefund
	if err := c.post(ctx, "/v1/refunds", params, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Mark(
			errs.New(fmt.Sprintf("gateway returned %d: %s", resp.StatusCode, string(snippet))),
			ErrGatewayUnavailable,
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(err, ErrGatewayUnavailable)
	}
	return nil
}
