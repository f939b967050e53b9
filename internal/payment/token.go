package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kishanta/rightstore-backend/pkg/config"
)

const intentPath = "/api/create-payment-intent"

// TokenSource obtains the authorization token (client secret) permitting the
// client to confirm a specific payment amount with the provider.
type TokenSource interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// IntentClient requests client secrets from the payment-intent endpoint.
type IntentClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewIntentClient builds the HTTP token source from configuration.
func NewIntentClient(cfg config.PaymentIntentConfig) *IntentClient {
	return &IntentClient{
		endpoint:   strings.TrimRight(cfg.EndpointURL, "/") + intentPath,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type intentRequest struct {
	Amount int64 `json:"amount"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Error        string `json:"error"`
}

// CreateIntent posts the order amount and returns the client secret. Any
// transport failure, non-2xx status, endpoint-reported error or missing
// token comes back as an error for the caller to classify.
func (c *IntentClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	body, err := json.Marshal(intentRequest{Amount: amountCents})
	if err != nil {
		return "", fmt.Errorf("encode intent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call intent endpoint: %w", err)
	}
	defer resp.Body.Close()

	var payload intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode intent response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if payload.Error != "" {
			return "", fmt.Errorf("intent endpoint: %s", payload.Error)
		}
		return "", fmt.Errorf("intent endpoint returned status %d", resp.StatusCode)
	}
	if payload.Error != "" {
		return "", fmt.Errorf("intent endpoint: %s", payload.Error)
	}
	if strings.TrimSpace(payload.ClientSecret) == "" {
		return "", fmt.Errorf("intent response missing client secret")
	}
	return payload.ClientSecret, nil
}
