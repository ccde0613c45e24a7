// Package payment implements the payment gateway client.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"rxsupply/config"
	"rxsupply/internal/domain/entity"
	"rxsupply/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGatewayTimeout = 15 * time.Second

// linkService talks to the hosted-checkout gateway over its JSON API.
type linkService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params defines the parameters required for the payment link service
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentLinkService creates the gateway-backed payment link service.
func NewPaymentLinkService(params Params) (service.PaymentLinkService, error) {
	cfg := params.Config.PaymentGateway
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("payment gateway base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	return &linkService{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}, nil
}

// createLinkRequest is the gateway's link creation payload.
type createLinkRequest struct {
	InvoiceID     string  `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CustomerEmail string  `json:"customer_email,omitempty"`
}

// createLinkResponse is the gateway's link creation reply.
type createLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreatePaymentLink requests a hosted payment link for the invoice's total amount.
func (s *linkService) CreatePaymentLink(ctx context.Context, inv *entity.Invoice) (*service.PaymentLink, error) {
	payload := createLinkRequest{
		InvoiceID:     inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.TotalAmount,
		Currency:      "USD",
		CustomerEmail: inv.CustomerInfo.Email,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/payment_links", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	s.logger.Info("[PaymentGateway] Creating payment link",
		slog.String("invoice_id", inv.ID.String()),
		slog.String("invoice_number", inv.InvoiceNumber),
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("gateway returned non-success status: %d", resp.StatusCode)
	}

	var linkResp createLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&linkResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode gateway response")
	}
	if linkResp.URL == "" {
		return nil, errors.New("gateway response missing payment link URL")
	}

	s.logger.Info("[PaymentGateway] Payment link created",
		slog.String("invoice_id", inv.ID.String()),
	)

	return &service.PaymentLink{
		URL:       linkResp.URL,
		ExpiresAt: linkResp.ExpiresAt,
	}, nil
}
