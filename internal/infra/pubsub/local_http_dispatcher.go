package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"rxsupply/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPDispatcher implements NotificationDispatcher by sending HTTP POST
// requests to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPDispatcher creates a new local HTTP dispatcher for development
func NewLocalHTTPDispatcher(endpoint string, logger *slog.Logger) service.NotificationDispatcher {
	return &localHTTPDispatcher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// DispatchInvoiceNotification publishes a notification by sending HTTP POST to the local endpoint
func (p *localHTTPDispatcher) DispatchInvoiceNotification(ctx context.Context, notification *service.InvoiceNotification) error {
	// Serialize the notification to JSON
	notificationData, err := json.Marshal(notification)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create a Pub/Sub push message structure
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/invoice-notification-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(notificationData)
	pushMsg.Message.MessageID = notification.InvoiceID + ":" + notification.Action
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	// Build attributes with optional request_id for tracing
	attributes := map[string]string{
		"invoice_id": notification.InvoiceID,
		"action":     notification.Action,
	}
	if notification.RequestID != "" {
		attributes["request_id"] = notification.RequestID
	}
	pushMsg.Message.Attributes = attributes

	// Serialize the push message
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing notification",
		slog.String("endpoint", p.endpoint),
		slog.String("invoice_id", notification.InvoiceID),
		slog.String("action", notification.Action),
	)

	// Send HTTP POST request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if notification.RequestID != "" {
		req.Header.Set("X-Request-Id", notification.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mailer returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Notification published successfully",
		slog.String("invoice_id", notification.InvoiceID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPDispatcher) Close() error {
	return nil
}
