package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"rxsupply/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubDispatcher implements NotificationDispatcher using Google Cloud Pub/Sub
type googlePubSubDispatcher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubDispatcher creates a new Google Pub/Sub dispatcher
func NewGooglePubSubDispatcher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.NotificationDispatcher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub dispatcher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubDispatcher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// DispatchInvoiceNotification publishes a notification to Google Pub/Sub
func (p *googlePubSubDispatcher) DispatchInvoiceNotification(ctx context.Context, notification *service.InvoiceNotification) error {
	// Serialize the notification to JSON
	data, err := json.Marshal(notification)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create Pub/Sub message with attributes for filtering and tracing
	attributes := map[string]string{
		"invoice_id": notification.InvoiceID,
		"action":     notification.Action,
	}
	if notification.RequestID != "" {
		attributes["request_id"] = notification.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	p.logger.Info("[GooglePubSub] Publishing notification",
		slog.String("invoice_id", notification.InvoiceID),
		slog.String("action", notification.Action),
	)

	// Publish message
	result := p.publisher.Publish(ctx, msg)

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Notification published successfully",
		slog.String("invoice_id", notification.InvoiceID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubDispatcher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
