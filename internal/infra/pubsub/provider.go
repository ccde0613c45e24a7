package pubsub

import (
	"context"
	"log/slog"

	"rxsupply/config"
	"rxsupply/internal/domain/constants"
	"rxsupply/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDispatcher is a no-op implementation when Pub/Sub is disabled
type noopDispatcher struct {
	logger *slog.Logger
}

func (p *noopDispatcher) DispatchInvoiceNotification(ctx context.Context, notification *service.InvoiceNotification) error {
	p.logger.Debug("[NoopPubSub] Notification publishing disabled, skipping",
		slog.String("invoice_id", notification.InvoiceID),
		slog.String("action", notification.Action),
	)

	return nil
}

func (p *noopDispatcher) Close() error {
	return nil
}

// DispatcherParams holds dependencies for NotificationDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationDispatcher creates a NotificationDispatcher based on configuration
func NewNotificationDispatcher(params DispatcherParams) (service.NotificationDispatcher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op dispatcher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil
	}

	var dispatcher service.NotificationDispatcher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP dispatcher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = NewLocalHTTPDispatcher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub dispatcher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		dispatcher, err = NewGooglePubSubDispatcher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close dispatcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing NotificationDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationDispatcher),
)
