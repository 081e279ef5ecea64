package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventPasswordReset, n.handlePasswordReset)
	n.dispatcher.Subscribe(events.EventPostCreated, n.handleActivity)
	n.dispatcher.Subscribe(events.EventPostUpdated, n.handleActivity)
	n.dispatcher.Subscribe(events.EventPostDeleted, n.handleActivity)
	n.dispatcher.Subscribe(events.EventPostLiked, n.handleActivity)
	n.dispatcher.Subscribe(events.EventPostCommented, n.handleActivity)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePasswordReset(ctx context.Context, event events.Event) error {
	n.logger.Info("PasswordReset", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleActivity(ctx context.Context, event events.Event) error {
	n.logger.Info("PostActivity",
		zap.String("event_type", string(event.Type)),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)),
		zap.String("actor", event.Actor))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)),
		zap.String("actor", event.Actor))
}
