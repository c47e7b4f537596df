package push

import (
	"context"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// NoopProvider accepts every push without delivering anything. It is the
// default provider for development and test environments, where the delivery
// log rows matter but no device should receive a message.
type NoopProvider struct {
	logger logger.Interface
}

func NewNoopProvider(logger logger.Interface) *NoopProvider {
	return &NoopProvider{logger: logger}
}

var _ notification.PushProvider = (*NoopProvider)(nil)

func (p *NoopProvider) SendPush(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
	p.logger.Debugw("noop push",
		"recipient_id", recipientID,
		"type", notifType.String(),
		"title", title,
	)
	return &notification.PushResult{Success: true}, nil
}

func (p *NoopProvider) SendBatchedPush(ctx context.Context, recipientID uint, batch []*notification.Notification) (*notification.PushResult, error) {
	title, _ := SummarizeBatch(batch)
	p.logger.Debugw("noop batched push",
		"recipient_id", recipientID,
		"batch_size", len(batch),
		"title", title,
	)
	return &notification.PushResult{Success: true}, nil
}
