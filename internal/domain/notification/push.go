package notification

import (
	"context"

	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
)

// PushResult is what a push provider reports back for one dispatch. Reason
// carries a provider-side caveat about an otherwise successful dispatch,
// and ends up on the delivery log row.
type PushResult struct {
	MessageID string
	Success   bool
	Reason    string
}

// PushProvider dispatches push notifications to a recipient's devices. The
// delivery pipeline treats provider errors as recoverable: a failed dispatch
// is recorded in the delivery log and never surfaces to the caller.
//
// SendBatchedPush receives the full batch ordered oldest first; providers
// summarize it into a single push (the oldest title as representative plus a
// count). Implementations are selected once at startup and injected.
type PushProvider interface {
	SendPush(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*PushResult, error)
	SendBatchedPush(ctx context.Context, recipientID uint, batch []*Notification) (*PushResult, error)
}
