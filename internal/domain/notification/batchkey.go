package notification

import (
	"fmt"

	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/id"
)

// BatchKey derives the grouping key used to collapse bursts of similar
// notifications into a single push delivery.
//
// With an actor the key is deterministic: the same (actor, type) pair always
// yields the same key, so near-simultaneous notifications from one actor
// batch together. Without an actor the key carries a random suffix so that
// unrelated system notifications of the same type never merge — "no actor"
// is its own non-colliding bucket, not a wildcard.
func BatchKey(actorID *uint, notifType vo.NotificationType) string {
	if actorID != nil {
		return fmt.Sprintf("actor:%d:%s", *actorID, notifType)
	}
	return fmt.Sprintf("system:%s:%s", notifType, id.MustGenerate(8))
}
