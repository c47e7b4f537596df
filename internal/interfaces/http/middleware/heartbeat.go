package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// Heartbeat records presence for every authenticated request. A failed
// heartbeat never fails the request; the recipient just looks inactive to
// the delivery engine until the next one lands.
func Heartbeat(activity notification.ActivityTracker, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := UserID(c); ok {
			if err := activity.UpdateLastActive(c.Request.Context(), userID); err != nil {
				log.Warnw("failed to record activity heartbeat",
					"recipient_id", userID,
					"error", err,
				)
			}
		}
		c.Next()
	}
}
