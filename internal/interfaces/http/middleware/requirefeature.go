package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
	"github.com/huddle-inc/huddle/internal/shared/utils"
)

// FeatureChecker answers whether a group's current entitlements include a
// named feature.
type FeatureChecker interface {
	HasFeatureAccess(ctx context.Context, groupID uint, feature string) (bool, error)
}

// RequireFeature gates a route on an entitlement feature. Resolution errors
// deny access rather than letting the request through.
func RequireFeature(checker FeatureChecker, feature string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID, ok := GroupID(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Group context missing"))
			c.Abort()
			return
		}

		allowed, err := checker.HasFeatureAccess(c.Request.Context(), groupID, feature)
		if err != nil {
			log.Errorw("feature access check failed",
				"group_id", groupID,
				"feature", feature,
				"error", err,
			)
			allowed = false
		}

		if !allowed {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("Feature not available on current plan"))
			c.Abort()
			return
		}

		c.Next()
	}
}
