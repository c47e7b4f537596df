package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/utils"
)

const (
	userIDHeader  = "X-User-ID"
	groupIDHeader = "X-Group-ID"

	// Context keys set for downstream handlers.
	ContextUserID  = "user_id"
	ContextGroupID = "group_id"
)

// Identity trusts the user and group headers injected by the edge gateway
// after it has authenticated the request. This service never sees raw
// credentials.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseIDHeader(c, userIDHeader)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
			c.Abort()
			return
		}

		groupID, err := parseIDHeader(c, groupIDHeader)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Group context missing"))
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextGroupID, groupID)
		c.Next()
	}
}

func parseIDHeader(c *gin.Context, header string) (uint, error) {
	raw := c.GetHeader(header)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewUnauthorizedError("invalid " + header)
	}
	return uint(id), nil
}

// UserID returns the authenticated user ID from the request context.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GroupID returns the group context from the request context.
func GroupID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextGroupID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
