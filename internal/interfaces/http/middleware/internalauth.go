package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/utils"
)

// InternalAuth guards the service-to-service routes with a static bearer
// token. An empty configured token rejects everything; the router should
// not register internal routes in that case.
func InternalAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Invalid service token"))
			c.Abort()
			return
		}
		c.Next()
	}
}
