package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"doubtconnect/internal/pkg/jwtutil"
	"doubtconnect/internal/transport/http/response"
)

const (
	// AuthTokenHeader is the header clients send the session credential in.
	AuthTokenHeader = "auth-token"

	ContextUserIDKey = "user_id"
)

// RequireAuth verifies the session credential and puts the embedded user id
// on the request context. It performs no I/O beyond the signature check.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(AuthTokenHeader))
		if token == "" {
			response.Error(c, 401, "Please authenticate using a valid token")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, 401, "Please authenticate using a valid token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.User.ID)
		c.Next()
	}
}

// UserID extracts the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
