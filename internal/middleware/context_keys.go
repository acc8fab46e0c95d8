package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// usernameKey stores the logged-in username in the request context.
const usernameKey = contextKey("username")

// WithUsername returns a copy of ctx carrying the logged-in username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext retrieves the logged-in username set by AuthMiddleware.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, ok := c.Request.Context().Value(usernameKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
