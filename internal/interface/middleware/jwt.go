package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

const (
	CtxUserIDKey    = "userID"
	CtxSessionIDKey = "sessionID"
)

// bearerOrCookie prefers an Authorization bearer token (CLI) over the access cookie (browser).
func bearerOrCookie(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	token, _ := c.Cookie(helpers.AccessCookie)
	return token
}

// UserID returns the signed-in user, or nil for guests.
func UserID(c *gin.Context) *int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}

// SessionID is the Redis session the access token was issued for.
func SessionID(c *gin.Context) string {
	return c.GetString(CtxSessionIDKey)
}
