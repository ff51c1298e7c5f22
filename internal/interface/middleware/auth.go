package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growth-sessions/pkg/helpers"
	"github.com/oksasatya/growth-sessions/pkg/response"
)

// SessionStore resolves a live session id to its user.
type SessionStore interface {
	SessionUser(ctx context.Context, sid string) (int64, error)
}

// Auth validates the access token and ensures its session still exists in Redis.
// It sets userID (int64) and sessionID in the Gin context on success.
func Auth(sessions SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		if !authenticate(c, sessions, jwt, token) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth identifies the viewer when a valid token is present and lets guests through
// otherwise. A stale token is treated as no token.
func OptionalAuth(sessions SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerOrCookie(c); token != "" {
			if claims, err := jwt.ParseAccessToken(token); err == nil {
				if uid, err := sessions.SessionUser(c.Request.Context(), claims.SessionID); err == nil && uid == claims.UserID {
					c.Set(CtxUserIDKey, uid)
					c.Set(CtxSessionIDKey, claims.SessionID)
				}
			}
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, sessions SessionStore, jwt *helpers.JWTManager, token string) bool {
	claims, err := jwt.ParseAccessToken(token)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
		return false
	}
	uid, err := sessions.SessionUser(c.Request.Context(), claims.SessionID)
	if err != nil || uid != claims.UserID {
		response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
		return false
	}
	c.Set(CtxUserIDKey, uid)
	c.Set(CtxSessionIDKey, claims.SessionID)
	return true
}
