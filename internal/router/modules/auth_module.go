package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growth-sessions/internal/container"
	handlers "github.com/oksasatya/growth-sessions/internal/interface/http"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

// AuthModule wires GitHub login and session routes.
// Public: GET /api/oauth/github/redirect, GET /api/oauth/github/callback, POST /api/refresh
// Protected: POST /api/logout, GET /api/me, POST /api/me/calendar_token
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions middleware.SessionStore
	JWT      *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, sessions middleware.SessionStore, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/oauth/github/redirect", loginLimiter, m.Handler.Redirect)
	rg.GET("/oauth/github/callback", loginLimiter, m.Handler.Callback)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
		auth.POST("/me/calendar_token", middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil), m.Handler.CalendarToken)
	}
}
