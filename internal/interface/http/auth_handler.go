package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
	"github.com/oksasatya/growth-sessions/internal/presenter"
	"github.com/oksasatya/growth-sessions/pkg/api"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
	"github.com/oksasatya/growth-sessions/pkg/response"
)

type AuthHandler struct {
	Svc         *application.AuthService
	Cookies     *helpers.Manager
	FrontendURL string
	Logger      *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, cookieDomain string, cookieSecure bool, frontendURL string, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: helpers.NewCookie(cookieDomain, cookieSecure), FrontendURL: frontendURL, Logger: logger}
}

func tokenMeta(pair application.TokenPair) map[string]any {
	return map[string]any{
		"access_token":       pair.AccessToken,
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_token":      pair.RefreshToken,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	}
}

// Redirect GET /api/oauth/github/redirect
func (h *AuthHandler) Redirect(c *gin.Context) {
	url, state, err := h.Svc.BeginLogin(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetState(c, state, h.Svc.StateTTL())
	c.Redirect(http.StatusFound, url)
}

// Callback GET /api/oauth/github/callback?state=&code=
// Browsers are sent back to the frontend with cookies set. Without a frontend configured the
// token pair is returned in meta, which is what mobctl users copy into their config.
func (h *AuthHandler) Callback(c *gin.Context) {
	cookieState, _ := c.Cookie(helpers.StateCookie)
	h.Cookies.SetState(c, "", -time.Second)

	u, pair, err := h.Svc.CompleteLogin(c.Request.Context(), c.Query("state"), cookieState, c.Query("code"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	if h.FrontendURL != "" {
		c.Redirect(http.StatusFound, h.FrontendURL)
		return
	}
	response.Success(c, http.StatusOK, presenter.User(*u, true), "login successful", tokenMeta(pair))
}

// Refresh POST /api/refresh, reading the refresh cookie or {"refresh_token": "..."}.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, _ := c.Cookie(helpers.RefreshCookie)
	if refresh == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.ShouldBindJSON(&body)
		refresh = body.RefreshToken
	}
	if refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	u, pair, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, presenter.User(*u, true), "token refreshed", tokenMeta(pair))
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), *middleware.UserID(c), middleware.SessionID(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// Me GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Me(c.Request.Context(), *middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.User(*u, true), "profile", nil)
}

// CalendarToken POST /api/me/calendar_token issues a new feed URL, revoking the previous one.
func (h *AuthHandler) CalendarToken(c *gin.Context) {
	_, feedURL, err := h.Svc.IssueCalendarToken(c.Request.Context(), *middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, api.CalendarToken{FeedURL: feedURL}, "calendar feed issued", nil)
}
