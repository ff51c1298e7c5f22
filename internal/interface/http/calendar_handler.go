package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/internal/infrastructure/icalfeed"
	"github.com/oksasatya/growth-sessions/pkg/response"
)

// feedLookback keeps recent sessions in the feed so calendar apps do not drop them.
const feedLookback = 30

type CalendarHandler struct {
	Auth     *application.AuthService
	Sessions *application.GrowthSessionService
	Options  icalfeed.Options
	Logger   *logrus.Logger
}

func NewCalendarHandler(auth *application.AuthService, sessions *application.GrowthSessionService, opts icalfeed.Options, logger *logrus.Logger) *CalendarHandler {
	return &CalendarHandler{Auth: auth, Sessions: sessions, Options: opts, Logger: logger}
}

// Feed GET /api/calendar/:token
func (h *CalendarHandler) Feed(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := h.Auth.ResolveCalendarToken(ctx, c.Param("token"))
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusNotFound, "not found", nil)
			return
		}
		writeError(c, h.Logger, err)
		return
	}
	sessions, err := h.Sessions.Participating(ctx, u.ID, h.Sessions.Today().AddDays(-feedLookback))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	opts := h.Options
	opts.Stamp = h.Sessions.Clock.Now()
	c.Header("Content-Type", icalfeed.ContentType)
	c.Header("Cache-Control", "private, max-age=300")
	c.Status(http.StatusOK)
	if err := icalfeed.Encode(c.Writer, sessions, opts); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("calendar feed encode failed")
	}
}
