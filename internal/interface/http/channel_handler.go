package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/internal/presenter"
	"github.com/oksasatya/growth-sessions/pkg/response"
)

type ChannelHandler struct {
	Svc    *application.ChannelService
	Logger *logrus.Logger
}

func NewChannelHandler(svc *application.ChannelService, logger *logrus.Logger) *ChannelHandler {
	return &ChannelHandler{Svc: svc, Logger: logger}
}

// Index GET /api/discord_channels
func (h *ChannelHandler) Index(c *gin.Context) {
	channels, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.DiscordChannels(channels), "discord channels", nil)
}
