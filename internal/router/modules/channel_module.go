package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growth-sessions/internal/container"
	handlers "github.com/oksasatya/growth-sessions/internal/interface/http"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
)

type ChannelModule struct {
	Handler *handlers.ChannelHandler
}

func NewChannelModule(h *handlers.ChannelHandler) *ChannelModule {
	return &ChannelModule{Handler: h}
}

func (m *ChannelModule) Name() string { return "discord_channels" }

func (m *ChannelModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/discord_channels", rl, m.Handler.Index)
}
