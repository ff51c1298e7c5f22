package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growth-sessions/internal/container"
	handlers "github.com/oksasatya/growth-sessions/internal/interface/http"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
)

// CalendarModule serves personal iCal feeds. The token in the path is the credential.
type CalendarModule struct {
	Handler *handlers.CalendarHandler
}

func NewCalendarModule(h *handlers.CalendarHandler) *CalendarModule {
	return &CalendarModule{Handler: h}
}

func (m *CalendarModule) Name() string { return "calendar" }

func (m *CalendarModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.GET("/calendar/:token", rl, m.Handler.Feed)
}
