package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growth-sessions/internal/container"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
)

// DebugModule exposes expvar. Only mounted when DEBUG_METRICS_ENABLED is set.
type DebugModule struct {
	// Counters names the expvar map served on /debug/counters.
	Counters string
}

func NewDebugModule(counters string) *DebugModule { return &DebugModule{Counters: counters} }

func (m *DebugModule) Name() string { return "debug" }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// private networks (the metrics scraper) skip the limit
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	rg.GET("/debug/counters", rl, m.counters)
}

func (m *DebugModule) counters(c *gin.Context) {
	v := expvar.Get(m.Counters)
	if v == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(v.String()))
}
