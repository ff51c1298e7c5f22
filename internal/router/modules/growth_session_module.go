package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/growth-sessions/internal/container"
	handlers "github.com/oksasatya/growth-sessions/internal/interface/http"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

// GrowthSessionModule serves the week view and every session write.
// Reads are open to guests (public sessions only); writes need a signed-in user.
type GrowthSessionModule struct {
	Handler  *handlers.GrowthSessionHandler
	Sessions middleware.SessionStore
	JWT      *helpers.JWTManager
}

func NewGrowthSessionModule(h *handlers.GrowthSessionHandler, sessions middleware.SessionStore, jwt *helpers.JWTManager) *GrowthSessionModule {
	return &GrowthSessionModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *GrowthSessionModule) Name() string { return "growth_sessions" }

func (m *GrowthSessionModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	g := rg.Group("/growth_sessions")

	read := g.Group("")
	read.Use(
		middleware.OptionalAuth(m.Sessions, m.JWT),
		middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), nil),
	)
	{
		read.GET("/week", m.Handler.Week)
		read.GET("/search", middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByUserID(), nil), m.Handler.Search)
		read.GET("/:id", m.Handler.Show)
	}

	write := g.Group("")
	write.Use(
		middleware.Auth(m.Sessions, m.JWT),
		middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		write.POST("", m.Handler.Store)
		write.PUT("/:id", m.Handler.Update)
		write.DELETE("/:id", m.Handler.Destroy)
		write.POST("/:id/join", m.Handler.Join)
		write.POST("/:id/leave", m.Handler.Leave)
		write.POST("/:id/comments", m.Handler.StoreComment)
		write.DELETE("/:id/comments/:commentID", m.Handler.DestroyComment)
	}
}
