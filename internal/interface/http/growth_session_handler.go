package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
	"github.com/oksasatya/growth-sessions/internal/presenter"
	"github.com/oksasatya/growth-sessions/pkg/api"
	"github.com/oksasatya/growth-sessions/pkg/response"
)

type GrowthSessionHandler struct {
	Svc    *application.GrowthSessionService
	Logger *logrus.Logger
}

func NewGrowthSessionHandler(svc *application.GrowthSessionService, logger *logrus.Logger) *GrowthSessionHandler {
	return &GrowthSessionHandler{Svc: svc, Logger: logger}
}

// Week GET /api/growth_sessions/week?date=YYYY-MM-DD
func (h *GrowthSessionHandler) Week(c *gin.Context) {
	var date calendar.DateTime
	if raw := c.Query("date"); raw != "" {
		d, err := calendar.ParseByDate(raw, h.Svc.Location)
		if err != nil {
			response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", map[string]string{"date": "must be a date formatted YYYY-MM-DD"})
			return
		}
		date = d
	}
	viewer := middleware.UserID(c)
	week, err := h.Svc.Week(c.Request.Context(), date, viewer)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.Week(week, viewer, h.Svc.Today()), "week", map[string]any{
		"first_day": week.FirstDay().ToDateString(),
		"last_day":  week.LastDay().ToDateString(),
	})
}

// Search GET /api/growth_sessions/search?q=&size=
func (h *GrowthSessionHandler) Search(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 || size > 50 {
		size = 20
	}
	viewer := middleware.UserID(c)
	found, err := h.Svc.SearchSessions(c.Request.Context(), c.Query("q"), viewer, size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.GrowthSessions(found, viewer, h.Svc.Today()), "search results", nil)
}

// Show GET /api/growth_sessions/:id
func (h *GrowthSessionHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	viewer := middleware.UserID(c)
	gs, err := h.Svc.Get(c.Request.Context(), id, viewer)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.GrowthSession(gs, viewer, h.Svc.Today()), "growth session", nil)
}

// Store POST /api/growth_sessions
func (h *GrowthSessionHandler) Store(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	viewer := middleware.UserID(c)
	gs, err := h.Svc.Create(c.Request.Context(), *viewer, in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter.GrowthSession(gs, viewer, h.Svc.Today()), "growth session created", nil)
}

// Update PUT /api/growth_sessions/:id
func (h *GrowthSessionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	viewer := middleware.UserID(c)
	gs, err := h.Svc.Update(c.Request.Context(), *viewer, id, in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.GrowthSession(gs, viewer, h.Svc.Today()), "growth session updated", nil)
}

// Destroy DELETE /api/growth_sessions/:id
func (h *GrowthSessionHandler) Destroy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), *middleware.UserID(c), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// Join POST /api/growth_sessions/:id/join
func (h *GrowthSessionHandler) Join(c *gin.Context) {
	h.attendance(c, h.Svc.Join, "joined")
}

// Leave POST /api/growth_sessions/:id/leave
func (h *GrowthSessionHandler) Leave(c *gin.Context) {
	h.attendance(c, h.Svc.Leave, "left")
}

func (h *GrowthSessionHandler) attendance(c *gin.Context, act func(ctx context.Context, userID, id int64) (*entity.GrowthSession, error), message string) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	viewer := middleware.UserID(c)
	gs, err := act(c.Request.Context(), *viewer, id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.GrowthSession(gs, viewer, h.Svc.Today()), message, nil)
}

// StoreComment POST /api/growth_sessions/:id/comments
func (h *GrowthSessionHandler) StoreComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req api.StoreCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	comment, err := h.Svc.AddComment(c.Request.Context(), *middleware.UserID(c), id, req.Content)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter.Comment(*comment), "comment created", nil)
}

// DestroyComment DELETE /api/growth_sessions/:id/comments/:commentID
func (h *GrowthSessionHandler) DestroyComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		return
	}
	if err := h.Svc.DeleteComment(c.Request.Context(), *middleware.UserID(c), id, commentID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

func (h *GrowthSessionHandler) bind(c *gin.Context) (application.GrowthSessionInput, bool) {
	var req api.StoreGrowthSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return application.GrowthSessionInput{}, false
	}
	in, err := application.InputFromRequest(req, h.Svc.Location)
	if err != nil {
		writeError(c, h.Logger, err)
		return application.GrowthSessionInput{}, false
	}
	return in, true
}
