package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	repo "github.com/oksasatya/growth-sessions/internal/domain/repository"
	repoMocks "github.com/oksasatya/growth-sessions/internal/domain/repository/mocks"
	"github.com/oksasatya/growth-sessions/internal/infrastructure/icalfeed"
	"github.com/oksasatya/growth-sessions/internal/interface/middleware"
	"github.com/oksasatya/growth-sessions/pkg/api"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
	"github.com/oksasatya/growth-sessions/pkg/response"
	"github.com/oksasatya/growth-sessions/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	}
}

type fixture struct {
	router   *gin.Engine
	sessions *repoMocks.MockGrowthSessionRepository
	comments *repoMocks.MockCommentRepository
	users    *repoMocks.MockUserRepository
	svc      *application.GrowthSessionService
}

// actAs stands in for the auth middleware: X-User sets the viewer.
func actAs(c *gin.Context) {
	if raw := c.GetHeader("X-User"); raw != "" {
		id, _ := strconv.ParseInt(raw, 10, 64)
		c.Set(middleware.CtxUserIDKey, id)
	}
	c.Next()
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		sessions: repoMocks.NewMockGrowthSessionRepository(ctrl),
		comments: repoMocks.NewMockCommentRepository(ctrl),
		users:    repoMocks.NewMockUserRepository(ctrl),
	}
	// Wednesday 2024-03-06
	now := clock.Fixed(time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC))
	f.svc = application.NewGrowthSessionService(f.sessions, f.comments, f.users, nil, now, time.UTC, calendar.MustParseTimeOfDay("05:00 pm"), nil, nil)
	h := NewGrowthSessionHandler(f.svc, nil)

	f.router = gin.New()
	g := f.router.Group("/api", actAs)
	g.GET("/growth_sessions/week", h.Week)
	g.GET("/growth_sessions/search", h.Search)
	g.GET("/growth_sessions/:id", h.Show)
	g.POST("/growth_sessions", h.Store)
	g.PUT("/growth_sessions/:id", h.Update)
	g.DELETE("/growth_sessions/:id", h.Destroy)
	g.POST("/growth_sessions/:id/join", h.Join)
	g.POST("/growth_sessions/:id/leave", h.Leave)
	g.POST("/growth_sessions/:id/comments", h.StoreComment)
	g.DELETE("/growth_sessions/:id/comments/:commentID", h.DestroyComment)
	return f
}

func (f *fixture) do(method, path string, user int64, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != 0 {
		req.Header.Set("X-User", strconv.FormatInt(user, 10))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) response.APIResponse[T] {
	t.Helper()
	var res response.APIResponse[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func session() *entity.GrowthSession {
	owner := entity.User{ID: 1, Name: "Grace", GithubNickname: "grace"}
	two := 2
	return &entity.GrowthSession{
		ID:            7,
		OwnerID:       1,
		Owner:         &owner,
		Title:         "Refactoring katas",
		Topic:         "Gilded rose",
		Location:      "Discord Channel: Mob 1",
		Date:          calendar.MustParseByDate("2024-03-08"),
		StartTime:     calendar.MustParseTimeOfDay("03:30 pm"),
		EndTime:       calendar.MustParseTimeOfDay("05:00 pm"),
		IsPublic:      true,
		AttendeeLimit: &two,
		Attendees:     []entity.User{{ID: 2, Name: "Ada"}},
	}
}

func TestWeekForGuest(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repo.GrowthSessionFilter) ([]*entity.GrowthSession, error) {
			assert.True(t, filter.PublicOnly)
			assert.Equal(t, "2024-03-11", filter.From.ToDateString())
			return nil, nil
		})

	w := f.do(http.MethodGet, "/api/growth_sessions/week?date=2024-03-13", 0, nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[[]api.Day](t, w)
	require.Len(t, res.Data, 5)
	assert.Equal(t, "2024-03-11", res.Data[0].Date)
	assert.Equal(t, "2024-03-15", res.Data[4].Date)
	assert.NotNil(t, res.Data[0].GrowthSessions)
}

func TestWeekRejectsBadDate(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/api/growth_sessions/week?date=next-tuesday", 0, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"date"`)
}

func TestShowAttachesPermissions(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)

	w := f.do(http.MethodGet, "/api/growth_sessions/7", 3, nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[api.GrowthSession](t, w)
	require.NotNil(t, res.Data.Permissions)
	assert.Equal(t, api.Permissions{CanJoin: true}, *res.Data.Permissions)
	assert.Equal(t, "03:30 pm", res.Data.StartTime)
	assert.Empty(t, res.Data.Owner.Email)
}

func TestShowUnknownIDs(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/growth_sessions/abc", 0, nil).Code)

	f.sessions.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, repo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/growth_sessions/99", 0, nil).Code)
}

func TestStoreValidatesPayload(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/api/growth_sessions", 1, map[string]any{
		"topic":      "Gilded rose",
		"location":   "Mob 1",
		"date":       "2024-03-08",
		"start_time": "25:99",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	res := decode[any](t, w)
	details := res.Error.(map[string]any)["details"].(map[string]any)
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "start_time")
}

func TestStoreCreatesWithDefaultEndTime(t *testing.T) {
	f := newFixture(t)
	created := session()
	created.AttendeeLimit = nil
	created.Attendees = nil
	f.sessions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gs *entity.GrowthSession) error {
			assert.Equal(t, "05:00 pm", gs.EndTime.String())
			assert.Nil(t, gs.AttendeeLimit)
			gs.ID = 7
			return nil
		})
	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(created, nil)

	w := f.do(http.MethodPost, "/api/growth_sessions", 1, api.StoreGrowthSessionRequest{
		Title:     "Refactoring katas",
		Topic:     "Gilded rose",
		Location:  "Discord Channel: Mob 1",
		Date:      "2024-03-08",
		StartTime: "3:30 pm",
		IsPublic:  true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[api.GrowthSession](t, w)
	assert.Nil(t, res.Data.AttendeeLimit)
	assert.Equal(t, api.Permissions{CanEdit: true, CanDelete: true}, *res.Data.Permissions)
}

func TestStoreRejectsEndBeforeStart(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/api/growth_sessions", 1, api.StoreGrowthSessionRequest{
		Title: "T", Topic: "T", Location: "L", Date: "2024-03-08", StartTime: "04:00 pm", EndTime: "03:00 pm",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "end_time")
}

func TestAttendanceConflicts(t *testing.T) {
	f := newFixture(t)

	full := session()
	full.Attendees = append(full.Attendees, entity.User{ID: 4})
	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(full, nil)
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/api/growth_sessions/7/join", 3, nil).Code)

	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/growth_sessions/7/join", 1, nil).Code)

	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/api/growth_sessions/7/leave", 3, nil).Code)
}

func TestLeave(t *testing.T) {
	f := newFixture(t)
	left := session()
	left.Attendees = nil
	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)
	f.sessions.EXPECT().RemoveAttendee(gomock.Any(), int64(7), int64(2)).Return(nil)
	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(left, nil)
	f.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&entity.User{ID: 2, Name: "Ada"}, nil)

	w := f.do(http.MethodPost, "/api/growth_sessions/7/leave", 2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[api.GrowthSession](t, w)
	assert.Empty(t, res.Data.Attendees)
	assert.Equal(t, api.Permissions{CanJoin: true}, *res.Data.Permissions)
}

func TestUpdateAndDeleteAreOwnerOnly(t *testing.T) {
	f := newFixture(t)
	body := api.StoreGrowthSessionRequest{Title: "T", Topic: "T", Location: "L", Date: "2024-03-08", StartTime: "03:30 pm"}

	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPut, "/api/growth_sessions/7", 2, body).Code)

	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/api/growth_sessions/7", 2, nil).Code)

	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)
	f.sessions.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/growth_sessions/7", 1, nil).Code)
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().GetByID(gomock.Any(), int64(7)).Return(session(), nil)
	f.comments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *entity.Comment) error {
			c.ID = 4
			return nil
		})
	f.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&entity.User{ID: 2, Name: "Ada", Email: "ada@example.com"}, nil)

	w := f.do(http.MethodPost, "/api/growth_sessions/7/comments", 2, api.StoreCommentRequest{Content: "Bringing snacks"})
	require.Equal(t, http.StatusCreated, w.Code)
	res := decode[api.Comment](t, w)
	assert.Equal(t, int64(4), res.Data.ID)
	require.NotNil(t, res.Data.User)
	assert.Empty(t, res.Data.User.Email)

	assert.Equal(t, http.StatusUnprocessableEntity, f.do(http.MethodPost, "/api/growth_sessions/7/comments", 2, api.StoreCommentRequest{}).Code)

	f.comments.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&entity.Comment{ID: 4, GrowthSessionID: 7, UserID: 2}, nil)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/api/growth_sessions/7/comments/4", 1, nil).Code)
}

func TestSearchWithoutIndex(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusServiceUnavailable, f.do(http.MethodGet, "/api/growth_sessions/search?q=kata", 0, nil).Code)
}

func TestCalendarFeed(t *testing.T) {
	f := newFixture(t)
	hash, err := helpers.HashSecret("s3cret")
	require.NoError(t, err)
	auth := application.NewAuthService(f.users, nil, nil, nil, nil, nil, "https://mobs.example.com", "")
	h := NewCalendarHandler(auth, f.svc, icalfeed.Options{ProductID: "-//growth-sessions//EN", Domain: "mobs.example.com"}, nil)
	f.router.GET("/api/calendar/:token", h.Feed)

	f.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&entity.User{ID: 2, CalendarTokenHash: hash}, nil).Times(2)
	f.sessions.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repo.GrowthSessionFilter) ([]*entity.GrowthSession, error) {
			assert.Equal(t, int64(2), filter.ParticipantID)
			assert.Equal(t, "2024-02-05", filter.From.ToDateString())
			return []*entity.GrowthSession{session()}, nil
		})

	w := f.do(http.MethodGet, "/api/calendar/2.s3cret", 0, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, icalfeed.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "SUMMARY:Refactoring katas")

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/calendar/2.wrong", 0, nil).Code)
}
