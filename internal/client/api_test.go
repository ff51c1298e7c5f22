package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/growth-sessions/pkg/api"
	"github.com/oksasatya/growth-sessions/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeServer answers with the same envelope the real handlers write.
func fakeServer(t *testing.T) (*API, *[]string) {
	t.Helper()
	var seen []string
	r := gin.New()
	r.Use(func(c *gin.Context) {
		seen = append(seen, c.Request.Method+" "+c.Request.URL.RequestURI()+" "+c.GetHeader("Authorization"))
	})
	r.GET("/api/growth_sessions/week", func(c *gin.Context) {
		response.Success(c, http.StatusOK, []api.Day{
			{Date: "2020-05-04", GrowthSessions: []api.GrowthSession{sessionPayload()}},
			{Date: "2020-05-05"},
		}, "week", map[string]any{"first_day": "2020-05-04", "last_day": "2020-05-05"})
	})
	r.POST("/api/growth_sessions", func(c *gin.Context) {
		var req api.StoreGrowthSessionRequest
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil || req.Title == "" {
			response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", map[string]string{"title": "is required"})
			return
		}
		gs := sessionPayload()
		gs.Title = req.Title
		response.Success(c, http.StatusCreated, gs, "created", nil)
	})
	r.POST("/api/growth_sessions/:id/join", func(c *gin.Context) {
		response.Error[any](c, http.StatusConflict, "growth session is full", nil)
	})
	r.POST("/api/growth_sessions/:id/leave", func(c *gin.Context) {
		var gs api.GrowthSession
		if err := json.NewDecoder(c.Request.Body).Decode(&gs); err != nil || c.Param("id") != "10" {
			response.Error[any](c, http.StatusBadRequest, "bad session", nil)
			return
		}
		gs.Attendees = nil
		response.Success(c, http.StatusOK, gs, "left", nil)
	})
	r.DELETE("/api/growth_sessions/:id", func(c *gin.Context) {
		response.NoContent(c)
	})
	r.GET("/api/discord_channels", func(c *gin.Context) {
		response.Success(c, http.StatusOK, []api.DiscordChannel{{ID: "1", Name: "Chat One"}}, "discord channels", nil)
	})
	r.GET("/api/broken", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "<html>bad gateway</html>")
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewAPI(srv.URL+"/", "tok"), &seen
}

func TestAPIWeekReadsDataAndMeta(t *testing.T) {
	a, seen := fakeServer(t)

	week, err := a.Week(context.Background(), "2020-05-05")
	require.NoError(t, err)
	assert.Equal(t, "2020-05-04", week.FirstDay)
	assert.Equal(t, "2020-05-05", week.LastDay)
	require.Len(t, week.Days, 2)
	assert.Equal(t, "Mob programming", week.Days[0].GrowthSessions[0].Title)
	assert.Equal(t, []string{"GET /api/growth_sessions/week?date=2020-05-05 Bearer tok"}, *seen)
}

func TestAPIStore(t *testing.T) {
	a, _ := fakeServer(t)

	gs, err := a.Store(context.Background(), api.StoreGrowthSessionRequest{Title: "New mob"})
	require.NoError(t, err)
	assert.Equal(t, "New mob", gs.Title)
}

func TestAPIValidationErrorCarriesDetails(t *testing.T) {
	a, _ := fakeServer(t)

	_, err := a.Store(context.Background(), api.StoreGrowthSessionRequest{})
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.Equal(t, map[string]string{"title": "is required"}, apiErr.Details)
	assert.Equal(t, "422 validation failed (title: is required)", apiErr.Error())
}

func TestAPIConflict(t *testing.T) {
	a, _ := fakeServer(t)

	_, err := a.Join(context.Background(), sessionPayload())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "growth session is full", apiErr.Message)
	assert.Empty(t, apiErr.Details)
}

func TestAPILeaveSendsTheSession(t *testing.T) {
	a, seen := fakeServer(t)

	sent := sessionPayload()
	gs, err := a.Leave(context.Background(), sent)
	require.NoError(t, err)
	assert.Equal(t, sent.Title, gs.Title)
	assert.Equal(t, sent.Location, gs.Location)
	require.NotNil(t, gs.AttendeeLimit)
	assert.Equal(t, 4, *gs.AttendeeLimit)
	assert.Empty(t, gs.Attendees)
	assert.Equal(t, []string{"POST /api/growth_sessions/10/leave Bearer tok"}, *seen)
}

func TestAPIDeleteAcceptsNoContent(t *testing.T) {
	a, seen := fakeServer(t)

	require.NoError(t, a.Delete(context.Background(), sessionPayload()))
	assert.Equal(t, []string{"DELETE /api/growth_sessions/10 Bearer tok"}, *seen)
}

func TestAPIDiscordChannels(t *testing.T) {
	a, _ := fakeServer(t)

	channels, err := a.DiscordChannels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []api.DiscordChannel{{ID: "1", Name: "Chat One"}}, channels)
}

func TestAPINonJSONFailure(t *testing.T) {
	a, _ := fakeServer(t)

	_, err := do[struct{}](context.Background(), a, http.MethodGet, "/api/broken", nil, nil)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestAPIWithoutTokenSendsNoAuthorization(t *testing.T) {
	a, seen := fakeServer(t)
	a.Token = ""

	_, err := a.DiscordChannels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"GET /api/discord_channels "}, *seen)
}
