// Package client talks to the growth sessions API and holds the client-side rules the
// command line tool applies before calling it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oksasatya/growth-sessions/pkg/api"
	"github.com/oksasatya/growth-sessions/pkg/response"
)

// Error is a non-2xx answer from the API. Details holds per-field validation messages.
type Error struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%d %s", e.Status, e.Message)
	}
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Details[f])
	}
	return fmt.Sprintf("%d %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

// API is a thin JSON client. It never retries.
type API struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewAPI(baseURL, token string) *API {
	return &API{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// WeekResult is one week of days plus the range the server resolved.
type WeekResult struct {
	Days     []api.Day
	FirstDay string
	LastDay  string
}

// Week fetches Monday to Friday around date; an empty date means the current week.
func (a *API) Week(ctx context.Context, date string) (WeekResult, error) {
	path := "/api/growth_sessions/week"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	var meta struct {
		FirstDay string `json:"first_day"`
		LastDay  string `json:"last_day"`
	}
	days, err := do[[]api.Day](ctx, a, http.MethodGet, path, nil, &meta)
	if err != nil {
		return WeekResult{}, err
	}
	return WeekResult{Days: days, FirstDay: meta.FirstDay, LastDay: meta.LastDay}, nil
}

func (a *API) Get(ctx context.Context, id int64) (api.GrowthSession, error) {
	return do[api.GrowthSession](ctx, a, http.MethodGet, sessionPath(id), nil, nil)
}

func (a *API) Store(ctx context.Context, req api.StoreGrowthSessionRequest) (api.GrowthSession, error) {
	return do[api.GrowthSession](ctx, a, http.MethodPost, "/api/growth_sessions", req, nil)
}

func (a *API) Update(ctx context.Context, id int64, req api.StoreGrowthSessionRequest) (api.GrowthSession, error) {
	return do[api.GrowthSession](ctx, a, http.MethodPut, sessionPath(id), req, nil)
}

func (a *API) Delete(ctx context.Context, s api.GrowthSession) error {
	_, err := do[struct{}](ctx, a, http.MethodDelete, sessionPath(s.ID), nil, nil)
	return err
}

// Join and Leave post the session as the caller last saw it; the server answers with the
// current one.
func (a *API) Join(ctx context.Context, s api.GrowthSession) (api.GrowthSession, error) {
	return do[api.GrowthSession](ctx, a, http.MethodPost, sessionPath(s.ID)+"/join", s, nil)
}

func (a *API) Leave(ctx context.Context, s api.GrowthSession) (api.GrowthSession, error) {
	return do[api.GrowthSession](ctx, a, http.MethodPost, sessionPath(s.ID)+"/leave", s, nil)
}

func (a *API) Comment(ctx context.Context, id int64, content string) (api.Comment, error) {
	return do[api.Comment](ctx, a, http.MethodPost, sessionPath(id)+"/comments", api.StoreCommentRequest{Content: content}, nil)
}

func (a *API) DiscordChannels(ctx context.Context) ([]api.DiscordChannel, error) {
	return do[[]api.DiscordChannel](ctx, a, http.MethodGet, "/api/discord_channels", nil, nil)
}

func (a *API) Search(ctx context.Context, q string) ([]api.GrowthSession, error) {
	return do[[]api.GrowthSession](ctx, a, http.MethodGet, "/api/growth_sessions/search?q="+url.QueryEscape(q), nil, nil)
}

func (a *API) Me(ctx context.Context) (api.User, error) {
	return do[api.User](ctx, a, http.MethodGet, "/api/me", nil, nil)
}

func sessionPath(id int64) string {
	return "/api/growth_sessions/" + strconv.FormatInt(id, 10)
}

// do sends body as JSON and unwraps the response envelope. meta, when non-nil, receives the
// envelope's meta object.
func do[T any](ctx context.Context, a *API, method, path string, body any, meta any) (T, error) {
	var zero T
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, rdr)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}
	hc := a.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return zero, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode == http.StatusNoContent {
		return zero, nil
	}

	var env struct {
		response.APIResponse[T]
		Meta  json.RawMessage `json:"meta,omitempty"`
		Error *struct {
			Details map[string]string `json:"details"`
		} `json:"error,omitempty"`
	}
	decodeErr := json.NewDecoder(res.Body).Decode(&env)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &Error{Status: res.StatusCode, Message: env.Message}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(res.StatusCode)
		}
		if decodeErr == nil && env.Error != nil {
			apiErr.Details = env.Error.Details
		}
		return zero, apiErr
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("decode %s %s: %w", method, path, decodeErr)
	}
	if meta != nil && len(env.Meta) > 0 {
		if err := json.Unmarshal(env.Meta, meta); err != nil {
			return zero, fmt.Errorf("decode meta of %s %s: %w", method, path, err)
		}
	}
	return env.Data, nil
}
