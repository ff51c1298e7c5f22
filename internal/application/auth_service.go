package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	repo "github.com/oksasatya/growth-sessions/internal/domain/repository"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

const (
	githubAPI     = "https://api.github.com"
	oauthStateTTL = 10 * time.Minute
)

// AuthService signs users in through GitHub and keeps their sessions in Redis.
type AuthService struct {
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
	OAuth   *oauth2.Config
	Redis   *redis.Client
	Clock   clock.Clock
	Logger  *logrus.Logger
	AppURL  string
	Org     string
	BaseURL string // GitHub REST root, overridable for tests
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
	SessionID          string
}

// GithubProfile is the subset of the GitHub user we store.
type GithubProfile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, oauth *oauth2.Config, rdb *redis.Client, clk clock.Clock, logger *logrus.Logger, appURL, org string) *AuthService {
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	return &AuthService{
		Users:   users,
		JWT:     jwt,
		OAuth:   oauth,
		Redis:   rdb,
		Clock:   clk,
		Logger:  logger,
		AppURL:  strings.TrimRight(appURL, "/"),
		Org:     org,
		BaseURL: githubAPI,
	}
}

// BeginLogin stores a fresh state and returns the GitHub authorize URL carrying it.
func (s *AuthService) BeginLogin(ctx context.Context) (authURL, state string, err error) {
	state, err = helpers.RandomToken(24)
	if err != nil {
		return "", "", err
	}
	if err := s.Redis.Set(ctx, helpers.KeyOAuthState(state), "1", oauthStateTTL).Err(); err != nil {
		return "", "", fmt.Errorf("store oauth state: %w", err)
	}
	return s.OAuth.AuthCodeURL(state), state, nil
}

// StateTTL is how long a started login stays valid.
func (s *AuthService) StateTTL() time.Duration { return oauthStateTTL }

// CompleteLogin checks the state (once), exchanges the code and upserts the GitHub user.
func (s *AuthService) CompleteLogin(ctx context.Context, state, cookieState, code string) (*entity.User, TokenPair, error) {
	if state == "" || state != cookieState {
		return nil, TokenPair{}, ErrInvalidState
	}
	n, err := s.Redis.Del(ctx, helpers.KeyOAuthState(state)).Result()
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("consume oauth state: %w", err)
	}
	if n == 0 {
		return nil, TokenPair{}, ErrInvalidState
	}

	tok, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("github code exchange failed")
		}
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	hc := s.OAuth.Client(ctx, tok)

	profile, err := s.fetchProfile(ctx, hc)
	if err != nil {
		return nil, TokenPair{}, err
	}
	member, err := s.isOrgMember(ctx, hc, profile.Login)
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("login", profile.Login).Warn("github org membership check failed")
	}

	u := &entity.User{
		Name:           profile.Name,
		GithubNickname: profile.Login,
		Email:          profile.Email,
		AvatarURL:      profile.AvatarURL,
		IsVehiklMember: member,
	}
	if u.Name == "" {
		u.Name = profile.Login
	}
	if err := s.Users.UpsertByGithub(ctx, u); err != nil {
		return nil, TokenPair{}, fmt.Errorf("upsert github user %s: %w", profile.Login, err)
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "login": u.GithubNickname}).Info("user signed in")
	}
	return u, pair, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	key := helpers.KeySession(sid)
	pipe := s.Redis.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":         u.ID,
		"github_nickname": u.GithubNickname,
		"name":            u.Name,
		"created_at":      s.Clock.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, s.JWT.RefreshTTL)
	pipe.SAdd(ctx, helpers.KeyUserSessions(u.ID), sid)
	if _, err := pipe.Exec(ctx); err != nil {
		return TokenPair{}, fmt.Errorf("store session: %w", err)
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp, SessionID: sid}, nil
}

// SessionUser returns the user id stored for sid, or ErrInvalidCredentials once the session
// has been dropped.
func (s *AuthService) SessionUser(ctx context.Context, sid string) (int64, error) {
	raw, err := s.Redis.HGet(ctx, helpers.KeySession(sid), "user_id").Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidCredentials
	}
	return id, nil
}

// Refresh rotates the session: the old sid stops working as soon as the new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.User, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	uid, err := s.SessionUser(ctx, claims.SessionID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if uid != claims.UserID {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	s.dropSession(ctx, uid, claims.SessionID)
	return u, pair, nil
}

func (s *AuthService) Logout(ctx context.Context, userID int64, sid string) error {
	return s.dropSession(ctx, userID, sid)
}

// LogoutAll drops every live session of the user.
func (s *AuthService) LogoutAll(ctx context.Context, userID int64) error {
	sids, err := s.Redis.SMembers(ctx, helpers.KeyUserSessions(userID)).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(sids)+1)
	for _, sid := range sids {
		keys = append(keys, helpers.KeySession(sid))
	}
	keys = append(keys, helpers.KeyUserSessions(userID))
	return s.Redis.Del(ctx, keys...).Err()
}

func (s *AuthService) dropSession(ctx context.Context, userID int64, sid string) error {
	pipe := s.Redis.TxPipeline()
	pipe.Del(ctx, helpers.KeySession(sid))
	pipe.SRem(ctx, helpers.KeyUserSessions(userID), sid)
	if _, err := pipe.Exec(ctx); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("sid", sid).Warn("drop session failed")
		}
		return err
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// IssueCalendarToken replaces the user's feed token. The token is "<user id>.<secret>" and
// only a bcrypt hash of the secret is kept, so it can be shown once.
func (s *AuthService) IssueCalendarToken(ctx context.Context, userID int64) (token, feedURL string, err error) {
	secret, err := helpers.RandomToken(24)
	if err != nil {
		return "", "", err
	}
	hash, err := helpers.HashSecret(secret)
	if err != nil {
		return "", "", err
	}
	if err := s.Users.SetCalendarTokenHash(ctx, userID, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", fmt.Errorf("store calendar token: %w", err)
	}
	token = strconv.FormatInt(userID, 10) + "." + secret
	return token, s.AppURL + "/api/calendar/" + token, nil
}

// ResolveCalendarToken returns the owner of a feed token.
func (s *AuthService) ResolveCalendarToken(ctx context.Context, token string) (*entity.User, error) {
	rawID, secret, ok := strings.Cut(strings.TrimSuffix(token, ".ics"), ".")
	if !ok || secret == "" {
		return nil, ErrInvalidCredentials
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndSecret(u.CalendarTokenHash, secret) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AuthService) fetchProfile(ctx context.Context, hc *http.Client) (GithubProfile, error) {
	var p GithubProfile
	if err := s.getJSON(ctx, hc, "/user", &p); err != nil {
		return GithubProfile{}, fmt.Errorf("fetch github user: %w", err)
	}
	if p.Login == "" {
		return GithubProfile{}, ErrInvalidCredentials
	}
	if p.Email != "" {
		return p, nil
	}
	// Private emails only show up on /user/emails.
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := s.getJSON(ctx, hc, "/user/emails", &emails); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("login", p.Login).Debug("github emails unavailable")
		}
		return p, nil
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			p.Email = e.Email
			break
		}
	}
	return p, nil
}

// isOrgMember uses the membership endpoint: 204 means member, 404 or 302 means not.
func (s *AuthService) isOrgMember(ctx context.Context, hc *http.Client, login string) (bool, error) {
	if s.Org == "" {
		return false, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/orgs/"+s.Org+"/members/"+login, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	noRedirect := *hc
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	res, err := noRedirect.Do(req)
	if err != nil {
		return false, err
	}
	defer func() { _ = res.Body.Close() }()
	switch res.StatusCode {
	case http.StatusNoContent:
		return true, nil
	case http.StatusNotFound, http.StatusFound:
		return false, nil
	}
	return false, fmt.Errorf("github membership: unexpected status %s", res.Status)
}

func (s *AuthService) getJSON(ctx context.Context, hc *http.Client, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	res, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", path, res.Status)
	}
	return json.NewDecoder(res.Body).Decode(dest)
}
