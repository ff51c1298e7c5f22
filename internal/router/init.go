package router

import (
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/internal/container"
	"github.com/oksasatya/growth-sessions/internal/infrastructure/icalfeed"
	pginfra "github.com/oksasatya/growth-sessions/internal/infrastructure/postgres"
	"github.com/oksasatya/growth-sessions/internal/infrastructure/search"
	handlers "github.com/oksasatya/growth-sessions/internal/interface/http"
	"github.com/oksasatya/growth-sessions/internal/router/modules"
)

type Services struct {
	Sessions *application.GrowthSessionService
	Auth     *application.AuthService
	Channels *application.ChannelService
	// Index is nil when Elasticsearch is not configured.
	Index *search.Index
}

// BuildServices wires repositories and services from the container singletons.
func BuildServices() Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	loc := container.GetLocation()

	users := pginfra.NewUserRepository(pool)
	sessions := pginfra.NewGrowthSessionRepository(pool, loc)
	comments := pginfra.NewCommentRepository(pool)
	channels := pginfra.NewDiscordChannelRepository(pool)

	var (
		index    *search.Index
		searcher application.Searcher
	)
	if es := container.GetES(); es != nil {
		index = search.NewIndex(es, cfg.ESSessionsIndex, logger)
		searcher = index
	}

	oauth := &oauth2.Config{
		ClientID:     cfg.GithubClientID,
		ClientSecret: cfg.GithubClientSecret,
		RedirectURL:  cfg.GithubRedirectURL,
		Scopes:       []string{"read:user", "user:email", "read:org"},
		Endpoint:     github.Endpoint,
	}

	return Services{
		Sessions: application.NewGrowthSessionService(sessions, comments, users, container.GetDispatcher(), container.GetClock(), loc, cfg.DefaultEnd(), searcher, logger),
		Auth:     application.NewAuthService(users, container.GetJWT(), oauth, container.GetRedis(), container.GetClock(), logger, cfg.AppURL, cfg.GithubOrg),
		Channels: application.NewChannelService(channels, container.GetRedis(), 0, logger),
		Index:    index,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, svc Services) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	domain := cfg.AppURL
	if u, err := url.Parse(cfg.AppURL); err == nil && u.Hostname() != "" {
		domain = u.Hostname()
	}
	feed := icalfeed.Options{
		Name:       cfg.AppName,
		ProductID:  "-//Vehikl//Growth Sessions//EN",
		Domain:     domain,
		SessionURL: cfg.SessionURL,
	}

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, cfg.CookieDomain, cfg.CookieSecure, cfg.FrontendURL, logger), svc.Auth, jwt))
	r.Add(modules.NewGrowthSessionModule(handlers.NewGrowthSessionHandler(svc.Sessions, logger), svc.Auth, jwt))
	r.Add(modules.NewChannelModule(handlers.NewChannelHandler(svc.Channels, logger)))
	r.Add(modules.NewCalendarModule(handlers.NewCalendarHandler(svc.Auth, svc.Sessions, feed, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(application.MetricsName))
	}
}
