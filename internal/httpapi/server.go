// Package httpapi exposes the application over HTTP: auth endpoints, the
// saved-article operations, provider proxies, and the legacy save-user
// route. Authorization decisions come from the authz package and are mapped
// to redirects here.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/avoronov/newshub/internal/articles"
	"github.com/avoronov/newshub/internal/audit"
	"github.com/avoronov/newshub/internal/logging"
	"github.com/avoronov/newshub/internal/providers/news"
	"github.com/avoronov/newshub/internal/providers/weather"
	"github.com/avoronov/newshub/internal/sessions"
	"github.com/avoronov/newshub/internal/usersave"
)

type Server struct {
	app    *fiber.App
	addr   string
	logger logging.Logger

	sessions *sessions.Manager
	articles *articles.Service
	audit    *audit.Service
	news     *news.Client
	weather  *weather.Client
	userSave *usersave.Store

	jwtSecret     []byte
	tokenValidity time.Duration
	defaultCity   string
}

type Options struct {
	Addr          string
	Logger        logging.Logger
	Sessions      *sessions.Manager
	Articles      *articles.Service
	Audit         *audit.Service
	News          *news.Client
	Weather       *weather.Client
	UserSave      *usersave.Store
	JWTSecret     []byte
	TokenValidity time.Duration
	DefaultCity   string
}

func NewServer(opts Options) *Server {
	s := &Server{
		app:           fiber.New(),
		addr:          opts.Addr,
		logger:        opts.Logger,
		sessions:      opts.Sessions,
		articles:      opts.Articles,
		audit:         opts.Audit,
		news:          opts.News,
		weather:       opts.Weather,
		userSave:      opts.UserSave,
		jwtSecret:     opts.JWTSecret,
		tokenValidity: opts.TokenValidity,
		defaultCity:   opts.DefaultCity,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Post("/auth/signup", s.handleSignup)
	api.Post("/auth/login", s.handleLogin)
	api.Post("/auth/logout", s.handleLogout)
	api.Get("/session", s.handleCurrentSession)

	api.Get("/news", s.handleSearchNews)
	api.Get("/news/breaking", s.handleBreakingNews)
	api.Get("/weather", s.handleWeather)

	api.Get("/saved", s.requireAuthenticated, s.handleListSaved)
	api.Post("/saved", s.requireAuthenticated, s.handleSaveArticle)
	api.Delete("/saved/:articleID", s.requireAuthenticated, s.handleRemoveSaved)

	api.Post("/articles", s.requireAdmin, s.handleComposeArticle)
	api.Get("/admin/logins", s.requireAdmin, s.handleListLogins)

	api.Post("/save-user", s.handleSaveUser)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	return s.app.Listen(s.addr, fiber.ListenConfig{
		DisableStartupMessage: true,
		GracefulContext:       ctx,
	})
}
