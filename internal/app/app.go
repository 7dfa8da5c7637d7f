// Package app initializes and runs the NewsHub server. It opens the storage
// backend, restores any persisted session, handles graceful shutdown, and
// starts the HTTP server.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avoronov/newshub/internal/articles"
	"github.com/avoronov/newshub/internal/audit"
	"github.com/avoronov/newshub/internal/config"
	"github.com/avoronov/newshub/internal/credentials"
	"github.com/avoronov/newshub/internal/httpapi"
	"github.com/avoronov/newshub/internal/logging"
	"github.com/avoronov/newshub/internal/providers/news"
	"github.com/avoronov/newshub/internal/providers/weather"
	"github.com/avoronov/newshub/internal/sessions"
	"github.com/avoronov/newshub/internal/storage"
	"github.com/avoronov/newshub/internal/usersave"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	storage  storage.RepositoryManager
	sessions *sessions.Manager
	server   *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	m, err := storage.NewRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	credService := credentials.NewService(m.Credentials())
	auditService := audit.NewService(m.LoginRecords())
	sessionManager := sessions.NewManager(credService, m.Sessions(), auditService, logger)
	articleService := articles.NewService(m.SavedArticles())

	server := httpapi.NewServer(httpapi.Options{
		Addr:          cfg.ListenAddr,
		Logger:        logger,
		Sessions:      sessionManager,
		Articles:      articleService,
		Audit:         auditService,
		News:          news.NewClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, logger),
		Weather:       weather.NewClient(cfg.WeatherAPIBaseURL, cfg.WeatherAPIKey, logger),
		UserSave:      usersave.NewStore(cfg.UserSaveFile),
		JWTSecret:     []byte(cfg.SecretKey),
		TokenValidity: cfg.AccessTokenValidityDuration,
		DefaultCity:   cfg.DefaultCity,
	})

	return &App{
		config:   cfg,
		logger:   logger,
		storage:  m,
		sessions: sessionManager,
		server:   server,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.ListenAddr)

	app.initSignalHandler(cancelFunc)

	if _, err := app.sessions.Restore(ctx); err != nil {
		app.logger.Warn(ctx, "session restore failed", "error", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.storage.Close(); err != nil {
		return fmt.Errorf("storage close error: %w", err)
	}

	app.logger.Info(ctx, "app stopped")
	return nil
}
