// Package adminapp wires the dashboard backend together: config, logging,
// the upstream pet API client, redis-backed sessions and overrides, the view
// services and the chi router in front of them.
package adminapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/config"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/infra/httpclient"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/jobs/cleanup"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/moderation"
	redrepo "github.com/jayeshnarola-afk/pet-meeting-admin/internal/repo/redis"
	authsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/auth"
	catalogsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/catalog"
	overviewsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/overview"
	petssvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/pets"
	userssvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/users"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/upstream"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	redis      *goredis.Client
	httpRouter http.Handler
	cleanupJob *cleanup.Job
	stopJobs   context.CancelFunc
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	redisClient, err := redrepo.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	sessionRepo := redrepo.NewSessionRepo(redisClient)
	overrideRepo := redrepo.NewOverrideRepo(redisClient, cfg.Auth.SessionTTL)

	apiClient := upstream.NewClient(cfg.Upstream.BaseURL, httpclient.New(cfg.Upstream.Timeout))
	reconciler := moderation.NewReconciler(apiClient)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authService := authsvc.NewService(cfg.Auth, jwtManager, sessionRepo)
	userService := userssvc.NewService(apiClient, reconciler, overrideRepo)
	petService := petssvc.NewService(apiClient, reconciler, overrideRepo)
	catalogService := catalogsvc.NewService(apiClient)
	overviewService := overviewsvc.NewService(apiClient)

	RegisterRoutes(r, Dependencies{
		AuthService:     authService,
		UserService:     userService,
		PetService:      petService,
		CatalogService:  catalogService,
		OverviewService: overviewService,
		Logger:          log,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	cleanupJob := cleanup.New(
		sessionRepo,
		[]cleanup.ViewCache{userService, petService},
		cfg.Auth.SessionTTL,
		log,
	)

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		redis:      redisClient,
		httpRouter: r,
		cleanupJob: cleanupJob,
	}, nil
}

func (a *App) Run() error {
	jobCtx, cancel := context.WithCancel(context.Background())
	a.stopJobs = cancel
	go a.cleanupJob.Start(jobCtx)

	a.logger.Info("admin server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if a.stopJobs != nil {
		a.stopJobs()
	}
	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
