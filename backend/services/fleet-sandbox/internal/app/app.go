package app

import (
	"context"
	"net"
	"net/http"

	"go.uber.org/zap"

	appconfig "motofleet/backend/services/fleet-sandbox/internal/config"
	"motofleet/backend/services/fleet-sandbox/internal/http"
	"motofleet/backend/services/fleet-sandbox/internal/http/handlers"
	"motofleet/backend/services/fleet-sandbox/internal/metrics"
	"motofleet/backend/services/fleet-sandbox/internal/password"
	"motofleet/backend/services/fleet-sandbox/internal/repository"
	"motofleet/backend/services/fleet-sandbox/internal/service"
)

// App wires dependencies for the sandbox API.
type App struct {
	server  *httpserver.Server
	handler http.Handler
	repo    *repository.Repository
	logger  *zap.Logger
}

// New builds application graph. hasher may be nil to use bcrypt's default cost.
func New(ctx context.Context, cfg *appconfig.Config, hasher password.Hasher, logger *zap.Logger) (*App, error) {
	if hasher == nil {
		hasher = password.NewBcryptHasher(0)
	}

	repo := repository.New()
	tokenSvc := service.NewTokenService(cfg.JWT.Secret, cfg.JWTExpiration())
	authSvc := service.NewAuthService(repo, hasher, tokenSvc, logger)
	fleetSvc := service.NewFleetService(repo)
	m := metrics.New()

	if cfg.Seed.Enabled {
		if err := Seed(ctx, authSvc, fleetSvc, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			return nil, err
		}
		logger.Info("demo data seeded", zap.String("username", cfg.Seed.Username))
	}

	router := httpserver.NewRouter(httpserver.Routes{
		Health:  handlers.NewHealthHandler(),
		Auth:    handlers.NewAuthHandlers(authSvc, m, logger),
		Motos:   handlers.NewMotoHandlers(fleetSvc),
		Iots:    handlers.NewIotHandlers(fleetSvc),
		Usuario: handlers.NewUsuarioHandler(authSvc),
		Tokens:  tokenSvc,
		Metrics: m,
		Logger:  logger,
	})

	return &App{
		server:  httpserver.NewServer(cfg.HTTPAddress(), router, logger),
		handler: router,
		repo:    repo,
		logger:  logger,
	}, nil
}

// Handler exposes the router, mainly for httptest.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Serve is Run on an existing listener.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	return a.server.Serve(ctx, ln)
}
