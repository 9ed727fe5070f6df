package app

import (
	"context"

	"go.uber.org/zap"

	"motofleet/client/fleet-client/internal/apiclient"
	"motofleet/client/fleet-client/internal/clients"
	appconfig "motofleet/client/fleet-client/internal/config"
	"motofleet/client/fleet-client/internal/control"
	"motofleet/client/fleet-client/internal/i18n"
	"motofleet/client/fleet-client/internal/service"
	"motofleet/client/fleet-client/internal/session"
	"motofleet/client/fleet-client/internal/storage"
	"motofleet/client/fleet-client/internal/validation"
)

// App wires dependencies for the fleet client.
type App struct {
	Translator i18n.Translator
	Session    *session.Store

	Auth    *control.AuthControl
	Home    *control.HomeControl
	Moto    *control.MotoControl
	Iot     *control.IotControl
	Usuario *control.UsuarioControl

	store  storage.Store
	logger *zap.Logger
}

// New builds the application graph and restores the persisted session.
func New(ctx context.Context, cfg *appconfig.Config, alerter control.Alerter, logger *zap.Logger) (*App, error) {
	store, err := storage.New(ctx, cfg.StorageSettings(), storage.Dependencies{})
	if err != nil {
		return nil, err
	}
	return NewWithStore(ctx, cfg, store, alerter, logger), nil
}

// NewWithStore is New with an already-open store. The App takes ownership of store.
func NewWithStore(ctx context.Context, cfg *appconfig.Config, store storage.Store, alerter control.Alerter, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	api := apiclient.New(apiclient.Options{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: apiclient.NewDefaultHTTPClient(cfg.API.Timeout),
		Tokens:     apiclient.StoreTokens(store),
		Logger:     logger.Named("api"),
	})

	translator := i18n.New(cfg.Locale)
	deps := control.Deps{
		Translator: translator,
		Alerter:    alerter,
		Schemas:    validation.New(translator),
		Logger:     logger.Named("control"),
	}

	sess := session.New(store, logger.Named("session"))
	sess.Load(ctx)

	auth := control.NewAuthControl(service.NewAuthService(clients.NewAuthClient(api)), sess, store, deps)

	return &App{
		Translator: translator,
		Session:    sess,
		Auth:       auth,
		Home:       control.NewHomeControl(auth, deps),
		Moto:       control.NewMotoControl(service.NewMotoService(clients.NewMotoClient(api)), deps),
		Iot:        control.NewIotControl(service.NewIotService(clients.NewIotClient(api)), deps),
		Usuario:    control.NewUsuarioControl(service.NewUsuarioService(clients.NewUsuarioClient(api)), deps),
		store:      store,
		logger:     logger,
	}
}

// Close detaches the controls and releases the store.
func (a *App) Close(ctx context.Context) {
	a.Auth.Close()
	a.Moto.Close()
	a.Iot.Close()
	a.Usuario.Close()
	if err := a.store.Close(ctx); err != nil {
		a.logger.Warn("failed to close storage", zap.Error(err))
	}
}
