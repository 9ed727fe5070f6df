package control

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"motofleet/client/fleet-client/internal/models"
	"motofleet/client/fleet-client/internal/session"
	"motofleet/client/fleet-client/internal/storage"
)

// AuthService is the authentication surface AuthControl depends on.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Cadastrar(ctx context.Context, req models.CadastroRequest) (models.CadastroResponse, error)
}

// AuthData is the outcome of the last login or registration.
type AuthData struct {
	UserID   int64
	Cadastro *models.CadastroResponse
}

// AuthControl backs the welcome and registration screens.
type AuthControl struct {
	base[AuthData]
	svc     AuthService
	session *session.Store
	kv      storage.Store
}

// NewAuthControl builds AuthControl. kv is where userId is kept next to the session token.
func NewAuthControl(svc AuthService, sess *session.Store, kv storage.Store, deps Deps) *AuthControl {
	c := &AuthControl{svc: svc, session: sess, kv: kv}
	c.init(deps, AuthData{})
	return c
}

// Limpar drops the current error.
func (c *AuthControl) Limpar() {
	c.ClearError()
}

// Login authenticates and stores the session. Empty credentials raise an alert instead.
func (c *AuthControl) Login(ctx context.Context, username, senha string) bool {
	username = strings.TrimSpace(username)
	if username == "" || senha == "" {
		c.alert("common.attention", "welcome.alerts.missingCredentials")
		return false
	}

	c.update(Begin[AuthData])
	defer c.settle()

	resp, err := c.svc.Login(ctx, models.LoginRequest{Username: username, Senha: senha})
	if err != nil {
		c.fail(ctx, err, "auth.errors.login")
		return false
	}
	if err := c.session.SetProfile(ctx, resp.Token, username); err != nil {
		c.fail(ctx, err, "auth.errors.login")
		return false
	}
	if resp.ID != 0 {
		if err := c.kv.Set(ctx, storage.KeyUserID, strconv.FormatInt(resp.ID, 10)); err != nil {
			c.deps.Logger.Warn("persist user id failed", zap.Int64("user_id", resp.ID), zap.Error(err))
		}
	}

	c.apply(ctx, func(s State[AuthData]) State[AuthData] {
		return Succeed(s, AuthData{UserID: resp.ID})
	})
	return true
}

// Cadastrar validates and registers a new account.
func (c *AuthControl) Cadastrar(ctx context.Context, in models.CadastroInput) *models.CadastroResponse {
	c.update(Begin[AuthData])
	defer c.settle()

	req, err := c.deps.Schemas.Cadastro(in)
	if err != nil {
		c.fail(ctx, err, "auth.errors.register")
		return nil
	}
	resp, err := c.svc.Cadastrar(ctx, req)
	if err != nil {
		c.fail(ctx, err, "auth.errors.register")
		return nil
	}
	c.apply(ctx, func(s State[AuthData]) State[AuthData] {
		return Succeed(s, AuthData{UserID: resp.ID, Cadastro: &resp})
	})
	return &resp
}

// Logout clears the session and the stored user id. Failures are logged and returned.
func (c *AuthControl) Logout(ctx context.Context) error {
	if err := c.session.ClearProfile(ctx); err != nil {
		c.deps.Logger.Error("logout failed", zap.Error(err))
		return err
	}
	if err := c.kv.Remove(ctx, storage.KeyUserID); err != nil {
		c.deps.Logger.Error("logout failed", zap.Error(err))
		return err
	}
	c.update(func(State[AuthData]) State[AuthData] { return State[AuthData]{} })
	return nil
}

// UserID returns the id persisted at login, or 0.
func (c *AuthControl) UserID(ctx context.Context) int64 {
	raw, ok, err := c.kv.Get(ctx, storage.KeyUserID)
	if err != nil {
		c.deps.Logger.Warn("read user id failed", zap.Error(err))
		return 0
	}
	if !ok {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
