package clients

import (
	"context"
	"net/http"

	"motofleet/client/fleet-client/internal/models"
)

// AuthClient talks to /autenticacao.
type AuthClient struct {
	api API
}

// NewAuthClient returns client.
func NewAuthClient(api API) *AuthClient {
	return &AuthClient{api: api}
}

// Login exchanges credentials for a token.
func (c *AuthClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.api.Do(ctx, http.MethodPost, "/autenticacao/login", req, &resp)
	return resp, err
}

// Register creates an account.
func (c *AuthClient) Register(ctx context.Context, req models.CadastroRequest) (models.CadastroResponse, error) {
	var resp models.CadastroResponse
	err := c.api.Do(ctx, http.MethodPost, "/autenticacao/cadastrar", req, &resp)
	return resp, err
}
