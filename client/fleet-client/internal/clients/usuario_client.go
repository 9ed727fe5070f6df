package clients

import (
	"context"
	"net/http"

	"motofleet/client/fleet-client/internal/models"
)

// UsuarioClient talks to /usuarios.
type UsuarioClient struct {
	api API
}

// NewUsuarioClient returns client.
func NewUsuarioClient(api API) *UsuarioClient {
	return &UsuarioClient{api: api}
}

// GetUsuarioByID fetches one user profile.
func (c *UsuarioClient) GetUsuarioByID(ctx context.Context, id int64) (*models.Usuario, error) {
	var usuario *models.Usuario
	if err := c.api.Do(ctx, http.MethodGet, idPath("/usuarios", id), nil, &usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}
