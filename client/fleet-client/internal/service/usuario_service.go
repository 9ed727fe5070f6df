package service

import (
	"context"

	"motofleet/client/fleet-client/internal/models"
)

// UsuarioFetcher defines the user endpoint used by UsuarioService.
type UsuarioFetcher interface {
	GetUsuarioByID(ctx context.Context, id int64) (*models.Usuario, error)
}

// UsuarioService exposes the read-only user profile.
type UsuarioService struct {
	fetcher UsuarioFetcher
}

// NewUsuarioService builds UsuarioService.
func NewUsuarioService(fetcher UsuarioFetcher) *UsuarioService {
	return &UsuarioService{fetcher: fetcher}
}

func (s *UsuarioService) BuscarPorID(ctx context.Context, id int64) (*models.Usuario, error) {
	return s.fetcher.GetUsuarioByID(ctx, id)
}
