package service

import (
	"context"

	"motofleet/client/fleet-client/internal/models"
)

// AuthFetcher defines the authentication endpoints used by AuthService.
type AuthFetcher interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Register(ctx context.Context, req models.CadastroRequest) (models.CadastroResponse, error)
}

// AuthService exposes login and registration.
type AuthService struct {
	fetcher AuthFetcher
}

// NewAuthService builds AuthService.
func NewAuthService(fetcher AuthFetcher) *AuthService {
	return &AuthService{fetcher: fetcher}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return s.fetcher.Login(ctx, req)
}

func (s *AuthService) Cadastrar(ctx context.Context, req models.CadastroRequest) (models.CadastroResponse, error) {
	return s.fetcher.Register(ctx, req)
}
