// Package service maps the domain verbs used by the controls onto fetcher calls.
// It adds no validation, error handling or state.
package service

import (
	"context"

	"motofleet/client/fleet-client/internal/models"
)

// MotoFetcher defines the vehicle endpoints used by MotoService.
type MotoFetcher interface {
	GetMotos(ctx context.Context) ([]models.Moto, error)
	GetMotoByID(ctx context.Context, id int64) (*models.Moto, error)
	GetMotoByPlaca(ctx context.Context, placa string) (*models.Moto, error)
	GetMotosBySetor(ctx context.Context, setor string) ([]models.Moto, error)
	GetMotoByIot(ctx context.Context, iotID int64) (*models.Moto, error)
	CreateMoto(ctx context.Context, req models.MotoRequest) (models.Moto, error)
	UpdateMoto(ctx context.Context, id int64, req models.MotoRequest) (models.Moto, error)
	DeleteMoto(ctx context.Context, id int64) error
}

// MotoService exposes vehicle operations.
type MotoService struct {
	fetcher MotoFetcher
}

// NewMotoService builds MotoService.
func NewMotoService(fetcher MotoFetcher) *MotoService {
	return &MotoService{fetcher: fetcher}
}

func (s *MotoService) Listar(ctx context.Context) ([]models.Moto, error) {
	return s.fetcher.GetMotos(ctx)
}

func (s *MotoService) BuscarPorID(ctx context.Context, id int64) (*models.Moto, error) {
	return s.fetcher.GetMotoByID(ctx, id)
}

func (s *MotoService) BuscarPorPlaca(ctx context.Context, placa string) (*models.Moto, error) {
	return s.fetcher.GetMotoByPlaca(ctx, placa)
}

func (s *MotoService) BuscarPorSetor(ctx context.Context, setor string) ([]models.Moto, error) {
	return s.fetcher.GetMotosBySetor(ctx, setor)
}

func (s *MotoService) BuscarPorIot(ctx context.Context, iotID int64) (*models.Moto, error) {
	return s.fetcher.GetMotoByIot(ctx, iotID)
}

func (s *MotoService) Criar(ctx context.Context, req models.MotoRequest) (models.Moto, error) {
	return s.fetcher.CreateMoto(ctx, req)
}

func (s *MotoService) Atualizar(ctx context.Context, id int64, req models.MotoRequest) (models.Moto, error) {
	return s.fetcher.UpdateMoto(ctx, id, req)
}

func (s *MotoService) Deletar(ctx context.Context, id int64) error {
	return s.fetcher.DeleteMoto(ctx, id)
}
