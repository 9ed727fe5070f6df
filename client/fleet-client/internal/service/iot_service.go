package service

import (
	"context"

	"motofleet/client/fleet-client/internal/models"
)

// IotFetcher defines the tag endpoints used by IotService.
type IotFetcher interface {
	GetIots(ctx context.Context) ([]models.Iot, error)
	GetIotByID(ctx context.Context, id int64) (*models.Iot, error)
	CreateIot(ctx context.Context, req models.IotRequest) (models.Iot, error)
	UpdateIot(ctx context.Context, id int64, req models.IotRequest) (models.Iot, error)
	DeleteIot(ctx context.Context, id int64) error
}

// IotService exposes tag operations.
type IotService struct {
	fetcher IotFetcher
}

// NewIotService builds IotService.
func NewIotService(fetcher IotFetcher) *IotService {
	return &IotService{fetcher: fetcher}
}

func (s *IotService) Listar(ctx context.Context) ([]models.Iot, error) {
	return s.fetcher.GetIots(ctx)
}

func (s *IotService) BuscarPorID(ctx context.Context, id int64) (*models.Iot, error) {
	return s.fetcher.GetIotByID(ctx, id)
}

func (s *IotService) Criar(ctx context.Context, req models.IotRequest) (models.Iot, error) {
	return s.fetcher.CreateIot(ctx, req)
}

func (s *IotService) Atualizar(ctx context.Context, id int64, req models.IotRequest) (models.Iot, error) {
	return s.fetcher.UpdateIot(ctx, id, req)
}

func (s *IotService) Deletar(ctx context.Context, id int64) error {
	return s.fetcher.DeleteIot(ctx, id)
}
