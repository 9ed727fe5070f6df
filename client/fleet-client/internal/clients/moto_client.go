package clients

import (
	"context"
	"net/http"
	"strconv"

	"motofleet/client/fleet-client/internal/models"
)

const motosPath = "/motos"

// MotoClient talks to /motos.
type MotoClient struct {
	api API
}

// NewMotoClient returns client.
func NewMotoClient(api API) *MotoClient {
	return &MotoClient{api: api}
}

// GetMotos lists every vehicle.
func (c *MotoClient) GetMotos(ctx context.Context) ([]models.Moto, error) {
	var motos []models.Moto
	err := c.api.Do(ctx, http.MethodGet, motosPath, nil, &motos)
	return motos, err
}

// GetMotoByID fetches one vehicle.
func (c *MotoClient) GetMotoByID(ctx context.Context, id int64) (*models.Moto, error) {
	return c.getOne(ctx, idPath(motosPath, id))
}

// GetMotoByPlaca looks a vehicle up by plate. The caller uppercases the plate.
// A null body yields a nil moto and no error.
func (c *MotoClient) GetMotoByPlaca(ctx context.Context, placa string) (*models.Moto, error) {
	return c.getOne(ctx, segmentPath(motosPath+"/placa", placa))
}

// GetMotosBySetor lists the vehicles in a sector.
func (c *MotoClient) GetMotosBySetor(ctx context.Context, setor string) ([]models.Moto, error) {
	var motos []models.Moto
	err := c.api.Do(ctx, http.MethodGet, segmentPath(motosPath+"/setor", setor), nil, &motos)
	return motos, err
}

// GetMotoByIot fetches the vehicle a tag is attached to.
func (c *MotoClient) GetMotoByIot(ctx context.Context, iotID int64) (*models.Moto, error) {
	return c.getOne(ctx, motosPath+"/por-iot/"+strconv.FormatInt(iotID, 10))
}

// CreateMoto registers a vehicle.
func (c *MotoClient) CreateMoto(ctx context.Context, req models.MotoRequest) (models.Moto, error) {
	var moto models.Moto
	err := c.api.Do(ctx, http.MethodPost, motosPath, req, &moto)
	return moto, err
}

// UpdateMoto replaces a vehicle.
func (c *MotoClient) UpdateMoto(ctx context.Context, id int64, req models.MotoRequest) (models.Moto, error) {
	var moto models.Moto
	err := c.api.Do(ctx, http.MethodPut, idPath(motosPath, id), req, &moto)
	return moto, err
}

// DeleteMoto removes a vehicle.
func (c *MotoClient) DeleteMoto(ctx context.Context, id int64) error {
	return c.api.Do(ctx, http.MethodDelete, idPath(motosPath, id), nil, nil)
}

func (c *MotoClient) getOne(ctx context.Context, path string) (*models.Moto, error) {
	var moto *models.Moto
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &moto); err != nil {
		return nil, err
	}
	return moto, nil
}
