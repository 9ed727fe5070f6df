package clients

import (
	"context"
	"net/http"

	"motofleet/client/fleet-client/internal/models"
)

const iotsPath = "/iots"

// IotClient talks to /iots.
type IotClient struct {
	api API
}

// NewIotClient returns client.
func NewIotClient(api API) *IotClient {
	return &IotClient{api: api}
}

// GetIots lists every tag.
func (c *IotClient) GetIots(ctx context.Context) ([]models.Iot, error) {
	var iots []models.Iot
	err := c.api.Do(ctx, http.MethodGet, iotsPath, nil, &iots)
	return iots, err
}

// GetIotByID fetches one tag.
func (c *IotClient) GetIotByID(ctx context.Context, id int64) (*models.Iot, error) {
	var iot *models.Iot
	if err := c.api.Do(ctx, http.MethodGet, idPath(iotsPath, id), nil, &iot); err != nil {
		return nil, err
	}
	return iot, nil
}

// CreateIot registers a tag.
func (c *IotClient) CreateIot(ctx context.Context, req models.IotRequest) (models.Iot, error) {
	var iot models.Iot
	err := c.api.Do(ctx, http.MethodPost, iotsPath, req, &iot)
	return iot, err
}

// UpdateIot replaces a tag.
func (c *IotClient) UpdateIot(ctx context.Context, id int64, req models.IotRequest) (models.Iot, error) {
	var iot models.Iot
	err := c.api.Do(ctx, http.MethodPut, idPath(iotsPath, id), req, &iot)
	return iot, err
}

// DeleteIot removes a tag.
func (c *IotClient) DeleteIot(ctx context.Context, id int64) error {
	return c.api.Do(ctx, http.MethodDelete, idPath(iotsPath, id), nil, nil)
}
