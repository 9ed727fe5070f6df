package control

import (
	"context"

	"motofleet/client/fleet-client/internal/models"
)

// IotService is the tag surface IotControl depends on.
type IotService interface {
	Listar(ctx context.Context) ([]models.Iot, error)
	BuscarPorID(ctx context.Context, id int64) (*models.Iot, error)
	Criar(ctx context.Context, req models.IotRequest) (models.Iot, error)
	Atualizar(ctx context.Context, id int64, req models.IotRequest) (models.Iot, error)
	Deletar(ctx context.Context, id int64) error
}

// IotData is the tag screen state.
type IotData struct {
	Iots    []models.Iot
	Current *models.Iot
}

// IotControl backs the tag screens.
type IotControl struct {
	base[IotData]
	svc IotService
}

// NewIotControl builds IotControl.
func NewIotControl(svc IotService, deps Deps) *IotControl {
	c := &IotControl{svc: svc}
	c.init(deps, IotData{})
	return c
}

// Limpar drops the current error.
func (c *IotControl) Limpar() {
	c.ClearError()
}

// Listar replaces the held list.
func (c *IotControl) Listar(ctx context.Context) []models.Iot {
	c.update(Begin[IotData])
	defer c.settle()

	iots, err := c.svc.Listar(ctx)
	if err != nil {
		c.fail(ctx, err, "iot.errors.loadAll")
		return nil
	}
	c.apply(ctx, func(s State[IotData]) State[IotData] {
		d := s.Data
		d.Iots = iots
		return Succeed(s, d)
	})
	return iots
}

// BuscarPorID loads one tag into Current.
func (c *IotControl) BuscarPorID(ctx context.Context, id int64) *models.Iot {
	c.update(func(s State[IotData]) State[IotData] {
		s = Begin(s)
		s.Data.Current = nil
		return s
	})
	defer c.settle()

	iot, err := c.svc.BuscarPorID(ctx, id)
	if err != nil {
		c.fail(ctx, err, "iot.errors.fetch")
		return nil
	}
	c.apply(ctx, func(s State[IotData]) State[IotData] {
		d := s.Data
		d.Current = iot
		return Succeed(s, d)
	})
	return iot
}

// Criar validates req, registers the tag and appends it.
func (c *IotControl) Criar(ctx context.Context, req models.IotRequest) *models.Iot {
	c.update(BeginWrite[IotData])

	if err := c.deps.Schemas.Iot(req); err != nil {
		c.fail(ctx, err, "iot.errors.create")
		return nil
	}
	iot, err := c.svc.Criar(ctx, req)
	if err != nil {
		c.fail(ctx, err, "iot.errors.create")
		return nil
	}
	c.apply(ctx, func(s State[IotData]) State[IotData] {
		d := s.Data
		d.Iots = append(append(make([]models.Iot, 0, len(d.Iots)+1), d.Iots...), iot)
		return Merge(s, d)
	})
	return &iot
}

// Atualizar validates req, updates tag id and replaces it in the held list.
func (c *IotControl) Atualizar(ctx context.Context, id int64, req models.IotRequest) *models.Iot {
	c.update(BeginWrite[IotData])

	if err := c.deps.Schemas.Iot(req); err != nil {
		c.fail(ctx, err, "iot.errors.update")
		return nil
	}
	iot, err := c.svc.Atualizar(ctx, id, req)
	if err != nil {
		c.fail(ctx, err, "iot.errors.update")
		return nil
	}
	c.apply(ctx, func(s State[IotData]) State[IotData] {
		d := s.Data
		iots := make([]models.Iot, len(d.Iots))
		for i, existing := range d.Iots {
			if existing.ID == id {
				iots[i] = iot
				continue
			}
			iots[i] = existing
		}
		d.Iots = iots
		if d.Current != nil && d.Current.ID == id {
			updated := iot
			d.Current = &updated
		}
		return Merge(s, d)
	})
	return &iot
}

// Deletar removes tag id and drops it from the held list.
func (c *IotControl) Deletar(ctx context.Context, id int64) bool {
	c.update(BeginWrite[IotData])

	if err := c.svc.Deletar(ctx, id); err != nil {
		c.fail(ctx, err, "iot.errors.delete")
		return false
	}
	c.apply(ctx, func(s State[IotData]) State[IotData] {
		d := s.Data
		iots := make([]models.Iot, 0, len(d.Iots))
		for _, existing := range d.Iots {
			if existing.ID != id {
				iots = append(iots, existing)
			}
		}
		d.Iots = iots
		if d.Current != nil && d.Current.ID == id {
			d.Current = nil
		}
		return Merge(s, d)
	})
	return true
}
