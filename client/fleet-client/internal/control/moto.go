package control

import (
	"context"
	"strings"
	"sync"

	"motofleet/client/fleet-client/internal/apiclient"
	"motofleet/client/fleet-client/internal/models"
)

// MotoService is the vehicle surface MotoControl depends on.
type MotoService interface {
	Listar(ctx context.Context) ([]models.Moto, error)
	BuscarPorID(ctx context.Context, id int64) (*models.Moto, error)
	BuscarPorPlaca(ctx context.Context, placa string) (*models.Moto, error)
	BuscarPorSetor(ctx context.Context, setor string) ([]models.Moto, error)
	BuscarPorIot(ctx context.Context, iotID int64) (*models.Moto, error)
	Criar(ctx context.Context, req models.MotoRequest) (models.Moto, error)
	Atualizar(ctx context.Context, id int64, req models.MotoRequest) (models.Moto, error)
	Deletar(ctx context.Context, id int64) error
}

// MotoData is the vehicle screen state.
type MotoData struct {
	Motos []models.Moto
	// Found is the result of the last single lookup; nil with Searched set means nothing matched.
	Found    *models.Moto
	Searched bool
}

// MotoControl backs the vehicle list, lookup and registration screens.
type MotoControl struct {
	base[MotoData]
	svc MotoService

	srcMu sync.Mutex
	setor *string // last list source; nil means all vehicles
}

// NewMotoControl builds MotoControl.
func NewMotoControl(svc MotoService, deps Deps) *MotoControl {
	c := &MotoControl{svc: svc}
	c.init(deps, MotoData{})
	return c
}

// Limpar forgets the last lookup and error.
func (c *MotoControl) Limpar() {
	c.update(func(s State[MotoData]) State[MotoData] {
		s = ClearError(s)
		s.Data.Found = nil
		s.Data.Searched = false
		return s
	})
}

// Listar replaces the held list with every vehicle.
func (c *MotoControl) Listar(ctx context.Context) []models.Moto {
	c.rememberSource(nil)
	c.update(Begin[MotoData])
	defer c.settle()

	motos, err := c.svc.Listar(ctx)
	if err != nil {
		c.fail(ctx, err, "moto.errors.loadAll")
		return nil
	}
	c.apply(ctx, func(s State[MotoData]) State[MotoData] {
		d := s.Data
		d.Motos = motos
		return Succeed(s, d)
	})
	return motos
}

// BuscarPorSetor replaces the held list with the vehicles in setor.
func (c *MotoControl) BuscarPorSetor(ctx context.Context, setor string) []models.Moto {
	c.rememberSource(&setor)
	c.update(func(s State[MotoData]) State[MotoData] {
		s = Begin(s)
		s.Data.Searched = true
		return s
	})
	defer c.settle()

	motos, err := c.svc.BuscarPorSetor(ctx, setor)
	if err != nil {
		c.fail(ctx, err, "moto.errors.fetchBySector")
		return nil
	}
	c.apply(ctx, func(s State[MotoData]) State[MotoData] {
		d := s.Data
		d.Motos = motos
		return Succeed(s, d)
	})
	return motos
}

// BuscarPorID loads one vehicle into Found.
func (c *MotoControl) BuscarPorID(ctx context.Context, id int64) *models.Moto {
	return c.lookup(ctx, "moto.errors.fetch", func() (*models.Moto, error) {
		return c.svc.BuscarPorID(ctx, id)
	})
}

// BuscarPorPlaca looks a vehicle up by plate. No match leaves Found nil without an error.
func (c *MotoControl) BuscarPorPlaca(ctx context.Context, placa string) *models.Moto {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	if placa == "" {
		c.alert("common.attention", "moto.locate.alerts.missingPlate")
		return nil
	}
	return c.lookup(ctx, "moto.errors.fetchByPlate", func() (*models.Moto, error) {
		return c.svc.BuscarPorPlaca(ctx, placa)
	})
}

// BuscarPorIot finds the vehicle a tag is attached to.
func (c *MotoControl) BuscarPorIot(ctx context.Context, iotID int64) *models.Moto {
	if iotID == 0 {
		c.alert("common.attention", "moto.noPlate.alerts.missingIotId")
		return nil
	}
	return c.lookup(ctx, "moto.errors.fetchByIot", func() (*models.Moto, error) {
		return c.svc.BuscarPorIot(ctx, iotID)
	})
}

func (c *MotoControl) lookup(ctx context.Context, fallbackKey string, fetch func() (*models.Moto, error)) *models.Moto {
	c.update(func(s State[MotoData]) State[MotoData] {
		s = Begin(s)
		s.Data.Found = nil
		s.Data.Searched = true
		return s
	})
	defer c.settle()

	moto, err := fetch()
	if err != nil && !apiclient.IsNotFound(err) {
		c.fail(ctx, err, fallbackKey)
		return nil
	}
	c.apply(ctx, func(s State[MotoData]) State[MotoData] {
		d := s.Data
		d.Found = moto
		return Succeed(s, d)
	})
	return moto
}

// Criar validates in, registers it and appends the created vehicle to the held list.
func (c *MotoControl) Criar(ctx context.Context, in models.MotoInput) *models.Moto {
	c.update(BeginWrite[MotoData])

	req, err := c.deps.Schemas.Moto(in)
	if err != nil {
		c.fail(ctx, err, "moto.errors.create")
		return nil
	}
	moto, err := c.svc.Criar(ctx, req)
	if err != nil {
		c.fail(ctx, err, "moto.errors.create")
		return nil
	}
	c.apply(ctx, func(s State[MotoData]) State[MotoData] {
		d := s.Data
		d.Motos = appendMoto(d.Motos, moto)
		return Merge(s, d)
	})
	return &moto
}

// Atualizar validates in, updates vehicle id and replaces it in the held list.
func (c *MotoControl) Atualizar(ctx context.Context, id int64, in models.MotoInput) *models.Moto {
	c.update(BeginWrite[MotoData])

	req, err := c.deps.Schemas.Moto(in)
	if err != nil {
		c.fail(ctx, err, "moto.errors.update")
		return nil
	}
	moto, err := c.svc.Atualizar(ctx, id, req)
	if err != nil {
		c.fail(ctx, err, "moto.errors.update")
		return nil
	}
	c.apply(ctx, func(s State[MotoData]) State[MotoData] {
		d := s.Data
		d.Motos = replaceMoto(d.Motos, id, moto)
		if d.Found != nil && d.Found.ID == id {
			updated := moto
			d.Found = &updated
		}
		return Merge(s, d)
	})
	return &moto
}

// Deletar removes vehicle id and drops it from the held list.
func (c *MotoControl) Deletar(ctx context.Context, id int64) bool {
	c.update(BeginWrite[MotoData])

	if err := c.svc.Deletar(ctx, id); err != nil {
		c.fail(ctx, err, "moto.errors.delete")
		return false
	}
	c.apply(ctx, func(s State[MotoData]) State[MotoData] {
		d := s.Data
		d.Motos = removeMoto(d.Motos, id)
		if d.Found != nil && d.Found.ID == id {
			d.Found = nil
		}
		return Merge(s, d)
	})
	return true
}

// Reconcile re-fetches whichever list was loaded last. Writes never call it.
func (c *MotoControl) Reconcile(ctx context.Context) []models.Moto {
	c.srcMu.Lock()
	setor := c.setor
	c.srcMu.Unlock()

	if setor != nil {
		return c.BuscarPorSetor(ctx, *setor)
	}
	return c.Listar(ctx)
}

// Filtrar narrows the held list without touching state: search matches modelo or placa
// case-insensitively, modelo (when set) must match exactly.
func (c *MotoControl) Filtrar(search, modelo string) []models.Moto {
	return FilterMotos(c.Snapshot().Data.Motos, search, modelo)
}

func (c *MotoControl) rememberSource(setor *string) {
	c.srcMu.Lock()
	c.setor = setor
	c.srcMu.Unlock()
}

func appendMoto(motos []models.Moto, moto models.Moto) []models.Moto {
	out := make([]models.Moto, 0, len(motos)+1)
	out = append(out, motos...)
	return append(out, moto)
}

func replaceMoto(motos []models.Moto, id int64, moto models.Moto) []models.Moto {
	out := make([]models.Moto, len(motos))
	for i, m := range motos {
		if m.ID == id {
			out[i] = moto
			continue
		}
		out[i] = m
	}
	return out
}

func removeMoto(motos []models.Moto, id int64) []models.Moto {
	out := make([]models.Moto, 0, len(motos))
	for _, m := range motos {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
