package control

import (
	"context"
	"sync"
	"time"

	"motofleet/client/fleet-client/internal/i18n"
	"motofleet/client/fleet-client/internal/models"
	"motofleet/client/fleet-client/internal/validation"
)

type alertRecord struct {
	title   string
	message string
}

type recordingAlerter struct {
	mu     sync.Mutex
	alerts []alertRecord
}

func (a *recordingAlerter) Alert(title, message string) {
	a.mu.Lock()
	a.alerts = append(a.alerts, alertRecord{title, message})
	a.mu.Unlock()
}

func (a *recordingAlerter) all() []alertRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]alertRecord(nil), a.alerts...)
}

type recordingNavigator struct {
	routes []Route
}

func (n *recordingNavigator) Reset(route Route) { n.routes = append(n.routes, route) }

func testDeps(alerter Alerter) Deps {
	t := i18n.New("pt-BR")
	return Deps{
		Translator: t,
		Alerter:    alerter,
		Schemas: validation.New(t, validation.WithClock(func() time.Time {
			return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		})),
	}
}

// fakeMotoService answers from canned values and counts calls.
type fakeMotoService struct {
	mu    sync.Mutex
	calls int
	last  models.MotoRequest

	list    []models.Moto
	found   *models.Moto
	created models.Moto
	updated models.Moto
	err     error

	// block, when set, holds calls until closed.
	block chan struct{}
}

func (f *fakeMotoService) hit() error {
	f.mu.Lock()
	f.calls++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.err
}

func (f *fakeMotoService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeMotoService) Listar(context.Context) ([]models.Moto, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.list, nil
}

func (f *fakeMotoService) BuscarPorID(context.Context, int64) (*models.Moto, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.found, nil
}

func (f *fakeMotoService) BuscarPorPlaca(context.Context, string) (*models.Moto, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.found, nil
}

func (f *fakeMotoService) BuscarPorSetor(context.Context, string) ([]models.Moto, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.list, nil
}

func (f *fakeMotoService) BuscarPorIot(context.Context, int64) (*models.Moto, error) {
	if err := f.hit(); err != nil {
		return nil, err
	}
	return f.found, nil
}

func (f *fakeMotoService) Criar(_ context.Context, req models.MotoRequest) (models.Moto, error) {
	f.mu.Lock()
	f.last = req
	f.mu.Unlock()
	if err := f.hit(); err != nil {
		return models.Moto{}, err
	}
	return f.created, nil
}

func (f *fakeMotoService) Atualizar(_ context.Context, _ int64, req models.MotoRequest) (models.Moto, error) {
	f.mu.Lock()
	f.last = req
	f.mu.Unlock()
	if err := f.hit(); err != nil {
		return models.Moto{}, err
	}
	return f.updated, nil
}

func (f *fakeMotoService) Deletar(context.Context, int64) error {
	return f.hit()
}
