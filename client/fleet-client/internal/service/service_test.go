package service

import (
	"context"
	"errors"
	"testing"

	"motofleet/client/fleet-client/internal/clients"
	"motofleet/client/fleet-client/internal/models"
)

var (
	_ MotoFetcher    = (*clients.MotoClient)(nil)
	_ IotFetcher     = (*clients.IotClient)(nil)
	_ UsuarioFetcher = (*clients.UsuarioClient)(nil)
	_ AuthFetcher    = (*clients.AuthClient)(nil)
)

type fakeMotoFetcher struct {
	calls []string
	err   error
}

func (f *fakeMotoFetcher) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeMotoFetcher) GetMotos(context.Context) ([]models.Moto, error) {
	f.record("GetMotos")
	return []models.Moto{{ID: 1}}, f.err
}

func (f *fakeMotoFetcher) GetMotoByID(_ context.Context, id int64) (*models.Moto, error) {
	f.record("GetMotoByID")
	return &models.Moto{ID: id}, f.err
}

func (f *fakeMotoFetcher) GetMotoByPlaca(_ context.Context, placa string) (*models.Moto, error) {
	f.record("GetMotoByPlaca:" + placa)
	return nil, f.err
}

func (f *fakeMotoFetcher) GetMotosBySetor(_ context.Context, setor string) ([]models.Moto, error) {
	f.record("GetMotosBySetor:" + setor)
	return nil, f.err
}

func (f *fakeMotoFetcher) GetMotoByIot(context.Context, int64) (*models.Moto, error) {
	f.record("GetMotoByIot")
	return nil, f.err
}

func (f *fakeMotoFetcher) CreateMoto(_ context.Context, req models.MotoRequest) (models.Moto, error) {
	f.record("CreateMoto")
	return models.Moto{ID: 1, Placa: req.Placa}, f.err
}

func (f *fakeMotoFetcher) UpdateMoto(_ context.Context, id int64, req models.MotoRequest) (models.Moto, error) {
	f.record("UpdateMoto")
	return models.Moto{ID: id, Placa: req.Placa}, f.err
}

func (f *fakeMotoFetcher) DeleteMoto(context.Context, int64) error {
	f.record("DeleteMoto")
	return f.err
}

func TestMotoServiceDelegates(t *testing.T) {
	ctx := context.Background()
	f := &fakeMotoFetcher{}
	s := NewMotoService(f)

	_, _ = s.Listar(ctx)
	_, _ = s.BuscarPorID(ctx, 2)
	_, _ = s.BuscarPorPlaca(ctx, "ABC1234")
	_, _ = s.BuscarPorSetor(ctx, "MANUTENCAO")
	_, _ = s.BuscarPorIot(ctx, 3)
	_, _ = s.Criar(ctx, models.MotoRequest{Placa: "ABC1234"})
	updated, _ := s.Atualizar(ctx, 4, models.MotoRequest{Placa: "XYZ9A99"})
	_ = s.Deletar(ctx, 4)

	want := []string{
		"GetMotos", "GetMotoByID", "GetMotoByPlaca:ABC1234", "GetMotosBySetor:MANUTENCAO",
		"GetMotoByIot", "CreateMoto", "UpdateMoto", "DeleteMoto",
	}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v", f.calls)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("call %d = %s, want %s", i, f.calls[i], want[i])
		}
	}
	if updated.ID != 4 || updated.Placa != "XYZ9A99" {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestMotoServicePassesErrorsThrough(t *testing.T) {
	boom := errors.New("boom")
	s := NewMotoService(&fakeMotoFetcher{err: boom})
	if err := s.Deletar(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
