package app

import (
	"context"
	"errors"
	"fmt"

	"motofleet/backend/services/fleet-sandbox/internal/models"
	"motofleet/backend/services/fleet-sandbox/internal/service"
)

var demoMotos = []service.MotoInput{
	{Modelo: "MOTTU_POP", Ano: 2023, Placa: "ABC1234", Setor: "PRONTA_PARA_ALUGUEL"},
	{Modelo: "MOTTU_SPORT", Ano: 2022, Placa: "BRA2E19", Setor: "MANUTENCAO"},
	{Modelo: "MOTTU_E", Ano: 2024, Placa: "XYZ9A87", Setor: "COM_PENDENCIA"},
	{Modelo: "MOTTU_POP", Ano: 2021, Placa: "QWE4R56", Setor: "PRONTA_PARA_ALUGUEL"},
}

// Seed registers a demo account, a handful of vehicles and one IoT tag per vehicle plus a loose tag.
func Seed(ctx context.Context, auth *service.AuthService, fleet *service.FleetService, username, senha string) error {
	if _, err := auth.Signup(ctx, service.SignupInput{Username: username, Senha: senha, NomeCompleto: "Operador Demo"}); err != nil && !errors.Is(err, service.ErrUsernameInUse) {
		return fmt.Errorf("seed user: %w", err)
	}
	for _, in := range demoMotos {
		moto, err := fleet.CreateMoto(ctx, in)
		if err != nil {
			return fmt.Errorf("seed moto %s: %w", in.Placa, err)
		}
		if _, err := fleet.CreateIot(ctx, service.IotInput{Moto: &models.MotoRef{ID: moto.ID}}); err != nil {
			return fmt.Errorf("seed iot for %s: %w", in.Placa, err)
		}
	}
	if _, err := fleet.CreateIot(ctx, service.IotInput{}); err != nil {
		return fmt.Errorf("seed loose iot: %w", err)
	}
	return nil
}
