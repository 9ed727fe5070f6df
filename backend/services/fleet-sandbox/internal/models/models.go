package models

import "time"

// User is a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	NomeCompleto string
	Email        string
	CreatedAt    time.Time
}

// Moto is a tracked vehicle.
type Moto struct {
	ID     int64  `json:"id"`
	Modelo string `json:"modelo"`
	Ano    int    `json:"ano"`
	Placa  string `json:"placa"`
	Setor  string `json:"setor,omitempty"`
}

// MotoRef points at a vehicle by id.
type MotoRef struct {
	ID int64 `json:"id"`
}

// Iot is a hardware tag, optionally attached to one vehicle.
type Iot struct {
	ID   int64    `json:"id"`
	Moto *MotoRef `json:"moto,omitempty"`
}
