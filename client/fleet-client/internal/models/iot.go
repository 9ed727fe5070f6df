package models

// MotoRef points at a vehicle by id.
type MotoRef struct {
	ID int64 `json:"id" validate:"required"`
}

// Iot is a hardware tag, optionally linked to one vehicle.
type Iot struct {
	ID   int64    `json:"id"`
	Moto *MotoRef `json:"moto,omitempty"`
}

// IotRequest is the create/update body. A nil Moto leaves the tag unassociated.
type IotRequest struct {
	Moto *MotoRef `json:"moto,omitempty" validate:"omitempty"`
}
