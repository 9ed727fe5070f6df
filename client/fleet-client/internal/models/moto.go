package models

// Modelo is a vehicle model code.
type Modelo string

const (
	ModeloMottuE     Modelo = "MOTTU_E"
	ModeloMottuSport Modelo = "MOTTU_SPORT"
	ModeloMottuPop   Modelo = "MOTTU_POP"
)

// Modelos lists the model codes offered by the registration form, in display order.
var Modelos = []Modelo{ModeloMottuE, ModeloMottuSport, ModeloMottuPop}

// Setor is the operational bucket a vehicle sits in.
type Setor string

const (
	SetorManutencao        Setor = "MANUTENCAO"
	SetorComPendencia      Setor = "COM_PENDENCIA"
	SetorProntaParaAluguel Setor = "PRONTA_PARA_ALUGUEL"
)

// Setores lists the known sectors, in display order.
var Setores = []Setor{SetorManutencao, SetorComPendencia, SetorProntaParaAluguel}

// Moto is a tracked vehicle as returned by the API.
type Moto struct {
	ID     int64  `json:"id"`
	Modelo string `json:"modelo"`
	Ano    int    `json:"ano"`
	Placa  string `json:"placa"`
	Setor  string `json:"setor,omitempty"`
}

// MotoRequest is the validated create/update body.
type MotoRequest struct {
	Modelo string `json:"modelo"`
	Ano    int    `json:"ano"`
	Placa  string `json:"placa"`
	Setor  string `json:"setor,omitempty"`
}

// MotoInput is what a form hands to the control layer before validation.
// Ano stays textual so the schema can report non-numeric input.
type MotoInput struct {
	Modelo string `validate:"required"`
	Ano    string `validate:"required,numeric,integer,yearmin=1900,yearmax"`
	Placa  string `validate:"required,placa"`
	Setor  string
}
