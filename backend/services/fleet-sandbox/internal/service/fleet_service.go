package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"motofleet/backend/services/fleet-sandbox/internal/models"
)

var placaPattern = regexp.MustCompile(`^[A-Z]{3}-?[0-9][A-Z0-9][0-9]{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("placa", func(fl validator.FieldLevel) bool {
		return placaPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidationError lists every rejected field of a payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

func check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, strings.ToLower(fe.Field()))
	}
	return out
}

// ErrMotoMissing is returned when an IoT body points at an unknown vehicle.
var ErrMotoMissing = errors.New("fleet: referenced moto does not exist")

// FleetRepository defines the vehicle and tag storage used by FleetService.
type FleetRepository interface {
	ListMotos(ctx context.Context) ([]models.Moto, error)
	ListMotosBySetor(ctx context.Context, setor string) ([]models.Moto, error)
	GetMoto(ctx context.Context, id int64) (*models.Moto, error)
	GetMotoByPlaca(ctx context.Context, placa string) (*models.Moto, error)
	GetMotoByIot(ctx context.Context, iotID int64) (*models.Moto, error)
	CreateMoto(ctx context.Context, m *models.Moto) error
	UpdateMoto(ctx context.Context, m *models.Moto) error
	DeleteMoto(ctx context.Context, id int64) error

	ListIots(ctx context.Context) ([]models.Iot, error)
	GetIot(ctx context.Context, id int64) (*models.Iot, error)
	CreateIot(ctx context.Context, tag *models.Iot) error
	UpdateIot(ctx context.Context, tag *models.Iot) error
	DeleteIot(ctx context.Context, id int64) error
}

// MotoInput is a create/update vehicle body.
type MotoInput struct {
	Modelo string `json:"modelo" validate:"required,oneof=MOTTU_E MOTTU_SPORT MOTTU_POP"`
	Ano    int    `json:"ano" validate:"required,min=1900"`
	Placa  string `json:"placa" validate:"required,placa"`
	Setor  string `json:"setor" validate:"omitempty,oneof=MANUTENCAO COM_PENDENCIA PRONTA_PARA_ALUGUEL"`
}

// IotInput is a create/update tag body.
type IotInput struct {
	Moto *models.MotoRef `json:"moto"`
}

// FleetService validates vehicle and tag writes before they hit the repository.
type FleetService struct {
	repo FleetRepository
	now  func() time.Time
}

// NewFleetService builds FleetService.
func NewFleetService(repo FleetRepository) *FleetService {
	return &FleetService{repo: repo, now: time.Now}
}

func (s *FleetService) moto(in MotoInput) (models.Moto, error) {
	in.Placa = strings.ToUpper(strings.TrimSpace(in.Placa))
	in.Setor = strings.TrimSpace(in.Setor)
	if err := check(in); err != nil {
		return models.Moto{}, err
	}
	if in.Ano > s.now().Year()+1 {
		return models.Moto{}, &ValidationError{Fields: []string{"ano"}}
	}
	return models.Moto{Modelo: in.Modelo, Ano: in.Ano, Placa: in.Placa, Setor: in.Setor}, nil
}

// ListMotos returns every vehicle.
func (s *FleetService) ListMotos(ctx context.Context) ([]models.Moto, error) {
	return s.repo.ListMotos(ctx)
}

// ListMotosBySetor returns vehicles of one sector.
func (s *FleetService) ListMotosBySetor(ctx context.Context, setor string) ([]models.Moto, error) {
	return s.repo.ListMotosBySetor(ctx, strings.ToUpper(strings.TrimSpace(setor)))
}

// GetMoto returns a vehicle by id.
func (s *FleetService) GetMoto(ctx context.Context, id int64) (*models.Moto, error) {
	return s.repo.GetMoto(ctx, id)
}

// GetMotoByPlaca returns a vehicle by plate.
func (s *FleetService) GetMotoByPlaca(ctx context.Context, placa string) (*models.Moto, error) {
	return s.repo.GetMotoByPlaca(ctx, placa)
}

// GetMotoByIot returns the vehicle attached to an IoT tag.
func (s *FleetService) GetMotoByIot(ctx context.Context, iotID int64) (*models.Moto, error) {
	return s.repo.GetMotoByIot(ctx, iotID)
}

// CreateMoto validates and stores a vehicle.
func (s *FleetService) CreateMoto(ctx context.Context, in MotoInput) (*models.Moto, error) {
	m, err := s.moto(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateMoto(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMoto validates and replaces a vehicle.
func (s *FleetService) UpdateMoto(ctx context.Context, id int64, in MotoInput) (*models.Moto, error) {
	m, err := s.moto(in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := s.repo.UpdateMoto(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMoto removes a vehicle.
func (s *FleetService) DeleteMoto(ctx context.Context, id int64) error {
	return s.repo.DeleteMoto(ctx, id)
}

// ListIots returns every tag.
func (s *FleetService) ListIots(ctx context.Context) ([]models.Iot, error) {
	return s.repo.ListIots(ctx)
}

// GetIot returns a tag by id.
func (s *FleetService) GetIot(ctx context.Context, id int64) (*models.Iot, error) {
	return s.repo.GetIot(ctx, id)
}

func (s *FleetService) iot(ctx context.Context, in IotInput) (models.Iot, error) {
	if in.Moto == nil {
		return models.Iot{}, nil
	}
	if in.Moto.ID == 0 {
		return models.Iot{}, &ValidationError{Fields: []string{"moto.id"}}
	}
	if _, err := s.repo.GetMoto(ctx, in.Moto.ID); err != nil {
		return models.Iot{}, fmt.Errorf("%w: %d", ErrMotoMissing, in.Moto.ID)
	}
	return models.Iot{Moto: &models.MotoRef{ID: in.Moto.ID}}, nil
}

// CreateIot validates and stores a tag.
func (s *FleetService) CreateIot(ctx context.Context, in IotInput) (*models.Iot, error) {
	tag, err := s.iot(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateIot(ctx, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateIot validates and replaces a tag.
func (s *FleetService) UpdateIot(ctx context.Context, id int64, in IotInput) (*models.Iot, error) {
	tag, err := s.iot(ctx, in)
	if err != nil {
		return nil, err
	}
	tag.ID = id
	if err := s.repo.UpdateIot(ctx, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteIot removes a tag.
func (s *FleetService) DeleteIot(ctx context.Context, id int64) error {
	return s.repo.DeleteIot(ctx, id)
}
