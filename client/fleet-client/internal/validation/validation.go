// Package validation checks create/update payloads before they reach the network.
//
// Every schema collects one message per violated field in a single pass; the joined
// message is what the control layer surfaces to the user.
package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"motofleet/client/fleet-client/internal/i18n"
	"motofleet/client/fleet-client/internal/models"
)

// PlatePattern accepts legacy (ABC-1234) and Mercosul (ABC1D23) plates, any case.
var PlatePattern = regexp.MustCompile(`(?i)^[A-Z]{3}-?[0-9][A-Z0-9][0-9]{2}$`)

// FieldError is one violated field.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// Errors is the aggregated result of a failed validation.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "\n")
}

// Messages returns the individual messages in field order.
func (e Errors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}

// AsErrors unwraps validation errors from err.
func AsErrors(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// Schemas validates every payload type the client writes.
type Schemas struct {
	validate *validator.Validate
	t        i18n.Translator
	now      func() time.Time
}

// Option customises Schemas.
type Option func(*Schemas)

// WithClock pins the clock used for the year upper bound.
func WithClock(now func() time.Time) Option {
	return func(s *Schemas) { s.now = now }
}

// New builds the schemas. A nil translator yields message keys.
func New(t i18n.Translator, opts ...Option) *Schemas {
	if t == nil {
		t = i18n.Identity
	}
	s := &Schemas{
		validate: validator.New(),
		t:        t,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	mustRegister(s.validate, "placa", func(fl validator.FieldLevel) bool {
		return PlatePattern.MatchString(fl.Field().String())
	})
	mustRegister(s.validate, "integer", func(fl validator.FieldLevel) bool {
		f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
		return err == nil && f == math.Trunc(f)
	})
	mustRegister(s.validate, "yearmin", func(fl validator.FieldLevel) bool {
		year, ok := yearOf(fl.Field().String())
		if !ok {
			return false
		}
		floor, err := strconv.Atoi(fl.Param())
		return err == nil && year >= floor
	})
	mustRegister(s.validate, "yearmax", func(fl validator.FieldLevel) bool {
		year, ok := yearOf(fl.Field().String())
		return ok && year <= s.now().Year()+1
	})
	return s
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func yearOf(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// Moto validates a vehicle form and returns the wire payload with the plate uppercased.
func (s *Schemas) Moto(in models.MotoInput) (models.MotoRequest, error) {
	in.Modelo = strings.TrimSpace(in.Modelo)
	in.Ano = strings.TrimSpace(in.Ano)
	in.Placa = strings.TrimSpace(in.Placa)
	if err := s.check(in); err != nil {
		return models.MotoRequest{}, err
	}
	year, _ := yearOf(in.Ano)
	return models.MotoRequest{
		Modelo: in.Modelo,
		Ano:    year,
		Placa:  strings.ToUpper(in.Placa),
		Setor:  strings.TrimSpace(in.Setor),
	}, nil
}

// Iot validates an IoT body: moto is optional, but a present moto needs an id.
func (s *Schemas) Iot(in models.IotRequest) error {
	return s.check(in)
}

// Usuario validates profile fields.
func (s *Schemas) Usuario(in models.UsuarioInput) error {
	return s.check(in)
}

// Cadastro validates the registration form.
func (s *Schemas) Cadastro(in models.CadastroInput) (models.CadastroRequest, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.NomeCompleto = strings.TrimSpace(in.NomeCompleto)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.check(in); err != nil {
		return models.CadastroRequest{}, err
	}
	return in.Request(), nil
}

func (s *Schemas) check(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe.StructNamespace())
		out = append(out, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: s.message(field, fe.Tag()),
		})
	}
	return out
}

func (s *Schemas) message(field, rule string) string {
	key := "validation." + strings.ToLower(field) + "." + rule
	if msg := s.t(key); msg != key {
		return msg
	}
	if msg := s.t("validation.invalid"); msg != "validation.invalid" {
		return msg + ": " + field
	}
	return key
}

// fieldPath drops the root struct name: "MotoInput.Ano" -> "Ano", "IotRequest.Moto.ID" -> "Moto.ID".
func fieldPath(ns string) string {
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
