package control

import (
	"context"

	"motofleet/client/fleet-client/internal/models"
)

// UsuarioService is the user surface UsuarioControl depends on.
type UsuarioService interface {
	BuscarPorID(ctx context.Context, id int64) (*models.Usuario, error)
}

// UsuarioControl backs the profile screen.
type UsuarioControl struct {
	base[*models.Usuario]
	svc UsuarioService
}

// NewUsuarioControl builds UsuarioControl.
func NewUsuarioControl(svc UsuarioService, deps Deps) *UsuarioControl {
	c := &UsuarioControl{svc: svc}
	c.init(deps, nil)
	return c
}

// Limpar forgets the loaded user and error.
func (c *UsuarioControl) Limpar() {
	c.update(func(s State[*models.Usuario]) State[*models.Usuario] {
		return State[*models.Usuario]{Phase: PhaseIdle}
	})
}

// BuscarPorID loads user id.
func (c *UsuarioControl) BuscarPorID(ctx context.Context, id int64) *models.Usuario {
	c.update(Begin[*models.Usuario])
	defer c.settle()

	usuario, err := c.svc.BuscarPorID(ctx, id)
	if err != nil {
		c.fail(ctx, err, "usuario.errors.fetch")
		return nil
	}
	c.apply(ctx, func(s State[*models.Usuario]) State[*models.Usuario] {
		return Succeed(s, usuario)
	})
	return usuario
}
