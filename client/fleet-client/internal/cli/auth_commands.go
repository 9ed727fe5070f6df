package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"motofleet/client/fleet-client/internal/app"
	"motofleet/client/fleet-client/internal/models"
)

func (c *CLI) login(ctx context.Context, a *app.App, args []string) error {
	fs := c.newFlagSet("login")
	username := fs.String("username", "", "user name")
	senha := fs.String("senha", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !a.Auth.Login(ctx, *username, *senha) {
		s := a.Auth.Snapshot()
		if !s.Failed() {
			return errFailed
		}
		return c.check(s, s.Err)
	}
	fmt.Fprintf(c.stdout, "logged in as %s (id %d)\n", a.Session.Snapshot().Usuario, a.Auth.Snapshot().Data.UserID)
	return nil
}

func (c *CLI) logout(ctx context.Context, a *app.App) error {
	if !a.Home.FazerLogout(ctx, nil) {
		return errFailed
	}
	return nil
}

func (c *CLI) register(ctx context.Context, a *app.App, args []string) error {
	fs := c.newFlagSet("register")
	in := models.CadastroInput{}
	fs.StringVar(&in.Username, "username", "", "user name")
	fs.StringVar(&in.Senha, "senha", "", "password")
	fs.StringVar(&in.ConfirmarSenha, "confirmar", "", "password confirmation")
	fs.StringVar(&in.NomeCompleto, "nome", "", "full name")
	fs.StringVar(&in.Email, "email", "", "e-mail")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp := a.Auth.Cadastrar(ctx, in)
	if resp == nil {
		s := a.Auth.Snapshot()
		return c.check(s, s.Err)
	}
	fmt.Fprintf(c.stdout, "registered %s (id %d)\n", resp.Username, resp.ID)
	return nil
}

func (c *CLI) whoami(ctx context.Context, a *app.App) error {
	p := a.Session.Snapshot()
	if !p.IsAuthenticated {
		fmt.Fprintln(c.stdout, "not logged in")
		return nil
	}
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "usuario\t%s\n", p.Usuario)
	fmt.Fprintf(w, "userId\t%d\n", a.Auth.UserID(ctx))
	return w.Flush()
}

func (c *CLI) menu(a *app.App) error {
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	for _, opt := range a.Home.Opcoes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", opt.ID, opt.Titulo, opt.Rota)
	}
	return w.Flush()
}

func (c *CLI) usuario(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 || args[0] != "get" {
		return fmt.Errorf("usage: usuario get [ID]")
	}
	var id int64
	if len(args) > 1 {
		var err error
		if id, err = parseID(args[1:], "user id"); err != nil {
			return err
		}
	} else if id = a.Auth.UserID(ctx); id == 0 {
		return fmt.Errorf("no stored user id, log in or pass ID")
	}

	u := a.Usuario.BuscarPorID(ctx, id)
	if u == nil {
		s := a.Usuario.Snapshot()
		return c.check(s, s.Err)
	}
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%d\n", u.ID)
	fmt.Fprintf(w, "nome\t%s\n", u.Nome)
	fmt.Fprintf(w, "email\t%s\n", u.Email)
	return w.Flush()
}
