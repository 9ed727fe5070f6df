package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"motofleet/client/fleet-client/internal/app"
	"motofleet/client/fleet-client/internal/models"
)

func (c *CLI) motos(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: motos list|get|plate|sector|iot|create|update|delete")
	}
	m := a.Moto
	sub, args := args[0], args[1:]

	switch sub {
	case "list":
		fs := c.newFlagSet("motos list")
		search := fs.String("search", "", "filter by model or plate substring")
		modelo := fs.String("modelo", "", "filter by exact model code")
		if err := fs.Parse(args); err != nil {
			return err
		}
		m.Listar(ctx)
		if err := c.check(m.Snapshot(), m.Snapshot().Err); err != nil {
			return err
		}
		c.printMotos(a, m.Filtrar(*search, *modelo))
		return nil

	case "sector":
		if len(args) == 0 {
			return fmt.Errorf("sector required")
		}
		motos := m.BuscarPorSetor(ctx, args[0])
		if err := c.check(m.Snapshot(), m.Snapshot().Err); err != nil {
			return err
		}
		c.printMotos(a, motos)
		return nil

	case "get", "iot":
		id, err := parseID(args, "id")
		if err != nil {
			return err
		}
		if sub == "get" {
			m.BuscarPorID(ctx, id)
		} else {
			m.BuscarPorIot(ctx, id)
		}
		return c.printFound(a)

	case "plate":
		placa := ""
		if len(args) > 0 {
			placa = args[0]
		}
		m.BuscarPorPlaca(ctx, placa)
		if placa == "" {
			return errFailed
		}
		return c.printFound(a)

	case "create":
		in, err := c.parseMotoInput("motos create", args)
		if err != nil {
			return err
		}
		created := m.Criar(ctx, in)
		if created == nil {
			return c.check(m.Snapshot(), m.Snapshot().Err)
		}
		c.printMotos(a, []models.Moto{*created})
		return nil

	case "update":
		id, err := parseID(args, "id")
		if err != nil {
			return err
		}
		in, err := c.parseMotoInput("motos update", args[1:])
		if err != nil {
			return err
		}
		updated := m.Atualizar(ctx, id, in)
		if updated == nil {
			return c.check(m.Snapshot(), m.Snapshot().Err)
		}
		c.printMotos(a, []models.Moto{*updated})
		return nil

	case "delete":
		id, err := parseID(args, "id")
		if err != nil {
			return err
		}
		if !m.Deletar(ctx, id) {
			return c.check(m.Snapshot(), m.Snapshot().Err)
		}
		fmt.Fprintf(c.stdout, "deleted moto %d\n", id)
		return nil

	default:
		return fmt.Errorf("unknown motos command %q", sub)
	}
}

func (c *CLI) parseMotoInput(name string, args []string) (models.MotoInput, error) {
	var in models.MotoInput
	fs := c.newFlagSet(name)
	bindMotoFlags(fs, &in)
	err := fs.Parse(args)
	return in, err
}

func bindMotoFlags(fs *flag.FlagSet, in *models.MotoInput) {
	fs.StringVar(&in.Modelo, "modelo", "", "model code (MOTTU_E, MOTTU_SPORT, MOTTU_POP)")
	fs.StringVar(&in.Ano, "ano", "", "year")
	fs.StringVar(&in.Placa, "placa", "", "plate")
	fs.StringVar(&in.Setor, "setor", "", "sector (MANUTENCAO, COM_PENDENCIA, PRONTA_PARA_ALUGUEL)")
}

func (c *CLI) printFound(a *app.App) error {
	s := a.Moto.Snapshot()
	if err := c.check(s, s.Err); err != nil {
		return err
	}
	if s.Data.Found == nil {
		fmt.Fprintln(c.stdout, "no moto found")
		return nil
	}
	c.printMotos(a, []models.Moto{*s.Data.Found})
	return nil
}

func (c *CLI) printMotos(a *app.App, motos []models.Moto) {
	writeMotos(c.stdout, motos, a.Translator)
}

func writeMotos(out io.Writer, motos []models.Moto, t func(string) string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODELO\tANO\tPLACA\tSETOR")
	for _, m := range motos {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", m.ID, label(t, "moto.modelo.", m.Modelo), m.Ano, m.Placa, label(t, "moto.setor.", m.Setor))
	}
	_ = w.Flush()
}

// label resolves a catalog label for code, falling back to the code itself.
func label(t func(string) string, prefix, code string) string {
	if code == "" {
		return "-"
	}
	key := prefix + code
	if v := t(key); v != key {
		return v
	}
	return code
}
