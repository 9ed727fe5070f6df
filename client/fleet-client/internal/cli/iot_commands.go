package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"motofleet/client/fleet-client/internal/app"
	"motofleet/client/fleet-client/internal/models"
)

func (c *CLI) iots(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: iots list|get|create|update|delete")
	}
	ic := a.Iot
	sub, args := args[0], args[1:]

	switch sub {
	case "list":
		iots := ic.Listar(ctx)
		if err := c.check(ic.Snapshot(), ic.Snapshot().Err); err != nil {
			return err
		}
		c.printIots(iots)
		return nil

	case "get":
		id, err := parseID(args, "id")
		if err != nil {
			return err
		}
		iot := ic.BuscarPorID(ctx, id)
		if err := c.check(ic.Snapshot(), ic.Snapshot().Err); err != nil {
			return err
		}
		if iot == nil {
			fmt.Fprintln(c.stdout, "no iot found")
			return nil
		}
		c.printIots([]models.Iot{*iot})
		return nil

	case "create", "update":
		var id int64
		if sub == "update" {
			var err error
			if id, err = parseID(args, "id"); err != nil {
				return err
			}
			args = args[1:]
		}
		fs := c.newFlagSet("iots " + sub)
		motoID := fs.Int64("moto", 0, "id of the moto to attach (0 leaves the tag unattached)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		req := models.IotRequest{}
		if *motoID != 0 {
			req.Moto = &models.MotoRef{ID: *motoID}
		}

		var iot *models.Iot
		if sub == "create" {
			iot = ic.Criar(ctx, req)
		} else {
			iot = ic.Atualizar(ctx, id, req)
		}
		if iot == nil {
			return c.check(ic.Snapshot(), ic.Snapshot().Err)
		}
		c.printIots([]models.Iot{*iot})
		return nil

	case "delete":
		id, err := parseID(args, "id")
		if err != nil {
			return err
		}
		if !ic.Deletar(ctx, id) {
			return c.check(ic.Snapshot(), ic.Snapshot().Err)
		}
		fmt.Fprintf(c.stdout, "deleted iot %d\n", id)
		return nil

	default:
		return fmt.Errorf("unknown iots command %q", sub)
	}
}

func (c *CLI) printIots(iots []models.Iot) {
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMOTO")
	for _, iot := range iots {
		moto := "-"
		if iot.Moto != nil {
			moto = strconv.FormatInt(iot.Moto.ID, 10)
		}
		fmt.Fprintf(w, "%d\t%s\n", iot.ID, moto)
	}
	_ = w.Flush()
}
