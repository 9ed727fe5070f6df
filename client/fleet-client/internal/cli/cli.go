// Package cli is the command-line presentation layer over the client controls.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"motofleet/client/fleet-client/internal/app"
	appconfig "motofleet/client/fleet-client/internal/config"
	"motofleet/client/fleet-client/internal/control"
)

const usage = `usage: fleet-client [--config FILE] [--api URL] <command> [args]

commands:
  login --username U --senha S
  logout
  register --username U --senha S [--confirmar S] [--nome N] [--email E]
  whoami
  menu
  motos list [--search Q] [--modelo M]
  motos get ID | plate PLACA | sector SETOR | iot IOT_ID
  motos create --modelo M --ano A --placa P [--setor S]
  motos update ID --modelo M --ano A --placa P [--setor S]
  motos delete ID
  iots list | get ID | delete ID
  iots create [--moto ID]
  iots update ID [--moto ID]
  usuario get [ID]
`

// errFailed marks a command whose control reported an error already printed to the user.
var errFailed = errors.New("command failed")

// CLI runs one command per invocation.
type CLI struct {
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// New returns a CLI writing results to stdout and alerts/errors to stderr.
func New(stdout, stderr io.Writer, logger *zap.Logger) *CLI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLI{stdout: stdout, stderr: stderr, logger: logger}
}

// Run executes args and returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("fleet-client", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { fmt.Fprint(c.stderr, usage) }
	configPath := fs.String("config", "", "YAML config file (defaults to $CONFIG_FILE)")
	apiURL := fs.String("api", "", "fleet API base URL (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := appconfig.Load(appconfig.Overrides{ConfigPath: *configPath, BaseURL: *apiURL})
	if err != nil {
		fmt.Fprintln(c.stderr, "Error:", err)
		return 1
	}

	application, err := app.New(ctx, cfg, control.AlertFunc(c.alert), c.logger)
	if err != nil {
		fmt.Fprintln(c.stderr, "Error:", err)
		return 1
	}
	defer application.Close(context.Background())

	if err := c.dispatch(ctx, application, rest[0], rest[1:]); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 2
		case !errors.Is(err, errFailed):
			fmt.Fprintln(c.stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func (c *CLI) dispatch(ctx context.Context, a *app.App, cmd string, args []string) error {
	switch cmd {
	case "login":
		return c.login(ctx, a, args)
	case "logout":
		return c.logout(ctx, a)
	case "register":
		return c.register(ctx, a, args)
	case "whoami":
		return c.whoami(ctx, a)
	case "menu":
		return c.menu(a)
	case "motos":
		return c.motos(ctx, a, args)
	case "iots":
		return c.iots(ctx, a, args)
	case "usuario":
		return c.usuario(ctx, a, args)
	default:
		fmt.Fprint(c.stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (c *CLI) alert(title, message string) {
	fmt.Fprintf(c.stderr, "%s: %s\n", title, message)
}

// check prints the control error, if any, and converts it to errFailed.
func (c *CLI) check(state interface{ Failed() bool }, msg string) error {
	if !state.Failed() {
		return nil
	}
	fmt.Fprintln(c.stderr, msg)
	return errFailed
}

func (c *CLI) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func parseID(args []string, what string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%s required", what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, args[0])
	}
	return id, nil
}
