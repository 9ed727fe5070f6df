package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"motofleet/backend/libs/logging"
	"motofleet/client/fleet-client/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	logger, err := logging.NewCLILogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	code := cli.New(os.Stdout, os.Stderr, logger).Run(ctx, os.Args[1:])
	_ = logger.Sync()
	stop()
	os.Exit(code)
}
