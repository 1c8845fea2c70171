// Package main is the taskctl command line client for the taskboard API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/taskboard-api/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.NewDispatcher(cli.DefaultRegistry, nil).Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
