package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/client"
	"github.com/phrazzld/taskboard-api/internal/session"
)

// APIFactory creates the API client for a run. tokens is the run's auth session.
type APIFactory func(cfg *Config, tokens client.TokenSource) (TaskAPI, error)

// DefaultAPIFactory builds a client.Client for cfg.ServerURL.
func DefaultAPIFactory(cfg *Config, tokens client.TokenSource) (TaskAPI, error) {
	return client.New(cfg.ServerURL, tokens)
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *Registry
	factory  APIFactory
}

// NewDispatcher creates a dispatcher. A nil factory selects DefaultAPIFactory.
func NewDispatcher(registry *Registry, factory APIFactory) *Dispatcher {
	if factory == nil {
		factory = DefaultAPIFactory
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// With no arguments it lists the first page. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]
	if cmdName == "-h" || cmdName == "--help" {
		cmdName = "help"
	}
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return ExitUserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return ExitUserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configDir, serverURL string
	var quiet bool
	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&serverURL, "server", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", strings.TrimPrefix(errStr, "flag provided but not defined: "))
			return ExitUserError
		}
		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return ExitUserError
	}

	cfg := NewConfig(configDir, serverURL)
	cfg.Quiet = quiet

	authSession := session.NewAuthSession(session.NewFileStorage(cfg.SessionPath()))

	if cmd.NeedsAuth() {
		_, ok, err := authSession.Token()
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return ExitAuthError
		}
		if !ok {
			fmt.Fprintln(errOut, "error: not logged in (run: taskctl login)")
			return ExitAuthError
		}
	}

	api, err := d.factory(cfg, authSession)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return ExitUserError
	}

	return cmd.Run(ctx, &Env{Config: cfg, API: api, Session: authSession}, fs.Args(), out, errOut)
}
