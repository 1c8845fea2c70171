package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/client"
)

func init() {
	Register(&LoginCmd{})
	Register(&LogoutCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

func (c *LoginCmd) Name() string     { return "login" }
func (c *LoginCmd) Synopsis() string { return "Log in and store the session" }
func (c *LoginCmd) Usage() string {
	return "taskctl login [common flags] --email <email> --password <password>"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if c.email == "" || c.password == "" {
		fmt.Fprintf(errOut, "error: email and password are required\nusage: %s\n", c.Usage())
		return ExitUserError
	}

	token, err := env.API.Login(ctx, c.email, c.password)
	if err != nil {
		if client.IsStatus(err, http.StatusUnauthorized) {
			fmt.Fprintln(errOut, "error: invalid credentials")
			return ExitAuthError
		}
		return reportError(errOut, err)
	}

	if err := env.Session.SetToken(token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return ExitAuthError
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return ExitSuccess
}

// LogoutCmd implements the logout command.
// The local session is cleared even when the server cannot be reached. A
// missing or already rejected token means the server holds nothing to clear.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string                { return "logout" }
func (c *LogoutCmd) Synopsis() string            { return "Log out and remove the stored session" }
func (c *LogoutCmd) Usage() string               { return "taskctl logout [common flags]" }
func (c *LogoutCmd) NeedsAuth() bool             { return false }
func (c *LogoutCmd) RegisterFlags(*flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	remoteErr := env.API.Logout(ctx)

	if err := env.Session.Clear(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove session: %v\n", err)
		return ExitAuthError
	}
	if remoteErr != nil && !sessionGone(remoteErr) {
		fmt.Fprintf(errOut, "warning: server logout failed: %v\n", remoteErr)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return ExitSuccess
}

func sessionGone(err error) bool {
	return errors.Is(err, client.ErrNotAuthenticated) || client.IsStatus(err, http.StatusUnauthorized)
}
