package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

func (c *HelpCmd) Name() string                { return "help" }
func (c *HelpCmd) Synopsis() string            { return "Print usage" }
func (c *HelpCmd) Usage() string               { return "taskctl help" }
func (c *HelpCmd) NeedsAuth() bool             { return false }
func (c *HelpCmd) RegisterFlags(*flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	for _, cmd := range c.registry.All() {
		fmt.Fprintf(out, "  %-70s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, commonFlagsText)
	return ExitSuccess
}

const commonFlagsText = `
Common flags:
  --config <dir>   config directory (default: $XDG_CONFIG_HOME/taskboard or ~/.config/taskboard)
  --server <url>   API base URL (default: $TASKBOARD_URL or http://localhost:8080)
  --quiet          suppress informational output
`
