package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

func init() {
	Register(&ListCmd{})
	Register(&GetCmd{})
	Register(&AddCmd{})
	Register(&DoneCmd{})
	Register(&RmCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	pageSize int
}

func (c *ListCmd) Name() string     { return "list" }
func (c *ListCmd) Synopsis() string { return "List a page of tasks" }
func (c *ListCmd) Usage() string    { return "taskctl list [common flags] [--page-size <n>] [page]" }
func (c *ListCmd) NeedsAuth() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.pageSize, "page-size", 0, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	page := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(errOut, "error: invalid page number: %s\n", args[0])
			return ExitUserError
		}
		page = n
	}
	if c.pageSize < 0 {
		fmt.Fprintf(errOut, "error: invalid page size: %d\n", c.pageSize)
		return ExitUserError
	}

	result, err := env.API.ListTasks(ctx, page, c.pageSize)
	if err != nil {
		return reportError(errOut, err)
	}
	formatPage(out, result)
	return ExitSuccess
}

// GetCmd implements the get command.
type GetCmd struct{}

func (c *GetCmd) Name() string                { return "get" }
func (c *GetCmd) Synopsis() string            { return "Show one task" }
func (c *GetCmd) Usage() string               { return "taskctl get [common flags] <id>" }
func (c *GetCmd) NeedsAuth() bool             { return true }
func (c *GetCmd) RegisterFlags(*flag.FlagSet) {}

func (c *GetCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	id, ok := singleID(args, c.Usage(), errOut)
	if !ok {
		return ExitUserError
	}
	task, err := env.API.GetTask(ctx, id)
	if err != nil {
		return reportError(errOut, err)
	}
	formatTaskDetail(out, *task)
	return ExitSuccess
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
	done        bool
}

func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Synopsis() string { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskctl add [common flags] [--description <text>] [--done] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.BoolVar(&c.done, "done", false, "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintf(errOut, "error: title is required\nusage: %s\n", c.Usage())
		return ExitUserError
	}

	created, err := env.API.CreateTask(ctx, domain.Task{
		Title:       title,
		Description: c.description,
		Completed:   c.done,
	})
	if err != nil {
		return reportError(errOut, err)
	}

	if env.Config.Quiet {
		fmt.Fprintln(out, created.ID)
	} else {
		formatTask(out, *created)
	}
	return ExitSuccess
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string                { return "done" }
func (c *DoneCmd) Synopsis() string            { return "Mark a task completed" }
func (c *DoneCmd) Usage() string               { return "taskctl done [common flags] <id>" }
func (c *DoneCmd) NeedsAuth() bool             { return true }
func (c *DoneCmd) RegisterFlags(*flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	id, ok := singleID(args, c.Usage(), errOut)
	if !ok {
		return ExitUserError
	}

	completed := true
	updated, err := env.API.UpdateTask(ctx, id, domain.TaskPatch{Completed: &completed})
	if err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		formatTask(out, *updated)
	}
	return ExitSuccess
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string                { return "rm" }
func (c *RmCmd) Synopsis() string            { return "Delete a task" }
func (c *RmCmd) Usage() string               { return "taskctl rm [common flags] <id>" }
func (c *RmCmd) NeedsAuth() bool             { return true }
func (c *RmCmd) RegisterFlags(*flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	id, ok := singleID(args, c.Usage(), errOut)
	if !ok {
		return ExitUserError
	}
	if _, err := env.API.DeleteTask(ctx, id); err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return ExitSuccess
}

func singleID(args []string, usage string, errOut io.Writer) (string, bool) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintf(errOut, "error: expected exactly one task id\nusage: %s\n", usage)
		return "", false
	}
	return args[0], true
}
