package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/session"
)

// TaskAPI is the subset of client.Client the commands use.
type TaskAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
	ListTasks(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
}

// Env is what a command runs against.
type Env struct {
	Config  *Config
	API     TaskAPI
	Session *session.AuthSession
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the command name.
	Name() string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a stored session.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing and returns an exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.cmds[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}
	r.cmds[name] = c
	return nil
}

// Find looks up a command by name.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, 0, len(r.cmds))
	for _, cmd := range r.cmds {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
