package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/client"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/session"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a TaskAPI whose behavior is set per test.
type fakeAPI struct {
	LoginFn      func(ctx context.Context, email, password string) (string, error)
	LogoutFn     func(ctx context.Context) error
	ListTasksFn  func(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error)
	GetTaskFn    func(ctx context.Context, id string) (*domain.Task, error)
	CreateTaskFn func(ctx context.Context, task domain.Task) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id string) (bool, error)
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, email, password)
	}
	return "tok", nil
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	if f.LogoutFn != nil {
		return f.LogoutFn(ctx)
	}
	return nil
}

func (f *fakeAPI) ListTasks(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error) {
	if f.ListTasksFn != nil {
		return f.ListTasksFn(ctx, page, pageSize)
	}
	return &pagination.Page[domain.Task]{Page: 1, PageSize: 12}, nil
}

func (f *fakeAPI) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if f.GetTaskFn != nil {
		return f.GetTaskFn(ctx, id)
	}
	return &domain.Task{ID: id, Title: "Task " + id}, nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if f.CreateTaskFn != nil {
		return f.CreateTaskFn(ctx, task)
	}
	task.ID = "new-id"
	return &task, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if f.UpdateTaskFn != nil {
		return f.UpdateTaskFn(ctx, id, patch)
	}
	task := &domain.Task{ID: id, Title: "Task " + id}
	patch.Apply(task)
	return task, nil
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id string) (bool, error) {
	if f.DeleteTaskFn != nil {
		return f.DeleteTaskFn(ctx, id)
	}
	return true, nil
}

func emptyPage() *pagination.Page[domain.Task] {
	return &pagination.Page[domain.Task]{Data: []domain.Task{}, Page: 1, PageSize: 12}
}

// harness runs commands from DefaultRegistry against a fake API and a
// temporary config directory.
type harness struct {
	t      *testing.T
	dir    string
	api    *fakeAPI
	tokens client.TokenSource
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv(ServerURLEnv, "")
	return &harness{t: t, dir: t.TempDir(), api: &fakeAPI{}}
}

func (h *harness) session() *session.AuthSession {
	return session.NewAuthSession(session.NewFileStorage(filepath.Join(h.dir, SessionFile)))
}

func (h *harness) loggedIn(token string) *harness {
	h.t.Helper()
	require.NoError(h.t, h.session().SetToken(token))
	return h
}

func (h *harness) run(args ...string) (int, string, string) {
	h.t.Helper()
	factory := func(cfg *Config, tokens client.TokenSource) (TaskAPI, error) {
		h.tokens = tokens
		return h.api, nil
	}
	var out, errOut bytes.Buffer
	full := append([]string{}, args...)
	if len(full) > 0 {
		full = append([]string{full[0], "--config", h.dir}, full[1:]...)
	}
	code := NewDispatcher(DefaultRegistry, factory).Run(context.Background(), full, &out, &errOut)
	return code, out.String(), errOut.String()
}
