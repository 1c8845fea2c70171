package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// taskRouter mounts the task routes the way the server does, without auth.
func taskRouter(h *TaskHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/tasks", h.ListTasks)
	r.Post("/tasks", h.CreateTask)
	r.Get("/tasks/{id}", h.GetTask)
	r.Patch("/tasks/{id}", h.UpdateTask)
	r.Delete("/tasks/{id}", h.DeleteTask)
	return r
}

// newStackHandler wires a handler over the real in-memory stack.
func newStackHandler(t *testing.T) (*TaskHandler, *memory.MemoryTaskStore) {
	t.Helper()
	log := discardLogger()

	taskStore := memory.NewMemoryTaskStore(log, memory.WithLatency(0))
	source, err := service.NewTaskDataSource(taskStore, log)
	require.NoError(t, err)
	cache, err := service.NewPageCache(source, log)
	require.NoError(t, err)

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(cache)

	repo, err := service.NewTaskRepository(source, emitter, log)
	require.NoError(t, err)

	return NewTaskHandler(repo, cache, log), taskStore
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestNewTaskHandler_PanicsOnNilDependencies(t *testing.T) {
	repo := &mocks.MockTaskRepository{}
	pages := &mocks.MockTaskStore{}
	log := discardLogger()

	assert.Panics(t, func() { NewTaskHandler(nil, pages, log) })
	assert.Panics(t, func() { NewTaskHandler(repo, nil, log) })
	assert.Panics(t, func() { NewTaskHandler(repo, pages, nil) })
	assert.NotPanics(t, func() { NewTaskHandler(repo, pages, log) })
}

func TestListTasks(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		expectedPage  int
		expectedSize  int
		expectedLen   int
		expectedTotal int
		expectedPages int
	}{
		{"defaults", "/tasks", 1, 12, 12, 25, 3},
		{"last page", "/tasks?page=3", 3, 12, 1, 25, 3},
		{"past the end", "/tasks?page=9", 9, 12, 0, 25, 3},
		{"custom page size", "/tasks?page=2&pageSize=10", 2, 10, 10, 25, 3},
		{"page size covers all", "/tasks?pageSize=100", 1, 100, 25, 25, 1},
		{"largest page", "/tasks?page=" + strconv.Itoa(math.MaxInt), math.MaxInt, 12, 0, 25, 3},
		{"largest page size", "/tasks?pageSize=" + strconv.Itoa(math.MaxInt), 1, math.MaxInt, 25, 25, 1},
		{"second page of largest size", "/tasks?page=2&pageSize=" + strconv.Itoa(math.MaxInt), 2, math.MaxInt, 0, 25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newStackHandler(t)
			rec := doRequest(t, taskRouter(h), http.MethodGet, tt.target, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			page := decodeBody[pagination.Page[domain.Task]](t, rec)
			assert.Equal(t, tt.expectedPage, page.Page)
			assert.Equal(t, tt.expectedSize, page.PageSize)
			assert.Len(t, page.Data, tt.expectedLen)
			assert.Equal(t, tt.expectedTotal, page.Total)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
		})
	}
}

func TestListTasks_WireFormat(t *testing.T) {
	h, _ := newStackHandler(t)
	rec := doRequest(t, taskRouter(h), http.MethodGet, "/tasks?page=9", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"page":9,"pageSize":12,"total":25,"totalPages":3}`, rec.Body.String())
}

func TestListTasks_BadQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric page", "/tasks?page=abc"},
		{"non-numeric page size", "/tasks?pageSize=x"},
		{"negative page", "/tasks?page=-1"},
		{"negative page size", "/tasks?pageSize=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newStackHandler(t)
			rec := doRequest(t, taskRouter(h), http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetTask(t *testing.T) {
	h, _ := newStackHandler(t)
	router := taskRouter(h)

	rec := doRequest(t, router, http.MethodGet, "/tasks/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	task := decodeBody[domain.Task](t, rec)
	assert.Equal(t, "1", task.ID)
	assert.Equal(t, "Learn React", task.Title)

	rec = doRequest(t, router, http.MethodGet, "/tasks/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Task not found", body["error"])
}

func TestCreateTask(t *testing.T) {
	h, taskStore := newStackHandler(t)
	router := taskRouter(h)

	// Warm the page cache so the create must invalidate it.
	rec := doRequest(t, router, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/tasks", map[string]any{
		"id":          "caller-chosen",
		"title":       "Write tests",
		"description": "for the task handler",
		"completed":   false,
	})
	// Unknown fields are rejected, so the caller cannot even send an id.
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/tasks", map[string]any{
		"title":       "Write tests",
		"description": "for the task handler",
		"completed":   false,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Task](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Write tests", created.Title)
	assert.Equal(t, 26, taskStore.Len())

	rec = doRequest(t, router, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[pagination.Page[domain.Task]](t, rec)
	assert.Equal(t, 26, page.Total)
	require.NotEmpty(t, page.Data)
	assert.Equal(t, created.ID, page.Data[0].ID)
}

func TestCreateTask_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"empty body", "", "Invalid request format"},
		{"malformed", `{"title":`, "Invalid request format"},
		{"missing title", map[string]any{"completed": false}, "Invalid title: required field"},
		{"short title", map[string]any{"title": "ab", "completed": false}, "Invalid title: too short"},
		{"missing completed", map[string]any{"title": "Valid"}, "Invalid completed: required field"},
		{
			"long description",
			map[string]any{"title": "Valid", "description": string(bytes.Repeat([]byte("x"), 501)), "completed": true},
			"Invalid description: too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, taskStore := newStackHandler(t)
			rec := doRequest(t, taskRouter(h), http.MethodPost, "/tasks", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody[map[string]any](t, rec)
			assert.Equal(t, tt.message, body["error"])
			assert.Equal(t, 25, taskStore.Len())
		})
	}
}

func TestCreateTask_DescriptionBoundary(t *testing.T) {
	h, _ := newStackHandler(t)
	rec := doRequest(t, taskRouter(h), http.MethodPost, "/tasks", map[string]any{
		"title":       "abc",
		"description": string(bytes.Repeat([]byte("x"), 500)),
		"completed":   true,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateTask(t *testing.T) {
	h, _ := newStackHandler(t)
	router := taskRouter(h)

	rec := doRequest(t, router, http.MethodPatch, "/tasks/1", map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.Task](t, rec)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "Learn React", updated.Title)
	assert.True(t, updated.Completed)

	rec = doRequest(t, router, http.MethodGet, "/tasks/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[domain.Task](t, rec).Completed)
}

func TestUpdateTask_Miss(t *testing.T) {
	h, _ := newStackHandler(t)
	rec := doRequest(t, taskRouter(h), http.MethodPatch, "/tasks/nope", map[string]any{"completed": true})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Task not found", decodeBody[map[string]any](t, rec)["error"])
}

func TestUpdateTask_Validation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"empty title", map[string]any{"title": ""}},
		{"short title", map[string]any{"title": "ab"}},
		{"long description", map[string]any{"description": string(bytes.Repeat([]byte("y"), 501))}},
		{"unknown field", map[string]any{"id": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newStackHandler(t)
			rec := doRequest(t, taskRouter(h), http.MethodPatch, "/tasks/1", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteTask(t *testing.T) {
	h, taskStore := newStackHandler(t)
	router := taskRouter(h)

	rec := doRequest(t, router, http.MethodDelete, "/tasks/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())
	assert.Equal(t, 24, taskStore.Len())

	// Deleting a missing task is still a success.
	rec = doRequest(t, router, http.MethodDelete, "/tasks/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/tasks", nil)
	assert.Equal(t, 24, decodeBody[pagination.Page[domain.Task]](t, rec).Total)
}

func TestTaskHandler_UpstreamErrors(t *testing.T) {
	upstream := store.NewStoreError("task", "list", "backend unavailable", errors.New("connection reset by peer"))

	repo := &mocks.MockTaskRepository{DefaultError: upstream}
	pages := &mocks.MockTaskStore{DefaultError: upstream}
	router := taskRouter(NewTaskHandler(repo, pages, discardLogger()))

	tests := []struct {
		name    string
		method  string
		target  string
		body    any
		message string
	}{
		{"list", http.MethodGet, "/tasks", nil, "An unexpected error occurred"},
		{"get", http.MethodGet, "/tasks/1", nil, "An unexpected error occurred"},
		{"create", http.MethodPost, "/tasks", map[string]any{"title": "abc", "completed": false}, "Failed to create task"},
		{"update", http.MethodPatch, "/tasks/1", map[string]any{"completed": true}, "An unexpected error occurred"},
		{"delete", http.MethodDelete, "/tasks/1", nil, "Failed to delete task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.message, decodeBody[map[string]any](t, rec)["error"])
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestUpdateTask_ForwardsPatch(t *testing.T) {
	var got domain.TaskPatch
	repo := &mocks.MockTaskRepository{
		EditTaskFn: func(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
			got = patch
			return &domain.Task{ID: id, Title: "kept"}, nil
		},
	}
	router := taskRouter(NewTaskHandler(repo, &mocks.MockTaskStore{}, discardLogger()))

	rec := doRequest(t, router, http.MethodPatch, "/tasks/7", map[string]any{"description": ""})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got.Description)
	assert.Equal(t, "", *got.Description)
	assert.Nil(t, got.Title)
	assert.Nil(t, got.Completed)
}
