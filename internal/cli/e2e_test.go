package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDispatcher_AgainstServer drives login and list through the real client.
func TestDispatcher_AgainstServer(t *testing.T) {
	var bearers []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email != "admin@example.com" || req.Password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(api.LoginResponse{Token: "jwt-admin-token"})
	})
	mux.HandleFunc("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		bearers = append(bearers, r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(pagination.Page[domain.Task]{
			Data:       []domain.Task{{ID: "13", Title: "Learn Testing"}},
			Page:       2,
			PageSize:   12,
			Total:      25,
			TotalPages: 3,
		})
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		bearers = append(bearers, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	run := func(args ...string) (int, string, string) {
		var out, errOut bytes.Buffer
		full := append([]string{args[0], "--config", dir, "--server", srv.URL}, args[1:]...)
		code := NewDispatcher(DefaultRegistry, nil).Run(context.Background(), full, &out, &errOut)
		return code, out.String(), errOut.String()
	}

	code, _, errOut := run("login", "--email", "admin@example.com", "--password", "wrong")
	require.Equal(t, ExitAuthError, code)
	assert.Contains(t, errOut, "invalid credentials")

	code, _, errOut = run("list")
	require.Equal(t, ExitAuthError, code)
	assert.Contains(t, errOut, "not logged in")

	code, out, errOut := run("login", "--email", "admin@example.com", "--password", "admin123")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "ok\n", out)

	code, out, errOut = run("list", "2")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "Learn Testing")
	assert.Contains(t, out, "page 2/3 (25 tasks)")

	code, _, errOut = run("logout")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Empty(t, errOut)
	assert.Equal(t, []string{"Bearer jwt-admin-token", "Bearer jwt-admin-token"}, bearers)

	code, _, _ = run("list")
	assert.Equal(t, ExitAuthError, code)
}
