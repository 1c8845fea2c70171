package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/retry"
)

// DefaultTimeout bounds a single HTTP attempt.
const DefaultTimeout = 10 * time.Second

// callMode selects how a request is authenticated and whether it is retried.
type callMode int

const (
	// publicCall sends no bearer token and gets a single attempt.
	publicCall callMode = iota
	// sessionCall sends the bearer token and gets a single attempt.
	sessionCall
	// taskCall sends the bearer token and is retried while retry.Decide allows.
	taskCall
)

// TokenSource supplies the current bearer token.
// session.AuthSession satisfies it.
type TokenSource interface {
	Token() (token string, ok bool, err error)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRetryBaseDelay sets the pause before the first retry. Later retries
// double it up to retry.MaxDelay. Zero retries immediately.
func WithRetryBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.retryBase = d
		}
	}
}

// Client calls the taskboard API.
type Client struct {
	baseURL   *url.URL
	tokens    TokenSource
	http      *http.Client
	logger    *slog.Logger
	retryBase time.Duration
}

// New creates a Client for the API at baseURL.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil", domain.ErrValidation)
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, domain.NewValidationError("baseURL", "must be an absolute URL", domain.ErrValidation)
	}

	c := &Client{
		baseURL:   u,
		tokens:    tokens,
		http:      &http.Client{Timeout: DefaultTimeout},
		logger:    slog.Default(),
		retryBase: retry.BaseDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "taskboard_client"))
	return c, nil
}

// Login exchanges credentials for a token. The caller decides where to keep it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp api.LoginResponse
	req := api.LoginRequest{Email: email, Password: password}
	if err := c.fetch(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp, publicCall); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Logout clears the server-side session. It needs the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.fetch(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil, sessionCall)
}

// Session reports the server-side session state.
func (c *Client) Session(ctx context.Context) (*api.SessionResponse, error) {
	var resp api.SessionResponse
	if err := c.fetch(ctx, http.MethodGet, "/api/auth/session", nil, nil, &resp, publicCall); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTasks fetches one page. Zero values select the server defaults.
func (c *Client) ListTasks(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error) {
	query := url.Values{}
	if page != 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize != 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}

	var resp pagination.Page[domain.Task]
	if err := c.fetch(ctx, http.MethodGet, "/api/tasks", query, nil, &resp, taskCall); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTask fetches a task by ID.
func (c *Client) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := c.fetch(ctx, http.MethodGet, taskPath(id), nil, nil, &task, taskCall); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task. Any ID on task is ignored by the server.
func (c *Client) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	completed := task.Completed
	req := api.CreateTaskRequest{
		Title:       task.Title,
		Description: task.Description,
		Completed:   &completed,
	}

	var created domain.Task
	if err := c.fetch(ctx, http.MethodPost, "/api/tasks", nil, req, &created, taskCall); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask applies a partial update. A missing task is a 404 APIError.
func (c *Client) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	req := api.UpdateTaskRequest{
		Title:       patch.Title,
		Description: patch.Description,
		Completed:   patch.Completed,
	}

	var updated domain.Task
	if err := c.fetch(ctx, http.MethodPatch, taskPath(id), nil, req, &updated, taskCall); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) (bool, error) {
	var resp api.DeleteTaskResponse
	if err := c.fetch(ctx, http.MethodDelete, taskPath(id), nil, nil, &resp, taskCall); err != nil {
		return false, err
	}
	return resp.Deleted, nil
}

func taskPath(id string) string {
	return "/api/tasks/" + url.PathEscape(id)
}

// fetch runs one logical call. Task calls are re-attempted while
// retry.Decide allows it, pausing between attempts; auth endpoints get a
// single attempt so that a rejected login is not replayed.
func (c *Client) fetch(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
	mode callMode,
) error {
	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = raw
	}

	backoff := retry.NewBackoff(c.retryBase)
	for attempt := 0; ; attempt++ {
		err := c.attempt(ctx, method, path, query, payload, out, mode != publicCall)
		if err == nil {
			return nil
		}
		if mode != taskCall || ctx.Err() != nil || !retry.Decide(attempt, err) {
			return err
		}

		delay, _ := backoff.Next()
		c.logger.Debug("retrying request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()))
		if err := wait(ctx, delay); err != nil {
			return err
		}
	}
}

// wait pauses for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) attempt(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload []byte,
	out any,
	authenticated bool,
) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if authenticated {
		token, ok, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		if !ok {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error   string `json:"error"`
		TraceID string `json:"trace_id"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Error
		apiErr.TraceID = body.TraceID
	}
	return apiErr
}

var _ retry.StatusCoder = (*APIError)(nil)
