package api

import (
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the bearer token for subsequent task requests
	Token string `json:"token"`
}

// SessionResponse describes the current auth session. The token itself is
// never reported.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// CreateTaskRequest defines the payload for creating a task.
// Completed is a pointer so that an absent field fails the required check.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=3"`
	Description string `json:"description" validate:"max=500"`
	Completed   *bool  `json:"completed"   validate:"required"`
}

// ToTask converts the request into a task without an ID.
func (r CreateTaskRequest) ToTask() domain.Task {
	task := domain.Task{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Completed != nil {
		task.Completed = *r.Completed
	}
	return task
}

// UpdateTaskRequest defines the payload for a partial task update.
// Absent fields are left unchanged; present fields follow the create rules.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitnil,min=3"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=500"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// DeleteTaskResponse is returned by the delete endpoint.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Tasks  int    `json:"tasks"`
}
