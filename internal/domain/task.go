package domain

import (
	"errors"
	"unicode/utf8"
)

// Task limits shared by the validation layer.
const (
	// MinTaskTitleLength is the shortest title accepted by the task form.
	MinTaskTitleLength = 3

	// MaxTaskDescriptionLength is the longest description accepted, in characters.
	MaxTaskDescriptionLength = 500
)

// Task-specific validation errors
var (
	// ErrTaskTitleEmpty is returned when a task has no title.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskTitleTooShort is returned when a title is shorter than MinTaskTitleLength.
	ErrTaskTitleTooShort = errors.New("task title is too short")

	// ErrTaskDescriptionTooLong is returned when a description exceeds MaxTaskDescriptionLength.
	ErrTaskDescriptionTooLong = errors.New("task description is too long")
)

// Task is a single to-do item.
// ID is assigned by the task store at creation and never changes afterwards.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

// Validate checks the task against the rules of the task form.
// The store itself never calls this; it is used at the input boundary.
func (t *Task) Validate() error {
	if t.Title == "" {
		return NewValidationError("title", "is required", ErrTaskTitleEmpty)
	}
	if utf8.RuneCountInString(t.Title) < MinTaskTitleLength {
		return NewValidationError("title", "must be at least 3 characters", ErrTaskTitleTooShort)
	}
	if utf8.RuneCountInString(t.Description) > MaxTaskDescriptionLength {
		return NewValidationError("description", "is too long", ErrTaskDescriptionTooLong)
	}
	return nil
}

// TaskPatch is a partial update. Nil fields are left untouched.
// It has no ID field, so identity cannot be patched.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Apply shallow-merges the patch onto t in place.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
