package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
)

// TaskStore is the sole owner of the task collection.
//
// The collection is ordered; new tasks are inserted at the front, and list
// queries page through it in that order.
type TaskStore interface {
	// List returns one page of tasks. A zero page or pageSize selects the
	// default (1 and 12). A page past the end returns empty data with totals
	// that still describe the whole collection; it is never an error.
	// Returns pagination.ErrInvalidPageRequest for negative values.
	List(ctx context.Context, page, pageSize int) (*pagination.Page[domain.Task], error)

	// Get retrieves a task by ID.
	// Returns ErrTaskNotFound if no task has that ID.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// Create stores a new task at the front of the collection.
	// A fresh unique ID is generated and any caller-supplied ID is overwritten.
	// No validation is performed.
	Create(ctx context.Context, task domain.Task) (*domain.Task, error)

	// Update shallow-merges patch onto the task with the given ID and returns
	// the merged task. If no task has that ID it returns (nil, nil): a miss is
	// not an error here, unlike Get.
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task with the given ID.
	// Deleting an ID that does not exist is a no-op and returns nil.
	Delete(ctx context.Context, id string) error
}
