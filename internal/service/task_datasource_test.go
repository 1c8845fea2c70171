package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/pagination"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskDataSource_NilStore(t *testing.T) {
	ds, err := service.NewTaskDataSource(nil, nil)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskDataSource_ForwardsArguments(t *testing.T) {
	page := &pagination.Page[domain.Task]{Data: []domain.Task{{ID: "1"}}, Page: 2, PageSize: 5, Total: 1, TotalPages: 1}
	mockStore := &mocks.MockTaskStore{Page: page}

	ds, err := service.NewTaskDataSource(mockStore, nil)
	require.NoError(t, err)

	got, err := ds.List(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Same(t, page, got)

	got, err = ds.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Same(t, page, got)

	assert.Equal(t, []mocks.ListCall{{Page: 2, PageSize: 5}, {Page: 0, PageSize: 0}}, mockStore.ListCalls)
}

func TestTaskDataSource_PropagatesErrors(t *testing.T) {
	upstream := errors.New("upstream failure")
	mockStore := &mocks.MockTaskStore{DefaultError: upstream}

	ds, err := service.NewTaskDataSource(mockStore, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = ds.List(ctx, 1, 12)
	assert.Same(t, upstream, err)

	_, err = ds.Get(ctx, "1")
	assert.Same(t, upstream, err)

	_, err = ds.Create(ctx, domain.Task{Title: "x"})
	assert.Same(t, upstream, err)

	_, err = ds.Update(ctx, "1", domain.TaskPatch{})
	assert.Same(t, upstream, err)

	deleted, err := ds.Delete(ctx, "1")
	assert.False(t, deleted)
	assert.Same(t, upstream, err)
}

func TestTaskDataSource_NotFoundIdentity(t *testing.T) {
	mockStore := &mocks.MockTaskStore{DefaultError: store.ErrTaskNotFound}
	ds, err := service.NewTaskDataSource(mockStore, nil)
	require.NoError(t, err)

	_, err = ds.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTaskDataSource_Delete(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"existing id", "3"},
		{"missing id", "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &mocks.MockTaskStore{}
			ds, err := service.NewTaskDataSource(mockStore, nil)
			require.NoError(t, err)

			deleted, err := ds.Delete(context.Background(), tt.id)
			require.NoError(t, err)
			assert.True(t, deleted)
			assert.Equal(t, []string{tt.id}, mockStore.DeleteIDs)
		})
	}
}

func TestTaskDataSource_UpdateMissPassesThrough(t *testing.T) {
	mockStore := &mocks.MockTaskStore{
		UpdateFn: func(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
			return nil, nil
		},
	}
	ds, err := service.NewTaskDataSource(mockStore, nil)
	require.NoError(t, err)

	task, err := ds.Update(context.Background(), "missing", domain.TaskPatch{})
	assert.NoError(t, err)
	assert.Nil(t, task)
}
