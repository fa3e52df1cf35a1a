package tasks

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

// Repository persists the whole task list as one collection.
type Repository interface {
	FindAll(ctx context.Context) []Task
	SaveAll(ctx context.Context, tasks []Task) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Task {
	return store.LoadList[Task](ctx, r.store, store.KeyTasks)
}

func (r *repository) SaveAll(ctx context.Context, tasks []Task) error {
	return store.SaveList(ctx, r.store, store.KeyTasks, tasks)
}
