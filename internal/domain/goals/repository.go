package goals

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

// Repository stores goals, subtasks embedded, as one collection.
type Repository interface {
	FindAll(ctx context.Context) []Goal
	SaveAll(ctx context.Context, goals []Goal) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Goal {
	goals := store.LoadList[Goal](ctx, r.store, store.KeyGoals)
	for i := range goals {
		if goals[i].Subtasks == nil {
			goals[i].Subtasks = []GoalSubtask{}
		}
	}
	return goals
}

func (r *repository) SaveAll(ctx context.Context, goals []Goal) error {
	return store.SaveList(ctx, r.store, store.KeyGoals, goals)
}
