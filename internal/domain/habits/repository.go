package habits

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

// Repository stores habits and their completions as two flat collections.
type Repository interface {
	FindAll(ctx context.Context) []Habit
	SaveAll(ctx context.Context, habits []Habit) error
	FindCompletions(ctx context.Context) []HabitCompletion
	SaveCompletions(ctx context.Context, completions []HabitCompletion) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Habit {
	return store.LoadList[Habit](ctx, r.store, store.KeyHabits)
}

func (r *repository) SaveAll(ctx context.Context, habits []Habit) error {
	return store.SaveList(ctx, r.store, store.KeyHabits, habits)
}

func (r *repository) FindCompletions(ctx context.Context) []HabitCompletion {
	return store.LoadList[HabitCompletion](ctx, r.store, store.KeyHabitCompletions)
}

func (r *repository) SaveCompletions(ctx context.Context, completions []HabitCompletion) error {
	return store.SaveList(ctx, r.store, store.KeyHabitCompletions, completions)
}
