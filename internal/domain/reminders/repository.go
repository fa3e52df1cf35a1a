package reminders

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

type Repository interface {
	FindAll(ctx context.Context) []Reminder
	SaveAll(ctx context.Context, reminders []Reminder) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Reminder {
	return store.LoadList[Reminder](ctx, r.store, store.KeyReminders)
}

func (r *repository) SaveAll(ctx context.Context, reminders []Reminder) error {
	return store.SaveList(ctx, r.store, store.KeyReminders, reminders)
}
