package notes

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

type Repository interface {
	FindAll(ctx context.Context) []Note
	SaveAll(ctx context.Context, notes []Note) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Note {
	return store.LoadList[Note](ctx, r.store, store.KeyNotes)
}

func (r *repository) SaveAll(ctx context.Context, notes []Note) error {
	return store.SaveList(ctx, r.store, store.KeyNotes, notes)
}
