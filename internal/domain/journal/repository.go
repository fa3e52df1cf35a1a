package journal

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

type Repository interface {
	FindAll(ctx context.Context) []Entry
	SaveAll(ctx context.Context, entries []Entry) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Entry {
	return store.LoadList[Entry](ctx, r.store, store.KeyJournal)
}

func (r *repository) SaveAll(ctx context.Context, entries []Entry) error {
	return store.SaveList(ctx, r.store, store.KeyJournal, entries)
}
