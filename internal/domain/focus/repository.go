package focus

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

type Repository interface {
	FindAll(ctx context.Context) []Session
	SaveAll(ctx context.Context, sessions []Session) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Session {
	return store.LoadList[Session](ctx, r.store, store.KeyFocusSessions)
}

func (r *repository) SaveAll(ctx context.Context, sessions []Session) error {
	return store.SaveList(ctx, r.store, store.KeyFocusSessions, sessions)
}
