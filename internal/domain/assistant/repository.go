package assistant

import (
	"context"

	"github.com/focusflow/focusflow/internal/store"
)

type Repository interface {
	FindAll(ctx context.Context) []Message
	SaveAll(ctx context.Context, messages []Message) error
}

type repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) []Message {
	return store.LoadList[Message](ctx, r.store, store.KeyMessages)
}

func (r *repository) SaveAll(ctx context.Context, messages []Message) error {
	return store.SaveList(ctx, r.store, store.KeyMessages, messages)
}
