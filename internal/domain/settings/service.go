package settings

import (
	"context"
	"errors"
	"sync"

	"github.com/focusflow/focusflow/internal/store"
	"go.uber.org/zap"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

type Service interface {
	Theme(ctx context.Context) Theme
	SetTheme(ctx context.Context, theme Theme) error
	// ToggleTheme flips between light and dark and returns the new theme.
	ToggleTheme(ctx context.Context) (Theme, error)
}

type service struct {
	mu     sync.Mutex
	store  *store.Store
	logger *zap.Logger
}

func NewService(s *store.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: s, logger: logger}
}

func (s *service) Theme(ctx context.Context) Theme {
	theme := store.LoadValue(ctx, s.store, store.KeyTheme, ThemeLight)
	if theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

func (s *service) SetTheme(ctx context.Context, theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Put(ctx, store.KeyTheme, theme)
}

func (s *service) ToggleTheme(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ThemeDark
	if s.Theme(ctx) == ThemeDark {
		next = ThemeLight
	}
	if err := s.store.Put(ctx, store.KeyTheme, next); err != nil {
		return "", err
	}
	s.logger.Info("Theme changed", zap.String("theme", string(next)))
	return next, nil
}
