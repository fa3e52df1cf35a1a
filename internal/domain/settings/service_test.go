package settings

import (
	"context"
	"testing"

	"github.com/focusflow/focusflow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeDefaultsToLight(t *testing.T) {
	svc := NewService(store.NewMemory(nil), nil)
	assert.Equal(t, ThemeLight, svc.Theme(context.Background()))
}

func TestToggleTheme(t *testing.T) {
	st := store.NewMemory(nil)
	svc := NewService(st, nil)
	ctx := context.Background()

	theme, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	raw, err := st.Raw(ctx, store.KeyTheme)
	require.NoError(t, err)
	assert.JSONEq(t, `"dark"`, string(raw))

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestSetThemeValidates(t *testing.T) {
	svc := NewService(store.NewMemory(nil), nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetTheme(ctx, "sepia"), ErrInvalidTheme)
	require.NoError(t, svc.SetTheme(ctx, ThemeDark))
	assert.Equal(t, ThemeDark, svc.Theme(ctx))
}

func TestUnknownStoredThemeReadsAsLight(t *testing.T) {
	st := store.NewMemory(nil)
	ctx := context.Background()
	require.NoError(t, st.Put(ctx, store.KeyTheme, "neon"))
	assert.Equal(t, ThemeLight, NewService(st, nil).Theme(ctx))
}
