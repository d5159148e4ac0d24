package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/mock"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/models"
)

func darkScheme() bool { return true }

func TestThemeService_DefaultsToSystem(t *testing.T) {
	svc := service.NewThemeService(store.NewMemoryStore(), nil, logger.Nop())
	svc.Init(context.Background())

	assert.Equal(t, models.ThemeSystem, svc.Theme())
	assert.False(t, svc.IsDark(), "system resolves to light without a scheme")
}

func TestThemeService_InitLoadsStoredTheme(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   models.Theme
	}{
		{name: "dark", stored: "dark", want: models.ThemeDark},
		{name: "light", stored: "light", want: models.ThemeLight},
		{name: "unknown", stored: "sepia", want: models.ThemeSystem},
		{name: "empty", stored: "", want: models.ThemeSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemoryStore()
			require.NoError(t, kv.Set(context.Background(), service.KeyTheme, tt.stored))

			svc := service.NewThemeService(kv, nil, logger.Nop())
			svc.Init(context.Background())

			assert.Equal(t, tt.want, svc.Theme())
		})
	}
}

func TestThemeService_InitStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), service.KeyTheme).Return("", false, errDisk)

	svc := service.NewThemeService(kv, nil, logger.Nop())
	svc.Init(context.Background())

	assert.Equal(t, models.ThemeSystem, svc.Theme())
}

func TestThemeService_IsDark(t *testing.T) {
	tests := []struct {
		theme  models.Theme
		scheme service.SystemScheme
		want   bool
	}{
		{theme: models.ThemeDark, scheme: service.LightScheme, want: true},
		{theme: models.ThemeLight, scheme: darkScheme, want: false},
		{theme: models.ThemeSystem, scheme: darkScheme, want: true},
		{theme: models.ThemeSystem, scheme: service.LightScheme, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			svc := service.NewThemeService(store.NewMemoryStore(), tt.scheme, logger.Nop())
			require.NoError(t, svc.SetTheme(context.Background(), tt.theme))

			assert.Equal(t, tt.want, svc.IsDark())
			assert.Equal(t, models.ThemeInfo{Theme: tt.theme, Dark: tt.want}, svc.Info())
		})
	}
}

func TestThemeService_SetTheme_Persists(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := service.NewThemeService(kv, nil, logger.Nop())

	require.NoError(t, svc.SetTheme(context.Background(), models.ThemeDark))

	raw, found, err := kv.Get(context.Background(), service.KeyTheme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "dark", raw)

	restarted := service.NewThemeService(kv, nil, logger.Nop())
	restarted.Init(context.Background())
	assert.Equal(t, models.ThemeDark, restarted.Theme())
}

func TestThemeService_SetTheme_Invalid(t *testing.T) {
	svc := service.NewThemeService(store.NewMemoryStore(), nil, logger.Nop())

	err := svc.SetTheme(context.Background(), models.Theme("sepia"))
	require.ErrorIs(t, err, service.ErrInvalidTheme)
	assert.Equal(t, models.ThemeSystem, svc.Theme())
}

func TestThemeService_SetTheme_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Set(gomock.Any(), service.KeyTheme, "dark").Return(errDisk)

	svc := service.NewThemeService(kv, nil, logger.Nop())

	err := svc.SetTheme(context.Background(), models.ThemeDark)
	require.ErrorIs(t, err, service.ErrStorage)
	assert.Equal(t, models.ThemeSystem, svc.Theme(), "unchanged after failed write")
}

func TestThemeService_Toggle_Cycle(t *testing.T) {
	svc := service.NewThemeService(store.NewMemoryStore(), nil, logger.Nop())
	ctx := context.Background()

	want := []models.Theme{models.ThemeDark, models.ThemeLight, models.ThemeSystem, models.ThemeDark}
	for _, w := range want {
		got, err := svc.Toggle(ctx)
		require.NoError(t, err)
		assert.Equal(t, w, got)
		assert.Equal(t, w, svc.Theme())
	}
}

func TestThemeService_Toggle_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Set(gomock.Any(), service.KeyTheme, "dark").Return(errDisk)

	svc := service.NewThemeService(kv, nil, logger.Nop())

	got, err := svc.Toggle(context.Background())
	require.ErrorIs(t, err, service.ErrStorage)
	assert.Equal(t, models.ThemeSystem, got)
}
