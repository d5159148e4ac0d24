package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.App
		build     models.AppBuildInfo
		wantErr   error
		wantBuild models.AppBuildInfo
	}{
		{
			name:    "nothing configured",
			wantErr: ErrVersionIsNotSpecified,
		},
		{
			name:      "configured version only",
			cfg:       config.App{Version: "v1.2.3-beta+build.42"},
			wantBuild: models.AppBuildInfo{Version: "v1.2.3-beta+build.42", Date: models.NotAvailable, Commit: models.NotAvailable},
		},
		{
			name:      "linked version only",
			build:     models.AppBuildInfo{Version: "v0.9.0", Commit: "abc123"},
			wantBuild: models.AppBuildInfo{Version: "v0.9.0", Date: models.NotAvailable, Commit: "abc123"},
		},
		{
			name:      "configured version wins over linked",
			cfg:       config.App{Version: "1.0.0"},
			build:     models.AppBuildInfo{Version: "v0.9.0", Date: "2026-05-01", Commit: "abc123"},
			wantBuild: models.AppBuildInfo{Version: "1.0.0", Date: "2026-05-01", Commit: "abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)

			// ctx is unused; a cancelled one must not matter
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			assert.Equal(t, tt.wantBuild, svc.GetBuildInfo(ctx))
			assert.Equal(t, tt.wantBuild.Version, svc.GetAppVersion(ctx))
		})
	}
}
