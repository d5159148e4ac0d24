package adapter

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/models"
)

var _ service.ThemeManager = (*RemoteTheme)(nil)

// RemoteTheme implements service.ThemeManager against garden-server. The
// last known preference is cached; it starts as system and light.
type RemoteTheme struct {
	server ServerAdapter
	logger *logger.Logger

	mu   sync.RWMutex
	info models.ThemeInfo
}

func NewRemoteTheme(server ServerAdapter, logger *logger.Logger) *RemoteTheme {
	return &RemoteTheme{
		server: server,
		logger: logger,
		info:   models.ThemeInfo{Theme: models.ThemeSystem},
	}
}

// Init fetches the preference. A failure keeps the default.
func (t *RemoteTheme) Init(ctx context.Context) {
	info, err := t.server.GetTheme(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "RemoteTheme.Init").Msg("fetching theme failed")
		return
	}
	t.set(info)
}

func (t *RemoteTheme) Theme() models.Theme {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.info.Theme
}

func (t *RemoteTheme) IsDark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.info.Dark
}

func (t *RemoteTheme) SetTheme(ctx context.Context, theme models.Theme) error {
	info, err := t.server.SetTheme(ctx, theme)
	if err != nil {
		return err
	}
	t.set(info)
	return nil
}

func (t *RemoteTheme) Toggle(ctx context.Context) (models.Theme, error) {
	info, err := t.server.ToggleTheme(ctx)
	if err != nil {
		return t.Theme(), err
	}
	t.set(info)
	return info.Theme, nil
}

func (t *RemoteTheme) set(info models.ThemeInfo) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.info = info
}
