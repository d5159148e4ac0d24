package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// KeyTheme is the storage key of the appearance preference.
const KeyTheme = "@app_theme"

// SystemScheme reports whether the surrounding environment prefers a dark
// appearance. It resolves the system theme.
type SystemScheme func() bool

// LightScheme is the SystemScheme used when none is supplied.
func LightScheme() bool { return false }

// ThemeService is the concrete implementation of ThemeManager.
type ThemeService struct {
	kv     store.KeyValueStore
	scheme SystemScheme
	logger *logger.Logger

	mu    sync.RWMutex
	theme models.Theme
}

func NewThemeService(kv store.KeyValueStore, scheme SystemScheme, logger *logger.Logger) *ThemeService {
	if scheme == nil {
		scheme = LightScheme
	}
	return &ThemeService{
		kv:     kv,
		scheme: scheme,
		logger: logger,
		theme:  models.ThemeSystem,
	}
}

// Init loads the stored preference. A missing, unknown or unreadable value
// leaves the system theme in place.
func (s *ThemeService) Init(ctx context.Context) {
	log := logger.FromContextOr(ctx, s.logger).With().Str("func", "ThemeService.Init").Logger()

	raw, found, err := s.kv.Get(ctx, KeyTheme)
	if err != nil {
		log.Err(err).Msg("reading theme failed, using system theme")
		return
	}
	if !found {
		return
	}

	theme := models.Theme(raw)
	if !theme.Valid() {
		log.Warn().Str("theme", raw).Msg("ignoring unknown stored theme")
		return
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
}

func (s *ThemeService) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

// IsDark resolves the preference to the appearance actually shown.
func (s *ThemeService) IsDark() bool {
	switch s.Theme() {
	case models.ThemeDark:
		return true
	case models.ThemeLight:
		return false
	default:
		return s.scheme()
	}
}

// SetTheme persists theme and makes it current. The in-memory value only
// changes after the write succeeds.
func (s *ThemeService) SetTheme(ctx context.Context, theme models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setLocked(ctx, theme)
}

// Toggle advances the preference along system, dark, light and back.
func (s *ThemeService) Toggle(ctx context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.theme.Next()
	if err := s.setLocked(ctx, next); err != nil {
		return s.theme, err
	}
	return next, nil
}

func (s *ThemeService) setLocked(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}

	if err := s.kv.Set(ctx, KeyTheme, string(theme)); err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "ThemeService.SetTheme").
			Str("theme", string(theme)).
			Msg("saving theme failed")
		return fmt.Errorf("%w: writing theme: %w", ErrStorage, err)
	}

	s.theme = theme
	return nil
}

// Info is the transport view of the current preference.
func (s *ThemeService) Info() models.ThemeInfo {
	return ThemeInfo(s)
}

// ThemeInfo builds the transport view of any ThemeManager.
func ThemeInfo(m ThemeManager) models.ThemeInfo {
	return models.ThemeInfo{Theme: m.Theme(), Dark: m.IsDark()}
}
