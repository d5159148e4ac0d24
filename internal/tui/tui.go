package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/validators"
	"github.com/MKhiriev/go-garden-keeper/models"
)

var ErrUserQuit = errors.New("user quit the dashboard")

// TUI is the terminal garden dashboard. It works with any AccountManager,
// ThemeManager and ReadingsProvider, in-process or remote.
type TUI struct {
	env *env

	// programOptions are passed to tea.NewProgram; tests drop the alt screen.
	programOptions []tea.ProgramOption
}

func New(accounts service.AccountManager, theme service.ThemeManager, readings service.ReadingsProvider, build models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		env: &env{
			accounts:  accounts,
			theme:     theme,
			readings:  readings,
			validator: validators.NewAccountValidator(),
			build:     build,
			copy:      clipboard.WriteAll,
			logger:    logger,
		},
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run blocks until the user quits. It returns ErrUserQuit on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	t.env.ctx = ctx

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(NewRootModel(t.env), opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// env is what every page shares: the services, the validator and the
// clipboard.
type env struct {
	ctx       context.Context
	accounts  service.AccountManager
	theme     service.ThemeManager
	readings  service.ReadingsProvider
	validator validators.Validator
	build     models.AppBuildInfo
	copy      func(string) error
	logger    *logger.Logger
}

func (e *env) styles() styles {
	return newStyles(e.theme.IsDark())
}
