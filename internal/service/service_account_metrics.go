package service

import (
	"context"

	"github.com/MKhiriev/go-garden-keeper/internal/metrics"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// MetricsWrapper counts every AccountManager operation by outcome and keeps
// the session gauge current.
type MetricsWrapper struct {
	registry *metrics.Registry
}

func NewMetricsWrapper(registry *metrics.Registry) AccountManagerWrapper {
	return &MetricsWrapper{registry: registry}
}

func (w *MetricsWrapper) Wrap(next AccountManager) AccountManager {
	return &instrumentedAccountManager{AccountManager: next, registry: w.registry}
}

type instrumentedAccountManager struct {
	AccountManager
	registry *metrics.Registry
}

func (m *instrumentedAccountManager) Register(ctx context.Context, name, email, password string) (models.Account, error) {
	account, err := m.AccountManager.Register(ctx, name, email, password)
	m.observe("register", err)
	return account, err
}

func (m *instrumentedAccountManager) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	account, err := m.AccountManager.Authenticate(ctx, email, password)
	m.observe("authenticate", err)
	return account, err
}

func (m *instrumentedAccountManager) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Account, bool, error) {
	account, updated, err := m.AccountManager.UpdateProfile(ctx, patch)
	if err == nil && !updated {
		m.registry.ObserveOperation("update_profile", "no_session")
	} else {
		m.observe("update_profile", err)
	}
	return account, updated, err
}

func (m *instrumentedAccountManager) ChangePassword(ctx context.Context, current, next, confirm string) error {
	err := m.AccountManager.ChangePassword(ctx, current, next, confirm)
	m.observe("change_password", err)
	return err
}

func (m *instrumentedAccountManager) EndSession(ctx context.Context) error {
	err := m.AccountManager.EndSession(ctx)
	m.observe("end_session", err)
	return err
}

func (m *instrumentedAccountManager) observe(operation string, err error) {
	m.registry.ObserveOperation(operation, Outcome(err))
	m.registry.SetSessionActive(m.AccountManager.State() == models.SessionActive)
}
