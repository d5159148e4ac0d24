package adapter

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/models"
)

var _ service.AccountManager = (*RemoteAccounts)(nil)

// KeyToken is where the bearer token is cached between dashboard runs.
const KeyToken = "@authToken"

// RemoteAccounts implements service.AccountManager against garden-server.
//
// The server owns the directory and the session; RemoteAccounts keeps a
// snapshot of the logged-in account so Current and State answer without a
// round trip.
type RemoteAccounts struct {
	server ServerAdapter

	// tokens caches the bearer token locally. May be nil.
	tokens store.KeyValueStore

	logger *logger.Logger

	opMu sync.Mutex

	stateMu sync.RWMutex
	state   models.SessionState
	current *models.Account

	initOnce sync.Once
	ready    chan struct{}
}

func NewRemoteAccounts(server ServerAdapter, tokens store.KeyValueStore, logger *logger.Logger) *RemoteAccounts {
	return &RemoteAccounts{
		server: server,
		tokens: tokens,
		logger: logger,
		state:  models.SessionNone,
		ready:  make(chan struct{}),
	}
}

func (r *RemoteAccounts) Init(ctx context.Context) {
	r.initOnce.Do(func() {
		r.stateMu.Lock()
		r.state = models.SessionLoading
		r.stateMu.Unlock()

		go r.loadSession(ctx)
	})
}

func (r *RemoteAccounts) loadSession(ctx context.Context) {
	log := r.logger.With().Str("func", "RemoteAccounts.loadSession").Logger()

	r.opMu.Lock()
	defer r.opMu.Unlock()
	defer close(r.ready)

	r.restoreToken(ctx)

	info, err := r.server.GetSession(ctx)
	if err != nil {
		log.Err(err).Msg("fetching session failed")
		r.setState(models.SessionNone, nil)
		return
	}

	if info.State != models.SessionActive || info.Account == nil || info.Account.ID == "" {
		r.setState(models.SessionNone, nil)
		return
	}

	account := *info.Account
	r.setState(models.SessionActive, &account)
}

func (r *RemoteAccounts) Ready() <-chan struct{} {
	return r.ready
}

func (r *RemoteAccounts) WaitReady(ctx context.Context) error {
	select {
	case <-r.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *RemoteAccounts) Current() (models.Account, bool) {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()

	if r.current == nil {
		return models.Account{}, false
	}
	return *r.current, true
}

func (r *RemoteAccounts) IsLoading() bool {
	return r.State() == models.SessionLoading
}

func (r *RemoteAccounts) State() models.SessionState {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()

	return r.state
}

func (r *RemoteAccounts) Register(ctx context.Context, name, email, password string) (models.Account, error) {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	account, err := r.server.Register(ctx, models.Registration{Name: name, Email: email, Password: password})
	if err != nil {
		return models.Account{}, err
	}

	r.saveToken(ctx)
	r.setState(models.SessionActive, &account)
	return account, nil
}

func (r *RemoteAccounts) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	account, err := r.server.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return models.Account{}, err
	}

	r.saveToken(ctx)
	r.setState(models.SessionActive, &account)
	return account, nil
}

// UpdateProfile mirrors the in-process contract: without a session it does
// nothing. When the server rejects the session the snapshot is cleared; on a
// partial failure it is refreshed from the server.
func (r *RemoteAccounts) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Account, bool, error) {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	if _, ok := r.Current(); !ok {
		return models.Account{}, false, nil
	}

	account, err := r.server.UpdateProfile(ctx, patch)
	switch {
	case err == nil:
		r.setState(models.SessionActive, &account)
		return account, true, nil
	case errors.Is(err, service.ErrPartialUpdate):
		refreshed, _ := r.refresh(ctx)
		return refreshed, true, err
	case errors.Is(err, service.ErrNoActiveSession):
		// the server no longer knows this session
		r.server.SetToken("")
		r.dropToken(ctx)
		r.setState(models.SessionNone, nil)
		return models.Account{}, false, nil
	default:
		return models.Account{}, false, err
	}
}

func (r *RemoteAccounts) ChangePassword(ctx context.Context, current, next, confirm string) error {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	if _, ok := r.Current(); !ok {
		return service.ErrNoActiveSession
	}

	err := r.server.ChangePassword(ctx, models.PasswordChange{
		CurrentPassword: current,
		NewPassword:     next,
		ConfirmPassword: confirm,
	})
	if errors.Is(err, service.ErrPartialUpdate) {
		r.refresh(ctx)
	}
	return err
}

func (r *RemoteAccounts) EndSession(ctx context.Context) error {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	// a rejected token means the server has no session for us either
	if err := r.server.Logout(ctx); err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}

	r.dropToken(ctx)
	r.setState(models.SessionNone, nil)
	return nil
}

// refresh re-reads the session from the server into the snapshot.
func (r *RemoteAccounts) refresh(ctx context.Context) (models.Account, bool) {
	info, err := r.server.GetSession(ctx)
	if err != nil {
		r.logger.Err(err).Str("func", "RemoteAccounts.refresh").Msg("refreshing session failed")
		current, ok := r.Current()
		return current, ok
	}

	if info.State != models.SessionActive || info.Account == nil {
		r.setState(models.SessionNone, nil)
		return models.Account{}, false
	}

	account := *info.Account
	r.setState(models.SessionActive, &account)
	return account, true
}

func (r *RemoteAccounts) setState(state models.SessionState, account *models.Account) {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()

	r.state = state
	r.current = account
}

func (r *RemoteAccounts) restoreToken(ctx context.Context) {
	if r.tokens == nil {
		return
	}

	token, found, err := r.tokens.Get(ctx, KeyToken)
	if err != nil {
		r.logger.Warn().Err(err).Msg("reading cached token failed")
		return
	}
	if found {
		r.server.SetToken(token)
	}
}

func (r *RemoteAccounts) saveToken(ctx context.Context) {
	if r.tokens == nil {
		return
	}
	if err := r.tokens.Set(ctx, KeyToken, r.server.Token()); err != nil {
		r.logger.Warn().Err(err).Msg("caching token failed")
	}
}

func (r *RemoteAccounts) dropToken(ctx context.Context) {
	if r.tokens == nil {
		return
	}
	if err := r.tokens.Remove(ctx, KeyToken); err != nil {
		r.logger.Warn().Err(err).Msg("removing cached token failed")
	}
}
