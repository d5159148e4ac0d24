package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/internal/validators"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// Storage keys of the directory and the session record.
const (
	KeyDirectory = "@users"
	KeySession   = "@currentUser"
)

const minPasswordLength = validators.MinPasswordLength

// AccountService is the concrete implementation of AccountManager.
//
// The directory is a JSON array of accounts stored under KeyDirectory and is
// rewritten in full on every mutation. The session is a JSON copy of one
// account stored under KeySession.
type AccountService struct {
	// kv is the durable store both records live in.
	kv store.KeyValueStore

	// credentials seals new passwords and verifies supplied ones.
	credentials CredentialVerifier

	// ids issues account identifiers at registration.
	ids IDGenerator

	logger *logger.Logger

	// opMu serializes every read-modify-write of the directory and the
	// session, including the initial load.
	opMu sync.Mutex

	// stateMu guards state and current.
	stateMu sync.RWMutex
	state   models.SessionState
	current *models.Account

	initOnce sync.Once
	ready    chan struct{}
}

// NewAccountService constructs an AccountService in the no-session state.
// Call Init to load the persisted session.
func NewAccountService(kv store.KeyValueStore, credentials CredentialVerifier, ids IDGenerator, logger *logger.Logger) *AccountService {
	return &AccountService{
		kv:          kv,
		credentials: credentials,
		ids:         ids,
		logger:      logger,
		state:       models.SessionNone,
		ready:       make(chan struct{}),
	}
}

// Init switches to the loading state and reads the persisted session in the
// background. Only the first call has an effect. An account logged in before
// Init stays visible through Current while loading.
func (s *AccountService) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		s.stateMu.Lock()
		s.state = models.SessionLoading
		s.stateMu.Unlock()

		go s.loadSession(ctx)
	})
}

// Ready is closed once the persisted session has been loaded.
func (s *AccountService) Ready() <-chan struct{} {
	return s.ready
}

// WaitReady blocks until the initial load has finished or ctx is done.
// It never returns before Init has been called and its load completed.
func (s *AccountService) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AccountService) Current() (models.Account, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	if s.current == nil {
		return models.Account{}, false
	}
	return *s.current, true
}

func (s *AccountService) IsLoading() bool {
	return s.State() == models.SessionLoading
}

func (s *AccountService) State() models.SessionState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.state
}

// Register creates an account, persists it and logs it in.
//
// Returns the new account or:
//   - ErrInvalidDataProvided if the email or the password is empty.
//   - ErrDuplicateAccount if the normalized email is already registered.
//   - An error wrapping ErrStorage if a write fails. When only the session
//     write fails the account exists but nobody is logged in.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (models.Account, error) {
	log := s.log(ctx).With().Str("func", "AccountService.Register").Logger()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		log.Err(err).Msg("loading directory failed")
		return models.Account{}, err
	}

	if _, found := findByEmail(directory, email); found {
		log.Info().Str("email", email).Msg("email already registered")
		return models.Account{}, ErrDuplicateAccount
	}

	sealed, err := s.credentials.Seal(password)
	if err != nil {
		log.Err(err).Msg("sealing credential failed")
		return models.Account{}, fmt.Errorf("sealing credential: %w", err)
	}

	account := models.Account{
		ID:       s.ids.Generate(),
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: sealed,
	}

	if err = s.saveDirectory(ctx, append(directory, account)); err != nil {
		log.Err(err).Msg("saving directory failed")
		return models.Account{}, err
	}
	if err = s.saveSession(ctx, account); err != nil {
		log.Err(err).Str("id", account.ID).Msg("saving session failed")
		return models.Account{}, err
	}

	s.setState(models.SessionActive, &account)
	log.Info().Str("id", account.ID).Msg("account registered")

	return account, nil
}

// Authenticate logs in the account registered under email.
//
// Returns the account or:
//   - ErrAccountNotFound if no account has the normalized email.
//   - ErrInvalidCredentials if the password does not verify. The current
//     session is left untouched.
//   - An error wrapping ErrStorage if the directory cannot be read or the
//     session cannot be written.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	log := s.log(ctx).With().Str("func", "AccountService.Authenticate").Logger()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		log.Err(err).Msg("loading directory failed")
		return models.Account{}, err
	}

	i, found := findByEmail(directory, models.NormalizeEmail(email))
	if !found {
		log.Info().Msg("no account for email")
		return models.Account{}, ErrAccountNotFound
	}
	account := directory[i]

	if !s.credentials.Verify(account.Password, password) {
		log.Info().Str("id", account.ID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	if err = s.saveSession(ctx, account); err != nil {
		log.Err(err).Str("id", account.ID).Msg("saving session failed")
		return models.Account{}, err
	}

	s.setState(models.SessionActive, &account)
	log.Info().Str("id", account.ID).Msg("account logged in")

	return account, nil
}

// UpdateProfile merges patch onto the logged-in account and persists it.
//
// Without a session the call does nothing and reports false. The directory
// is written before the session: if the directory write fails nothing
// changed, if the session write fails the returned error wraps
// ErrPartialUpdate and the in-memory session already matches the directory.
func (s *AccountService) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Account, bool, error) {
	log := s.log(ctx).With().Str("func", "AccountService.UpdateProfile").Logger()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	current, ok := s.sessionFor(ctx)
	if !ok {
		log.Debug().Msg("no active session, nothing to update")
		return models.Account{}, false, nil
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		log.Err(err).Msg("loading directory failed")
		return models.Account{}, false, err
	}

	updated := patch.ApplyTo(current)
	if patch.Email != nil {
		if i, found := findByEmail(directory, updated.Email); found && directory[i].ID != updated.ID {
			log.Info().Str("email", updated.Email).Msg("email belongs to another account")
			return models.Account{}, false, ErrDuplicateAccount
		}
	}

	if err = s.persist(ctx, directory, updated); err != nil {
		log.Err(err).Str("id", updated.ID).Msg("persisting profile failed")
		if errors.Is(err, ErrPartialUpdate) {
			return updated, true, err
		}
		return models.Account{}, false, err
	}

	log.Info().Str("id", updated.ID).Msg("profile updated")
	return updated, true, nil
}

// ChangePassword replaces the credential of the logged-in account after
// verifying the current password. Persistence follows the same order and
// partial failure rule as UpdateProfile.
func (s *AccountService) ChangePassword(ctx context.Context, current, next, confirm string) error {
	log := s.log(ctx).With().Str("func", "AccountService.ChangePassword").Logger()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	account, ok := s.sessionFor(ctx)
	if !ok {
		return ErrNoActiveSession
	}

	switch {
	case current == "" || next == "":
		return ErrInvalidDataProvided
	case len(next) < minPasswordLength:
		return ErrPasswordTooShort
	case next != confirm:
		return ErrPasswordMismatch
	}

	if !s.credentials.Verify(account.Password, current) {
		log.Info().Str("id", account.ID).Msg("wrong current password")
		return ErrInvalidCredentials
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		log.Err(err).Msg("loading directory failed")
		return err
	}

	sealed, err := s.credentials.Seal(next)
	if err != nil {
		log.Err(err).Msg("sealing credential failed")
		return fmt.Errorf("sealing credential: %w", err)
	}
	account.Password = sealed

	if err = s.persist(ctx, directory, account); err != nil {
		log.Err(err).Str("id", account.ID).Msg("persisting password failed")
		return err
	}

	log.Info().Str("id", account.ID).Msg("password changed")
	return nil
}

// EndSession logs out. Ending a session that does not exist is not an error.
// The in-memory session is cleared only after the stored one is removed.
func (s *AccountService) EndSession(ctx context.Context) error {
	log := s.log(ctx).With().Str("func", "AccountService.EndSession").Logger()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.kv.Remove(ctx, KeySession); err != nil {
		log.Err(err).Msg("removing session failed")
		return fmt.Errorf("%w: removing session: %w", ErrStorage, err)
	}

	s.setState(models.SessionNone, nil)
	log.Info().Msg("session ended")

	return nil
}

// sessionFor returns the logged-in account. When ctx carries an
// authenticated account id the session must belong to that account, so a
// request authorized for one account never edits another that logged in
// meanwhile. Callers hold opMu.
func (s *AccountService) sessionFor(ctx context.Context) (models.Account, bool) {
	current, ok := s.Current()
	if !ok {
		return models.Account{}, false
	}

	if id, bound := utils.GetAccountIDFromContext(ctx); bound && id != current.ID {
		s.log(ctx).Info().
			Str("func", "AccountService.sessionFor").
			Str("caller", id).
			Str("session", current.ID).
			Msg("caller is not the logged-in account")
		return models.Account{}, false
	}
	return current, true
}

// persist replaces the entry with account's id in directory (appending it if
// it is gone), writes the directory, then the session. Callers hold opMu.
func (s *AccountService) persist(ctx context.Context, directory []models.Account, account models.Account) error {
	replaced := false
	for i := range directory {
		if directory[i].ID == account.ID {
			directory[i] = account
			replaced = true
			break
		}
	}
	if !replaced {
		directory = append(directory, account)
	}

	if err := s.saveDirectory(ctx, directory); err != nil {
		return err
	}

	// from here on the directory holds the new record, keep memory in line
	// with it whatever happens to the session write
	s.setState(models.SessionActive, &account)

	if err := s.saveSession(ctx, account); err != nil {
		return fmt.Errorf("%w: %w", ErrPartialUpdate, err)
	}
	return nil
}

func (s *AccountService) loadSession(ctx context.Context) {
	log := s.log(ctx).With().Str("func", "AccountService.loadSession").Logger()
	defer close(s.ready)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	raw, found, err := s.kv.Get(ctx, KeySession)
	if err != nil {
		log.Err(err).Msg("reading stored session failed")
		s.settle()
		return
	}
	if !found {
		s.settle()
		return
	}

	var account models.Account
	if err = json.Unmarshal([]byte(raw), &account); err != nil || account.ID == "" {
		log.Warn().AnErr("decode", err).Err(ErrMalformedSession).Msg("ignoring stored session")
		s.settle()
		return
	}

	s.setState(models.SessionActive, &account)
	log.Info().Str("id", account.ID).Msg("session restored")
}

// loadDirectory returns the stored directory, or an empty one if none was
// ever written. A directory that does not decode is reported as a storage
// error rather than treated as empty, so it is never overwritten.
func (s *AccountService) loadDirectory(ctx context.Context) ([]models.Account, error) {
	raw, found, err := s.kv.Get(ctx, KeyDirectory)
	if err != nil {
		return nil, fmt.Errorf("%w: reading directory: %w", ErrStorage, err)
	}
	if !found {
		return []models.Account{}, nil
	}

	var directory []models.Account
	if err = json.Unmarshal([]byte(raw), &directory); err != nil {
		return nil, fmt.Errorf("%w: decoding directory: %w", ErrStorage, err)
	}
	return directory, nil
}

func (s *AccountService) saveDirectory(ctx context.Context, directory []models.Account) error {
	raw, err := json.Marshal(directory)
	if err != nil {
		return fmt.Errorf("%w: encoding directory: %w", ErrStorage, err)
	}
	if err = s.kv.Set(ctx, KeyDirectory, string(raw)); err != nil {
		return fmt.Errorf("%w: writing directory: %w", ErrStorage, err)
	}
	return nil
}

func (s *AccountService) saveSession(ctx context.Context, account models.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("%w: encoding session: %w", ErrStorage, err)
	}
	if err = s.kv.Set(ctx, KeySession, string(raw)); err != nil {
		return fmt.Errorf("%w: writing session: %w", ErrStorage, err)
	}
	return nil
}

func (s *AccountService) setState(state models.SessionState, account *models.Account) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.state = state
	s.current = account
}

// settle ends loading without a stored session: an account that logged in
// before Init is kept, otherwise nobody is logged in.
func (s *AccountService) settle() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if s.current != nil {
		s.state = models.SessionActive
		return
	}
	s.state = models.SessionNone
}

func (s *AccountService) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

// findByEmail compares normalized forms on both sides so records written
// before normalization was enforced still match.
func findByEmail(directory []models.Account, normalized string) (int, bool) {
	for i := range directory {
		if models.NormalizeEmail(directory[i].Email) == normalized {
			return i, true
		}
	}
	return -1, false
}
