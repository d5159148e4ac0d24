package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
)

const (
	sqlMaxAttempts  = 3
	sqlRetryBackoff = 100 * time.Millisecond
)

// sqlKeyValueStore is the [KeyValueStore] over a single kv_entries table.
// The same code serves SQLite and PostgreSQL; only the placeholder format
// and the error classifier differ.
type sqlKeyValueStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLKeyValueStore wraps an already migrated connection.
func NewSQLKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql key-value store")
	return &sqlKeyValueStore{
		db:     db,
		logger: log,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildGetValueQuery(s.db.placeholder, key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Msg("error building query")
		return "", false, fmt.Errorf("%w: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}

	var (
		value string
		found bool
	)
	err = s.withRetry(ctx, func() error {
		scanErr := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			found = false
			return nil
		case scanErr != nil:
			return scanErr
		}
		found = true
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error selecting value")
		return "", false, fmt.Errorf("%w: %w: %w", ErrStorageFailure, ErrExecutingQuery, err)
	}

	return value, found, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildSetValueQuery(s.db.placeholder, key, value)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Msg("error building query")
		return fmt.Errorf("%w: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error upserting value")
		return fmt.Errorf("%w: %w: %w", ErrStorageFailure, ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildRemoveValueQuery(s.db.placeholder, key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Msg("error building query")
		return fmt.Errorf("%w: %w: %w", ErrStorageFailure, ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w: %w", ErrStorageFailure, ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return nil
}

// withRetry runs op up to sqlMaxAttempts times while the classifier calls
// its error [Retryable]. Without a classifier op runs once.
func (s *sqlKeyValueStore) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= sqlMaxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == sqlMaxAttempts {
			break
		}

		s.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying transient database error")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(sqlRetryBackoff * time.Duration(attempt)):
		}
	}

	return err
}
