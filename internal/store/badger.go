package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
)

// badgerGCDiscardRatio is the share of stale data a value log file needs
// before GC rewrites it.
const badgerGCDiscardRatio = 0.5

// BadgerStore is a [KeyValueStore] on an embedded Badger database. Its value
// log needs periodic [BadgerStore.RunGC]; the server runs it from a worker.
type BadgerStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerStore opens (or creates) a Badger database in dir.
func NewBadgerStore(dir string, log *logger.Logger) (*BadgerStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: badger dir is required", ErrStorageFailure)
	}

	return openBadger(badger.DefaultOptions(dir), log)
}

// NewInMemoryBadgerStore opens a Badger database that never touches disk.
func NewInMemoryBadgerStore(log *logger.Logger) (*BadgerStore, error) {
	return openBadger(badger.DefaultOptions("").WithInMemory(true), log)
}

func openBadger(opts badger.Options, log *logger.Logger) (*BadgerStore, error) {
	opts = opts.WithLogger(&badgerLogger{logger: log})

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "openBadger").Str("dir", opts.Dir).Msg("error opening badger")
		return nil, fmt.Errorf("%w: badger open db: %w", ErrStorageFailure, err)
	}

	log.Info().Str("dir", opts.Dir).Bool("in_memory", opts.InMemory).Msg("badger store opened")
	return &BadgerStore{db: db, logger: log}, nil
}

func (b *BadgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContextOr(ctx, b.logger).Err(err).Str("func", "*BadgerStore.Get").Str("key", key).Msg("error reading key")
		return "", false, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return string(value), true, nil
}

func (b *BadgerStore) Set(ctx context.Context, key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		logger.FromContextOr(ctx, b.logger).Err(err).Str("func", "*BadgerStore.Set").Str("key", key).Msg("error writing key")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}

func (b *BadgerStore) Remove(ctx context.Context, key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		logger.FromContextOr(ctx, b.logger).Err(err).Str("func", "*BadgerStore.Remove").Str("key", key).Msg("error deleting key")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}

// RunGC rewrites value log files until Badger reports nothing left to
// reclaim and returns how many files were rewritten.
func (b *BadgerStore) RunGC(ctx context.Context) (int, error) {
	if b.db.Opts().InMemory {
		return 0, nil
	}

	rewrites := 0
	for {
		if err := ctx.Err(); err != nil {
			return rewrites, err
		}

		err := b.db.RunValueLogGC(badgerGCDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return rewrites, nil
		}
		if err != nil {
			return rewrites, fmt.Errorf("%w: badger gc: %w", ErrStorageFailure, err)
		}
		rewrites++
	}
}

// Size returns the LSM tree and value log sizes in bytes.
func (b *BadgerStore) Size() (lsm, vlog int64) {
	return b.db.Size()
}

func (b *BadgerStore) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("%w: badger close: %w", ErrStorageFailure, err)
	}
	b.logger.Info().Msg("badger store closed")
	return nil
}

// badgerLogger adapts the zerolog wrapper to Badger's Logger interface.
type badgerLogger struct {
	logger *logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Str("component", "badger").Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Str("component", "badger").Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Str("component", "badger").Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Str("component", "badger").Msgf(format, args...)
}
