package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
)

// NewKeyValueStore opens the backend selected by cfg.Driver. SQL backends
// are migrated before they are returned.
func NewKeyValueStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (KeyValueStore, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating key-value store...")

	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil

	case config.DriverFile:
		return NewFileStore(cfg.DSN, log)

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("%w: sqlite connection error: %w", ErrStorageFailure, err)
		}
		return migratedSQLStore(db, log)

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("%w: postgres connection error: %w", ErrStorageFailure, err)
		}
		return migratedSQLStore(db, log)

	case config.DriverBadger:
		return NewBadgerStore(cfg.DSN, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

func migratedSQLStore(db *DB, log *logger.Logger) (KeyValueStore, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageFailure, err)
	}

	return NewSQLKeyValueStore(db, log), nil
}
