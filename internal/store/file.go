// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
)

// FileStore keeps all entries in one JSON object on disk. Every mutation
// rewrites the whole file through a temporary file and a rename, so a crash
// leaves either the old or the new document.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
	closed  bool
	logger  *logger.Logger
}

// NewFileStore opens the document at path, creating its directory if
// needed. A missing file is an empty store.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Err(err).Str("func", "NewFileStore").Str("path", path).Msg("error creating storage directory")
			return nil, fmt.Errorf("%w: creating directory: %w", ErrStorageFailure, err)
		}
	}

	entries, err := readEntries(path)
	if err != nil {
		log.Err(err).Str("func", "NewFileStore").Str("path", path).Msg("error reading storage file")
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	log.Debug().Str("func", "NewFileStore").Str("path", path).Int("entries", len(entries)).Msg("file store opened")
	return &FileStore{
		path:    path,
		entries: entries,
		logger:  log,
	}, nil
}

func readEntries(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	entries := make(map[string]string)
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return entries, nil
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return "", false, fmt.Errorf("%w: %w", ErrStorageFailure, ErrClosed)
	}

	value, ok := f.entries[key]
	return value, ok, nil
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fmt.Errorf("%w: %w", ErrStorageFailure, ErrClosed)
	}

	previous, existed := f.entries[key]
	f.entries[key] = value
	if err := f.flush(); err != nil {
		if existed {
			f.entries[key] = previous
		} else {
			delete(f.entries, key)
		}
		logger.FromContextOr(ctx, f.logger).Err(err).Str("func", "*FileStore.Set").Str("key", key).Msg("error writing storage file")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}

func (f *FileStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fmt.Errorf("%w: %w", ErrStorageFailure, ErrClosed)
	}

	previous, existed := f.entries[key]
	if !existed {
		return nil
	}

	delete(f.entries, key)
	if err := f.flush(); err != nil {
		f.entries[key] = previous
		logger.FromContextOr(ctx, f.logger).Err(err).Str("func", "*FileStore.Remove").Str("key", key).Msg("error writing storage file")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}

func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

// flush writes the current entries next to the target and renames the
// temporary file over it. Callers hold f.mu.
func (f *FileStore) flush() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}

	return nil
}
