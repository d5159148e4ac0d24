// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"

	// both sqlite (>= 3.24) and postgres understand this upsert form
	upsertKVSuffix = "ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", updated_at = CURRENT_TIMESTAMP"
)

func buildGetValueQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSetValueQuery(ph sq.PlaceholderFormat, key, value string) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix(upsertKVSuffix).
		PlaceholderFormat(ph).
		ToSql()
}

func buildRemoveValueQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		PlaceholderFormat(ph).
		ToSql()
}
