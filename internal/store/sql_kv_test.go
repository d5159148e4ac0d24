package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
)

func newTestSQLStore(t *testing.T, ph sq.PlaceholderFormat, classifier ErrorClassificator) (*sqlKeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &sqlKeyValueStore{
		db:     &DB{DB: db, dialect: "pgx", placeholder: ph, errorClassificator: classifier, logger: l},
		logger: l,
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSQLStore_GetFound(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_value FROM kv_entries WHERE entry_key = $1")).
		WithArgs("@users").
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow("[]"))

	value, found, err := s.Get(context.Background(), "@users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_GetMissing(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Question, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_value FROM kv_entries WHERE entry_key = ?")).
		WithArgs("@currentUser").
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}))

	value, found, err := s.Get(context.Background(), "@currentUser")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSQLStore_GetError(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, nil)

	mock.ExpectQuery("SELECT entry_value").WillReturnError(errors.New("boom"))

	_, _, err := s.Get(context.Background(), "@users")
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLStore_SetUpserts(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_entries (entry_key,entry_value) VALUES ($1,$2) ON CONFLICT (entry_key) DO UPDATE")).
		WithArgs("@app_theme", "dark").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "@app_theme", "dark"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_SetNonRetryable(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectExec("INSERT INTO kv_entries").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := s.Set(context.Background(), "@users", "[]")
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet(), "non-retryable error is tried once")
}

func TestSQLStore_SetRetriesTransient(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectExec("INSERT INTO kv_entries").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO kv_entries").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "@users", "[]"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_SetGivesUpAfterMaxAttempts(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())

	for i := 0; i < sqlMaxAttempts; i++ {
		mock.ExpectExec("INSERT INTO kv_entries").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := s.Set(context.Background(), "@users", "[]")
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_CancelledContext(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock.ExpectExec("DELETE FROM kv_entries").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	err := s.Remove(ctx, "@currentUser")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrStorageFailure)
}

func TestSQLStore_Remove(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Question, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_entries WHERE entry_key = ?")).
		WithArgs("@currentUser").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), "@currentUser"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Close(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Dollar, nil)
	mock.ExpectClose()

	require.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain", errors.New("x"), NonRetryable},
		{"bad conn", driver.ErrBadConn, Retryable},
		{"no rows", sql.ErrNoRows, NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestBuildQueries(t *testing.T) {
	query, args, err := buildSetValueQuery(sq.Question, "k", "v")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO kv_entries (entry_key,entry_value) VALUES (?,?) "+upsertKVSuffix, query)
	assert.Equal(t, []any{"k", "v"}, args)

	query, args, err = buildRemoveValueQuery(sq.Dollar, "k")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM kv_entries WHERE entry_key = $1", query)
	assert.Equal(t, []any{"k"}, args)
}
