package store

import "errors"

var (
	// ErrStorageFailure is wrapped by every error a [KeyValueStore] returns.
	// Callers match it with [errors.Is] and never need to know which
	// backend failed.
	ErrStorageFailure = errors.New("storage failure")

	// ErrClosed is returned by operations on a store after Close.
	ErrClosed = errors.New("store is closed")

	// ErrUnknownDriver is returned by [NewKeyValueStore] for a driver name it
	// does not recognise.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. The SQL store wraps them together
// with [ErrStorageFailure].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a selected value fails.
	ErrScanningRow = errors.New("failed to scan kv row")
)
