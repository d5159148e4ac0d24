// Package utils provides general-purpose helper utilities
// used across different parts of the application: context keys,
// JSON response writing, the HTTP client, JWT issuing and parsing,
// and account identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key under which the auth middleware stores the
// account identifier taken from the bearer token.
//
//	ctx := context.WithValue(ctx, utils.AccountIDCtxKey, "0190c3a4-...")
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the account identifier from the context.
// ok is false when the value is missing, empty or not a string.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}
