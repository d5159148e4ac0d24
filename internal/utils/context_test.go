// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAccountIDCtxKey(t *testing.T) {
	if AccountIDCtxKey.String() != "accountID" {
		t.Errorf("expected 'accountID', got '%s'", AccountIDCtxKey.String())
	}
}

func TestGetAccountIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, "acc-42")

	accountID, ok := GetAccountIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if accountID != "acc-42" {
		t.Errorf("expected accountID=acc-42, got %s", accountID)
	}
}

func TestGetAccountIDFromContext_Missing(t *testing.T) {
	accountID, ok := GetAccountIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if accountID != "" {
		t.Errorf("expected empty accountID, got %s", accountID)
	}
}

func TestGetAccountIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, int64(42))

	if _, ok := GetAccountIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetAccountIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, "")

	if _, ok := GetAccountIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id, got true")
	}
}

func TestGetAccountIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "acc-99")

	if _, ok := GetAccountIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
