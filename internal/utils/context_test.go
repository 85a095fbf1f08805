// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
	if TokenCtxKey.String() != "token" {
		t.Errorf("expected 'token', got '%s'", TokenCtxKey.String())
	}
}

func TestWithAuth(t *testing.T) {
	ctx := WithAuth(context.Background(), "user-1", "raw-token")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != "user-1" {
		t.Errorf("expected user-1, got %q (ok=%v)", userID, ok)
	}

	token, ok := GetTokenFromContext(ctx)
	if !ok || token != "raw-token" {
		t.Errorf("expected raw-token, got %q (ok=%v)", token, ok)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty user id")
	}
}
