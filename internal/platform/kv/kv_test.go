package kv_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "confmate/internal/platform/errors"
	"confmate/internal/platform/kv"
)

func newStore(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	store, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "data", "confmate.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSetGetRoundtrip(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "ev1", `["s1"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "ev1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `["s1"]` {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	if _, err := store.Get(context.Background(), "absent"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v2" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestDeleteAndKeys(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	for _, key := range []string{"b", "a", "@uuid"} {
		if err := store.Set(ctx, key, "x"); err != nil {
			t.Fatalf("set %q: %v", key, err)
		}
	}
	if err := store.Delete(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "b"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected deleted key to be gone, got %v", err)
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "@uuid" || keys[1] != "a" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	if err := store.Delete(context.Background(), "absent"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}
