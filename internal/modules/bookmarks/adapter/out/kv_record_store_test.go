package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	adapter "confmate/internal/modules/bookmarks/adapter/out"
	apperrors "confmate/internal/platform/errors"
	"confmate/internal/platform/kv"
)

func newKV(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	store, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "confmate.db"))
	if err != nil {
		t.Fatalf("new kv store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()
	kvs := newKV(t)
	store := adapter.NewKVRecordStore(kvs)
	ctx := context.Background()

	if err := store.Save(ctx, "ev1", []string{"s2", "s1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	ids, err := store.Load(ctx, "ev1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"s2", "s1"}) {
		t.Fatalf("order not preserved: %v", ids)
	}
}

func TestLoadMissingRecordIsEmpty(t *testing.T) {
	t.Parallel()
	store := adapter.NewKVRecordStore(newKV(t))

	ids, err := store.Load(context.Background(), "ev1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty set, got %v", ids)
	}
}

func TestSaveEmptySetRemovesRecord(t *testing.T) {
	t.Parallel()
	kvs := newKV(t)
	store := adapter.NewKVRecordStore(kvs)
	ctx := context.Background()

	if err := store.Save(ctx, "ev1", []string{"s1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "ev1", nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if _, err := kvs.Get(ctx, "ev1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected record removed from kv store, got %v", err)
	}
}

func TestEventsAreIsolated(t *testing.T) {
	t.Parallel()
	store := adapter.NewKVRecordStore(newKV(t))
	ctx := context.Background()

	if err := store.Save(ctx, "ev1", []string{"s1"}); err != nil {
		t.Fatalf("save ev1: %v", err)
	}
	if err := store.Save(ctx, "ev2", []string{"s9"}); err != nil {
		t.Fatalf("save ev2: %v", err)
	}
	if err := store.Save(ctx, "ev1", nil); err != nil {
		t.Fatalf("clear ev1: %v", err)
	}

	ids, err := store.Load(ctx, "ev2")
	if err != nil {
		t.Fatalf("load ev2: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"s9"}) {
		t.Fatalf("other event's record was touched: %v", ids)
	}
}

func TestLoadCorruptRecordErrors(t *testing.T) {
	t.Parallel()
	kvs := newKV(t)
	store := adapter.NewKVRecordStore(kvs)
	ctx := context.Background()

	if err := kvs.Set(ctx, "ev1", "not json"); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	if _, err := store.Load(ctx, "ev1"); err == nil {
		t.Fatal("expected decode error")
	}
}
