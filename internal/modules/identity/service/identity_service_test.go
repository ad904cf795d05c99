package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"confmate/internal/modules/identity/service"
	apperrors "confmate/internal/platform/errors"
	"confmate/internal/platform/logging"
)

type fakeIdentityStore struct {
	stored  string
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeIdentityStore) Load(context.Context) (string, error) {
	if f.loadErr != nil {
		return "", f.loadErr
	}
	if f.stored == "" {
		return "", apperrors.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeIdentityStore) Save(_ context.Context, deviceID string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = deviceID
	f.saves++
	return nil
}

type sequenceGen struct{ n int }

func (g *sequenceGen) New() string {
	g.n++
	return fmt.Sprintf("gen-%d", g.n)
}

func TestGetOrCreateGeneratesOnce(t *testing.T) {
	t.Parallel()
	store := &fakeIdentityStore{}
	svc := service.NewIdentityService(store, &sequenceGen{}, logging.Discard())
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != "gen-1" || second != first {
		t.Fatalf("identity not stable: %q then %q", first, second)
	}
	if store.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", store.saves)
	}
}

func TestGetOrCreateReturnsPersistedID(t *testing.T) {
	t.Parallel()
	store := &fakeIdentityStore{stored: "existing-device"}
	svc := service.NewIdentityService(store, &sequenceGen{}, logging.Discard())

	got, err := svc.GetOrCreate(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "existing-device" {
		t.Fatalf("expected persisted id, got %q", got)
	}
	if store.saves != 0 {
		t.Fatalf("no save expected, got %d", store.saves)
	}
}

func TestGetOrCreateSaveFailurePropagates(t *testing.T) {
	t.Parallel()
	store := &fakeIdentityStore{saveErr: errors.New("readonly fs")}
	svc := service.NewIdentityService(store, &sequenceGen{}, logging.Discard())

	if _, err := svc.GetOrCreate(context.Background()); err == nil {
		t.Fatal("expected save failure to propagate")
	}
}

func TestGetOrCreateLoadFailurePropagates(t *testing.T) {
	t.Parallel()
	store := &fakeIdentityStore{loadErr: errors.New("corrupt db")}
	svc := service.NewIdentityService(store, &sequenceGen{}, logging.Discard())

	if _, err := svc.GetOrCreate(context.Background()); err == nil {
		t.Fatal("expected load failure to propagate")
	}
}
