package out

import (
	"context"
	"fmt"

	identityout "confmate/internal/modules/identity/port/out"
	"confmate/internal/platform/kv"
)

// deviceKey is reserved in the key-value store; event ids never collide with
// it because the leading @ is not a valid event identifier character.
const deviceKey = "@uuid"

type KVIdentityStore struct {
	store kv.Store
}

func NewKVIdentityStore(store kv.Store) identityout.IdentityStore {
	return &KVIdentityStore{store: store}
}

func (s *KVIdentityStore) Load(ctx context.Context) (string, error) {
	return s.store.Get(ctx, deviceKey)
}

func (s *KVIdentityStore) Save(ctx context.Context, deviceID string) error {
	if err := s.store.Set(ctx, deviceKey, deviceID); err != nil {
		return fmt.Errorf("save device id: %w", err)
	}
	return nil
}
