package out

import "context"

// IdentityStore persists the per-install device identifier.
type IdentityStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, deviceID string) error
}
