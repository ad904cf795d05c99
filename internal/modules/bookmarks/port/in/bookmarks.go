package in

import "context"

type Usecase interface {
	// Load seeds the set from storage. It never fails; a broken record
	// degrades to the empty set.
	Load(ctx context.Context) []string
	Toggle(ctx context.Context, sessionID string) bool
	Contains(sessionID string) bool
	All() []string
}
