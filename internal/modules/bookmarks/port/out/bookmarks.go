package out

import "context"

// RecordStore persists one ordered bookmark record per event. Save with an
// empty sequence removes the record entirely; Load of a missing record
// returns the empty sequence.
type RecordStore interface {
	Load(ctx context.Context, eventID string) ([]string, error)
	Save(ctx context.Context, eventID string, sessionIDs []string) error
}
