package out

import (
	"context"

	"confmate/internal/modules/program/domain"
)

// Source is the remote conference API. Both calls are bounded by the
// configured fetch timeout and classify failures into the shared error
// taxonomy (timeout, malformed, network).
type Source interface {
	FetchSpeakers(ctx context.Context) ([]domain.Speaker, error)
	FetchSessions(ctx context.Context) ([]domain.SessionRecord, error)
}
