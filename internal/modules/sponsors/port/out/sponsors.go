package out

import (
	"context"

	"confmate/internal/modules/sponsors/domain"
)

// Source fetches the sponsor groups for the configured event.
type Source interface {
	FetchSponsors(ctx context.Context) ([]domain.Group, error)
}
