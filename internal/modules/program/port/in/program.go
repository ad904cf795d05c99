package in

import (
	"context"

	"confmate/internal/modules/program/domain"
)

type Usecase interface {
	// Fetch retrieves speakers then sessions and returns one atomic
	// collection, or apperrors.ErrStaleFetch when a newer fetch was issued
	// while this one was in flight.
	Fetch(ctx context.Context) (domain.Collection, error)
}
