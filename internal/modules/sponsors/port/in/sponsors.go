package in

import (
	"context"

	programdomain "confmate/internal/modules/program/domain"
	"confmate/internal/modules/sponsors/dto"
)

// Usecase fetches sponsor groups and resolves their sponsored sessions
// against the supplied program collection.
type Usecase interface {
	Fetch(ctx context.Context, c programdomain.Collection) ([]dto.GroupOutput, error)
}
