package out

import (
	"context"

	"confmate/internal/modules/feedback/domain"
)

// Submitter delivers feedback to the remote feedback endpoint.
type Submitter interface {
	Submit(ctx context.Context, f domain.Feedback) error
}
