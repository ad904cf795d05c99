package in

import (
	"context"

	"confmate/internal/modules/feedback/dto"
)

// Usecase submits attendee feedback for a session.
type Usecase interface {
	Submit(ctx context.Context, input dto.SubmitInput) error
}
