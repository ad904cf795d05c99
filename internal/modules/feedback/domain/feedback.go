package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "confmate/internal/platform/errors"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Feedback is one attendee rating for a session. DeviceID and SubmittedAt
// are stamped by the service, not by callers.
type Feedback struct {
	SessionID   string
	Rating      int
	Comment     string
	DeviceID    string
	SubmittedAt time.Time
}

// Validate checks the caller-supplied fields. The comment is optional; the
// rating and session id are not.
func (f Feedback) Validate() error {
	if strings.TrimSpace(f.SessionID) == "" {
		return fmt.Errorf("%w: session id is empty", apperrors.ErrInvalidInput)
	}
	if f.Rating < RatingMin || f.Rating > RatingMax {
		return fmt.Errorf("%w: rating %d outside %d..%d", apperrors.ErrInvalidInput, f.Rating, RatingMin, RatingMax)
	}
	return nil
}
