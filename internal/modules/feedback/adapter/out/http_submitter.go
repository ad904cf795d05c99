package out

import (
	"context"
	"fmt"
	"time"

	"confmate/internal/modules/feedback/domain"
	feedbackout "confmate/internal/modules/feedback/port/out"
	"confmate/internal/platform/httpx"
)

type feedbackPayload struct {
	SessionID   string `json:"sessionId"`
	UserID      string `json:"userId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	SubmittedAt string `json:"submittedAt"`
}

// HTTPSubmitter posts feedback to the remote feedback endpoint.
type HTTPSubmitter struct {
	client *httpx.Client
	url    string
}

func NewHTTPSubmitter(client *httpx.Client, url string) feedbackout.Submitter {
	return &HTTPSubmitter{client: client, url: url}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, f domain.Feedback) error {
	payload := feedbackPayload{
		SessionID:   f.SessionID,
		UserID:      f.DeviceID,
		Rating:      f.Rating,
		Comment:     f.Comment,
		SubmittedAt: f.SubmittedAt.Format(time.RFC3339),
	}
	if err := s.client.PostJSON(ctx, s.url, payload); err != nil {
		return fmt.Errorf("submit feedback: %w", httpx.Classify(err))
	}
	return nil
}
