package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"confmate/internal/modules/feedback/domain"
	feedbackout "confmate/internal/modules/feedback/port/out"
	"confmate/internal/platform/clock"
)

// FeedbackService validates, stamps, and submits session feedback.
type FeedbackService struct {
	submitter feedbackout.Submitter
	clock     clock.Clock
	deviceID  string
	logger    *logrus.Logger
}

func NewFeedbackService(submitter feedbackout.Submitter, clk clock.Clock, deviceID string, logger *logrus.Logger) *FeedbackService {
	return &FeedbackService{submitter: submitter, clock: clk, deviceID: deviceID, logger: logger}
}

func (s *FeedbackService) Submit(ctx context.Context, f domain.Feedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	f.DeviceID = s.deviceID
	f.SubmittedAt = s.clock.Now()

	if err := s.submitter.Submit(ctx, f); err != nil {
		s.logger.WithError(err).WithField("session", f.SessionID).Warn("feedback submit failed")
		return err
	}
	s.logger.WithFields(logrus.Fields{"session": f.SessionID, "rating": f.Rating}).Info("feedback submitted")
	return nil
}
