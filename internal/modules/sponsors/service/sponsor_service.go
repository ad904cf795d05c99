package service

import (
	"context"

	"github.com/sirupsen/logrus"

	programdomain "confmate/internal/modules/program/domain"
	"confmate/internal/modules/sponsors/domain"
	sponsorsout "confmate/internal/modules/sponsors/port/out"
)

// SponsorService fetches sponsor groups and joins their sponsored sessions
// against a program collection.
type SponsorService struct {
	source sponsorsout.Source
	logger *logrus.Logger
}

func NewSponsorService(source sponsorsout.Source, logger *logrus.Logger) *SponsorService {
	return &SponsorService{source: source, logger: logger}
}

func (s *SponsorService) Fetch(ctx context.Context, c programdomain.Collection) ([]domain.Group, error) {
	groups, err := s.source.FetchSponsors(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("sponsor fetch failed")
		return nil, err
	}
	joined := domain.JoinSessions(groups, c)
	s.logger.WithField("groups", len(joined)).Debug("sponsors loaded")
	return joined, nil
}
