package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"confmate/internal/modules/program/domain"
	programout "confmate/internal/modules/program/port/out"
	apperrors "confmate/internal/platform/errors"
)

// ProgramService fetches and assembles session collections. It tracks fetch
// issuance order so that when refreshes overlap, only the most recently
// issued fetch may publish its result: a stale fetch completing late returns
// ErrStaleFetch instead of a collection.
type ProgramService struct {
	source  programout.Source
	eventID string
	logger  *logrus.Logger

	mu     sync.Mutex
	issued uint64
}

func NewProgramService(source programout.Source, eventID string, logger *logrus.Logger) *ProgramService {
	return &ProgramService{source: source, eventID: eventID, logger: logger}
}

func (s *ProgramService) FetchAll(ctx context.Context) (domain.Collection, error) {
	generation := s.beginFetch()

	speakers, err := s.source.FetchSpeakers(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("event", s.eventID).Warn("speakers fetch failed")
		return domain.Collection{}, err
	}
	records, err := s.source.FetchSessions(ctx)
	if err != nil {
		// Partial results are never surfaced: a speakers success followed
		// by a sessions failure fails the whole fetch.
		s.logger.WithError(err).WithField("event", s.eventID).Warn("sessions fetch failed")
		return domain.Collection{}, err
	}

	if !s.stillCurrent(generation) {
		return domain.Collection{}, apperrors.ErrStaleFetch
	}

	collection := domain.Assemble(s.eventID, records, speakers)
	s.logger.WithFields(logrus.Fields{
		"event":    s.eventID,
		"sessions": len(collection.Sessions),
		"speakers": len(collection.Speakers),
	}).Info("program fetched")
	return collection, nil
}

func (s *ProgramService) beginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

func (s *ProgramService) stillCurrent(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued == generation
}
