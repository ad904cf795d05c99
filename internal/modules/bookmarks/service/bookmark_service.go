package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"confmate/internal/modules/bookmarks/domain"
	bookmarksout "confmate/internal/modules/bookmarks/port/out"
)

// BookmarkService owns the in-memory bookmark set for one event and keeps
// the persisted record in sync. Every mutation rewrites the whole record
// under the service mutex, so a toggle issued while an earlier save is in
// flight cannot be lost: writes to the event's key are serialized here.
//
// Storage failures are absorbed: a failed read degrades to the empty set and
// a failed write is logged and dropped. Bookmarks are a convenience, not
// core data, and must never take the app down.
type BookmarkService struct {
	store   bookmarksout.RecordStore
	eventID string
	logger  *logrus.Logger

	mu  sync.Mutex
	ids []string
}

func NewBookmarkService(store bookmarksout.RecordStore, eventID string, logger *logrus.Logger) *BookmarkService {
	return &BookmarkService{store: store, eventID: eventID, logger: logger, ids: []string{}}
}

// Load reads the persisted record and replaces the in-memory set. Ids that
// no longer match any fetched session stay in the set; they are inert until
// the session reappears in a later fetch.
func (s *BookmarkService) Load(ctx context.Context) []string {
	ids, err := s.store.Load(ctx, s.eventID)
	if err != nil {
		s.logger.WithError(err).WithField("event", s.eventID).Warn("bookmark load failed, starting empty")
		ids = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = ids
	return append([]string{}, s.ids...)
}

// Toggle flips membership for the session id and synchronously rewrites the
// persisted record. It reports the new membership state.
func (s *BookmarkService) Toggle(ctx context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = domain.Toggle(s.ids, sessionID)
	bookmarked := domain.Contains(s.ids, sessionID)
	if err := s.store.Save(ctx, s.eventID, s.ids); err != nil {
		s.logger.WithError(err).WithField("event", s.eventID).Warn("bookmark save failed")
	}
	return bookmarked
}

func (s *BookmarkService) Contains(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Contains(s.ids, sessionID)
}

func (s *BookmarkService) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.ids...)
}
