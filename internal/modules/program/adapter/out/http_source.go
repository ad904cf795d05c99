package out

import (
	"context"
	"fmt"
	"time"

	"confmate/internal/modules/program/domain"
	programout "confmate/internal/modules/program/port/out"
	apperrors "confmate/internal/platform/errors"
	"confmate/internal/platform/httpx"
)

// timeLayouts covers the ISO-8601-like stamps the conference API emits.
// Some feeds omit the zone offset.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

type speakerRecord struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	ProfilePicture string `json:"profilePicture"`
}

type sessionRecord struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Room     *string  `json:"room"`
	StartsAt string   `json:"startsAt"`
	EndsAt   string   `json:"endsAt"`
	Speakers []string `json:"speakers"`
}

// HTTPSource fetches speakers and sessions from the event's remote API.
type HTTPSource struct {
	client      *httpx.Client
	speakersURL string
	sessionsURL string
}

func NewHTTPSource(client *httpx.Client, speakersURL, sessionsURL string) programout.Source {
	return &HTTPSource{client: client, speakersURL: speakersURL, sessionsURL: sessionsURL}
}

func (s *HTTPSource) FetchSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	var records []speakerRecord
	if err := s.client.GetJSON(ctx, s.speakersURL, &records); err != nil {
		return nil, fmt.Errorf("fetch speakers: %w", err)
	}
	speakers := make([]domain.Speaker, 0, len(records))
	for _, record := range records {
		speakers = append(speakers, domain.Speaker{
			ID:             record.ID,
			FullName:       record.FullName,
			ProfilePicture: record.ProfilePicture,
		})
	}
	return speakers, nil
}

func (s *HTTPSource) FetchSessions(ctx context.Context) ([]domain.SessionRecord, error) {
	var records []sessionRecord
	if err := s.client.GetJSON(ctx, s.sessionsURL, &records); err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}
	sessions := make([]domain.SessionRecord, 0, len(records))
	for _, record := range records {
		startsAt, err := parseStamp(record.StartsAt)
		if err != nil {
			return nil, fmt.Errorf("session %s startsAt: %w", record.ID, apperrors.ErrMalformed)
		}
		endsAt, err := parseStamp(record.EndsAt)
		if err != nil {
			return nil, fmt.Errorf("session %s endsAt: %w", record.ID, apperrors.ErrMalformed)
		}
		session := domain.SessionRecord{
			ID:         record.ID,
			Title:      record.Title,
			StartsAt:   startsAt,
			EndsAt:     endsAt,
			SpeakerIDs: record.Speakers,
		}
		if record.Room != nil {
			session.Room = *record.Room
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func parseStamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
