package domain

import (
	"sort"
	"time"
)

// RoomTBD is what an unannounced room renders and filters as.
const RoomTBD = "TBD"

type Speaker struct {
	ID             string
	FullName       string
	ProfilePicture string
}

type Session struct {
	ID       string
	Title    string
	Room     string
	StartsAt time.Time
	EndsAt   time.Time
	Speakers []Speaker
}

// SessionRecord is a session as the remote source delivers it: speakers are
// referenced by id and resolved during the fetch.
type SessionRecord struct {
	ID         string
	Title      string
	Room       string
	StartsAt   time.Time
	EndsAt     time.Time
	SpeakerIDs []string
}

// Collection binds one fetch's sessions and speakers together. Speakers are
// embedded into sessions exactly once, when the collection is assembled; a
// later fetch replaces the whole collection, never merges into it.
type Collection struct {
	EventID  string
	Sessions []Session
	Speakers []Speaker
}

// Section is a time-grouped bucket of sessions for list display.
type Section struct {
	Title    string
	StartsAt time.Time
	Sessions []Session
}

// FormatClock renders a timestamp as the human-readable label used for
// section titles and time filters. Filtering compares these labels, so the
// function must stay pure: same timestamp in, same label out.
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// Assemble joins fetched speakers into the raw session records and builds the
// collection. A record whose speaker ids resolve to nothing keeps an empty
// speaker list; sessions always survive, speaker display is best-effort.
func Assemble(eventID string, records []SessionRecord, speakers []Speaker) Collection {
	byID := make(map[string]Speaker, len(speakers))
	for _, speaker := range speakers {
		byID[speaker.ID] = speaker
	}

	sessions := make([]Session, 0, len(records))
	for _, record := range records {
		session := Session{
			ID:       record.ID,
			Title:    record.Title,
			Room:     record.Room,
			StartsAt: record.StartsAt,
			EndsAt:   record.EndsAt,
			Speakers: []Speaker{},
		}
		if session.Room == "" {
			session.Room = RoomTBD
		}
		for _, speakerID := range record.SpeakerIDs {
			if speaker, ok := byID[speakerID]; ok {
				session.Speakers = append(session.Speakers, speaker)
			}
		}
		sessions = append(sessions, session)
	}

	return Collection{EventID: eventID, Sessions: sessions, Speakers: speakers}
}

// SessionByID looks a session up in the collection.
func (c Collection) SessionByID(id string) (Session, bool) {
	for _, session := range c.Sessions {
		if session.ID == id {
			return session, true
		}
	}
	return Session{}, false
}

// BuildSections groups sessions by exact start timestamp, one section per
// distinct instant, ordered ascending. Within a section sessions keep the
// order the fetch returned them in. Pure function of the collection.
func BuildSections(c Collection) []Section {
	grouped := make(map[int64]*Section)
	order := make([]int64, 0)
	for _, session := range c.Sessions {
		key := session.StartsAt.UnixNano()
		section, ok := grouped[key]
		if !ok {
			section = &Section{
				Title:    FormatClock(session.StartsAt),
				StartsAt: session.StartsAt,
			}
			grouped[key] = section
			order = append(order, key)
		}
		section.Sessions = append(section.Sessions, session)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	sections := make([]Section, 0, len(order))
	for _, key := range order {
		sections = append(sections, *grouped[key])
	}
	return sections
}
