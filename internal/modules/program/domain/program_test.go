package domain_test

import (
	"testing"
	"time"

	"confmate/internal/modules/program/domain"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 12, hour, minute, 0, 0, time.Local)
}

func TestAssembleJoinsSpeakersByID(t *testing.T) {
	t.Parallel()
	speakers := []domain.Speaker{
		{ID: "sp1", FullName: "Ada Lovelace"},
		{ID: "sp2", FullName: "Alan Turing"},
	}
	records := []domain.SessionRecord{
		{ID: "s1", Title: "Keynote", Room: "Main Hall", StartsAt: at(9, 0), EndsAt: at(10, 0), SpeakerIDs: []string{"sp1", "sp2"}},
		{ID: "s2", Title: "Workshop", Room: "101", StartsAt: at(10, 0), EndsAt: at(11, 0), SpeakerIDs: []string{"sp2"}},
	}

	c := domain.Assemble("ev1", records, speakers)

	if len(c.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(c.Sessions))
	}
	if got := c.Sessions[0].Speakers; len(got) != 2 || got[0].FullName != "Ada Lovelace" {
		t.Fatalf("unexpected keynote speakers: %+v", got)
	}
	if got := c.Sessions[1].Speakers; len(got) != 1 || got[0].ID != "sp2" {
		t.Fatalf("unexpected workshop speakers: %+v", got)
	}
}

func TestAssembleUnresolvedSpeakersLeaveEmptyList(t *testing.T) {
	t.Parallel()
	records := []domain.SessionRecord{
		{ID: "s1", Title: "Orphan", Room: "101", StartsAt: at(9, 0), SpeakerIDs: []string{"ghost"}},
	}

	c := domain.Assemble("ev1", records, nil)

	got := c.Sessions[0].Speakers
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty (non-nil) speaker list, got %#v", got)
	}
}

func TestAssembleNormalizesMissingRoom(t *testing.T) {
	t.Parallel()
	records := []domain.SessionRecord{
		{ID: "s1", Title: "Hallway Track", StartsAt: at(9, 0)},
	}

	c := domain.Assemble("ev1", records, nil)

	if c.Sessions[0].Room != domain.RoomTBD {
		t.Fatalf("expected room %q, got %q", domain.RoomTBD, c.Sessions[0].Room)
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   time.Time
		want string
	}{
		{at(9, 0), "9:00 AM"},
		{at(13, 30), "1:30 PM"},
		{at(0, 5), "12:05 AM"},
	}
	for _, tc := range cases {
		if got := domain.FormatClock(tc.in); got != tc.want {
			t.Fatalf("FormatClock(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildSectionsGroupsByExactStart(t *testing.T) {
	t.Parallel()
	c := domain.Collection{Sessions: []domain.Session{
		{ID: "s3", Title: "Late", StartsAt: at(14, 0)},
		{ID: "s1", Title: "Morning A", StartsAt: at(9, 0)},
		{ID: "s2", Title: "Morning B", StartsAt: at(9, 0)},
	}}

	sections := domain.BuildSections(c)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "9:00 AM" || sections[1].Title != "2:00 PM" {
		t.Fatalf("unexpected section order: %q, %q", sections[0].Title, sections[1].Title)
	}
	morning := sections[0].Sessions
	if len(morning) != 2 || morning[0].ID != "s1" || morning[1].ID != "s2" {
		t.Fatalf("fetch order not preserved within section: %+v", morning)
	}
}

func TestBuildSectionsEmptyCollection(t *testing.T) {
	t.Parallel()
	if sections := domain.BuildSections(domain.Collection{}); len(sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(sections))
	}
}
