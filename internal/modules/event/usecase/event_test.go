package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"confmate/internal/modules/event/usecase"
	programdomain "confmate/internal/modules/program/domain"
	sponsorsdto "confmate/internal/modules/sponsors/dto"
	apperrors "confmate/internal/platform/errors"
)

type fakeProgram struct {
	collection programdomain.Collection
	err        error
}

func (f *fakeProgram) Fetch(context.Context) (programdomain.Collection, error) {
	return f.collection, f.err
}

type fakeBookmarks struct {
	ids   map[string]bool
	loads int
}

func (f *fakeBookmarks) Load(context.Context) []string {
	f.loads++
	var ids []string
	for id := range f.ids {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakeBookmarks) Toggle(_ context.Context, sessionID string) bool {
	if f.ids == nil {
		f.ids = map[string]bool{}
	}
	f.ids[sessionID] = !f.ids[sessionID]
	return f.ids[sessionID]
}

func (f *fakeBookmarks) Contains(sessionID string) bool { return f.ids[sessionID] }

func (f *fakeBookmarks) All() []string {
	var ids []string
	for id, on := range f.ids {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}

type fakeSponsors struct {
	groups []sponsorsdto.GroupOutput
	err    error
	gotC   programdomain.Collection
}

func (f *fakeSponsors) Fetch(_ context.Context, c programdomain.Collection) ([]sponsorsdto.GroupOutput, error) {
	f.gotC = c
	return f.groups, f.err
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 12, hour, minute, 0, 0, time.Local)
}

func testCollection() programdomain.Collection {
	return programdomain.Assemble("ev1", []programdomain.SessionRecord{
		{ID: "s1", Title: "Keynote", Room: "Main Hall", StartsAt: at(9, 0), EndsAt: at(10, 0)},
		{ID: "s2", Title: "Go Workshop", Room: "101", StartsAt: at(10, 0), EndsAt: at(11, 0)},
		{ID: "s3", Title: "Hall Track", Room: "101", StartsAt: at(10, 0), EndsAt: at(11, 0)},
	}, nil)
}

func TestRefreshAndAgenda(t *testing.T) {
	t.Parallel()
	program := &fakeProgram{collection: testCollection()}
	bookmarks := &fakeBookmarks{}
	uc := usecase.NewInteractor("ev1", program, bookmarks, &fakeSponsors{})
	ctx := context.Background()

	out, err := uc.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if out.Sessions != 3 || out.Superseded {
		t.Fatalf("unexpected refresh output: %+v", out)
	}
	if bookmarks.loads != 1 {
		t.Fatalf("expected bookmark reload on refresh, got %d", bookmarks.loads)
	}

	agenda, err := uc.Agenda(ctx)
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	if len(agenda.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(agenda.Sections))
	}
	if agenda.Sections[0].Title != "9:00 AM" || agenda.Sections[1].Title != "10:00 AM" {
		t.Fatalf("unexpected section titles: %+v", agenda.Sections)
	}
	if got := agenda.Sections[1].Sessions; len(got) != 2 || got[0].ID != "s2" || got[1].ID != "s3" {
		t.Fatalf("fetch order not preserved: %+v", got)
	}
}

func TestAgendaBeforeRefresh(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor("ev1", &fakeProgram{}, &fakeBookmarks{}, &fakeSponsors{})

	if _, err := uc.Agenda(context.Background()); !errors.Is(err, apperrors.ErrNoProgram) {
		t.Fatalf("expected ErrNoProgram, got %v", err)
	}
}

func TestRefreshSupersededLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	program := &fakeProgram{collection: testCollection()}
	uc := usecase.NewInteractor("ev1", program, &fakeBookmarks{}, &fakeSponsors{})
	ctx := context.Background()

	if _, err := uc.Refresh(ctx); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	program.err = apperrors.ErrStaleFetch
	out, err := uc.Refresh(ctx)
	if err != nil {
		t.Fatalf("superseded refresh should not error: %v", err)
	}
	if !out.Superseded {
		t.Fatal("expected Superseded flag")
	}

	agenda, err := uc.Agenda(ctx)
	if err != nil || len(agenda.Sections) != 2 {
		t.Fatalf("prior collection lost: %+v, %v", agenda, err)
	}
}

func TestRefreshFailureKeepsPriorCollection(t *testing.T) {
	t.Parallel()
	program := &fakeProgram{collection: testCollection()}
	uc := usecase.NewInteractor("ev1", program, &fakeBookmarks{}, &fakeSponsors{})
	ctx := context.Background()

	if _, err := uc.Refresh(ctx); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	program.err = apperrors.ErrTimeout
	if _, err := uc.Refresh(ctx); !errors.Is(err, apperrors.ErrTimeout) {
		t.Fatalf("expected timeout to propagate, got %v", err)
	}

	agenda, err := uc.Agenda(ctx)
	if err != nil || len(agenda.Sections) != 2 {
		t.Fatalf("collection should survive a failed refresh: %v", err)
	}
}

func TestToggleValidatesSession(t *testing.T) {
	t.Parallel()
	bookmarks := &fakeBookmarks{}
	uc := usecase.NewInteractor("ev1", &fakeProgram{collection: testCollection()}, bookmarks, &fakeSponsors{})
	ctx := context.Background()

	if _, err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	out, err := uc.Toggle(ctx, "s1")
	if err != nil || !out.Bookmarked {
		t.Fatalf("toggle s1: %+v, %v", out, err)
	}
	if _, err := uc.Toggle(ctx, "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown session, got %v", err)
	}
}

func TestBookmarkedListsInFetchOrder(t *testing.T) {
	t.Parallel()
	bookmarks := &fakeBookmarks{}
	uc := usecase.NewInteractor("ev1", &fakeProgram{collection: testCollection()}, bookmarks, &fakeSponsors{})
	ctx := context.Background()

	if _, err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := uc.Toggle(ctx, "s3"); err != nil {
		t.Fatalf("toggle s3: %v", err)
	}
	if _, err := uc.Toggle(ctx, "s1"); err != nil {
		t.Fatalf("toggle s1: %v", err)
	}

	sessions, err := uc.Bookmarked(ctx)
	if err != nil {
		t.Fatalf("bookmarked: %v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != "s1" || sessions[1].ID != "s3" {
		t.Fatalf("expected fetch order s1,s3, got %+v", sessions)
	}
}

func TestMyTimelineAgendaFiltering(t *testing.T) {
	t.Parallel()
	bookmarks := &fakeBookmarks{}
	uc := usecase.NewInteractor("ev1", &fakeProgram{collection: testCollection()}, bookmarks, &fakeSponsors{})
	ctx := context.Background()

	if _, err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := uc.Toggle(ctx, "s2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := uc.SetOption(ctx, "My Timeline", true); err != nil {
		t.Fatalf("set option: %v", err)
	}

	agenda, err := uc.Agenda(ctx)
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	if len(agenda.Sections) != 1 || agenda.Sections[0].Sessions[0].ID != "s2" {
		t.Fatalf("expected only s2, got %+v", agenda.Sections)
	}
}

func TestSponsorsRequiresProgram(t *testing.T) {
	t.Parallel()
	sponsors := &fakeSponsors{groups: []sponsorsdto.GroupOutput{{Level: "Gold"}}}
	uc := usecase.NewInteractor("ev1", &fakeProgram{collection: testCollection()}, &fakeBookmarks{}, sponsors)
	ctx := context.Background()

	if _, err := uc.Sponsors(ctx); !errors.Is(err, apperrors.ErrNoProgram) {
		t.Fatalf("expected ErrNoProgram before refresh, got %v", err)
	}

	if _, err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	groups, err := uc.Sponsors(ctx)
	if err != nil {
		t.Fatalf("sponsors: %v", err)
	}
	if len(groups) != 1 || groups[0].Level != "Gold" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if sponsors.gotC.EventID != "ev1" {
		t.Fatal("sponsors should receive the current collection")
	}
}

func TestOptionsRebuildOnRefresh(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor("ev1", &fakeProgram{collection: testCollection()}, &fakeBookmarks{}, &fakeSponsors{})
	ctx := context.Background()

	if _, err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	options, err := uc.Options(ctx)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}
	rooms := options[1]
	if rooms.Name != "Rooms" || len(rooms.Options) != 2 ||
		rooms.Options[0].Name != "Main Hall" || rooms.Options[1].Name != "101" {
		t.Fatalf("rooms not in first-seen order: %+v", rooms)
	}
}
