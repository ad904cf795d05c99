package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	bookmarksin "confmate/internal/modules/bookmarks/port/in"
	"confmate/internal/modules/event/dto"
	eventin "confmate/internal/modules/event/port/in"
	filterdomain "confmate/internal/modules/filters/domain"
	programdomain "confmate/internal/modules/program/domain"
	programin "confmate/internal/modules/program/port/in"
	sponsorsdto "confmate/internal/modules/sponsors/dto"
	sponsorsin "confmate/internal/modules/sponsors/port/in"
	apperrors "confmate/internal/platform/errors"
)

// Interactor owns the process-wide event state: the current session
// collection, the bookmark set (through the bookmarks usecase), and the
// filter options. Nothing mutates these except through its methods, and
// every mutation explicitly recomputes whatever views depend on it — there
// is no implicit dependency tracking.
type Interactor struct {
	eventID   string
	program   programin.Usecase
	bookmarks bookmarksin.Usecase
	sponsors  sponsorsin.Usecase

	mu         sync.Mutex
	collection programdomain.Collection
	hasProgram bool
	options    []filterdomain.Option
}

func NewInteractor(eventID string, program programin.Usecase, bookmarks bookmarksin.Usecase, sponsors sponsorsin.Usecase) eventin.Usecase {
	return &Interactor{
		eventID:   eventID,
		program:   program,
		bookmarks: bookmarks,
		sponsors:  sponsors,
		options:   filterdomain.Defaults(),
	}
}

// Refresh fetches a new collection and, on success, replaces the prior one
// wholesale, reloads the persisted bookmarks, and rebuilds the room/time
// filter options. A stale fetch (superseded by a newer refresh) is reported
// as such and changes nothing.
func (i *Interactor) Refresh(ctx context.Context) (dto.RefreshOutput, error) {
	collection, err := i.program.Fetch(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaleFetch) {
			return dto.RefreshOutput{EventID: i.eventID, Superseded: true}, nil
		}
		return dto.RefreshOutput{}, err
	}

	i.mu.Lock()
	i.collection = collection
	i.hasProgram = true
	i.options = filterdomain.Rebuild(i.options, collection)
	i.mu.Unlock()

	// Bookmark loading needs the collection assigned first: membership is
	// resolved against the fetched session ids.
	i.bookmarks.Load(ctx)

	return dto.RefreshOutput{
		EventID:  i.eventID,
		Sessions: len(collection.Sessions),
		Speakers: len(collection.Speakers),
	}, nil
}

// Agenda builds the time-sectioned list and applies the current filters.
func (i *Interactor) Agenda(_ context.Context) (dto.AgendaOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.hasProgram {
		return dto.AgendaOutput{}, apperrors.ErrNoProgram
	}

	sections := programdomain.BuildSections(i.collection)
	sections = filterdomain.Apply(sections, i.options, i.bookmarks.Contains)

	out := dto.AgendaOutput{EventID: i.eventID, Sections: make([]dto.SectionOutput, 0, len(sections))}
	for _, section := range sections {
		sectionOut := dto.SectionOutput{Title: section.Title}
		for _, session := range section.Sessions {
			sectionOut.Sessions = append(sectionOut.Sessions, i.sessionOutput(session))
		}
		out.Sections = append(out.Sections, sectionOut)
	}
	return out, nil
}

// Toggle flips the bookmark for a session in the current collection. The
// bookmarks usecase persists synchronously, so by the time this returns the
// stored record reflects the toggle.
func (i *Interactor) Toggle(ctx context.Context, sessionID string) (dto.ToggleOutput, error) {
	i.mu.Lock()
	if !i.hasProgram {
		i.mu.Unlock()
		return dto.ToggleOutput{}, apperrors.ErrNoProgram
	}
	_, ok := i.collection.SessionByID(sessionID)
	i.mu.Unlock()
	if !ok {
		return dto.ToggleOutput{}, fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}

	bookmarked := i.bookmarks.Toggle(ctx, sessionID)
	return dto.ToggleOutput{SessionID: sessionID, Bookmarked: bookmarked}, nil
}

// Bookmarked lists the bookmarked sessions present in the current
// collection, in fetch order. Persisted ids without a matching session are
// inert: kept in storage, shown nowhere.
func (i *Interactor) Bookmarked(_ context.Context) ([]dto.SessionOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.hasProgram {
		return nil, apperrors.ErrNoProgram
	}

	var out []dto.SessionOutput
	for _, session := range i.collection.Sessions {
		if i.bookmarks.Contains(session.ID) {
			out = append(out, i.sessionOutput(session))
		}
	}
	return out, nil
}

// Sponsors fetches the sponsor groups and resolves their sponsored sessions
// against the current collection.
func (i *Interactor) Sponsors(ctx context.Context) ([]sponsorsdto.GroupOutput, error) {
	i.mu.Lock()
	if !i.hasProgram {
		i.mu.Unlock()
		return nil, apperrors.ErrNoProgram
	}
	collection := i.collection
	i.mu.Unlock()

	return i.sponsors.Fetch(ctx, collection)
}

func (i *Interactor) Options(_ context.Context) ([]dto.OptionOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make([]dto.OptionOutput, 0, len(i.options))
	for _, option := range i.options {
		optionOut := dto.OptionOutput{Name: option.Name, Selected: option.Selected}
		for _, sub := range option.Options {
			optionOut.Options = append(optionOut.Options, dto.SubOptionOutput{Name: sub.Name, Selected: sub.Selected})
		}
		out = append(out, optionOut)
	}
	return out, nil
}

func (i *Interactor) SetOption(_ context.Context, name string, selected bool) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !filterdomain.SetSelected(i.options, name, selected) {
		return fmt.Errorf("option %q: %w", name, apperrors.ErrNotFound)
	}
	return nil
}

func (i *Interactor) SetSubOption(_ context.Context, option, sub string, selected bool) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !filterdomain.SetSubSelected(i.options, option, sub, selected) {
		return fmt.Errorf("option %q/%q: %w", option, sub, apperrors.ErrNotFound)
	}
	return nil
}

func (i *Interactor) sessionOutput(session programdomain.Session) dto.SessionOutput {
	out := dto.SessionOutput{
		ID:         session.ID,
		Title:      session.Title,
		Room:       session.Room,
		Starts:     programdomain.FormatClock(session.StartsAt),
		Ends:       programdomain.FormatClock(session.EndsAt),
		Bookmarked: i.bookmarks.Contains(session.ID),
	}
	for _, speaker := range session.Speakers {
		out.Speakers = append(out.Speakers, dto.SpeakerOutput{
			ID:             speaker.ID,
			FullName:       speaker.FullName,
			ProfilePicture: speaker.ProfilePicture,
		})
	}
	return out
}
