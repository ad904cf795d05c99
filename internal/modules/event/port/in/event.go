package in

import (
	"context"

	"confmate/internal/modules/event/dto"
	sponsorsdto "confmate/internal/modules/sponsors/dto"
)

// Usecase is the application-state surface the presentation layer talks to.
// All derived views (sections, filters, bookmark flags) are recomputed on
// demand from state owned behind this interface; callers never mutate shared
// state directly.
type Usecase interface {
	Refresh(ctx context.Context) (dto.RefreshOutput, error)
	Agenda(ctx context.Context) (dto.AgendaOutput, error)
	Toggle(ctx context.Context, sessionID string) (dto.ToggleOutput, error)
	Bookmarked(ctx context.Context) ([]dto.SessionOutput, error)
	Sponsors(ctx context.Context) ([]sponsorsdto.GroupOutput, error)
	Options(ctx context.Context) ([]dto.OptionOutput, error)
	SetOption(ctx context.Context, name string, selected bool) error
	SetSubOption(ctx context.Context, option, sub string, selected bool) error
}
