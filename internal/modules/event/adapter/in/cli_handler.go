package in

import (
	"context"

	"confmate/internal/modules/event/dto"
	eventin "confmate/internal/modules/event/port/in"
	sponsorsdto "confmate/internal/modules/sponsors/dto"
)

type CLIHandler struct {
	usecase eventin.Usecase
}

func NewCLIHandler(usecase eventin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Refresh(ctx context.Context) (dto.RefreshOutput, error) {
	return h.usecase.Refresh(ctx)
}

func (h CLIHandler) Agenda(ctx context.Context) (dto.AgendaOutput, error) {
	return h.usecase.Agenda(ctx)
}

func (h CLIHandler) Toggle(ctx context.Context, sessionID string) (dto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx, sessionID)
}

func (h CLIHandler) Bookmarked(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.Bookmarked(ctx)
}

func (h CLIHandler) Sponsors(ctx context.Context) ([]sponsorsdto.GroupOutput, error) {
	return h.usecase.Sponsors(ctx)
}

func (h CLIHandler) Options(ctx context.Context) ([]dto.OptionOutput, error) {
	return h.usecase.Options(ctx)
}

func (h CLIHandler) SetOption(ctx context.Context, name string, selected bool) error {
	return h.usecase.SetOption(ctx, name, selected)
}

func (h CLIHandler) SetSubOption(ctx context.Context, option, sub string, selected bool) error {
	return h.usecase.SetSubOption(ctx, option, sub, selected)
}
