package usecase

import (
	"context"

	programdomain "confmate/internal/modules/program/domain"
	"confmate/internal/modules/sponsors/dto"
	sponsorsin "confmate/internal/modules/sponsors/port/in"
	"confmate/internal/modules/sponsors/service"
)

type Interactor struct {
	service *service.SponsorService
}

func NewInteractor(service *service.SponsorService) sponsorsin.Usecase {
	return &Interactor{service: service}
}

func (i *Interactor) Fetch(ctx context.Context, c programdomain.Collection) ([]dto.GroupOutput, error) {
	groups, err := i.service.Fetch(ctx, c)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupOutput, 0, len(groups))
	for _, group := range groups {
		groupOut := dto.GroupOutput{Level: group.Level}
		for _, sponsor := range group.Sponsors {
			sponsorOut := dto.SponsorOutput{URL: sponsor.URL, ImageURL: sponsor.ImageURL}
			for _, session := range sponsor.Sessions {
				sponsorOut.Sessions = append(sponsorOut.Sessions, dto.SessionRefOutput{
					ID:    session.ID,
					Title: session.Title,
					Room:  session.Room,
					Start: programdomain.FormatClock(session.StartsAt),
				})
			}
			groupOut.Sponsors = append(groupOut.Sponsors, sponsorOut)
		}
		out = append(out, groupOut)
	}
	return out, nil
}
