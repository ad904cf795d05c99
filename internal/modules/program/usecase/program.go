package usecase

import (
	"context"

	"confmate/internal/modules/program/domain"
	programin "confmate/internal/modules/program/port/in"
	"confmate/internal/modules/program/service"
)

type Interactor struct {
	svc *service.ProgramService
}

func NewInteractor(svc *service.ProgramService) programin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Fetch(ctx context.Context) (domain.Collection, error) {
	return i.svc.FetchAll(ctx)
}
