package usecase

import (
	"context"

	identityin "confmate/internal/modules/identity/port/in"
	"confmate/internal/modules/identity/service"
)

type Interactor struct {
	svc *service.IdentityService
}

func NewInteractor(svc *service.IdentityService) identityin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetOrCreate(ctx context.Context) (string, error) {
	return i.svc.GetOrCreate(ctx)
}
