package usecase

import (
	"context"

	bookmarksin "confmate/internal/modules/bookmarks/port/in"
	"confmate/internal/modules/bookmarks/service"
)

type Interactor struct {
	svc *service.BookmarkService
}

func NewInteractor(svc *service.BookmarkService) bookmarksin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) []string {
	return i.svc.Load(ctx)
}

func (i *Interactor) Toggle(ctx context.Context, sessionID string) bool {
	return i.svc.Toggle(ctx, sessionID)
}

func (i *Interactor) Contains(sessionID string) bool {
	return i.svc.Contains(sessionID)
}

func (i *Interactor) All() []string {
	return i.svc.All()
}
