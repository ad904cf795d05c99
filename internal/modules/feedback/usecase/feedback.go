package usecase

import (
	"context"

	"confmate/internal/modules/feedback/domain"
	"confmate/internal/modules/feedback/dto"
	feedbackin "confmate/internal/modules/feedback/port/in"
	"confmate/internal/modules/feedback/service"
)

type Interactor struct {
	service *service.FeedbackService
}

func NewInteractor(service *service.FeedbackService) feedbackin.Usecase {
	return &Interactor{service: service}
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) error {
	return i.service.Submit(ctx, domain.Feedback{
		SessionID: input.SessionID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
}
