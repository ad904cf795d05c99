package in

import (
	"context"

	"confmate/internal/modules/feedback/dto"
	feedbackin "confmate/internal/modules/feedback/port/in"
)

type CLIHandler struct {
	usecase feedbackin.Usecase
}

func NewCLIHandler(usecase feedbackin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Submit(ctx context.Context, sessionID string, rating int, comment string) error {
	return h.usecase.Submit(ctx, dto.SubmitInput{SessionID: sessionID, Rating: rating, Comment: comment})
}
