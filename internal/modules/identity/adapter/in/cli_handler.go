package in

import (
	"context"

	identityin "confmate/internal/modules/identity/port/in"
)

type CLIHandler struct {
	usecase identityin.Usecase
}

func NewCLIHandler(usecase identityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) DeviceID(ctx context.Context) (string, error) {
	return h.usecase.GetOrCreate(ctx)
}
