package in

import "context"

type Usecase interface {
	GetOrCreate(ctx context.Context) (string, error)
}
