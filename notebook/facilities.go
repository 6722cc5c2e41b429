package notebook

//go:generate mockgen -source=facilities.go -destination=facilities_mock_test.go -package=notebook

import (
	"context"

	"github.com/maxpoletaev/sparkpool/launch"
)

type Executor interface {
	Start(ctx context.Context, cmd launch.Command) (int, error)
	Run(ctx context.Context, cmd launch.Command) error
}
