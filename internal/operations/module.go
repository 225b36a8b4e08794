package operations

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"operations",
		logger.WithNamedLogger("operations"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
