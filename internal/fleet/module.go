package fleet

import (
	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"fleet",
		logger.WithNamedLogger("fleet"),
		fx.Provide(func() prometheus.Registerer { return prometheus.DefaultRegisterer }, fx.Private),
		fx.Provide(NewService),
	)
}
