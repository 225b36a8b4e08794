package openapifx

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"openapifx",
		logger.WithNamedLogger("openapifx"),
		fx.Provide(New),
		fx.Invoke(func(h *Handler, lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					h.logger.Info("openapi documentation",
						zap.Bool("enabled", h.config.Enabled),
						zap.String("host", h.spec.Host),
						zap.String("base_path", h.spec.BasePath),
					)
					return nil
				},
			})
		}),
	)
}
