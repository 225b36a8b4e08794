package server

import (
	"github.com/gitfleet/gitfleet/internal/server/docs"
	"github.com/gitfleet/gitfleet/internal/server/handlers/commits"
	"github.com/gitfleet/gitfleet/internal/server/handlers/credentials"
	"github.com/gitfleet/gitfleet/internal/server/handlers/fleet"
	"github.com/gitfleet/gitfleet/internal/server/handlers/operations"
	"github.com/gitfleet/gitfleet/internal/server/handlers/projects"
	"github.com/gitfleet/gitfleet/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(projects.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(fleet.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(commits.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(credentials.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(operations.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App) {
					healthHandler.Register(app)

					v1 := app.Group("/api/v1")
					openapiHandler.Register(v1.Group("/docs"))

					for _, h := range handlers {
						h.Register(v1)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
