package internal

import (
	"context"
	"fmt"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/gitfleet/gitfleet/internal/config"
	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/git"
	"github.com/gitfleet/gitfleet/internal/manifest"
	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/gitfleet/gitfleet/internal/projects"
	"github.com/gitfleet/gitfleet/internal/server"
	"github.com/gitfleet/gitfleet/pkg/badgerfx"
	"github.com/gitfleet/gitfleet/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// businessModules are shared by the server and one-shot commands.
func businessModules() fx.Option {
	return fx.Options(
		badgerfx.Module(),
		config.Module(),
		git.Module(),
		projects.Module(),
		operations.Module(),
		manifest.Module(),
		fleet.Module(),
	)
}

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		healthfx.Module(),
		fiberfx.Module(),
		openapifx.Module(),
		validator.Module,
		//
		// APP MODULES
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		businessModules(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("gitfleet starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("gitfleet shutting down")
					return nil
				},
			})
		}),
	).Run()
}

// RunFleet starts the business modules without the HTTP server, passes the
// fleet service to fn and stops everything once fn returns.
func RunFleet(ctx context.Context, fn func(context.Context, *fleet.Service) error) (err error) {
	var fleetSvc *fleet.Service

	app := fx.New(
		logger.Module(),
		fx.NopLogger,
		businessModules(),
		fx.Populate(&fleetSvc),
	)

	if startErr := app.Start(ctx); startErr != nil {
		return fmt.Errorf("failed to start: %w", startErr)
	}
	defer func() {
		if stopErr := app.Stop(context.WithoutCancel(ctx)); stopErr != nil && err == nil {
			err = fmt.Errorf("failed to stop: %w", stopErr)
		}
	}()

	return fn(ctx, fleetSvc)
}
