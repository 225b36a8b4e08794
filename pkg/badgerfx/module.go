package badgerfx

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"badgerfx",
		logger.WithNamedLogger("badgerfx"),
		fx.Provide(newLogger, fx.Private),
		fx.Provide(New),
		fx.Invoke(func(db *badger.DB, config Config, logger *zap.Logger, lifecycle fx.Lifecycle) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})

			lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go func() {
						defer close(done)
						runGC(ctx, db, config.gcInterval(), logger)
					}()
					return nil
				},
				OnStop: func(stopCtx context.Context) error {
					cancel()
					select {
					case <-done:
					case <-stopCtx.Done():
					}

					if err := db.Close(); err != nil {
						return fmt.Errorf("failed to close BadgerDB: %w", err)
					}
					logger.Info("badger closed")
					return nil
				},
			})
		}),
	)
}

func runGC(ctx context.Context, db *badger.DB, interval time.Duration, logger *zap.Logger) {
	if interval < 0 || db.Opts().InMemory {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rewritten, err := CollectGarbage(db)
			if err != nil {
				logger.Error("value log gc failed", zap.Error(err))
				continue
			}
			if rewritten > 0 {
				logger.Debug("value log gc finished", zap.Int("rewritten", rewritten))
			}
		}
	}
}
