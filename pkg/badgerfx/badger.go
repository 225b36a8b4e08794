package badgerfx

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const SeekEnd = byte(0xFF)

const dirPerm = 0o750

func New(config Config, badgerLogger *zapLogger, logger *zap.Logger) (*badger.DB, error) {
	if !config.InMemory {
		if err := os.MkdirAll(config.Dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create BadgerDB directory: %w", err)
		}
	}

	db, err := badger.Open(config.Build().WithLogger(badgerLogger))
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	logger.Info("badger opened", zap.String("dir", config.Dir), zap.Bool("in_memory", config.InMemory))
	return db, nil
}

// CollectGarbage rewrites value log files until nothing is left to reclaim.
// It returns the number of rewritten files.
func CollectGarbage(db *badger.DB) (int, error) {
	if db.Opts().InMemory {
		return 0, nil
	}

	rewritten := 0
	for {
		err := db.RunValueLogGC(DefaultGCDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, fmt.Errorf("failed to collect garbage: %w", err)
		}
		rewritten++
	}
}
