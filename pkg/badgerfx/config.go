package badgerfx

import (
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	DefaultGCInterval     = 10 * time.Minute
	DefaultGCDiscardRatio = 0.5
)

type Config struct {
	// Path to the BadgerDB data directory
	Dir string
	// Keep all data in memory, Dir is ignored
	InMemory bool
	// Value log garbage collection period, disabled when negative
	GCInterval time.Duration
}

func (c Config) Build() badger.Options {
	if c.InMemory {
		return badger.DefaultOptions("").WithInMemory(true)
	}

	return badger.DefaultOptions(c.Dir)
}

func (c Config) gcInterval() time.Duration {
	if c.GCInterval == 0 {
		return DefaultGCInterval
	}
	return c.GCInterval
}
