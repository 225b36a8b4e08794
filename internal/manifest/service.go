package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Service writes the aggregate build manifest for the fleet.
type Service struct {
	config Config

	logger *zap.Logger
}

func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,

		logger: logger,
	}
}

// Enabled reports whether the manifest should be written.
func (s *Service) Enabled() bool {
	return s.config.Enabled && s.config.Path != ""
}

// Write replaces the manifest with one listing names. The file is written
// next to the target and renamed into place.
func (s *Service) Write(names []string) error {
	if !s.Enabled() {
		return nil
	}

	data, err := Render(s.config, names)
	if err != nil {
		return err
	}

	if mkErr := os.MkdirAll(filepath.Dir(s.config.Path), 0o755); mkErr != nil {
		return fmt.Errorf("failed to create manifest directory: %w", mkErr)
	}

	tmp := s.config.Path + ".tmp"
	if wrErr := os.WriteFile(tmp, data, 0o644); wrErr != nil {
		return fmt.Errorf("failed to write manifest: %w", wrErr)
	}
	if mvErr := os.Rename(tmp, s.config.Path); mvErr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace manifest: %w", mvErr)
	}

	s.logger.Info("manifest written", zap.String("path", s.config.Path), zap.Int("modules", len(names)))
	return nil
}
