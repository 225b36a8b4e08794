package operations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	operations *Repository

	logger *zap.Logger
}

func NewService(operations *Repository, logger *zap.Logger) *Service {
	return &Service{
		operations: operations,

		logger: logger,
	}
}

// Start records a running operation.
func (s *Service) Start(ctx context.Context, kind Kind, parameters map[string]string) (*Operation, error) {
	s.logger.Info("starting operation", zap.String("kind", string(kind)))

	operation, err := s.operations.Create(ctx, &OperationDraft{
		Kind:        kind,
		Parameters:  parameters,
		Status:      StatusRunning,
		StartedAt:   time.Now(),
		CompletedAt: nil,
		Outcomes:    []Outcome{},
	})
	if err != nil {
		s.logger.Error("failed to record operation", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("operation recorded", zap.String("id", operation.ID.String()))
	return operation, nil
}

// Complete stores per-project outcomes and the derived final status.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, outcomes []Outcome) (*Operation, error) {
	logger := s.logger.With(zap.String("id", id.String()))

	now := time.Now()
	operation, err := s.operations.Update(ctx, id, func(o *Operation) error {
		o.Complete(outcomes, now)
		return nil
	})
	if err != nil {
		logger.Error("failed to complete operation", zap.Error(err))
		return nil, err
	}

	logger.Info("operation completed",
		zap.String("kind", string(operation.Kind)),
		zap.String("status", string(operation.Status)),
		zap.Int("failed", len(operation.Failed())),
	)
	return operation, nil
}

// Get retrieves an operation by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Operation, error) {
	s.logger.Debug("getting operation", zap.String("id", id.String()))

	operation, err := s.operations.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get operation", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return operation, nil
}

// List returns recent operations, newest first.
func (s *Service) List(ctx context.Context, kind Kind, limit int) ([]Operation, error) {
	s.logger.Debug("listing operations", zap.String("kind", string(kind)), zap.Int("limit", limit))

	operations, err := s.operations.List(ctx, kind, limit)
	if err != nil {
		s.logger.Error("failed to list operations", zap.Error(err))
		return nil, err
	}

	return operations, nil
}
