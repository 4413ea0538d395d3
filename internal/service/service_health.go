package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/store"
)

const healthQuery = "SELECT 1"

type healthService struct {
	uow    store.UnitOfWork
	logger *logger.Logger
}

func NewHealthService(uow store.UnitOfWork, logger *logger.Logger) HealthService {
	return &healthService{
		uow:    uow,
		logger: logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	err := s.uow.WithSession(ctx, func(ctx context.Context, sess store.Session) error {
		var one int
		return sess.QueryRowContext(ctx, healthQuery).Scan(&one)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("health probe failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
