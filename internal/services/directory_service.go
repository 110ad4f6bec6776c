package services

import (
	"context"
	"fmt"
	"log/slog"

	"bankist/internal/models"
	"bankist/internal/repositories"
)

type directoryService struct {
	accounts repositories.AccountRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

func NewDirectoryService(
	accounts repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DirectoryServiceInterface {
	return &directoryService{
		accounts: accounts,
		metrics:  metrics,
		logger:   logger,
	}
}

// LoadDemoAccounts loads the four demo accounts. An already populated directory is left alone.
func (s *directoryService) LoadDemoAccounts(ctx context.Context) error {
	count, err := s.accounts.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}

	if count > 0 {
		s.logger.InfoContext(ctx, "directory already populated, skipping demo accounts", "accounts", count)
		s.metrics.RecordGauge(MetricDirectoryAccount, float64(count), nil)
		return s.accounts.Initialize(ctx, nil)
	}

	demo := models.DemoAccounts()
	if err := s.accounts.Initialize(ctx, demo); err != nil {
		return fmt.Errorf("failed to load demo accounts: %w", err)
	}

	s.logger.InfoContext(ctx, "demo accounts loaded", "accounts", len(demo))
	s.metrics.RecordGauge(MetricDirectoryAccount, float64(len(demo)), nil)
	return nil
}

func (s *directoryService) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *directoryService) HealthCheck(ctx context.Context) error {
	return s.accounts.Ping(ctx)
}
