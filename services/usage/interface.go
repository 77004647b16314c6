package usage

import (
	"context"

	usageRepo "aria/database/repository/usage"
	"aria/models"
)

// UsageService records and reports per-user feature counters.
type UsageService interface {
	Increment(ctx context.Context, userID, feature string) error
	Stats(ctx context.Context, userID string) (*models.UsageStats, error)
}

// DefaultUsageService implements UsageService.
type DefaultUsageService struct {
	Repo usageRepo.UsageRepository
}
