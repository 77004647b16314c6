package usage

import (
	"context"
	"fmt"

	"aria/models"
)

// Increment bumps the counter for a feature tag.
func (s *DefaultUsageService) Increment(ctx context.Context, userID, feature string) error {
	if userID == "" {
		return fmt.Errorf("usage increment requires a user")
	}
	return s.Repo.Increment(userID, feature)
}

// Stats returns the user's counters, zeroed if nothing was recorded yet.
func (s *DefaultUsageService) Stats(ctx context.Context, userID string) (*models.UsageStats, error) {
	return s.Repo.Get(userID)
}
