package usageRepo

import "aria/models"

// UsageRepository defines storage operations for per-user feature counters.
type UsageRepository interface {
	// Increment bumps the counter for the given feature tag, creating the
	// stats document on first use.
	Increment(userID, feature string) error
	Get(userID string) (*models.UsageStats, error)
}
