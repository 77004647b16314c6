package contacts

import (
	"context"
	"fmt"
	"strings"

	"aria/models"

	"github.com/google/uuid"
)

// matchThreshold is the maximum edit distance a spoken name may be from a
// contact name and still count as a match.
const matchThreshold = 2

// FindContact searches the user's address book for the contact whose name is
// closest to the spoken name, case-insensitive, within the edit-distance
// threshold. Returns nil when nothing is close enough.
func (s *DefaultContactService) FindContact(ctx context.Context, userID, spokenName string) (*models.ContactMatch, error) {
	all, err := s.Repo.GetAll(userID)
	if err != nil {
		return nil, fmt.Errorf("contact lookup for %q failed: %w", spokenName, err)
	}

	clean := strings.ToLower(strings.TrimSpace(spokenName))

	var best *models.Contact
	minDistance := matchThreshold + 1
	for i := range all {
		distance := levenshtein(clean, strings.ToLower(all[i].Name))
		if distance < minDistance {
			minDistance = distance
			best = &all[i]
		}
	}

	if best == nil {
		return nil, nil
	}
	return &models.ContactMatch{Name: best.Name, Phone: best.Phone, Email: best.Email}, nil
}

// SyncContacts replaces the user's synced address book.
func (s *DefaultContactService) SyncContacts(ctx context.Context, userID string, list []models.Contact) error {
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.NewString()
		}
	}
	if err := s.Repo.ReplaceAll(userID, list); err != nil {
		return fmt.Errorf("contact sync failed: %w", err)
	}
	return nil
}

// ListContacts returns the user's full synced address book.
func (s *DefaultContactService) ListContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	return s.Repo.GetAll(userID)
}

// levenshtein computes the edit distance between two strings.
func levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	dp := make([][]int, len(r1)+1)
	for i := range dp {
		dp[i] = make([]int, len(r2)+1)
		dp[i][0] = i
	}
	for j := 0; j <= len(r2); j++ {
		dp[0][j] = j
	}
	for i := 1; i <= len(r1); i++ {
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			dp[i][j] = min(dp[i-1][j]+1, min(dp[i][j-1]+1, dp[i-1][j-1]+cost))
		}
	}
	return dp[len(r1)][len(r2)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
