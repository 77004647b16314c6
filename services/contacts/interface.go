package contacts

import (
	"context"

	contactRepo "aria/database/repository/contact"
	"aria/models"
)

// ContactService resolves spoken names against a user's synced address book
// and manages the sync itself.
type ContactService interface {
	FindContact(ctx context.Context, userID, spokenName string) (*models.ContactMatch, error)
	SyncContacts(ctx context.Context, userID string, contacts []models.Contact) error
	ListContacts(ctx context.Context, userID string) ([]models.Contact, error)
}

// DefaultContactService implements ContactService.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}
