package contactRepo

import "aria/models"

// ContactRepository defines storage operations for synced device contacts.
type ContactRepository interface {
	// ReplaceAll swaps a user's entire synced address book.
	ReplaceAll(userID string, contacts []models.Contact) error
	GetAll(userID string) ([]models.Contact, error)
}
