package userRepo

import "aria/models"

// UserRepository defines storage operations for user accounts.
type UserRepository interface {
	Create(user models.User) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has the given email.
	GetByEmail(email string) (*models.User, error)
	UpdatePasswordHash(email, passwordHash string) error
	UpdateFCMToken(id, token string) error
}
