package user

import (
	"fmt"
	"time"

	"aria/models"
	"aria/utils"

	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// Authenticate verifies credentials and returns a signed session token
// alongside the user record.
func (s *DefaultUserService) Authenticate(email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("email and password are required")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenLifetime)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, usr, nil
}

// GetUserByID fetches a user record by its id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user not found")
	}
	return usr, nil
}

// SetFCMToken stores the device push token for directive notifications.
func (s *DefaultUserService) SetFCMToken(userID, token string) error {
	if userID == "" || token == "" {
		return fmt.Errorf("user id and token are required")
	}
	return s.Repo.UpdateFCMToken(userID, token)
}
