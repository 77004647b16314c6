package user

import (
	"aria/models"

	userRepo "aria/database/repository/user"
)

// UserService manages accounts: OTP-verified signup, login and password reset.
type UserService interface {
	InitiateRegistration(name, email, password string) error
	CompleteRegistration(email, otp string) (*models.User, error)
	Authenticate(email, password string) (string, *models.User, error)
	ForgotPassword(email string) error
	ResetPassword(email, otp, newPassword string) error
	GetUserByID(id string) (*models.User, error)
	SetFCMToken(userID, token string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
