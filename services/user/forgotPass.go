package user

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"aria/utils"
)

// ForgotPassword starts a password reset by sending an OTP to the account
// email. Responds identically whether or not the account exists.
func (s *DefaultUserService) ForgotPassword(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("request failed, please try again")
	}
	if usr == nil {
		// Do not reveal account existence.
		return nil
	}
	return utils.InitiateEmailOTP(email)
}

// ResetPassword verifies the OTP and replaces the stored password hash.
func (s *DefaultUserService) ResetPassword(email, otp, newPassword string) error {
	if email == "" || otp == "" || newPassword == "" {
		return fmt.Errorf("all fields are required")
	}
	if err := utils.VerifyEmailOTP(email, otp); err != nil {
		return fmt.Errorf("OTP verification failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("reset failed, please try again")
	}
	return s.Repo.UpdatePasswordHash(email, string(hash))
}
