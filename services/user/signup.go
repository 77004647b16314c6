package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aria/models"
	"aria/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const pendingTTL = 30 * time.Minute

func pendingKey(email string) string {
	return "pending:" + email
}

// InitiateRegistration validates basic data, checks for duplicates, stores a
// pending registration session, and sends the verification OTP.
func (s *DefaultUserService) InitiateRegistration(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("InitiateRegistration: failed to check for existing user", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("registration failed, please try again")
	}

	pending := models.PendingRegistration{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	raw, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to store registration session: %w", err)
	}

	ctx := context.Background()
	client := utils.GetAuthCacheClient()
	if err := client.Set(ctx, pendingKey(email), raw, pendingTTL).Err(); err != nil {
		return fmt.Errorf("failed to store registration session: %w", err)
	}

	if err := utils.InitiateEmailOTP(email); err != nil {
		return fmt.Errorf("failed to initiate OTP: %w", err)
	}
	return nil
}

// CompleteRegistration verifies the OTP and promotes the pending session into
// a real account.
func (s *DefaultUserService) CompleteRegistration(email, otp string) (*models.User, error) {
	if err := utils.VerifyEmailOTP(email, otp); err != nil {
		return nil, fmt.Errorf("OTP verification failed: %w", err)
	}

	ctx := context.Background()
	client := utils.GetAuthCacheClient()
	raw, err := client.Get(ctx, pendingKey(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("registration session expired, please sign up again")
	}

	var pending models.PendingRegistration
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, fmt.Errorf("failed to read registration session: %w", err)
	}

	newUser := models.User{
		ID:           uuid.NewString(),
		Name:         pending.Name,
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(newUser); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := client.Del(ctx, pendingKey(email)).Err(); err != nil {
		utils.GetLogger().Warn("failed to clear registration session", zap.Error(err))
	}
	return &newUser, nil
}
