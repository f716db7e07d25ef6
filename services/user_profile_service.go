package services

import (
	"context"
	"fmt"
	"time"

	"radost_server/models"

	"github.com/google/uuid"
)

// UserProfileService manages player profiles. Points and level on the record
// belong to the interaction recorder; this service never touches them after
// registration.
type UserProfileService struct {
	Store Store
}

// RegisterInput carries the fields a new player provides.
type RegisterInput struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Register creates a profile starting at zero points, level 1.
func (s *UserProfileService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	if input.Email == "" || input.Nickname == "" {
		return models.User{}, fmt.Errorf("%w: email and nickname are required", ErrValidation)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user := models.User{
		UserID:     uuid.New().String(),
		Email:      input.Email,
		Nickname:   input.Nickname,
		Points:     0,
		Level:      1,
		City:       input.City,
		Region:     input.Region,
		Country:    input.Country,
		CreatedAt:  now,
		LastActive: now,
	}
	if err := s.Store.PutUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("failed to create user profile: %w", err)
	}
	return user, nil
}

// GetProfile fetches a profile by id.
func (s *UserProfileService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return s.Store.GetUser(ctx, userID)
}

// UpdateProfile applies the user-editable fields only.
func (s *UserProfileService) UpdateProfile(ctx context.Context, userID string, fields map[string]string) (models.User, error) {
	allowed := map[string]string{}
	for _, name := range []string{"nickname", "city", "region", "country"} {
		if value, ok := fields[name]; ok {
			allowed[name] = value
		}
	}
	if len(allowed) == 0 {
		return models.User{}, fmt.Errorf("%w: no updatable fields supplied", ErrValidation)
	}
	return s.Store.UpdateUserProfile(ctx, userID, allowed)
}

// TouchLastActive stamps the user's last-active time.
func (s *UserProfileService) TouchLastActive(ctx context.Context, userID string) error {
	return s.Store.TouchLastActive(ctx, userID, time.Now())
}
