package services

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndUpdateProfile(t *testing.T) {
	store := NewMemoryStore()
	svc := &UserProfileService{Store: store}

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Nickname: "alice",
		City:     "Bratislava",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Points != 0 || user.Level != 1 {
		t.Errorf("new user = %d points level %d, want 0/1", user.Points, user.Level)
	}
	if user.UserID == "" || user.CreatedAt == "" {
		t.Errorf("missing id or timestamp: %+v", user)
	}

	updated, err := svc.UpdateProfile(context.Background(), user.UserID, map[string]string{
		"nickname": "alica",
		"points":   "9999", // not user-editable, must be ignored
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Nickname != "alica" {
		t.Errorf("nickname = %s, want alica", updated.Nickname)
	}
	if updated.Points != 0 {
		t.Errorf("points = %d, profile update must not touch points", updated.Points)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := &UserProfileService{Store: NewMemoryStore()}
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c"}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing nickname: got %v, want ErrValidation", err)
	}
}

func TestUpdateProfileNoFields(t *testing.T) {
	store := NewMemoryStore()
	svc := &UserProfileService{Store: store}
	user, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Nickname: "a"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateProfile(context.Background(), user.UserID, map[string]string{"points": "5"}); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation when only non-editable fields supplied", err)
	}
}
