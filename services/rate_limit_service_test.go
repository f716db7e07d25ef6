package services

import (
	"context"
	"testing"
	"time"

	"radost_server/models"
)

func TestRateLimitWindow(t *testing.T) {
	store := NewMemoryStore()
	svc := NewRateLimitService(store)

	for i := 0; i < DefaultRateLimitMax; i++ {
		allowed, err := svc.Allow(context.Background(), "alice", models.ActionInteraction)
		if err != nil {
			t.Fatalf("Allow failed: %v", err)
		}
		if !allowed {
			t.Fatalf("submission %d denied, want allowed", i+1)
		}
		svc.Log(context.Background(), "alice", models.ActionInteraction, "127.0.0.1", "test")
	}

	allowed, err := svc.Allow(context.Background(), "alice", models.ActionInteraction)
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if allowed {
		t.Error("11th submission allowed, want denied")
	}

	// A different user is unaffected.
	allowed, _ = svc.Allow(context.Background(), "bob", models.ActionInteraction)
	if !allowed {
		t.Error("other user denied, want allowed")
	}
}

func TestRateLimitEntriesAgeOut(t *testing.T) {
	store := NewMemoryStore()
	svc := NewRateLimitService(store)

	// Entries older than the window do not count.
	old := models.RateLimitEntry{
		UserID:     "alice",
		CreatedAt:  time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339Nano),
		ActionType: models.ActionInteraction,
	}
	for i := 0; i < DefaultRateLimitMax; i++ {
		if err := store.PutRateLimitEntry(context.Background(), old); err != nil {
			t.Fatal(err)
		}
	}

	allowed, err := svc.Allow(context.Background(), "alice", models.ActionInteraction)
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if !allowed {
		t.Error("aged-out entries still counted against the quota")
	}
}
