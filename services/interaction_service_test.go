package services

import (
	"context"
	"sync"
	"testing"

	"radost_server/models"
)

func newTestUser(t *testing.T, store Store, id string, points int) {
	t.Helper()
	err := store.PutUser(context.Background(), models.User{
		UserID:   id,
		Email:    id + "@example.com",
		Nickname: id,
		Points:   points,
		Level:    LevelFor(points),
	})
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", id, err)
	}
}

func TestRecordInteractionAwardsPointsAndLevel(t *testing.T) {
	store := NewMemoryStore()
	svc := &InteractionService{Store: store, Config: InteractionConfig{PermissivePoints: true}}
	newTestUser(t, store, "alice", 8)

	// +1 point: 8 -> 9, still level 1
	result, err := svc.RecordInteraction(context.Background(), RecordInteractionInput{
		UserID:          "alice",
		InteractionType: models.InteractionTypeIndividual,
		LevelType:       models.LevelTypeIndividual,
	})
	if err != nil {
		t.Fatalf("RecordInteraction failed: %v", err)
	}
	if result.PointsEarned != 1 || result.NewTotalPoints != 9 || result.NewLevel != 1 {
		t.Errorf("first interaction: %+v, want 1 point, 9 total, level 1", result)
	}

	// +1 point: 9 -> 10, crosses into level 2
	result, err = svc.RecordInteraction(context.Background(), RecordInteractionInput{
		UserID:          "alice",
		InteractionType: models.InteractionTypeIndividual,
		LevelType:       models.LevelTypeIndividual,
	})
	if err != nil {
		t.Fatalf("RecordInteraction failed: %v", err)
	}
	if result.NewTotalPoints != 10 || result.NewLevel != 2 {
		t.Errorf("second interaction: %+v, want 10 total, level 2", result)
	}

	user, _ := store.GetUser(context.Background(), "alice")
	if user.Points != 10 || user.Level != 2 {
		t.Errorf("stored user = points %d level %d, want 10/2", user.Points, user.Level)
	}
}

func TestRecordInteractionWithCounterpart(t *testing.T) {
	store := NewMemoryStore()
	svc := &InteractionService{Store: store, Config: InteractionConfig{PermissivePoints: true}}
	newTestUser(t, store, "scanner", 0)
	newTestUser(t, store, "scanned", 0)

	result, err := svc.RecordInteraction(context.Background(), RecordInteractionInput{
		UserID:          "scanner",
		CounterpartID:   "scanned",
		InteractionType: models.InteractionTypeGroup,
		LevelType:       models.LevelTypeGroup,
	})
	if err != nil {
		t.Fatalf("RecordInteraction failed: %v", err)
	}
	if result.PointsEarned != 2 {
		t.Errorf("PointsEarned = %d, want 2", result.PointsEarned)
	}

	for _, id := range []string{"scanner", "scanned"} {
		ledger, err := store.ListInteractions(context.Background(), id, 0)
		if err != nil {
			t.Fatalf("ListInteractions(%s) failed: %v", id, err)
		}
		if len(ledger) != 1 {
			t.Fatalf("%s has %d ledger rows, want 1", id, len(ledger))
		}
		user, _ := store.GetUser(context.Background(), id)
		if user.Points != 2 {
			t.Errorf("%s has %d points, want 2", id, user.Points)
		}
	}
}

func TestRecordInteractionMissingCounterpartDoesNotAbort(t *testing.T) {
	store := NewMemoryStore()
	svc := &InteractionService{Store: store, Config: InteractionConfig{PermissivePoints: true}}
	newTestUser(t, store, "scanner", 0)

	// counterpart id points at a user that does not exist
	result, err := svc.RecordInteraction(context.Background(), RecordInteractionInput{
		UserID:          "scanner",
		CounterpartID:   "ghost",
		InteractionType: models.InteractionTypeIndividual,
		LevelType:       models.LevelTypeIndividual,
	})
	if err != nil {
		t.Fatalf("RecordInteraction failed: %v", err)
	}
	if result.NewTotalPoints != 1 {
		t.Errorf("scanner total = %d, want 1", result.NewTotalPoints)
	}
}

func TestRecordInteractionUnknownLevelTypeStrict(t *testing.T) {
	store := NewMemoryStore()
	svc := &InteractionService{Store: store}
	newTestUser(t, store, "alice", 0)

	_, err := svc.RecordInteraction(context.Background(), RecordInteractionInput{
		UserID:          "alice",
		InteractionType: models.InteractionTypeIndividual,
		LevelType:       "galactic",
	})
	if err == nil {
		t.Fatal("expected error for unknown level type in strict mode")
	}

	// nothing was recorded
	ledger, _ := store.ListInteractions(context.Background(), "alice", 0)
	if len(ledger) != 0 {
		t.Errorf("ledger has %d rows after failed submission, want 0", len(ledger))
	}
}

func TestConcurrentAwardsDoNotLoseUpdates(t *testing.T) {
	store := NewMemoryStore()
	newTestUser(t, store, "alice", 0)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := store.AddPoints(context.Background(), "alice", 1); err != nil {
				t.Errorf("AddPoints failed: %v", err)
			}
		}()
	}
	wg.Wait()

	user, _ := store.GetUser(context.Background(), "alice")
	if user.Points != workers {
		t.Errorf("points = %d after %d concurrent awards, want %d", user.Points, workers, workers)
	}
}

func TestGetUserProgression(t *testing.T) {
	store := NewMemoryStore()
	svc := &InteractionService{Store: store, Config: InteractionConfig{PermissivePoints: true}}
	newTestUser(t, store, "alice", 0)

	for i := 0; i < 20; i++ {
		if _, err := svc.RecordInteraction(context.Background(), RecordInteractionInput{
			UserID:          "alice",
			InteractionType: models.InteractionTypeIndividual,
			LevelType:       models.LevelTypeIndividual,
		}); err != nil {
			t.Fatalf("RecordInteraction failed: %v", err)
		}
	}

	progression, err := svc.GetUserProgression(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserProgression failed: %v", err)
	}
	if progression.TotalInteractions != 20 || progression.CurrentLevel != 2 {
		t.Errorf("progression = %+v, want 20 interactions at level 2", progression)
	}
	if progression.NextUnlock == nil || progression.NextUnlock.Type != models.CompetitionCity {
		t.Errorf("next unlock = %+v, want city", progression.NextUnlock)
	}
}
