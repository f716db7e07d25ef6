package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"radost_server/models"

	"github.com/google/uuid"
)

// InteractionConfig controls behavior the clients disagreed on historically.
type InteractionConfig struct {
	// PermissivePoints makes unknown level/interaction type combinations fall
	// back to 1 point instead of failing validation.
	PermissivePoints bool
}

// InteractionService records points-awarding events and keeps user point
// totals and levels in step with the ledger.
type InteractionService struct {
	Store  Store
	Config InteractionConfig
}

// RecordInteractionInput describes one verified real-world meeting.
type RecordInteractionInput struct {
	UserID          string
	CounterpartID   string
	InteractionType string
	LevelType       string
	Metadata        models.InteractionMetadata
}

// RecordInteractionResult is what the client renders after a submission.
type RecordInteractionResult struct {
	PointsEarned   int    `json:"pointsEarned"`
	NewTotalPoints int    `json:"newTotalPoints"`
	NewLevel       int    `json:"newLevel"`
	InteractionID  string `json:"interactionId"`
}

// RecordInteraction appends a ledger row for the acting user, awards points
// atomically, and recomputes the level from the new total. When a
// counterpart took part in the same meeting they get their own ledger row
// and an equal award; a failure on the counterpart side is logged but does
// not void the acting user's interaction.
func (s *InteractionService) RecordInteraction(ctx context.Context, input RecordInteractionInput) (RecordInteractionResult, error) {
	pointsEarned, err := PointsFor(input.LevelType, input.InteractionType, s.Config.PermissivePoints)
	if err != nil {
		return RecordInteractionResult{}, err
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	interaction := models.Interaction{
		InteractionID:   uuid.New().String(),
		UserID:          input.UserID,
		CounterpartID:   input.CounterpartID,
		InteractionType: input.InteractionType,
		LevelType:       input.LevelType,
		PointsEarned:    pointsEarned,
		Metadata:        input.Metadata,
		CreatedAt:       createdAt,
	}

	if err := s.Store.PutInteraction(ctx, interaction); err != nil {
		return RecordInteractionResult{}, fmt.Errorf("failed to record interaction: %w", err)
	}

	if input.CounterpartID != "" {
		if err := s.awardCounterpart(ctx, input, pointsEarned, createdAt); err != nil {
			log.Printf("Counterpart award failed for %s: %v", input.CounterpartID, err)
		}
	}

	newTotal, err := s.Store.AddPoints(ctx, input.UserID, pointsEarned)
	if err != nil {
		return RecordInteractionResult{}, fmt.Errorf("failed to award points to %s: %w", input.UserID, err)
	}

	newLevel := LevelFor(newTotal)
	if err := s.Store.SetLevel(ctx, input.UserID, newLevel); err != nil {
		return RecordInteractionResult{}, fmt.Errorf("failed to update level for %s: %w", input.UserID, err)
	}

	log.Printf("Interaction recorded: user=%s type=%s/%s points=%d total=%d level=%d",
		input.UserID, input.LevelType, input.InteractionType, pointsEarned, newTotal, newLevel)

	return RecordInteractionResult{
		PointsEarned:   pointsEarned,
		NewTotalPoints: newTotal,
		NewLevel:       newLevel,
		InteractionID:  interaction.InteractionID,
	}, nil
}

func (s *InteractionService) awardCounterpart(ctx context.Context, input RecordInteractionInput, pointsEarned int, createdAt string) error {
	counterpart := models.Interaction{
		InteractionID:   uuid.New().String(),
		UserID:          input.CounterpartID,
		CounterpartID:   input.UserID,
		InteractionType: input.InteractionType,
		LevelType:       input.LevelType,
		PointsEarned:    pointsEarned,
		Metadata:        input.Metadata,
		CreatedAt:       createdAt,
	}
	if err := s.Store.PutInteraction(ctx, counterpart); err != nil {
		return fmt.Errorf("failed to record counterpart interaction: %w", err)
	}

	newTotal, err := s.Store.AddPoints(ctx, input.CounterpartID, pointsEarned)
	if err != nil {
		return fmt.Errorf("failed to award counterpart points: %w", err)
	}
	if err := s.Store.SetLevel(ctx, input.CounterpartID, LevelFor(newTotal)); err != nil {
		return fmt.Errorf("failed to update counterpart level: %w", err)
	}
	return nil
}

// GetUserInteractions returns a user's ledger entries, newest first.
func (s *InteractionService) GetUserInteractions(ctx context.Context, userID string, limit int) ([]models.Interaction, error) {
	return s.Store.ListInteractions(ctx, userID, limit)
}

// GetUserProgression recomputes the derived progression projection from the
// user's lifetime interaction count.
func (s *InteractionService) GetUserProgression(ctx context.Context, userID string) (models.UserProgression, error) {
	total, err := s.Store.CountInteractions(ctx, userID)
	if err != nil {
		return models.UserProgression{}, fmt.Errorf("failed to count interactions for %s: %w", userID, err)
	}
	return ProgressionFor(total), nil
}
