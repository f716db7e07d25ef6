package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"radost_server/models"

	"github.com/google/uuid"
)

// maxExchangeFieldLen caps each free-text field of a simple exchange.
const maxExchangeFieldLen = 200

// exchangeFlatAward is the fixed award for a free-text exchange. This path
// does not consult the tier table.
const exchangeFlatAward = 1

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// ExchangeConfig holds the gateway policies that were inconsistent in the
// historical clients.
type ExchangeConfig struct {
	// RecomputeLevel also refreshes the user's level after the flat award.
	// The legacy gateway updated points only.
	RecomputeLevel bool
}

// ExchangeService is the business half of the rate-limited submission
// gateway: validation, sanitization, quota, audit log, flat award.
type ExchangeService struct {
	Store     Store
	RateLimit *RateLimitService
	Config    ExchangeConfig
}

// ExchangeInput is a sanitize-and-submit request from an authenticated user.
type ExchangeInput struct {
	UserID    string
	WhatIGave string
	WhatIGot  string
	IPAddress string
	UserAgent string
}

// ExchangeResult mirrors the gateway's success payload.
type ExchangeResult struct {
	Interaction models.Interaction `json:"interaction"`
	NewPoints   int                `json:"newPoints"`
}

// SanitizeExchangeField trims whitespace and strips markup-like substrings.
func SanitizeExchangeField(value string) string {
	return markupPattern.ReplaceAllString(strings.TrimSpace(value), "")
}

// Submit validates, sanitizes, and rate-checks the exchange, then records a
// flat one-point interaction. Audit-log failures never abort the flow.
func (s *ExchangeService) Submit(ctx context.Context, input ExchangeInput) (ExchangeResult, error) {
	if input.WhatIGave == "" || input.WhatIGot == "" {
		return ExchangeResult{}, fmt.Errorf("%w: missing required fields: whatIGave and whatIGot", ErrValidation)
	}
	if len(input.WhatIGave) > maxExchangeFieldLen || len(input.WhatIGot) > maxExchangeFieldLen {
		return ExchangeResult{}, fmt.Errorf("%w: input too long, maximum %d characters per field", ErrValidation, maxExchangeFieldLen)
	}

	gave := SanitizeExchangeField(input.WhatIGave)
	got := SanitizeExchangeField(input.WhatIGot)
	if gave == "" || got == "" {
		return ExchangeResult{}, fmt.Errorf("%w: fields cannot be empty after sanitization", ErrValidation)
	}

	allowed, err := s.RateLimit.Allow(ctx, input.UserID, models.ActionInteraction)
	if err != nil {
		return ExchangeResult{}, err
	}
	if !allowed {
		return ExchangeResult{}, ErrRateLimited
	}

	s.RateLimit.Log(ctx, input.UserID, models.ActionInteraction, input.IPAddress, input.UserAgent)

	interaction := models.Interaction{
		InteractionID:   uuid.New().String(),
		UserID:          input.UserID,
		InteractionType: models.InteractionTypeIndividual,
		LevelType:       models.LevelTypeIndividual,
		PointsEarned:    exchangeFlatAward,
		Metadata: models.InteractionMetadata{
			WhatIGave: gave,
			WhatIGot:  got,
		},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Store.PutInteraction(ctx, interaction); err != nil {
		return ExchangeResult{}, fmt.Errorf("failed to create interaction: %w", err)
	}

	newPoints, err := s.Store.AddPoints(ctx, input.UserID, exchangeFlatAward)
	if err != nil {
		return ExchangeResult{}, fmt.Errorf("failed to update user points: %w", err)
	}

	if s.Config.RecomputeLevel {
		if err := s.Store.SetLevel(ctx, input.UserID, LevelFor(newPoints)); err != nil {
			log.Printf("Failed to recompute level for %s: %v", input.UserID, err)
		}
	}

	log.Printf("Exchange submitted: user=%s points=%d", input.UserID, newPoints)
	return ExchangeResult{Interaction: interaction, NewPoints: newPoints}, nil
}
