package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"radost_server/models"
)

// Defaults for the submission gateway: 10 accepted submissions per rolling
// hour, with a coarse retry hint of one hour.
const (
	DefaultRateLimitMax    = 10
	DefaultRateLimitWindow = 60 * time.Minute
	RetryAfterSeconds      = 3600
)

// RateLimitService computes a sliding-window quota from the append-only
// rate-limit log.
type RateLimitService struct {
	Store  Store
	Max    int
	Window time.Duration
}

// NewRateLimitService builds a limiter with the default window and quota.
func NewRateLimitService(store Store) *RateLimitService {
	return &RateLimitService{Store: store, Max: DefaultRateLimitMax, Window: DefaultRateLimitWindow}
}

// Allow reports whether the user still has quota for the action within the
// rolling window.
func (s *RateLimitService) Allow(ctx context.Context, userID, actionType string) (bool, error) {
	since := time.Now().UTC().Add(-s.Window)
	count, err := s.Store.CountRateLimitEntries(ctx, userID, actionType, since)
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	return count < s.Max, nil
}

// Log appends an audit row for an accepted attempt. Logging failures are
// swallowed; the primary operation must never abort because of them.
func (s *RateLimitService) Log(ctx context.Context, userID, actionType, ipAddress, userAgent string) {
	entry := models.RateLimitEntry{
		UserID:     userID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
		ActionType: actionType,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	if err := s.Store.PutRateLimitEntry(ctx, entry); err != nil {
		log.Printf("Failed to log rate limit action for %s: %v", userID, err)
	}
}
