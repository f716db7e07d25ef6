package services

import (
	"context"
	"time"

	"radost_server/models"
)

// Store is the persistence port shared by every service. Two implementations
// exist: DynamoStore for production and MemoryStore for tests and demo mode.
type Store interface {
	// Users
	PutUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateUserProfile(ctx context.Context, userID string, fields map[string]string) (models.User, error)
	TouchLastActive(ctx context.Context, userID string, at time.Time) error
	ScanUsers(ctx context.Context) ([]models.User, error)

	// AddPoints atomically adds delta to the user's point total and returns
	// the new total. Implementations must not read-modify-write.
	AddPoints(ctx context.Context, userID string, delta int) (int, error)
	// SetLevel writes a recomputed level back to the user record.
	SetLevel(ctx context.Context, userID string, level int) error

	// Interaction ledger (append-only)
	PutInteraction(ctx context.Context, interaction models.Interaction) error
	ListInteractions(ctx context.Context, userID string, limit int) ([]models.Interaction, error)
	CountInteractions(ctx context.Context, userID string) (int, error)

	// Meeting requests
	PutMeetingRequest(ctx context.Context, request models.MeetingRequest) error
	GetMeetingRequest(ctx context.Context, requestID string) (models.MeetingRequest, error)
	UpdateMeetingRequestStatus(ctx context.Context, requestID, status string, at time.Time) error
	ListPendingRequests(ctx context.Context, toUserID string) ([]models.MeetingRequest, error)
	ListSentRequests(ctx context.Context, fromUserID string) ([]models.MeetingRequest, error)
	HasPendingRequest(ctx context.Context, fromUserID, toUserID string) (bool, error)

	// Rate-limit log (append-only)
	PutRateLimitEntry(ctx context.Context, entry models.RateLimitEntry) error
	CountRateLimitEntries(ctx context.Context, userID, actionType string, since time.Time) (int, error)
}
