package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"radost_server/models"

	"github.com/google/uuid"
)

// meetingRequestTTL is how long a request stays actionable before it is
// considered expired on read.
const meetingRequestTTL = 24 * time.Hour

// Notifier pushes a recipient's fresh pending-request list whenever it
// changes. The payload is the full current list, not a delta.
type Notifier interface {
	NotifyPendingRequests(userID string, requests []models.MeetingRequest)
}

// NopNotifier is used when the socket server is disabled and in tests that
// do not care about realtime delivery.
type NopNotifier struct{}

func (NopNotifier) NotifyPendingRequests(string, []models.MeetingRequest) {}

// MeetingRequestService manages the pending → confirmed/rejected/expired
// lifecycle of meeting proposals between two users.
type MeetingRequestService struct {
	Store    Store
	Notifier Notifier
}

// CreateRequest opens a pending request from one user to another. Only one
// pending request may exist per ordered pair; the reverse direction is not
// blocked.
func (s *MeetingRequestService) CreateRequest(ctx context.Context, fromUserID, toUserID, method string, distance float64, metadata map[string]string) (string, error) {
	if fromUserID == "" || toUserID == "" {
		return "", fmt.Errorf("%w: both user ids are required", ErrValidation)
	}

	exists, err := s.Store.HasPendingRequest(ctx, fromUserID, toUserID)
	if err != nil {
		return "", fmt.Errorf("failed to check for pending request: %w", err)
	}
	if exists {
		return "", ErrDuplicateRequest
	}

	now := time.Now().UTC()
	request := models.MeetingRequest{
		RequestID:  uuid.New().String(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Method:     method,
		Status:     models.StatusPending,
		Distance:   distance,
		Metadata:   metadata,
		CreatedAt:  now.Format(time.RFC3339),
		UpdatedAt:  now.Format(time.RFC3339),
		ExpiresAt:  now.Add(meetingRequestTTL).Format(time.RFC3339),
	}

	if err := s.Store.PutMeetingRequest(ctx, request); err != nil {
		return "", fmt.Errorf("failed to create meeting request: %w", err)
	}

	log.Printf("Meeting request created: %s -> %s (%s)", fromUserID, toUserID, method)
	s.notifyRecipient(ctx, toUserID)
	return request.RequestID, nil
}

// GetPendingRequests returns the requests awaiting the user's decision,
// newest first, each enriched with the requester's public profile. Requests
// past their expiry are transitioned to expired here rather than by a
// background sweeper.
func (s *MeetingRequestService) GetPendingRequests(ctx context.Context, userID string) ([]models.MeetingRequest, error) {
	requests, err := s.Store.ListPendingRequests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	now := time.Now().UTC()
	fresh := requests[:0]
	for _, request := range requests {
		if s.expireIfOverdue(ctx, request, now) {
			continue
		}
		if from, err := s.Store.GetUser(ctx, request.FromUserID); err == nil {
			public := from.Public()
			request.FromUser = &public
		}
		fresh = append(fresh, request)
	}
	return fresh, nil
}

// GetSentRequests returns the user's own still-pending requests, newest
// first, enriched with the recipient's public profile.
func (s *MeetingRequestService) GetSentRequests(ctx context.Context, userID string) ([]models.MeetingRequest, error) {
	requests, err := s.Store.ListSentRequests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}

	now := time.Now().UTC()
	fresh := requests[:0]
	for _, request := range requests {
		if s.expireIfOverdue(ctx, request, now) {
			continue
		}
		if to, err := s.Store.GetUser(ctx, request.ToUserID); err == nil {
			public := to.Public()
			request.ToUser = &public
		}
		fresh = append(fresh, request)
	}
	return fresh, nil
}

// ConfirmRequest marks a pending request confirmed. Only the recipient may
// confirm.
func (s *MeetingRequestService) ConfirmRequest(ctx context.Context, requestID, actorID string) error {
	return s.resolveRequest(ctx, requestID, actorID, models.StatusConfirmed)
}

// RejectRequest marks a pending request rejected. Only the recipient may
// reject.
func (s *MeetingRequestService) RejectRequest(ctx context.Context, requestID, actorID string) error {
	return s.resolveRequest(ctx, requestID, actorID, models.StatusRejected)
}

func (s *MeetingRequestService) resolveRequest(ctx context.Context, requestID, actorID, status string) error {
	request, err := s.Store.GetMeetingRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.ToUserID != actorID {
		return fmt.Errorf("%w: only the recipient can resolve a request", ErrForbidden)
	}

	now := time.Now().UTC()
	if s.expireIfOverdue(ctx, request, now) {
		return fmt.Errorf("%w: request %s has expired", ErrNotFound, requestID)
	}
	if request.Status != models.StatusPending {
		return fmt.Errorf("%w: request %s is already %s", ErrValidation, requestID, request.Status)
	}

	if err := s.Store.UpdateMeetingRequestStatus(ctx, requestID, status, now); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	log.Printf("Meeting request %s: %s by %s", requestID, status, actorID)
	s.notifyRecipient(ctx, request.ToUserID)
	return nil
}

// expireIfOverdue transitions a pending request to expired once its deadline
// has passed. Returns true when the request is no longer actionable.
func (s *MeetingRequestService) expireIfOverdue(ctx context.Context, request models.MeetingRequest, now time.Time) bool {
	if request.Status != models.StatusPending || request.ExpiresAt == "" {
		return false
	}
	expiresAt, err := time.Parse(time.RFC3339, request.ExpiresAt)
	if err != nil || !now.After(expiresAt) {
		return false
	}
	if err := s.Store.UpdateMeetingRequestStatus(ctx, request.RequestID, models.StatusExpired, now); err != nil {
		log.Printf("Failed to expire request %s: %v", request.RequestID, err)
	}
	return true
}

// notifyRecipient pushes the recipient's fresh pending list. Best effort;
// delivery failures never surface to the caller.
func (s *MeetingRequestService) notifyRecipient(ctx context.Context, userID string) {
	if s.Notifier == nil {
		return
	}
	requests, err := s.GetPendingRequests(ctx, userID)
	if err != nil {
		log.Printf("Failed to fetch pending requests for notification to %s: %v", userID, err)
		return
	}
	s.Notifier.NotifyPendingRequests(userID, requests)
}
