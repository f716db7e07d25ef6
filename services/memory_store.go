package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"radost_server/models"
)

// MemoryStore keeps all state in process. It backs demo mode and the test
// suite; the demo flag that used to gate business logic everywhere is now
// just this second Store implementation selected at startup.
type MemoryStore struct {
	mu           sync.Mutex
	users        map[string]models.User
	interactions []models.Interaction
	requests     map[string]models.MeetingRequest
	rateLog      []models.RateLimitEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		requests: make(map[string]models.MeetingRequest),
	}
}

func (m *MemoryStore) PutUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UserID] = user
	return nil
}

func (m *MemoryStore) GetUser(_ context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (m *MemoryStore) UpdateUserProfile(_ context.Context, userID string, fields map[string]string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNotFound
	}
	for name, value := range fields {
		switch name {
		case "nickname":
			user.Nickname = value
		case "city":
			user.City = value
		case "region":
			user.Region = value
		case "country":
			user.Country = value
		}
	}
	user.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	m.users[userID] = user
	return user, nil
}

func (m *MemoryStore) TouchLastActive(_ context.Context, userID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.LastActive = at.UTC().Format(time.RFC3339)
	m.users[userID] = user
	return nil
}

func (m *MemoryStore) ScanUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

// AddPoints holds the lock across the add, so concurrent awards cannot lose
// updates.
func (m *MemoryStore) AddPoints(_ context.Context, userID string, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return 0, ErrNotFound
	}
	user.Points += delta
	user.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	m.users[userID] = user
	return user.Points, nil
}

func (m *MemoryStore) SetLevel(_ context.Context, userID string, level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Level = level
	m.users[userID] = user
	return nil
}

func (m *MemoryStore) PutInteraction(_ context.Context, interaction models.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions = append(m.interactions, interaction)
	return nil
}

func (m *MemoryStore) ListInteractions(_ context.Context, userID string, limit int) ([]models.Interaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Interaction
	for _, in := range m.interactions {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) CountInteractions(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, in := range m.interactions {
		if in.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStore) PutMeetingRequest(_ context.Context, request models.MeetingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[request.RequestID] = request
	return nil
}

func (m *MemoryStore) GetMeetingRequest(_ context.Context, requestID string) (models.MeetingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[requestID]
	if !ok {
		return models.MeetingRequest{}, ErrNotFound
	}
	return request, nil
}

func (m *MemoryStore) UpdateMeetingRequestStatus(_ context.Context, requestID, status string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[requestID]
	if !ok {
		return ErrNotFound
	}
	request.Status = status
	request.UpdatedAt = at.UTC().Format(time.RFC3339)
	m.requests[requestID] = request
	return nil
}

func (m *MemoryStore) ListPendingRequests(_ context.Context, toUserID string) ([]models.MeetingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MeetingRequest
	for _, request := range m.requests {
		if request.ToUserID == toUserID && request.Status == models.StatusPending {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *MemoryStore) ListSentRequests(_ context.Context, fromUserID string) ([]models.MeetingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MeetingRequest
	for _, request := range m.requests {
		if request.FromUserID == fromUserID && request.Status == models.StatusPending {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *MemoryStore) HasPendingRequest(_ context.Context, fromUserID, toUserID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, request := range m.requests {
		if request.FromUserID == fromUserID && request.ToUserID == toUserID && request.Status == models.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) PutRateLimitEntry(_ context.Context, entry models.RateLimitEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rateLog = append(m.rateLog, entry)
	return nil
}

func (m *MemoryStore) CountRateLimitEntries(_ context.Context, userID, actionType string, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, entry := range m.rateLog {
		if entry.UserID != userID || entry.ActionType != actionType {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339Nano, entry.CreatedAt)
		if err != nil || createdAt.Before(since) {
			continue
		}
		count++
	}
	return count, nil
}
