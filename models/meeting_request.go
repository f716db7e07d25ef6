package models

// MeetingRequest is an asynchronous proposal from one user to another to
// confirm a real-world meeting. At most one pending request may exist for a
// given ordered (from, to) pair.
type MeetingRequest struct {
	RequestID  string            `dynamodbav:"requestId" json:"id"`
	FromUserID string            `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID   string            `dynamodbav:"toUserId" json:"toUserId"` // GSI partition key
	Method     string            `dynamodbav:"method" json:"method"`
	Status     string            `dynamodbav:"status" json:"status"`
	Distance   float64           `dynamodbav:"distance,omitempty" json:"distance,omitempty"`
	Metadata   map[string]string `dynamodbav:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt  string            `dynamodbav:"createdAt" json:"createdAt"` // GSI sort key
	UpdatedAt  string            `dynamodbav:"updatedAt" json:"updatedAt"`
	ExpiresAt  string            `dynamodbav:"expiresAt" json:"expiresAt"`

	// FromUser is joined in when listing pending requests; not stored.
	FromUser *UserPublic `dynamodbav:"-" json:"fromUser,omitempty"`
	// ToUser is joined in when listing sent requests; not stored.
	ToUser *UserPublic `dynamodbav:"-" json:"toUser,omitempty"`
}

// MeetingRequestsTable is the DynamoDB table name for meeting requests
const MeetingRequestsTable = "MeetingRequests"

// Recipient- and sender-side GSIs, both sorted by creation time
const (
	ToUserIndex   = "toUserId-createdAt-index"
	FromUserIndex = "fromUserId-createdAt-index"
)
