package models

// RateLimitEntry is one audit row in the append-only rate-limit log. The
// sliding window count is computed from these rows; they are never mutated.
type RateLimitEntry struct {
	UserID     string `dynamodbav:"userId" json:"userId"`       // partition key
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"` // sort key
	ActionType string `dynamodbav:"actionType" json:"actionType"`
	IPAddress  string `dynamodbav:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent  string `dynamodbav:"userAgent,omitempty" json:"userAgent,omitempty"`
}

// RateLimitTable is the DynamoDB table name for the rate-limit log
const RateLimitTable = "RateLimitLog"
