package models

// InteractionMetadata carries the free-form context captured with an
// interaction (verification distance, device, QR payload, exchange text).
type InteractionMetadata struct {
	Distance      float64 `dynamodbav:"distance,omitempty" json:"distance,omitempty"`
	DeviceID      string  `dynamodbav:"deviceId,omitempty" json:"deviceId,omitempty"`
	QRCode        string  `dynamodbav:"qrCode,omitempty" json:"qrCode,omitempty"`
	ScannedUserID string  `dynamodbav:"scannedUserId,omitempty" json:"scannedUserId,omitempty"`
	WhatIGave     string  `dynamodbav:"whatIGave,omitempty" json:"whatIGave,omitempty"`
	WhatIGot      string  `dynamodbav:"whatIGot,omitempty" json:"whatIGot,omitempty"`
}

// Interaction is one recorded points-awarding event. Rows are append-only;
// nothing updates or deletes them after insert.
type Interaction struct {
	InteractionID   string              `dynamodbav:"interactionId" json:"id"`
	UserID          string              `dynamodbav:"userId" json:"userId"` // GSI partition key
	CounterpartID   string              `dynamodbav:"counterpartId,omitempty" json:"counterpartId,omitempty"`
	InteractionType string              `dynamodbav:"interactionType" json:"interactionType"`
	LevelType       string              `dynamodbav:"levelType" json:"levelType"`
	PointsEarned    int                 `dynamodbav:"pointsEarned" json:"pointsEarned"`
	Metadata        InteractionMetadata `dynamodbav:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt       string              `dynamodbav:"createdAt" json:"createdAt"` // GSI sort key
}

// InteractionsTable is the DynamoDB table name for the interaction ledger
const InteractionsTable = "Interactions"

// UserInteractionsIndex queries the ledger by acting user, newest first
const UserInteractionsIndex = "userId-createdAt-index"
