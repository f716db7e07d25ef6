package models

// Interaction types (how many people took part)
const (
	InteractionTypeIndividual = "individual"
	InteractionTypeGroup      = "group"
	InteractionTypeCommunity  = "community"
)

// Level types (competition tier driving the point value)
const (
	LevelTypeIndividual = "individual"
	LevelTypeGroup      = "group"
	LevelTypeCity       = "city"
	LevelTypeRegion     = "region"
	LevelTypeCountry    = "country"
	LevelTypeGlobal     = "global"
)

// Verification methods for meeting requests
const (
	MethodQRCode    = "qr_code"
	MethodBluetooth = "bluetooth"
	MethodEmail     = "email"
)

// Meeting request statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
	StatusExpired   = "expired"
)

// Competition types (leaderboards a user can enter)
const (
	CompetitionIndividual = "individual"
	CompetitionGroup      = "group"
	CompetitionCommunity  = "community"
	CompetitionCity       = "city"
)

// Rate limit action types
const (
	ActionInteraction = "interaction"
)
