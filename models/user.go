package models

// User is a player profile. Points and level are mutated only by the
// interaction recorder; profile fields by the user themself.
type User struct {
	UserID     string `dynamodbav:"userId" json:"id"`
	Email      string `dynamodbav:"email" json:"email"`
	Nickname   string `dynamodbav:"nickname" json:"nickname"`
	Points     int    `dynamodbav:"points" json:"points"`
	Level      int    `dynamodbav:"level" json:"level"`
	City       string `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Region     string `dynamodbav:"region,omitempty" json:"region,omitempty"`
	Country    string `dynamodbav:"country,omitempty" json:"country,omitempty"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt  string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	LastActive string `dynamodbav:"lastActive,omitempty" json:"lastActive,omitempty"`
}

// UserPublic is the subset of a profile exposed to other players.
type UserPublic struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// Public strips a profile down to the fields other players may see.
func (u User) Public() UserPublic {
	return UserPublic{UserID: u.UserID, Email: u.Email, Nickname: u.Nickname}
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "UserProfiles"
