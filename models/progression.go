package models

// NextUnlock describes the first competition a user has not yet unlocked.
type NextUnlock struct {
	Type                  string `json:"type"`
	RequiredInteractions  int    `json:"requiredInteractions"`
	RemainingInteractions int    `json:"remainingInteractions"`
}

// UserProgression is a derived projection, recomputed on demand from the
// user's lifetime interaction count. Never persisted.
type UserProgression struct {
	TotalInteractions    int         `json:"totalInteractions"`
	CurrentLevel         int         `json:"currentLevel"`
	UnlockedCompetitions []string    `json:"unlockedCompetitions"`
	NextUnlock           *NextUnlock `json:"nextUnlock,omitempty"`
}

// LeaderboardEntry is one ranked row in a competition leaderboard.
type LeaderboardEntry struct {
	UserID   string `json:"id"`
	Nickname string `json:"name"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
	Rank     int    `json:"rank"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
}

// UserRanking is the caller's own standing within a leaderboard.
type UserRanking struct {
	Rank         int     `json:"rank"`
	TotalPlayers int     `json:"totalPlayers"`
	Points       int     `json:"points"`
	Percentile   float64 `json:"percentile"`
}

// GlobalProgress tracks total player count against the long-term target of
// half of humanity playing.
type GlobalProgress struct {
	CurrentPlayers int     `json:"currentPlayers"`
	TargetPlayers  int     `json:"targetPlayers"`
	Percentage     float64 `json:"percentage"`
	Milestone      string  `json:"milestone"`
}

// LeaderboardData bundles a leaderboard response for one competition type.
type LeaderboardData struct {
	Type           string             `json:"type"`
	Entries        []LeaderboardEntry `json:"entries"`
	UserRanking    *UserRanking       `json:"userRanking,omitempty"`
	GlobalProgress *GlobalProgress    `json:"globalProgress,omitempty"`
	LastUpdated    string             `json:"lastUpdated"`
}
