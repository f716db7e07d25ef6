package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"radost_server/models"
)

// globalPlayerTarget is half of humanity, the long-term goal the global
// progress bar tracks against.
const globalPlayerTarget = 4_000_000_000

// LeaderboardService computes competition standings from the user table.
type LeaderboardService struct {
	Store Store
}

// GetLeaderboard ranks all players by points for the given competition type.
// When userID is set, the caller's own ranking is included.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, competitionType, userID string, limit int) (models.LeaderboardData, error) {
	switch competitionType {
	case models.CompetitionIndividual, models.CompetitionGroup, models.CompetitionCommunity, models.CompetitionCity:
	default:
		return models.LeaderboardData{}, fmt.Errorf("%w: unknown competition type %q", ErrValidation, competitionType)
	}

	users, err := s.Store.ScanUsers(ctx)
	if err != nil {
		return models.LeaderboardData{}, fmt.Errorf("failed to load players: %w", err)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		return users[i].Nickname < users[j].Nickname
	})

	entries := make([]models.LeaderboardEntry, 0, len(users))
	var ranking *models.UserRanking
	for i, user := range users {
		entry := models.LeaderboardEntry{
			UserID:   user.UserID,
			Nickname: user.Nickname,
			Points:   user.Points,
			Level:    user.Level,
			Rank:     i + 1,
			City:     user.City,
			Region:   user.Region,
			Country:  user.Country,
		}
		if limit <= 0 || i < limit {
			entries = append(entries, entry)
		}
		if userID != "" && user.UserID == userID {
			percentile := 0.0
			if len(users) > 0 {
				percentile = float64(len(users)-i) / float64(len(users)) * 100
			}
			ranking = &models.UserRanking{
				Rank:         i + 1,
				TotalPlayers: len(users),
				Points:       user.Points,
				Percentile:   percentile,
			}
		}
	}

	progress := &models.GlobalProgress{
		CurrentPlayers: len(users),
		TargetPlayers:  globalPlayerTarget,
		Percentage:     float64(len(users)) / float64(globalPlayerTarget) * 100,
		Milestone:      "Polovica ľudstva hrá",
	}

	return models.LeaderboardData{
		Type:           competitionType,
		Entries:        entries,
		UserRanking:    ranking,
		GlobalProgress: progress,
		LastUpdated:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}
