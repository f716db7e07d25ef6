package services

import (
	"fmt"

	"radost_server/models"
)

// Point values per competition tier. Community counts the same as city.
const (
	pointsIndividual = 1
	pointsGroup      = 2
	pointsCity       = 5
	pointsRegion     = 10
	pointsCountry    = 20
)

// Level thresholds: points required to reach level index+2. A user below 10
// points is level 1; 1000 and above is level 8.
var levelThresholds = []int{10, 25, 50, 100, 200, 500, 1000}

// competitionUnlock pairs a competition type with the lifetime interaction
// count that unlocks it. Individual and group are always open.
type competitionUnlock struct {
	Type                 string
	RequiredInteractions int
	AlwaysUnlocked       bool
}

var competitionUnlocks = []competitionUnlock{
	{Type: models.CompetitionIndividual, AlwaysUnlocked: true},
	{Type: models.CompetitionGroup, AlwaysUnlocked: true},
	{Type: models.CompetitionCommunity, RequiredInteractions: 20},
	{Type: models.CompetitionCity, RequiredInteractions: 40},
}

// Interaction-count milestones for the progression level shown in the
// tracker. Distinct from the points level on the user record.
var levelMilestones = []struct {
	Level                int
	RequiredInteractions int
}{
	{Level: 1, RequiredInteractions: 0},
	{Level: 2, RequiredInteractions: 20},
	{Level: 3, RequiredInteractions: 40},
}

// PointsFor returns the award for an interaction at the given competition
// tier. Unknown tiers are an error unless permissive mode is on, in which
// case they fall back to 1 point as legacy clients expect.
func PointsFor(levelType, interactionType string, permissive bool) (int, error) {
	switch levelType {
	case models.LevelTypeIndividual:
		if interactionType == models.InteractionTypeIndividual {
			return pointsIndividual, nil
		}
	case models.LevelTypeGroup:
		return pointsGroup, nil
	case models.LevelTypeCity, models.InteractionTypeCommunity:
		// community arrives as a level tier from the community screens and
		// scores at the city rate
		return pointsCity, nil
	case models.LevelTypeRegion:
		return pointsRegion, nil
	case models.LevelTypeCountry, models.LevelTypeGlobal:
		return pointsCountry, nil
	default:
		if permissive {
			return pointsIndividual, nil
		}
		return 0, fmt.Errorf("%w: unknown level type %q", ErrValidation, levelType)
	}
	// Known level type, unrecognized interaction type combination.
	if permissive {
		return pointsIndividual, nil
	}
	return 0, fmt.Errorf("%w: unknown interaction type %q for level %q", ErrValidation, interactionType, levelType)
}

// LevelFor maps a point total onto a level. Total over all non-negative
// inputs and monotonic non-decreasing.
func LevelFor(points int) int {
	for i, threshold := range levelThresholds {
		if points < threshold {
			return i + 1
		}
	}
	return len(levelThresholds) + 1
}

// UnlockedCompetitions returns the competition types open to a user with the
// given lifetime interaction count, in unlock order.
func UnlockedCompetitions(totalInteractions int) []string {
	var unlocked []string
	for _, u := range competitionUnlocks {
		if u.AlwaysUnlocked || totalInteractions >= u.RequiredInteractions {
			unlocked = append(unlocked, u.Type)
		}
	}
	return unlocked
}

// NextCompetitionUnlock returns the first competition still locked at the
// given interaction count, or nil once everything is open.
func NextCompetitionUnlock(totalInteractions int) *models.NextUnlock {
	for _, u := range competitionUnlocks {
		if !u.AlwaysUnlocked && totalInteractions < u.RequiredInteractions {
			return &models.NextUnlock{
				Type:                  u.Type,
				RequiredInteractions:  u.RequiredInteractions,
				RemainingInteractions: u.RequiredInteractions - totalInteractions,
			}
		}
	}
	return nil
}

// ProgressionFor computes the full derived projection for a user with the
// given lifetime interaction count.
func ProgressionFor(totalInteractions int) models.UserProgression {
	level := 1
	for _, m := range levelMilestones {
		if totalInteractions >= m.RequiredInteractions {
			level = m.Level
		}
	}
	return models.UserProgression{
		TotalInteractions:    totalInteractions,
		CurrentLevel:         level,
		UnlockedCompetitions: UnlockedCompetitions(totalInteractions),
		NextUnlock:           NextCompetitionUnlock(totalInteractions),
	}
}
