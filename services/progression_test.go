package services

import (
	"errors"
	"reflect"
	"testing"
)

func TestLevelForThresholds(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1}, {9, 1},
		{10, 2}, {24, 2},
		{25, 3}, {49, 3},
		{50, 4}, {99, 4},
		{100, 5}, {199, 5},
		{200, 6}, {499, 6},
		{500, 7}, {999, 7},
		{1000, 8}, {1_000_000, 8},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.points); got != tc.level {
			t.Errorf("LevelFor(%d) = %d, want %d", tc.points, got, tc.level)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	previous := LevelFor(0)
	for points := 1; points <= 2000; points++ {
		level := LevelFor(points)
		if level < previous {
			t.Fatalf("LevelFor decreased at %d points: %d -> %d", points, previous, level)
		}
		if level != LevelFor(points) {
			t.Fatalf("LevelFor(%d) not stable", points)
		}
		previous = level
	}
}

func TestPointsFor(t *testing.T) {
	cases := []struct {
		levelType       string
		interactionType string
		points          int
	}{
		{"individual", "individual", 1},
		{"group", "individual", 2},
		{"group", "group", 2},
		{"city", "community", 5},
		{"community", "community", 5},
		{"region", "individual", 10},
		{"region", "group", 10},
		{"country", "individual", 20},
		{"global", "group", 20},
	}
	for _, tc := range cases {
		got, err := PointsFor(tc.levelType, tc.interactionType, false)
		if err != nil {
			t.Errorf("PointsFor(%s, %s) returned error: %v", tc.levelType, tc.interactionType, err)
			continue
		}
		if got != tc.points {
			t.Errorf("PointsFor(%s, %s) = %d, want %d", tc.levelType, tc.interactionType, got, tc.points)
		}
	}
}

func TestPointsForUnknownLevelType(t *testing.T) {
	if _, err := PointsFor("galactic", "individual", false); !errors.Is(err, ErrValidation) {
		t.Errorf("strict mode: expected ErrValidation for unknown level type, got %v", err)
	}

	got, err := PointsFor("galactic", "individual", true)
	if err != nil {
		t.Fatalf("permissive mode: unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("permissive mode: PointsFor(galactic) = %d, want 1", got)
	}
}

func TestPointsForUnknownCombination(t *testing.T) {
	// individual level with a non-individual interaction type is an
	// unrecognized combination
	if _, err := PointsFor("individual", "group", false); !errors.Is(err, ErrValidation) {
		t.Errorf("strict mode: expected ErrValidation, got %v", err)
	}
	got, err := PointsFor("individual", "group", true)
	if err != nil || got != 1 {
		t.Errorf("permissive mode: got (%d, %v), want (1, nil)", got, err)
	}
}

func TestUnlockedCompetitions(t *testing.T) {
	cases := []struct {
		interactions int
		unlocked     []string
	}{
		{0, []string{"individual", "group"}},
		{19, []string{"individual", "group"}},
		{20, []string{"individual", "group", "community"}},
		{39, []string{"individual", "group", "community"}},
		{40, []string{"individual", "group", "community", "city"}},
	}
	for _, tc := range cases {
		got := UnlockedCompetitions(tc.interactions)
		if !reflect.DeepEqual(got, tc.unlocked) {
			t.Errorf("UnlockedCompetitions(%d) = %v, want %v", tc.interactions, got, tc.unlocked)
		}
	}
}

func TestNextCompetitionUnlock(t *testing.T) {
	next := NextCompetitionUnlock(5)
	if next == nil || next.Type != "community" || next.RequiredInteractions != 20 || next.RemainingInteractions != 15 {
		t.Errorf("NextCompetitionUnlock(5) = %+v, want community at 20 with 15 remaining", next)
	}

	next = NextCompetitionUnlock(25)
	if next == nil || next.Type != "city" || next.RemainingInteractions != 15 {
		t.Errorf("NextCompetitionUnlock(25) = %+v, want city with 15 remaining", next)
	}

	if next = NextCompetitionUnlock(40); next != nil {
		t.Errorf("NextCompetitionUnlock(40) = %+v, want nil", next)
	}
}

func TestProgressionFor(t *testing.T) {
	p := ProgressionFor(0)
	if p.CurrentLevel != 1 || p.NextUnlock == nil {
		t.Errorf("ProgressionFor(0) = %+v", p)
	}

	p = ProgressionFor(20)
	if p.CurrentLevel != 2 || len(p.UnlockedCompetitions) != 3 {
		t.Errorf("ProgressionFor(20) = %+v", p)
	}

	p = ProgressionFor(40)
	if p.CurrentLevel != 3 || p.NextUnlock != nil || len(p.UnlockedCompetitions) != 4 {
		t.Errorf("ProgressionFor(40) = %+v", p)
	}
}
