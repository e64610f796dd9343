// Package activity scores how well a day's forecast suits a fixed table of
// activities. Scoring is pure: same summary in, same ranking out.
package activity

import (
	"math"
	"sort"
	"strings"

	"cityweather.app/models"
)

// DaySummary is the per-day weather aggregate the scorer operates on
type DaySummary struct {
	Date          string
	MaxTemp       float64
	MinTemp       float64
	Conditions    string
	Precipitation float64
	WindSpeed     float64
}

const (
	baseScore     = 50.0
	rainThreshold = 1.0  // mm
	windThreshold = 20.0 // km/h
)

// Scorer ranks activities for a forecast day against a profile table
type Scorer struct {
	profiles []Profile
}

// NewScorer creates a scorer over the given profile table
func NewScorer(profiles []Profile) *Scorer {
	return &Scorer{profiles: profiles}
}

// NewDefaultScorer creates a scorer over the built-in profile table
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultProfiles())
}

// RankForDay scores every profile against the summary and returns the top
// results sorted by score descending. Ties keep profile-table order. A top
// below 1 is treated as 1.
func (s *Scorer) RankForDay(summary DaySummary, top int) []models.ScoredActivity {
	if top < 1 {
		top = 1
	}

	scored := make([]models.ScoredActivity, 0, len(s.profiles))
	for _, profile := range s.profiles {
		scored = append(scored, scoreProfile(profile, summary))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SuitabilityScore > scored[j].SuitabilityScore
	})

	if top > len(scored) {
		top = len(scored)
	}
	return scored[:top]
}

func scoreProfile(profile Profile, summary DaySummary) models.ScoredActivity {
	avgTemp := (summary.MaxTemp + summary.MinTemp) / 2
	score := baseScore
	var reasons []string

	switch {
	case avgTemp >= profile.IdealTempMin && avgTemp <= profile.IdealTempMax:
		score += 30
		reasons = append(reasons, "ideal temperature")
	case avgTemp < profile.IdealTempMin:
		score -= math.Min(30, (profile.IdealTempMin-avgTemp)*5)
		reasons = append(reasons, "too cold")
	default:
		score -= math.Min(30, (avgTemp-profile.IdealTempMax)*5)
		reasons = append(reasons, "too warm")
	}

	hasRain := summary.Precipitation > rainThreshold
	if hasRain {
		score -= (1 - profile.RainTolerance) * 20
		if profile.RainTolerance > 0.8 {
			score += 10
			reasons = append(reasons, "rain makes it more appealing")
		} else if profile.RainTolerance < 0.3 {
			reasons = append(reasons, "rain not ideal")
		}
	} else if profile.RainTolerance < 0.3 {
		score += 10
		reasons = append(reasons, "no rain")
	}

	if summary.WindSpeed > windThreshold {
		score += profile.WindPreference*15 - 7.5
		if profile.WindPreference > 0.6 {
			reasons = append(reasons, "good wind conditions")
		} else if profile.WindPreference < 0.4 {
			reasons = append(reasons, "windy conditions")
		}
	}

	if strings.Contains(profile.Name, "indoor") && (avgTemp < 10 || avgTemp > 30) {
		score += 15
		reasons = append(reasons, "extreme weather favors indoor activities")
	}

	reasoning := "standard conditions"
	if len(reasons) > 0 {
		reasoning = strings.Join(reasons, ", ")
	}

	return models.ScoredActivity{
		Name:             profile.Name,
		SuitabilityScore: clampScore(score),
		Reasoning:        reasoning,
	}
}

func clampScore(score float64) int {
	clamped := math.Max(0, math.Min(100, score))
	return int(math.Round(clamped))
}
