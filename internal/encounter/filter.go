package encounter

import "github.com/osse101/castline/internal/domain"

// MinimumLevel returns the requester level needed to encounter a species of the given rarity tier
func MinimumLevel(rarity int) int {
	level := (rarity - 1) * LevelPerRarityTier
	if level < MinRequiredLevel {
		return MinRequiredLevel
	}
	return level
}

// IsEligible reports whether a species may appear under the given conditions.
// Population membership is checked by the caller, which iterates the location's population.
func IsEligible(species *domain.Species, conditions domain.Conditions) bool {
	if species == nil {
		return false
	}
	if !species.IsActiveDuring(conditions.TimePeriod) {
		return false
	}
	if !species.PrefersWeather(conditions.Weather) {
		return false
	}
	return conditions.RequesterLevel >= MinimumLevel(species.Rarity)
}
