package encounter

import "github.com/osse101/castline/internal/domain"

// BaseWeight returns the table weight for a rarity tier, or DefaultRarityWeight outside the table
func BaseWeight(rarity int) float64 {
	if rarity < domain.MinRarity || rarity > len(baseRarityWeights) {
		return DefaultRarityWeight
	}
	return baseRarityWeights[rarity-1]
}

// WeightOf computes the spawn weight of a species at a location. The result is always at least MinWeight.
func WeightOf(species *domain.Species, location *domain.Location, conditions domain.Conditions) float64 {
	weight := BaseWeight(species.Rarity)

	if location != nil {
		weight *= location.RarityModifier(species.Rarity)
	}

	// Unrestricted species count as active and as liking every weather
	if species.IsActiveDuring(conditions.TimePeriod) {
		weight *= ActivePeriodBonus
	}
	if species.PrefersWeather(conditions.Weather) {
		weight *= WeatherBonus
	}

	if !(weight >= MinWeight) {
		return MinWeight
	}
	return weight
}
