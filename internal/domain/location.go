package domain

// RarityBucket names a group of rarity tiers for location-level weight modifiers
type RarityBucket string

// Rarity buckets, ordered from most to least common.
const (
	BucketCommon       RarityBucket = "common"
	BucketUncommon     RarityBucket = "uncommon"
	BucketRare         RarityBucket = "rare"
	BucketEpic         RarityBucket = "epic"
	BucketLegendary    RarityBucket = "legendary"
	BucketTranscendent RarityBucket = "transcendent"
)

// rarityBuckets is indexed by rarity tier - 1. Tiers past the end clamp to the last bucket.
var rarityBuckets = []RarityBucket{
	BucketCommon,
	BucketUncommon,
	BucketRare,
	BucketEpic,
	BucketLegendary,
	BucketTranscendent,
}

// BucketForRarity maps a rarity tier to its named bucket.
// Every tier above the highest named bucket (6+) is treated as transcendent.
func BucketForRarity(rarity int) RarityBucket {
	idx := rarity - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rarityBuckets) {
		idx = len(rarityBuckets) - 1
	}
	return rarityBuckets[idx]
}

// FishingModifiers bias catch difficulty at a location.
// A factor below 1.0 makes fishing there harder; a missing factor is neutral.
type FishingModifiers struct {
	LineStrength float64 `json:"line_strength" validate:"required,gt=0"`
	CastDistance float64 `json:"cast_distance" validate:"required,gt=0"`
}

// EffectiveLineStrength returns the line-strength factor, treating an unset (non-positive) value as 1.0
func (m FishingModifiers) EffectiveLineStrength() float64 {
	if m.LineStrength <= 0 {
		return 1.0
	}
	return m.LineStrength
}

// EffectiveCastDistance returns the cast-distance factor, treating an unset (non-positive) value as 1.0
func (m FishingModifiers) EffectiveCastDistance() float64 {
	if m.CastDistance <= 0 {
		return 1.0
	}
	return m.CastDistance
}

// Location is the catalog definition of a fishing spot.
type Location struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`

	// Population lists eligible species ids in selection order
	Population []string `json:"population" validate:"required,min=1,dive,required"`

	RarityModifiers map[RarityBucket]float64 `json:"rarity_modifiers,omitempty" validate:"omitempty,dive,gt=0"`
	Modifiers       FishingModifiers         `json:"modifiers"`

	UnlockLevel int `json:"unlock_level" validate:"min=0"`

	// FlagshipTemplate mirrors the flagship table for display. The table decides which sites roll
	// flagships; a mismatch is reported as a data anomaly at startup.
	FlagshipTemplate string `json:"flagship_template,omitempty"`
}

// RarityModifier returns the weight multiplier for the bucket of the given rarity tier, or 1.0 when unset.
func (l *Location) RarityModifier(rarity int) float64 {
	if l.RarityModifiers == nil {
		return 1.0
	}
	if mult, ok := l.RarityModifiers[BucketForRarity(rarity)]; ok && mult > 0 {
		return mult
	}
	return 1.0
}

// RarityRange is the inclusive rarity span of a location's population
type RarityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LocationSummary is a read-only aggregate of a location for display
type LocationSummary struct {
	LocationID     string      `json:"location_id"`
	Name           string      `json:"name"`
	SpeciesCount   int         `json:"species_count"`
	UnlockLevel    int         `json:"unlock_level"`
	IsFlagshipSite bool        `json:"is_flagship_site"`
	Rarity         RarityRange `json:"rarity"`
	Habitats       []string    `json:"habitats"`
}
