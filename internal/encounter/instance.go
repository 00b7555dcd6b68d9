package encounter

import (
	"time"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/utils"
)

// Generator turns species definitions into concrete encounter instances
type Generator struct {
	rng   utils.RNG
	ids   IDGenerator
	clock func() time.Time
}

// NewGenerator creates a generator. Nil arguments fall back to the production defaults.
func NewGenerator(rng utils.RNG, ids IDGenerator, clock func() time.Time) *Generator {
	if rng == nil {
		rng = utils.DefaultRNG()
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &Generator{rng: rng, ids: ids, clock: clock}
}

// RNG exposes the random source shared with selection and the flagship gate
func (g *Generator) RNG() utils.RNG {
	return g.rng
}

// Generate creates an instance of species at location. Missing numeric fields count as zero.
func (g *Generator) Generate(species *domain.Species, location *domain.Location) domain.Encounter {
	enc := domain.Encounter{
		SpeciesID:       species.ID,
		Name:            species.Name,
		Size:            species.BaseSize * utils.UniformRange(g.rng, SizeVarianceMin, SizeVarianceMax),
		Weight:          species.BaseWeight * utils.UniformRange(g.rng, WeightVarianceMin, WeightVarianceMax),
		Difficulty:      Difficulty(species, location),
		CurrencyValue:   species.BaseCurrency,
		ExperienceValue: species.BaseExperience,
	}
	g.stamp(&enc, location)
	return enc
}

// Difficulty scores how hard a species is to catch at a location, clamped to [1, 10]
func Difficulty(species *domain.Species, location *domain.Location) float64 {
	score := float64(species.Rarity)*DifficultyRarityCoeff +
		float64(species.Elusiveness)*DifficultyElusivenessCoeff +
		float64(species.Strength)*DifficultyStrengthCoeff

	if location != nil {
		if location.Modifiers.EffectiveLineStrength() < 1.0 {
			score *= WeakLineDifficultyMult
		}
		if location.Modifiers.EffectiveCastDistance() < 1.0 {
			score *= ShortCastDifficultyMult
		}
	}

	return utils.Clamp(score, MinDifficulty, MaxDifficulty)
}

func (g *Generator) stamp(enc *domain.Encounter, location *domain.Location) {
	if location != nil {
		enc.LocationID = location.ID
	}
	enc.GeneratedAt = g.clock()
	enc.InstanceID = g.ids.NewID()
}
