package encounter

import (
	"sync/atomic"
	"time"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/utils"
)

// scriptedRNG replays values in order, repeating the last one
type scriptedRNG struct {
	values []float64
	pos    int
}

func (s *scriptedRNG) Float64() float64 {
	v := s.values[s.pos]
	if s.pos < len(s.values)-1 {
		s.pos++
	}
	return v
}

func (s *scriptedRNG) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

// countingRNG counts draws made through it
type countingRNG struct {
	inner utils.RNG
	draws atomic.Int64
}

func (c *countingRNG) Float64() float64 {
	c.draws.Add(1)
	return c.inner.Float64()
}

func (c *countingRNG) Intn(n int) int {
	c.draws.Add(1)
	return c.inner.Intn(n)
}

var fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newTestGenerator(rng utils.RNG) *Generator {
	return NewGenerator(rng, &SequentialIDGenerator{Prefix: "enc-"}, fixedClock)
}

func testSpecies(id string, rarity int) *domain.Species {
	return &domain.Species{
		ID:             id,
		Name:           id,
		Rarity:         rarity,
		BaseSize:       50,
		BaseWeight:     4,
		Elusiveness:    2,
		Strength:       2,
		BaseCurrency:   10 * rarity,
		BaseExperience: 5 * rarity,
	}
}

func neutralLocation(id string, population ...string) *domain.Location {
	return &domain.Location{
		ID:         id,
		Name:       id,
		Population: population,
		Modifiers:  domain.FishingModifiers{LineStrength: 1, CastDistance: 1},
	}
}

// speciesMap and locationMap are minimal catalogs for tests
type speciesMap map[string]*domain.Species

func (m speciesMap) Get(id string) (*domain.Species, bool) {
	sp, ok := m[id]
	return sp, ok
}

type locationMap map[string]*domain.Location

func (m locationMap) Get(id string) (*domain.Location, bool) {
	loc, ok := m[id]
	return loc, ok
}
