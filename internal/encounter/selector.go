package encounter

import (
	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/utils"
)

// Candidate pairs an eligible species with its spawn weight
type Candidate struct {
	Species *domain.Species
	Weight  float64
}

// Select performs one weighted draw over candidates, in order.
// Returns false only when there are no candidates.
func Select(candidates []Candidate, rng utils.RNG) (*domain.Species, bool) {
	if len(candidates) == 0 {
		return nil, false
	}

	var total float64
	for _, c := range candidates {
		total += c.Weight
	}

	r := rng.Float64() * total
	for _, c := range candidates {
		r -= c.Weight
		if r <= 0 {
			return c.Species, true
		}
	}

	return selectExhaustionFallback(candidates), true
}

// selectExhaustionFallback handles a draw that rounding carried past the last candidate.
// The first candidate wins.
func selectExhaustionFallback(candidates []Candidate) *domain.Species {
	logger.Debug(LogMsgSelectionExhausted, LogFieldCandidates, len(candidates))
	return candidates[0].Species
}
