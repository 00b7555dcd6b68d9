package encounter

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/castline/internal/catalog"
	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/metrics"
)

// Service is the encounter engine's public surface
type Service interface {
	// GenerateEncounter returns (nil, nil) when nothing bites: an unknown location or no eligible species.
	// The only error is ErrInvalidConditions.
	GenerateEncounter(ctx context.Context, locationID string, conditions domain.Conditions) (*domain.Encounter, error)
	GetEligibleSpecies(ctx context.Context, locationID string, conditions domain.Conditions) []*domain.Species
	GetLocationSummary(ctx context.Context, locationID string) (*domain.LocationSummary, bool)
}

type service struct {
	species   catalog.SpeciesCatalog
	locations catalog.LocationCatalog
	gate      *FlagshipGate
	gen       *Generator
	validate  *validator.Validate
	summaries *lru.Cache[string, *domain.LocationSummary]
}

// NewService creates the encounter service. A nil gate designates no flagship sites. A nil
// generator borrows the gate's, so selection and flagship rolls share one random source.
func NewService(species catalog.SpeciesCatalog, locations catalog.LocationCatalog, gate *FlagshipGate, gen *Generator, summaryCacheSize int) (Service, error) {
	switch {
	case gen == nil && gate != nil:
		gen = gate.gen
	case gen == nil:
		gen = NewGenerator(nil, nil, nil)
	}
	if summaryCacheSize <= 0 {
		summaryCacheSize = DefaultSummaryCacheSize
	}

	cache, err := lru.New[string, *domain.LocationSummary](summaryCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary cache: %w", err)
	}

	return &service{
		species:   species,
		locations: locations,
		gate:      gate,
		gen:       gen,
		validate:  validator.New(),
		summaries: cache,
	}, nil
}

// GenerateEncounter runs the flagship gate and, if it declines, the weighted selection pipeline
func (s *service) GenerateEncounter(ctx context.Context, locationID string, conditions domain.Conditions) (*domain.Encounter, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(conditions); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConditions, err)
	}

	loc, ok := s.locations.Get(locationID)
	if !ok {
		s.noEncounter(ctx, locationID, ReasonLocationNotFound, domain.ErrLocationNotFound)
		return nil, nil
	}

	if enc, ok := s.gate.TryFlagship(locationID); ok {
		metrics.RecordEncounter(locationID, enc.SpeciesID, true, enc.Difficulty)
		log.Info(LogMsgFlagshipGenerated,
			LogFieldLocation, locationID,
			LogFieldTitle, enc.FlagshipTitle,
			LogFieldInstanceID, enc.InstanceID)
		return enc, nil
	}

	sp, ok := Select(s.weightedCandidates(ctx, loc, conditions), s.gen.RNG())
	if !ok {
		s.noEncounter(ctx, locationID, ReasonNoEligible, domain.ErrNoEligibleSpecies)
		return nil, nil
	}

	enc := s.gen.Generate(sp, loc)
	metrics.RecordEncounter(locationID, sp.ID, false, enc.Difficulty)
	log.Debug(LogMsgEncounterGenerated,
		LogFieldLocation, locationID,
		LogFieldSpecies, sp.ID,
		LogFieldDifficulty, enc.Difficulty,
		LogFieldInstanceID, enc.InstanceID)

	return &enc, nil
}

// GetEligibleSpecies lists what could appear, in population order, without drawing from the RNG
func (s *service) GetEligibleSpecies(ctx context.Context, locationID string, conditions domain.Conditions) []*domain.Species {
	loc, ok := s.locations.Get(locationID)
	if !ok {
		return nil
	}

	var out []*domain.Species
	for _, sp := range s.population(ctx, loc) {
		if IsEligible(sp, conditions) {
			out = append(out, sp)
		}
	}
	return out
}

// GetLocationSummary aggregates a location for display. Results are cached; catalogs never change after load.
func (s *service) GetLocationSummary(ctx context.Context, locationID string) (*domain.LocationSummary, bool) {
	if cached, ok := s.summaries.Get(locationID); ok {
		return copySummary(cached), true
	}

	loc, ok := s.locations.Get(locationID)
	if !ok {
		return nil, false
	}

	summary := &domain.LocationSummary{
		LocationID:     loc.ID,
		Name:           loc.Name,
		UnlockLevel:    loc.UnlockLevel,
		IsFlagshipSite: s.gate.IsSite(loc.ID),
		Habitats:       []string{},
	}

	seenHabitat := make(map[string]bool)
	for _, sp := range s.population(ctx, loc) {
		if summary.SpeciesCount == 0 || sp.Rarity < summary.Rarity.Min {
			summary.Rarity.Min = sp.Rarity
		}
		if sp.Rarity > summary.Rarity.Max {
			summary.Rarity.Max = sp.Rarity
		}
		summary.SpeciesCount++

		if sp.Habitat != "" && !seenHabitat[sp.Habitat] {
			seenHabitat[sp.Habitat] = true
			summary.Habitats = append(summary.Habitats, sp.Habitat)
		}
	}

	s.summaries.Add(locationID, summary)
	return copySummary(summary), true
}

// population resolves a location's species ids, skipping ids the catalog does not know
func (s *service) population(ctx context.Context, loc *domain.Location) []*domain.Species {
	out := make([]*domain.Species, 0, len(loc.Population))
	for _, id := range loc.Population {
		sp, ok := s.species.Get(id)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnknownPopulationSpecies, LogFieldLocation, loc.ID, LogFieldSpecies, id)
			continue
		}
		out = append(out, sp)
	}
	return out
}

func (s *service) weightedCandidates(ctx context.Context, loc *domain.Location, conditions domain.Conditions) []Candidate {
	var candidates []Candidate
	for _, sp := range s.population(ctx, loc) {
		if !IsEligible(sp, conditions) {
			continue
		}
		candidates = append(candidates, Candidate{Species: sp, Weight: WeightOf(sp, loc, conditions)})
	}
	return candidates
}

func (s *service) noEncounter(ctx context.Context, locationID, reason string, cause error) {
	metrics.NoEncounters.WithLabelValues(reason).Inc()
	logger.FromContext(ctx).Info(LogMsgNoEncounter,
		LogFieldLocation, locationID,
		LogFieldReason, cause.Error())
}

func copySummary(in *domain.LocationSummary) *domain.LocationSummary {
	out := *in
	out.Habitats = make([]string, len(in.Habitats))
	copy(out.Habitats, in.Habitats)
	return &out
}
