package encounter_bench

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/encounter"
	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/utils"
)

// --- Stubs (zero-overhead catalogs for benchmarking) ---

type StubSpeciesCatalog map[string]*domain.Species

func (c StubSpeciesCatalog) Get(id string) (*domain.Species, bool) {
	sp, ok := c[id]
	return sp, ok
}

type StubLocationCatalog map[string]*domain.Location

func (c StubLocationCatalog) Get(id string) (*domain.Location, bool) {
	loc, ok := c[id]
	return loc, ok
}

// newBenchService builds a service with one location holding populationSize species across all rarity tiers
func newBenchService(b *testing.B, populationSize int, flagship *encounter.FlagshipConfig) encounter.Service {
	b.Helper()
	logger.InitLoggerWithWriter(logger.NewConfig(logger.LogLevelError, logger.LogFormatText, "bench", "dev", logger.EnvironmentDev, false), io.Discard)

	species := StubSpeciesCatalog{}
	loc := &domain.Location{
		ID:              "lake",
		Name:            "Lake",
		RarityModifiers: map[domain.RarityBucket]float64{domain.BucketRare: 1.5},
		Modifiers:       domain.FishingModifiers{LineStrength: 0.9, CastDistance: 1},
	}
	for i := 0; i < populationSize; i++ {
		id := fmt.Sprintf("fish_%d", i)
		species[id] = &domain.Species{
			ID:               id,
			Name:             id,
			Rarity:           i%10 + 1,
			BaseSize:         20,
			BaseWeight:       2,
			ActivePeriods:    []domain.TimePeriod{domain.TimeDay, domain.TimeDusk},
			PreferredWeather: []domain.Weather{domain.WeatherAny},
			Elusiveness:      i % 7,
			Strength:         i % 5,
			BaseCurrency:     10,
			BaseExperience:   5,
		}
		loc.Population = append(loc.Population, id)
	}

	gen := encounter.NewGenerator(utils.NewSeededRNG(1), &encounter.SequentialIDGenerator{}, nil)
	svc, err := encounter.NewService(species, StubLocationCatalog{"lake": loc}, encounter.NewFlagshipGate(flagship, gen), gen, encounter.DefaultSummaryCacheSize)
	if err != nil {
		b.Fatalf("NewService failed: %v", err)
	}
	return svc
}

var benchConditions = domain.Conditions{TimePeriod: domain.TimeDay, Weather: domain.WeatherClear, RequesterLevel: 100}

// --- Benchmark Functions ---

func BenchmarkGenerateEncounter(b *testing.B) {
	for _, size := range []int{5, 50, 500} {
		b.Run(fmt.Sprintf("population_%d", size), func(b *testing.B) {
			svc := newBenchService(b, size, nil)
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				enc, err := svc.GenerateEncounter(ctx, "lake", benchConditions)
				if err != nil || enc == nil {
					b.Fatalf("GenerateEncounter failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkGenerateEncounter_FlagshipSite measures the extra gate draw at a designated site
func BenchmarkGenerateEncounter_FlagshipSite(b *testing.B) {
	flagship := &encounter.FlagshipConfig{
		Probability: encounter.DefaultFlagshipProbability,
		Prefixes:    []string{"Ancient"},
		Sites:       map[string]string{"lake": "monster"},
		Templates: map[string]*encounter.FlagshipTemplate{
			"monster": {SpeciesID: "fish_0", BaseName: "lake monster", BaseSize: 400, BaseWeight: 300},
		},
	}
	svc := newBenchService(b, 50, flagship)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GenerateEncounter(ctx, "lake", benchConditions); err != nil {
			b.Fatalf("GenerateEncounter failed: %v", err)
		}
	}
}

func BenchmarkGenerateEncounter_Parallel(b *testing.B) {
	svc := newBenchService(b, 50, nil)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GenerateEncounter(ctx, "lake", benchConditions); err != nil {
				b.Errorf("GenerateEncounter failed: %v", err)
				return
			}
		}
	})
}

// BenchmarkGetLocationSummary hits the LRU after the first call
func BenchmarkGetLocationSummary(b *testing.B) {
	svc := newBenchService(b, 500, nil)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := svc.GetLocationSummary(ctx, "lake"); !ok {
			b.Fatal("summary missing")
		}
	}
}

func BenchmarkGetEligibleSpecies(b *testing.B) {
	svc := newBenchService(b, 500, nil)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.GetEligibleSpecies(ctx, "lake", benchConditions)
	}
}
