package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/castline/internal/catalog"
	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/encounter"
	"github.com/osse101/castline/internal/utils"
)

func newHarborService(t *testing.T, flagship *encounter.FlagshipConfig) encounter.Service {
	t.Helper()

	fish := func(id string, rarity int) domain.Species {
		return domain.Species{ID: id, Name: id, Rarity: rarity, BaseSize: 10, BaseWeight: 1, BaseCurrency: 1, BaseExperience: 1}
	}
	cat, err := catalog.New(
		[]domain.Species{fish("bass", 1), fish("marlin", 5)},
		[]domain.Location{{
			ID: "harbor", Name: "Harbor", Population: []string{"bass", "marlin"},
			Modifiers: domain.FishingModifiers{LineStrength: 1, CastDistance: 1},
		}},
	)
	require.NoError(t, err)

	gen := encounter.NewGenerator(utils.NewSeededRNG(99), &encounter.SequentialIDGenerator{}, nil)
	svc, err := encounter.NewService(cat.Species, cat.Locations, encounter.NewFlagshipGate(flagship, gen), gen, 4)
	require.NoError(t, err)
	return svc
}

func TestSimulate_Distribution(t *testing.T) {
	svc := newHarborService(t, nil)
	cond := domain.Conditions{RequesterLevel: 20}

	report, err := Simulate(context.Background(), svc, "harbor", cond, 5000)
	require.NoError(t, err)

	assert.Equal(t, 5000, report.Draws)
	assert.Zero(t, report.NoEncounters)
	assert.Zero(t, report.Flagships)
	require.Len(t, report.Species, 2)
	assert.Equal(t, "bass", report.Species[0].SpeciesID, "most common first")
	assert.Equal(t, 5000, report.Species[0].Count+report.Species[1].Count)
	assert.InDelta(t, 10/10.8, report.Species[0].Share, 0.03)
	assert.GreaterOrEqual(t, report.MeanDifficulty, 1.0)
}

func TestSimulate_CountsFlagshipsAndMisses(t *testing.T) {
	flagship := &encounter.FlagshipConfig{
		Probability: 1,
		Prefixes:    []string{"Elder"},
		Sites:       map[string]string{"harbor": "king"},
		Templates: map[string]*encounter.FlagshipTemplate{
			"king": {SpeciesID: "marlin", BaseName: "king", BaseSize: 100, BaseWeight: 50},
		},
	}
	svc := newHarborService(t, flagship)

	report, err := Simulate(context.Background(), svc, "harbor", domain.Conditions{RequesterLevel: 20}, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, report.Flagships)
	assert.Empty(t, report.Species)
	assert.GreaterOrEqual(t, report.MeanDifficulty, 9.0)

	report, err = Simulate(context.Background(), svc, "atlantis", domain.Conditions{}, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, report.NoEncounters)
	assert.Zero(t, report.MeanDifficulty)
}

func TestSimulate_InvalidConditions(t *testing.T) {
	svc := newHarborService(t, nil)

	_, err := Simulate(context.Background(), svc, "harbor", domain.Conditions{RequesterLevel: -1}, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidConditions)
}

func TestReport_Print(t *testing.T) {
	report := &Report{
		LocationID: "harbor",
		Draws:      4,
		Flagships:  1,
		Species:    []SpeciesCount{{SpeciesID: "bass", Name: "Bass", Count: 3, Share: 0.75}},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Print(&buf))

	out := buf.String()
	assert.Contains(t, out, "Location harbor, 4 draws")
	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "Flagships:       1")
}
